package dto

// DashboardResponse aggregates counters for the admin landing page.
type DashboardResponse struct {
	Reservations struct {
		Total   int64 `json:"total"`
		Pending int64 `json:"pending"`
	} `json:"reservations"`
	Orders struct {
		Total        int64  `json:"total"`
		Pending      int64  `json:"pending"`
		TotalRevenue string `json:"total_revenue"`
	} `json:"orders"`
	Users struct {
		Total int64 `json:"total"`
	} `json:"users"`
	Reviews struct {
		Total         int64   `json:"total"`
		AverageRating float64 `json:"average_rating"`
	} `json:"reviews"`
}
