package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse acknowledges operations without a resource body.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse reports service health.
type StatusResponse struct {
	Status string `json:"status"`
}
