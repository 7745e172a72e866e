package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/reservashop/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

const orderColumns = `id, user_id, total_amount, status, payment_method, payment_status, created_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	if err := row.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.PaymentMethod, &o.PaymentStatus, &o.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return &o, nil
}

// Create inserts the order header and its items in one transaction.
func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	const insertOrder = `INSERT INTO orders (user_id, total_amount, status, payment_method, payment_status)
                         VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	const insertItem = `INSERT INTO order_items (order_id, product_id, quantity, unit_price)
                        VALUES ($1, $2, $3, $4) RETURNING id`

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertOrder, order.UserID, order.TotalAmount, order.Status, order.PaymentMethod, order.PaymentStatus).
			Scan(&order.ID, &order.CreatedAt)
		if err != nil {
			return err
		}

		items := make([]model.OrderItem, len(order.Items))
		for i, item := range order.Items {
			item.OrderID = order.ID
			if err := tx.QueryRow(ctx, insertItem, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice).Scan(&item.ID); err != nil {
				return err
			}
			items[i] = item
		}
		order.Items = items
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &order, nil
}

func (r *orderRepository) GetForUser(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 AND user_id=$2`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, orderID, userID))
	if err != nil {
		return nil, err
	}

	orders := []model.Order{*order}
	if err := attachItems(ctx, r.storage.pool, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query, userID)
}

func (r *orderRepository) List(ctx context.Context, page model.Page) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	return r.list(ctx, query, page.Limit, page.Skip)
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if err := attachItems(ctx, r.storage.pool, result); err != nil {
		return nil, err
	}
	return result, nil
}

// TransitionPayment is a single conditional update so that two concurrent
// payments cannot both leave PENDING.
func (r *orderRepository) TransitionPayment(ctx context.Context, userID, orderID int64, t model.PaymentTransition) (bool, error) {
	const query = `UPDATE orders SET status=$1, payment_method=$2, payment_status=$3
                   WHERE id=$4 AND user_id=$5 AND status='PENDING'`
	tag, err := r.storage.pool.Exec(ctx, query, t.Status, t.PaymentMethod, t.PaymentStatus, orderID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// attachItems loads items for all orders with one query.
func attachItems(ctx context.Context, q querier, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, len(orders))
	index := make(map[int64]int, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		index[orders[i].ID] = i
		orders[i].Items = []model.OrderItem{}
	}

	const query = `SELECT id, order_id, product_id, quantity, unit_price FROM order_items
                   WHERE order_id = ANY($1) ORDER BY id`
	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
			return err
		}
		if i, ok := index[item.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	return rows.Err()
}
