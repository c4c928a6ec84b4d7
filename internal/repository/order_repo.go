package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/qrobotics/storefront-api/internal/apperrors"
	"github.com/qrobotics/storefront-api/internal/models"
)

// OrderRepository handles data access for orders and their line items.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// List returns all non-deleted orders with customer identity and a per-order
// item count, newest first.
func (r *OrderRepository) List(ctx context.Context) ([]models.OrderSummary, error) {
	const q = `
        SELECT
            o.order_id,
            o.user_id,
            u.first_name || ' ' || u.last_name AS customer_name,
            u.email AS customer_email,
            o.order_date,
            o.total_amount,
            o.payment_method,
            o.payment_status,
            o.shipping_status,
            COUNT(oi.order_item_id) AS total_items
        FROM orders o
        JOIN users u ON o.user_id = u.user_id
        LEFT JOIN order_items oi ON o.order_id = oi.order_id
        WHERE o.deleted_at IS NULL
        GROUP BY o.order_id, o.user_id, u.first_name, u.last_name, u.email,
                 o.order_date, o.total_amount, o.payment_method,
                 o.payment_status, o.shipping_status
        ORDER BY o.order_date DESC`

	orders := []models.OrderSummary{}
	if err := r.db.SelectContext(ctx, &orders, q); err != nil {
		return nil, apperrors.NewStorage("list orders", err)
	}
	return orders, nil
}

// GetByID returns the order header (customer plus shipping and billing
// addresses) and its line items. An order with zero items is legal. A missing
// or soft-deleted order yields NotFoundError.
func (r *OrderRepository) GetByID(ctx context.Context, id int) (*models.OrderDetail, []models.OrderItem, error) {
	const headerQ = `
        SELECT
            o.order_id,
            o.user_id,
            u.first_name || ' ' || u.last_name AS customer_name,
            u.email AS customer_email,
            u.phone_number,
            o.order_date,
            o.total_amount,
            o.payment_method,
            o.payment_status,
            o.shipping_status,
            sa.street_address AS shipping_address,
            sa.city AS shipping_city,
            sa.postal_code AS shipping_postal,
            ba.street_address AS billing_address,
            ba.city AS billing_city,
            ba.postal_code AS billing_postal
        FROM orders o
        JOIN users u ON o.user_id = u.user_id
        JOIN user_addresses sa ON o.shipping_address_id = sa.address_id
        JOIN user_addresses ba ON o.billing_address_id = ba.address_id
        WHERE o.order_id = $1 AND o.deleted_at IS NULL`

	var header models.OrderDetail
	err := r.db.GetContext(ctx, &header, headerQ, id)
	if err == sql.ErrNoRows {
		return nil, nil, apperrors.NewNotFound("order")
	}
	if err != nil {
		return nil, nil, apperrors.NewStorage("get order", err)
	}

	const itemsQ = `
        SELECT
            oi.order_item_id,
            oi.product_id,
            p.name AS product_name,
            oi.quantity,
            oi.price_at_time,
            oi.subtotal
        FROM order_items oi
        JOIN products p ON oi.product_id = p.product_id
        WHERE oi.order_id = $1`

	items := []models.OrderItem{}
	if err := r.db.SelectContext(ctx, &items, itemsQ, id); err != nil {
		return nil, nil, apperrors.NewStorage("get order items", err)
	}
	return &header, items, nil
}

// UpdateStatus applies a partial status update touching only the supplied
// columns. Returns the number of rows affected; 0 means no active order with
// that id exists.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int, paymentStatus, shippingStatus *string) (int64, error) {
	var set updateSet
	if paymentStatus != nil {
		set.Add("payment_status", *paymentStatus)
	}
	if shippingStatus != nil {
		set.Add("shipping_status", *shippingStatus)
	}
	if set.Empty() {
		return 0, apperrors.NewValidation("no valid fields to update")
	}

	clause, args := set.Clause()
	q := fmt.Sprintf(`UPDATE orders SET %s, updated_at = NOW() WHERE order_id = $%d AND deleted_at IS NULL`,
		clause, set.NextIndex())
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, apperrors.NewStorage("update order status", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, apperrors.NewStorage("update order status: rows affected", err)
	}
	return rows, nil
}
