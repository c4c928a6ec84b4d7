package service

import (
	"context"

	"github.com/qrobotics/storefront-api/internal/apperrors"
	"github.com/qrobotics/storefront-api/internal/models"
)

// OrderStore is the storage surface the order service depends on.
type OrderStore interface {
	List(ctx context.Context) ([]models.OrderSummary, error)
	GetByID(ctx context.Context, id int) (*models.OrderDetail, []models.OrderItem, error)
	UpdateStatus(ctx context.Context, id int, paymentStatus, shippingStatus *string) (int64, error)
}

// OrderService handles order read and status-update operations. Orders are
// created by the storefront checkout, which is outside this API; totals and
// line-item price snapshots are immutable once written.
type OrderService struct {
	store OrderStore
}

// NewOrderService constructs an OrderService.
func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{store: store}
}

// OrderWithItems bundles an order header with its line items.
type OrderWithItems struct {
	Order *models.OrderDetail `json:"order"`
	Items []models.OrderItem  `json:"items"`
}

// UpdateOrderStatusRequest represents a partial order status update. At least
// one of the two fields must be present.
type UpdateOrderStatusRequest struct {
	PaymentStatus  *string `json:"payment_status"`
	ShippingStatus *string `json:"shipping_status"`
}

// List returns all non-deleted orders with customer info and item counts.
func (s *OrderService) List(ctx context.Context) ([]models.OrderSummary, error) {
	return s.store.List(ctx)
}

// Get returns the order header and line items. A header with zero items is a
// valid result.
func (s *OrderService) Get(ctx context.Context, id int) (*OrderWithItems, error) {
	if id <= 0 {
		return nil, apperrors.NewFieldValidation("id", "must be a positive id")
	}
	order, items, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &OrderWithItems{Order: order, Items: items}, nil
}

// UpdateStatus applies a partial payment/shipping status update. Any status
// may move to any other; no transition graph is enforced. Repeating the same
// update is a no-op success.
func (s *OrderService) UpdateStatus(ctx context.Context, id int, req *UpdateOrderStatusRequest) error {
	if id <= 0 {
		return apperrors.NewFieldValidation("id", "must be a positive id")
	}
	if req.PaymentStatus == nil && req.ShippingStatus == nil {
		return apperrors.NewValidation("no valid fields to update")
	}
	if req.PaymentStatus != nil && !models.ValidPaymentStatus(*req.PaymentStatus) {
		return apperrors.NewFieldValidation("payment_status", "must be one of pending, completed, failed, refunded")
	}
	if req.ShippingStatus != nil && !models.ValidShippingStatus(*req.ShippingStatus) {
		return apperrors.NewFieldValidation("shipping_status", "must be one of processing, shipped, delivered, returned")
	}

	rows, err := s.store.UpdateStatus(ctx, id, req.PaymentStatus, req.ShippingStatus)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.NewNotFound("order")
	}
	return nil
}
