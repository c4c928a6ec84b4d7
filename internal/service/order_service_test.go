package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrobotics/storefront-api/internal/apperrors"
	"github.com/qrobotics/storefront-api/internal/models"
)

type fakeOrderStore struct {
	orders map[int]*models.OrderDetail
	items  map[int][]models.OrderItem
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{
		orders: make(map[int]*models.OrderDetail),
		items:  make(map[int][]models.OrderItem),
	}
}

func (f *fakeOrderStore) addOrder(id int, payment models.PaymentStatus, shipping models.ShippingStatus, items ...models.OrderItem) {
	f.orders[id] = &models.OrderDetail{
		ID:             id,
		UserID:         1,
		CustomerName:   "Jordan Rivers",
		CustomerEmail:  "jordan@example.com",
		OrderDate:      time.Now(),
		TotalAmount:    199.98,
		PaymentMethod:  "card",
		PaymentStatus:  payment,
		ShippingStatus: shipping,
	}
	f.items[id] = items
}

func (f *fakeOrderStore) List(_ context.Context) ([]models.OrderSummary, error) {
	out := []models.OrderSummary{}
	for _, o := range f.orders {
		out = append(out, models.OrderSummary{
			ID:             o.ID,
			UserID:         o.UserID,
			CustomerName:   o.CustomerName,
			CustomerEmail:  o.CustomerEmail,
			OrderDate:      o.OrderDate,
			TotalAmount:    o.TotalAmount,
			PaymentMethod:  o.PaymentMethod,
			PaymentStatus:  o.PaymentStatus,
			ShippingStatus: o.ShippingStatus,
			TotalItems:     len(f.items[o.ID]),
		})
	}
	return out, nil
}

func (f *fakeOrderStore) GetByID(_ context.Context, id int) (*models.OrderDetail, []models.OrderItem, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil, apperrors.NewNotFound("order")
	}
	cp := *o
	return &cp, f.items[id], nil
}

func (f *fakeOrderStore) UpdateStatus(_ context.Context, id int, paymentStatus, shippingStatus *string) (int64, error) {
	o, ok := f.orders[id]
	if !ok {
		return 0, nil
	}
	if paymentStatus != nil {
		o.PaymentStatus = models.PaymentStatus(*paymentStatus)
	}
	if shippingStatus != nil {
		o.ShippingStatus = models.ShippingStatus(*shippingStatus)
	}
	return 1, nil
}

func strPtr(s string) *string { return &s }

func TestOrderService_UpdateStatus_NoFieldsIsValidationError(t *testing.T) {
	t.Parallel()

	store := newFakeOrderStore()
	store.addOrder(1, models.PaymentPending, models.ShippingProcessing)
	svc := NewOrderService(store)

	err := svc.UpdateStatus(context.Background(), 1, &UpdateOrderStatusRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "no valid fields to update")
	assert.Equal(t, models.PaymentPending, store.orders[1].PaymentStatus, "order untouched")
}

func TestOrderService_UpdateStatus_RejectsUnknownEnums(t *testing.T) {
	t.Parallel()

	store := newFakeOrderStore()
	store.addOrder(1, models.PaymentPending, models.ShippingProcessing)
	svc := NewOrderService(store)
	ctx := context.Background()

	err := svc.UpdateStatus(ctx, 1, &UpdateOrderStatusRequest{PaymentStatus: strPtr("paid")})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	err = svc.UpdateStatus(ctx, 1, &UpdateOrderStatusRequest{ShippingStatus: strPtr("in_transit")})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestOrderService_UpdateStatus_PartialUpdateLeavesOtherField(t *testing.T) {
	t.Parallel()

	store := newFakeOrderStore()
	store.addOrder(1, models.PaymentPending, models.ShippingProcessing)
	svc := NewOrderService(store)

	err := svc.UpdateStatus(context.Background(), 1, &UpdateOrderStatusRequest{
		PaymentStatus: strPtr("completed"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, store.orders[1].PaymentStatus)
	assert.Equal(t, models.ShippingProcessing, store.orders[1].ShippingStatus)
}

func TestOrderService_UpdateStatus_RepeatIsNoOpSuccess(t *testing.T) {
	t.Parallel()

	store := newFakeOrderStore()
	store.addOrder(1, models.PaymentCompleted, models.ShippingShipped)
	svc := NewOrderService(store)
	ctx := context.Background()

	req := &UpdateOrderStatusRequest{ShippingStatus: strPtr("shipped")}
	require.NoError(t, svc.UpdateStatus(ctx, 1, req))
	require.NoError(t, svc.UpdateStatus(ctx, 1, req))
	assert.Equal(t, models.ShippingShipped, store.orders[1].ShippingStatus)
}

func TestOrderService_UpdateStatus_MissingOrderIsNotFound(t *testing.T) {
	t.Parallel()

	svc := NewOrderService(newFakeOrderStore())

	err := svc.UpdateStatus(context.Background(), 42, &UpdateOrderStatusRequest{
		PaymentStatus: strPtr("refunded"),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestOrderService_Get_ZeroItemsIsValid(t *testing.T) {
	t.Parallel()

	store := newFakeOrderStore()
	store.addOrder(5, models.PaymentPending, models.ShippingProcessing)
	svc := NewOrderService(store)

	got, err := svc.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Order.ID)
	assert.Empty(t, got.Items)
}

func TestOrderService_Get_MissingIsNotFound(t *testing.T) {
	t.Parallel()

	svc := NewOrderService(newFakeOrderStore())

	_, err := svc.Get(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestOrderService_List_CountsItems(t *testing.T) {
	t.Parallel()

	store := newFakeOrderStore()
	store.addOrder(1, models.PaymentCompleted, models.ShippingDelivered,
		models.OrderItem{ID: 1, ProductID: 1, ProductName: "Headphones", Quantity: 2, PriceAtTime: 99.99, Subtotal: 199.98},
	)
	svc := NewOrderService(store)

	orders, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 1, orders[0].TotalItems)
	assert.Equal(t, "Jordan Rivers", orders[0].CustomerName)
}
