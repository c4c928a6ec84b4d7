package models

import "time"

// PaymentStatus enumerates order payment states.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// ShippingStatus enumerates order fulfilment states.
type ShippingStatus string

const (
	ShippingProcessing ShippingStatus = "processing"
	ShippingShipped    ShippingStatus = "shipped"
	ShippingDelivered  ShippingStatus = "delivered"
	ShippingReturned   ShippingStatus = "returned"
)

// ValidShippingStatus reports whether s is a known shipping status.
func ValidShippingStatus(s string) bool {
	switch ShippingStatus(s) {
	case ShippingProcessing, ShippingShipped, ShippingDelivered, ShippingReturned:
		return true
	}
	return false
}

// OrderSummary is a row of the admin order list: order columns joined with
// customer identity and an aggregate item count.
type OrderSummary struct {
	ID             int            `db:"order_id" json:"id"`
	UserID         int            `db:"user_id" json:"userId"`
	CustomerName   string         `db:"customer_name" json:"customerName"`
	CustomerEmail  string         `db:"customer_email" json:"customerEmail"`
	OrderDate      time.Time      `db:"order_date" json:"orderDate"`
	TotalAmount    float64        `db:"total_amount" json:"totalAmount"`
	PaymentMethod  string         `db:"payment_method" json:"paymentMethod"`
	PaymentStatus  PaymentStatus  `db:"payment_status" json:"paymentStatus"`
	ShippingStatus ShippingStatus `db:"shipping_status" json:"shippingStatus"`
	TotalItems     int            `db:"total_items" json:"totalItems"`
}

// OrderDetail is the single-order header with both addresses resolved.
type OrderDetail struct {
	ID             int            `db:"order_id" json:"id"`
	UserID         int            `db:"user_id" json:"userId"`
	CustomerName   string         `db:"customer_name" json:"customerName"`
	CustomerEmail  string         `db:"customer_email" json:"customerEmail"`
	PhoneNumber    *string        `db:"phone_number" json:"phoneNumber,omitempty"`
	OrderDate      time.Time      `db:"order_date" json:"orderDate"`
	TotalAmount    float64        `db:"total_amount" json:"totalAmount"`
	PaymentMethod  string         `db:"payment_method" json:"paymentMethod"`
	PaymentStatus  PaymentStatus  `db:"payment_status" json:"paymentStatus"`
	ShippingStatus ShippingStatus `db:"shipping_status" json:"shippingStatus"`

	ShippingAddress string `db:"shipping_address" json:"shippingAddress"`
	ShippingCity    string `db:"shipping_city" json:"shippingCity"`
	ShippingPostal  string `db:"shipping_postal" json:"shippingPostal"`
	BillingAddress  string `db:"billing_address" json:"billingAddress"`
	BillingCity     string `db:"billing_city" json:"billingCity"`
	BillingPostal   string `db:"billing_postal" json:"billingPostal"`
}

// OrderItem is a single line item. Price and subtotal are snapshots taken at
// order time and never recomputed from live product prices.
type OrderItem struct {
	ID          int     `db:"order_item_id" json:"id"`
	ProductID   int     `db:"product_id" json:"productId"`
	ProductName string  `db:"product_name" json:"productName"`
	Quantity    int     `db:"quantity" json:"quantity"`
	PriceAtTime float64 `db:"price_at_time" json:"priceAtTime"`
	Subtotal    float64 `db:"subtotal" json:"subtotal"`
}
