package models

import "time"

// Order status progression. Cancelled is terminal.
const (
	OrderPending    = "pending"
	OrderPaid       = "paid"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// Payment methods accepted at checkout.
const (
	PayUPI       = "upi"
	PayCOD       = "cod"
	PayGooglePay = "googlepay"
)

// ShippingInfo is the address snapshot captured at checkout.
type ShippingInfo struct {
	FullName            string `json:"fullName" bson:"fullName"`
	Email               string `json:"email" bson:"email"`
	Phone               string `json:"phone" bson:"phone"`
	Address             string `json:"address" bson:"address"`
	City                string `json:"city" bson:"city"`
	State               string `json:"state" bson:"state"`
	Pincode             string `json:"pincode" bson:"pincode"`
	SpecialInstructions string `json:"specialInstructions,omitempty" bson:"specialInstructions,omitempty"`
}

// PaymentInfo is the payment selection captured at checkout.
type PaymentInfo struct {
	Method        string     `json:"method" bson:"method"`
	UpiID         string     `json:"upiId,omitempty" bson:"upiId,omitempty"`
	TransactionID string     `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	Status        string     `json:"status" bson:"status"` // pending, completed, failed
	PaidAt        *time.Time `json:"paidAt,omitempty" bson:"paidAt,omitempty"`
}

// Order is a point-in-time copy of the cart plus shipping and payment forms.
// Created once at checkout; only status transitions mutate it afterwards.
type Order struct {
	OrderID      string       `json:"orderId" bson:"orderId"`
	UserID       string       `json:"userId,omitempty" bson:"userId,omitempty"`
	Items        []CartItem   `json:"items" bson:"items"`
	ShippingInfo ShippingInfo `json:"shippingInfo" bson:"shippingInfo"`
	PaymentInfo  PaymentInfo  `json:"paymentInfo" bson:"paymentInfo"`
	Subtotal     int64        `json:"subtotal" bson:"subtotal"`
	ShippingCost int64        `json:"shippingCost" bson:"shippingCost"`
	Total        int64        `json:"total" bson:"total"`
	Status       string       `json:"status" bson:"status"`
	CreatedAt    time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt" bson:"updatedAt"`
	ShippedAt    *time.Time   `json:"shippedAt,omitempty" bson:"shippedAt,omitempty"`
	DeliveredAt  *time.Time   `json:"deliveredAt,omitempty" bson:"deliveredAt,omitempty"`
}

// IdempotencyRecord backs the Idempotency-Key middleware on checkout.
type IdempotencyRecord struct {
	Key         string                 `bson:"key"`
	Method      string                 `bson:"method"`
	Path        string                 `bson:"path"`
	UserID      string                 `bson:"userId"`
	RequestHash string                 `bson:"request_hash"`
	Response    map[string]interface{} `bson:"response,omitempty"`
	CreatedAt   time.Time              `bson:"created_at"`
	ExpiresAt   time.Time              `bson:"expires_at"`
}
