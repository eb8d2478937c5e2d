package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a buyer's purchase from one seller, totalling its items.
type Order struct {
	ID           uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BuyerID      uuid.UUID   `gorm:"type:uuid;not null" json:"buyer_id"`
	SellerID     uuid.UUID   `gorm:"type:uuid;not null" json:"seller_id"`
	TotalAmount  float64     `gorm:"not null" json:"total_amount"`
	Status       OrderStatus `gorm:"not null;default:'pending'" json:"status"`
	DeliveryNote string      `json:"delivery_note"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// OrderItem is one listing line inside an order.
type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null" json:"order_id"`
	ListingID uuid.UUID `gorm:"type:uuid;not null" json:"listing_id"`
	Quantity  float64   `gorm:"not null" json:"quantity"`
	UnitPrice float64   `gorm:"not null" json:"unit_price"`
	Subtotal  float64   `gorm:"not null" json:"subtotal"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentMethodMobileMoney  PaymentMethod = "mobile_money"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCash         PaymentMethod = "cash_on_delivery"
	PaymentMethodEscrow       PaymentMethod = "escrow"
)

// Payment settles one order.
type Payment struct {
	ID          uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID     uuid.UUID     `gorm:"type:uuid;not null" json:"order_id"`
	PayerID     uuid.UUID     `gorm:"type:uuid;not null" json:"payer_id"`
	Amount      float64       `gorm:"not null" json:"amount"`
	Method      PaymentMethod `gorm:"not null" json:"method"`
	Status      PaymentStatus `gorm:"not null;default:'pending'" json:"status"`
	Reference   string        `json:"reference"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
