package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MessageStatus string

const (
	MessageStatusSent      MessageStatus = "sent"
	MessageStatusDelivered MessageStatus = "delivered"
	MessageStatusRead      MessageStatus = "read"
)

// Message is a direct text between two participants, usually attached to a
// listing or order conversation.
type Message struct {
	ID          uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SenderID    uuid.UUID     `gorm:"type:uuid;not null" json:"sender_id"`
	RecipientID uuid.UUID     `gorm:"type:uuid;not null" json:"recipient_id"`
	ListingID   *uuid.UUID    `gorm:"type:uuid" json:"listing_id,omitempty"`
	OrderID     *uuid.UUID    `gorm:"type:uuid" json:"order_id,omitempty"`
	Content     string        `gorm:"not null" json:"content"`
	Status      MessageStatus `gorm:"not null;default:'sent'" json:"status"`
	ReadAt      *time.Time    `json:"read_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type DisputeStatus string

const (
	DisputeStatusOpen        DisputeStatus = "open"
	DisputeStatusUnderReview DisputeStatus = "under_review"
	DisputeStatusEscalated   DisputeStatus = "escalated"
	DisputeStatusResolved    DisputeStatus = "resolved"
	DisputeStatusClosed      DisputeStatus = "closed"
)

// Dispute is a complaint raised against an order.
type Dispute struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID     uuid.UUID      `gorm:"type:uuid;not null" json:"order_id"`
	RaisedByID  uuid.UUID      `gorm:"type:uuid;not null" json:"raised_by_id"`
	Reason      string         `gorm:"not null" json:"reason"`
	Description string         `json:"description"`
	Evidence    datatypes.JSON `json:"evidence"` // array of {url, kind, note}
	Status      DisputeStatus  `gorm:"not null;default:'open'" json:"status"`
	ResolvedBy  *uuid.UUID     `gorm:"type:uuid" json:"resolved_by,omitempty"`
	Resolution  string         `json:"resolution"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
