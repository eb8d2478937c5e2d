package models

import (
	"time"

	"github.com/google/uuid"
)

type NegotiationStatus string

const (
	NegotiationStatusPending        NegotiationStatus = "pending"
	NegotiationStatusCounterOffered NegotiationStatus = "counter_offered"
	NegotiationStatusAccepted       NegotiationStatus = "accepted"
	NegotiationStatusRejected       NegotiationStatus = "rejected"
	NegotiationStatusExpired        NegotiationStatus = "expired"
)

// Negotiation is a buyer's price proposal against a listing, bounced back and
// forth as counter-offers until accepted, rejected or expired.
type Negotiation struct {
	ID                uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ListingID         uuid.UUID         `gorm:"type:uuid;not null" json:"listing_id"`
	BuyerID           uuid.UUID         `gorm:"type:uuid;not null" json:"buyer_id"`
	FarmerID          uuid.UUID         `gorm:"type:uuid;not null" json:"farmer_id"`
	OriginalPrice     float64           `gorm:"not null" json:"original_price"`
	ProposedPrice     float64           `gorm:"not null" json:"proposed_price"`
	Quantity          float64           `gorm:"not null" json:"quantity"`
	CounterOfferCount int               `gorm:"not null;default:0" json:"counter_offer_count"`
	Status            NegotiationStatus `gorm:"not null;default:'pending'" json:"status"`
	ExpiresAt         time.Time         `gorm:"not null" json:"expires_at"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}
