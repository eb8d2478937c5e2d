package models

import (
	"time"

	"github.com/google/uuid"
)

type ShipmentStatus string

const (
	ShipmentStatusPending        ShipmentStatus = "pending"
	ShipmentStatusPickedUp       ShipmentStatus = "picked_up"
	ShipmentStatusInTransit      ShipmentStatus = "in_transit"
	ShipmentStatusOutForDelivery ShipmentStatus = "out_for_delivery"
	ShipmentStatusDelivered      ShipmentStatus = "delivered"
	ShipmentStatusFailed         ShipmentStatus = "failed"
	ShipmentStatusReturned       ShipmentStatus = "returned"
)

// Shipment moves one order through a carrier.
type Shipment struct {
	ID                    uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID               uuid.UUID      `gorm:"type:uuid;not null" json:"order_id"`
	Carrier               string         `gorm:"not null" json:"carrier"`
	TrackingNumber        string         `gorm:"not null" json:"tracking_number"`
	WeightKg              float64        `gorm:"not null" json:"weight_kg"`
	Status                ShipmentStatus `gorm:"not null;default:'pending'" json:"status"`
	EstimatedDeliveryDate *time.Time     `json:"estimated_delivery_date,omitempty"`
	ActualDeliveryDate    *time.Time     `json:"actual_delivery_date,omitempty"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
}

// ColdChainLog is one temperature/humidity reading taken while a perishable
// shipment is in transit.
type ColdChainLog struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ShipmentID         uuid.UUID `gorm:"type:uuid;not null" json:"shipment_id"`
	DeviceID           string    `gorm:"not null" json:"device_id"`
	TemperatureCelsius float64   `gorm:"not null" json:"temperature_celsius"`
	HumidityPercent    *float64  `json:"humidity_percent,omitempty"`
	RecordedAt         time.Time `gorm:"not null" json:"recorded_at"`
	Breach             bool      `json:"breach"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
