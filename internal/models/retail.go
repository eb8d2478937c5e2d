package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type InventoryStatus string

const (
	InventoryStatusInStock    InventoryStatus = "in_stock"
	InventoryStatusLowStock   InventoryStatus = "low_stock"
	InventoryStatusOutOfStock InventoryStatus = "out_of_stock"
)

// RetailerInventory tracks a retailer's stock of a product sourced from the
// marketplace.
type RetailerInventory struct {
	ID           uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RetailerID   uuid.UUID       `gorm:"type:uuid;not null" json:"retailer_id"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	Quantity     float64         `gorm:"not null" json:"quantity"`
	ReorderLevel float64         `gorm:"not null" json:"reorder_level"`
	Status       InventoryStatus `gorm:"not null;default:'in_stock'" json:"status"`
	LastRestock  *time.Time      `json:"last_restock,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type BlockchainTxStatus string

const (
	BlockchainTxStatusPending   BlockchainTxStatus = "pending"
	BlockchainTxStatusConfirmed BlockchainTxStatus = "confirmed"
	BlockchainTxStatusFailed    BlockchainTxStatus = "failed"
)

// BlockchainTxRef anchors a marketplace record (certification, shipment,
// quality report) to an on-chain transaction for provenance.
type BlockchainTxRef struct {
	ID          uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EntityType  string             `gorm:"not null" json:"entity_type"`
	EntityID    uuid.UUID          `gorm:"type:uuid;not null" json:"entity_id"`
	TxHash      string             `gorm:"not null" json:"tx_hash"`
	ChainID     string             `gorm:"not null" json:"chain_id"`
	BlockNumber *int64             `json:"block_number,omitempty"`
	Status      BlockchainTxStatus `gorm:"not null;default:'pending'" json:"status"`
	Payload     datatypes.JSON     `json:"payload"`
	ConfirmedAt *time.Time         `json:"confirmed_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
