package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProductCategory string

const (
	CategoryVegetables ProductCategory = "vegetables"
	CategoryFruits     ProductCategory = "fruits"
	CategoryGrains     ProductCategory = "grains"
	CategoryDairy      ProductCategory = "dairy"
	CategoryLivestock  ProductCategory = "livestock"
	CategoryPoultry    ProductCategory = "poultry"
	CategoryOther      ProductCategory = "other"
)

// Product is a catalog entry a listing sells against.
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Category    ProductCategory `gorm:"not null" json:"category"`
	Description string          `json:"description"`
	Unit        string          `gorm:"not null" json:"unit"` // kg, crate, dozen, litre
	Perishable  bool            `json:"perishable"`
	// Temperature band required in transit for perishables, degrees Celsius.
	MinTransitTempC *float64  `json:"min_transit_temp_c,omitempty"`
	MaxTransitTempC *float64  `json:"max_transit_temp_c,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ListingStatus string

const (
	ListingStatusDraft     ListingStatus = "draft"
	ListingStatusActive    ListingStatus = "active"
	ListingStatusSoldOut   ListingStatus = "sold_out"
	ListingStatusSuspended ListingStatus = "suspended"
	ListingStatusArchived  ListingStatus = "archived"
)

// ProductListing is a farmer's offer of a product quantity at a price.
type ProductListing struct {
	ID                uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FarmerID          uuid.UUID      `gorm:"type:uuid;not null" json:"farmer_id"`
	ProductID         uuid.UUID      `gorm:"type:uuid;not null" json:"product_id"`
	Title             string         `gorm:"not null" json:"title"`
	Description       string         `json:"description"`
	PricePerUnit      float64        `gorm:"not null" json:"price_per_unit"`
	QuantityAvailable float64        `gorm:"not null" json:"quantity_available"`
	Status            ListingStatus  `gorm:"not null;default:'draft'" json:"status"`
	HarvestDate       *time.Time     `json:"harvest_date,omitempty"`
	Images            datatypes.JSON `json:"images"` // array of {url, caption}
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}
