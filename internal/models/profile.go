package models

import (
	"time"

	"github.com/google/uuid"
)

type ProfileRole string

const (
	RoleFarmer    ProfileRole = "farmer"
	RoleBuyer     ProfileRole = "buyer"
	RoleRetailer  ProfileRole = "retailer"
	RoleInspector ProfileRole = "inspector"
)

type ProfileStatus string

const (
	ProfileStatusActive      ProfileStatus = "active"
	ProfileStatusSuspended   ProfileStatus = "suspended"
	ProfileStatusDeactivated ProfileStatus = "deactivated"
)

// Profile is a marketplace participant.
type Profile struct {
	ID        uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName  string        `gorm:"not null" json:"full_name"`
	Phone     string        `json:"phone"`
	Role      ProfileRole   `gorm:"not null" json:"role"`
	Status    ProfileStatus `gorm:"not null;default:'active'" json:"status"`
	Region    string        `json:"region"`
	AvatarURL string        `json:"avatar_url"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type ReviewStatus string

const (
	ReviewStatusPending   ReviewStatus = "pending"
	ReviewStatusPublished ReviewStatus = "published"
	ReviewStatusFlagged   ReviewStatus = "flagged"
	ReviewStatusRemoved   ReviewStatus = "removed"
)

// Review rates the counterparty of a completed order.
type Review struct {
	ID         uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID    uuid.UUID    `gorm:"type:uuid;not null" json:"order_id"`
	ReviewerID uuid.UUID    `gorm:"type:uuid;not null" json:"reviewer_id"`
	RevieweeID uuid.UUID    `gorm:"type:uuid;not null" json:"reviewee_id"`
	Rating     int          `gorm:"not null" json:"rating"` // 1..5
	Comment    string       `json:"comment"`
	Status     ReviewStatus `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
