package models

import (
	"time"

	"github.com/google/uuid"
)

type CertificationStatus string

const (
	CertificationStatusPending   CertificationStatus = "pending"
	CertificationStatusVerified  CertificationStatus = "verified"
	CertificationStatusRejected  CertificationStatus = "rejected"
	CertificationStatusExpired   CertificationStatus = "expired"
	CertificationStatusSuspended CertificationStatus = "suspended"
)

// Certification is an external body's attestation of a farmer's practice
// (organic, GAP, fair trade...), valid between issue and expiry dates.
type Certification struct {
	ID                uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FarmerID          uuid.UUID           `gorm:"type:uuid;not null" json:"farmer_id"`
	CertifyingBody    string              `gorm:"not null" json:"certifying_body"`
	CertificationType string              `gorm:"not null" json:"certification_type"`
	CertificateNumber string              `gorm:"not null" json:"certificate_number"`
	IssueDate         time.Time           `gorm:"not null" json:"issue_date"`
	ExpiryDate        time.Time           `gorm:"not null" json:"expiry_date"`
	Status            CertificationStatus `gorm:"not null;default:'pending'" json:"status"`
	DocumentURL       string              `json:"document_url"`
	VerifiedBy        *uuid.UUID          `gorm:"type:uuid" json:"verified_by,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

type QualityReportStatus string

const (
	QualityReportStatusPending     QualityReportStatus = "pending"
	QualityReportStatusUnderReview QualityReportStatus = "under_review"
	QualityReportStatusApproved    QualityReportStatus = "approved"
	QualityReportStatusRejected    QualityReportStatus = "rejected"
)

type QualityGrade string

const (
	GradeAPlus QualityGrade = "A+"
	GradeA     QualityGrade = "A"
	GradeBPlus QualityGrade = "B+"
	GradeB     QualityGrade = "B"
	GradeC     QualityGrade = "C"
	GradeD     QualityGrade = "D"
)

// QualityReport is an inspector's assessment of a listing's produce.
type QualityReport struct {
	ID               uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ListingID        uuid.UUID           `gorm:"type:uuid;not null" json:"listing_id"`
	InspectorID      uuid.UUID           `gorm:"type:uuid;not null" json:"inspector_id"`
	OverallScore     float64             `gorm:"not null" json:"overall_score"` // 0..100
	Grade            QualityGrade        `gorm:"not null" json:"grade"`
	DefectPercentage float64             `json:"defect_percentage"`
	Notes            string              `json:"notes"`
	Status           QualityReportStatus `gorm:"not null;default:'pending'" json:"status"`
	InspectedAt      time.Time           `json:"inspected_at"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}
