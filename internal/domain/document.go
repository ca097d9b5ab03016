package domain

import (
	"time"
)

// Document has no tenant column; its tenant is the tenant of the car it belongs to.
type Document struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CarID        uint      `gorm:"not null;index" json:"car_id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	DocumentType string    `gorm:"type:text;not null" json:"document_type"`
	FileURL      *string   `gorm:"type:text" json:"file_url"`
	Notes        *string   `gorm:"type:text" json:"notes"`
	IsRequired   bool      `gorm:"not null;default:false" json:"is_required"`
	IsCompleted  bool      `gorm:"not null;default:false" json:"is_completed"`
	CreatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Car          *Car      `gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Document) TableName() string {
	return "documents"
}

type DocumentFilter struct {
	TenantID     uint
	CarID        *uint
	DocumentType string
	Offset       int
	Limit        int
}
