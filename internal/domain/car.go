package domain

import (
	"slices"
	"time"
)

type CarStatus string

const (
	CarStatusAvailable CarStatus = "available"
	CarStatusSold      CarStatus = "sold"
	CarStatusReserved  CarStatus = "reserved"
)

var ValidCarStatuses = []CarStatus{CarStatusAvailable, CarStatusSold, CarStatusReserved}

func IsValidCarStatus(status string) bool {
	return slices.Contains(ValidCarStatuses, CarStatus(status))
}

type Car struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TenantID     uint      `gorm:"not null;index" json:"tenant_id"`
	Title        string    `gorm:"type:text;not null" json:"title"`
	Brand        string    `gorm:"type:text;not null" json:"brand"`
	Model        string    `gorm:"type:text;not null" json:"model"`
	Year         int       `gorm:"not null" json:"year"`
	Price        *float64  `json:"price"`
	PhotoURL     *string   `gorm:"type:text" json:"photo_url"`
	Observations *string   `gorm:"type:text" json:"observations"`
	Status       CarStatus `gorm:"type:text;not null;default:'available'" json:"status"`
	CreatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant       *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (Car) TableName() string {
	return "cars"
}

type CarFilter struct {
	TenantID uint
	Status   string
	Offset   int
	Limit    int
}
