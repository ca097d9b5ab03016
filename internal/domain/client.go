package domain

import (
	"slices"
	"time"
)

type NegotiationStatus string

const (
	NegotiationInterested  NegotiationStatus = "interested"
	NegotiationNegotiating NegotiationStatus = "negotiating"
	NegotiationClosed      NegotiationStatus = "closed"
	NegotiationLost        NegotiationStatus = "lost"
)

var ValidNegotiationStatuses = []NegotiationStatus{
	NegotiationInterested,
	NegotiationNegotiating,
	NegotiationClosed,
	NegotiationLost,
}

func IsValidNegotiationStatus(status string) bool {
	return slices.Contains(ValidNegotiationStatuses, NegotiationStatus(status))
}

// Client is a prospective buyer, optionally interested in one car of the same tenant
type Client struct {
	ID                uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	TenantID          uint              `gorm:"not null;index" json:"tenant_id"`
	Name              string            `gorm:"type:text;not null" json:"name"`
	Phone             string            `gorm:"type:text;not null" json:"phone"`
	CPF               *string           `gorm:"column:cpf;type:text" json:"cpf"`
	Email             *string           `gorm:"type:text" json:"email"`
	NegotiationStatus NegotiationStatus `gorm:"type:text;not null;default:'interested'" json:"negotiation_status"`
	Notes             *string           `gorm:"type:text" json:"notes"`
	CarID             *uint             `gorm:"index" json:"car_id"`
	CreatedAt         time.Time         `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time         `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant            *Tenant           `gorm:"foreignKey:TenantID" json:"-"`
	Car               *Car              `gorm:"foreignKey:CarID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Client) TableName() string {
	return "clients"
}

type ClientFilter struct {
	TenantID      uint
	Status        string
	CarID         *uint
	CreatedAfter  time.Time
	CreatedBefore time.Time
	Offset        int
	Limit         int
}
