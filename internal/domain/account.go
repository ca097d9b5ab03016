package domain

import (
	"time"
)

// Account is a user login. It belongs to exactly one tenant for its whole lifetime.
type Account struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TenantID       uint      `gorm:"not null;index" json:"tenant_id"`
	Email          string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PasswordDigest string    `gorm:"column:hashed_password;type:text;not null" json:"-"`
	FullName       string    `gorm:"type:text;not null" json:"full_name"`
	IsAdmin        bool      `gorm:"not null;default:false" json:"is_admin"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant         *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (Account) TableName() string {
	return "users"
}
