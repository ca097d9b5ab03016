package dto

import (
	"time"
)

type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
}

type AccountResponse struct {
	ID       uint   `json:"id" example:"1"`
	Email    string `json:"email" example:"owner@acme.com"`
	FullName string `json:"full_name" example:"Jane Owner"`
	TenantID uint   `json:"tenant_id" example:"1"`
	IsActive bool   `json:"is_active" example:"true"`
}

type TenantResponse struct {
	ID        uint      `json:"id" example:"1"`
	Slug      string    `json:"slug" example:"acme-motors"`
	Name      string    `json:"name" example:"Acme Motors"`
	IsActive  bool      `json:"is_active" example:"true"`
	CreatedAt time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

type CarResponse struct {
	ID           uint      `json:"id" example:"1"`
	TenantID     uint      `json:"tenant_id" example:"1"`
	Title        string    `json:"title" example:"Civic EXL 2020"`
	Brand        string    `json:"brand" example:"Honda"`
	Model        string    `json:"model" example:"Civic"`
	Year         int       `json:"year" example:"2020"`
	Price        *float64  `json:"price" example:"98500"`
	PhotoURL     *string   `json:"photo_url"`
	Observations *string   `json:"observations"`
	Status       string    `json:"status" example:"available"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ClientResponse struct {
	ID                uint      `json:"id" example:"1"`
	TenantID          uint      `json:"tenant_id" example:"1"`
	Name              string    `json:"name" example:"John Buyer"`
	Phone             string    `json:"phone" example:"+55 11 99999-0000"`
	CPF               *string   `json:"cpf"`
	Email             *string   `json:"email"`
	NegotiationStatus string    `json:"negotiation_status" example:"interested"`
	Notes             *string   `json:"notes"`
	CarID             *uint     `json:"car_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type DocumentResponse struct {
	ID           uint    `json:"id" example:"1"`
	Name         string  `json:"name" example:"Vehicle title"`
	DocumentType string  `json:"document_type" example:"title"`
	FileURL      *string `json:"file_url"`
	Notes        *string `json:"notes"`
	IsRequired   bool    `json:"is_required"`
	IsCompleted  bool    `json:"is_completed"`
	CarID        uint    `json:"car_id" example:"1"`
}

type UploadResponse struct {
	Message    string `json:"message" example:"File uploaded successfully"`
	FileURL    string `json:"file_url"`
	DocumentID uint   `json:"document_id" example:"1"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Car deleted successfully"`
}

type CarEventType string

const (
	CarCreated CarEventType = "car.created"
	CarUpdated CarEventType = "car.updated"
	CarDeleted CarEventType = "car.deleted"
)

// CarEvent is pushed to inventory stream subscribers of the car's tenant
type CarEvent struct {
	Type     CarEventType `json:"type"`
	TenantID uint         `json:"tenant_id"`
	CarID    uint         `json:"car_id"`
	Car      *CarResponse `json:"car,omitempty"`
	At       time.Time    `json:"at"`
}
