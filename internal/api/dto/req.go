package dto

import "io"

type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email" example:"owner@acme.com"`
	Password   string `json:"password" binding:"required" example:"s3cret!"`
	FullName   string `json:"full_name" binding:"required" example:"Jane Owner"`
	TenantName string `json:"tenant_name" binding:"required" example:"Acme Motors"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"owner@acme.com"`
	Password string `json:"password" binding:"required" example:"s3cret!"`
}

type UpdateTenantRequest struct {
	Name string `json:"name" binding:"required" example:"Acme Motors Ltda"`
}

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 100
)

// Pagination is bound from the skip and limit query parameters
type Pagination struct {
	Skip  int `form:"skip" binding:"min=0"`
	Limit int `form:"limit" binding:"min=0"`
}

// Bounds returns the offset and limit to query with, applying the default and the cap
func (p Pagination) Bounds() (offset, limit int) {
	limit = p.Limit
	if limit == 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return p.Skip, limit
}

type CreateCarRequest struct {
	Title        string   `json:"title" binding:"required" example:"Civic EXL 2020"`
	Brand        string   `json:"brand" binding:"required" example:"Honda"`
	Model        string   `json:"model" binding:"required" example:"Civic"`
	Year         int      `json:"year" binding:"required,min=1900,max=2100" example:"2020"`
	Price        *float64 `json:"price" binding:"omitempty,min=0" example:"98500"`
	PhotoURL     *string  `json:"photo_url"`
	Observations *string  `json:"observations"`
	Status       string   `json:"status" binding:"omitempty,oneof=available sold reserved" example:"available"`
}

// UpdateCarRequest applies only the fields present in the body
type UpdateCarRequest struct {
	Title        *string           `json:"title" binding:"omitempty,min=1"`
	Brand        *string           `json:"brand" binding:"omitempty,min=1"`
	Model        *string           `json:"model" binding:"omitempty,min=1"`
	Year         *int              `json:"year" binding:"omitempty,min=1900,max=2100"`
	Price        Optional[float64] `json:"price,omitzero" binding:"omitempty,min=0" swaggertype:"number"`
	PhotoURL     Optional[string]  `json:"photo_url,omitzero" swaggertype:"string"`
	Observations Optional[string]  `json:"observations,omitzero" swaggertype:"string"`
	Status       *string           `json:"status" binding:"omitempty,oneof=available sold reserved"`
}

type ListCarsQuery struct {
	Pagination
	Status string `form:"status" binding:"omitempty,oneof=available sold reserved"`
}

type CreateClientRequest struct {
	Name              string  `json:"name" binding:"required" example:"John Buyer"`
	Phone             string  `json:"phone" binding:"required" example:"+55 11 99999-0000"`
	CPF               *string `json:"cpf" example:"123.456.789-00"`
	Email             *string `json:"email" binding:"omitempty,email"`
	NegotiationStatus string  `json:"negotiation_status" binding:"omitempty,oneof=interested negotiating closed lost" example:"interested"`
	Notes             *string `json:"notes"`
	CarID             *uint   `json:"car_id" example:"1"`
}

type UpdateClientRequest struct {
	Name              *string          `json:"name" binding:"omitempty,min=1"`
	Phone             *string          `json:"phone" binding:"omitempty,min=1"`
	CPF               Optional[string] `json:"cpf,omitzero" swaggertype:"string"`
	Email             Optional[string] `json:"email,omitzero" binding:"omitempty,email" swaggertype:"string"`
	NegotiationStatus *string          `json:"negotiation_status" binding:"omitempty,oneof=interested negotiating closed lost"`
	Notes             Optional[string] `json:"notes,omitzero" swaggertype:"string"`
	CarID             Optional[uint]   `json:"car_id,omitzero" swaggertype:"integer"`
}

type ListClientsQuery struct {
	Pagination
	Status        string `form:"status" binding:"omitempty,oneof=interested negotiating closed lost"`
	CarID         *uint  `form:"car_id"`
	CreatedAfter  string `form:"created_after"`
	CreatedBefore string `form:"created_before"`
}

// CreateDocumentRequest has no file_url, files are only attached through the upload endpoints
type CreateDocumentRequest struct {
	Name         string  `json:"name" binding:"required" example:"Vehicle title"`
	DocumentType string  `json:"document_type" binding:"required" example:"title"`
	Notes        *string `json:"notes"`
	IsRequired   bool    `json:"is_required"`
	IsCompleted  bool    `json:"is_completed"`
	CarID        uint    `json:"car_id" binding:"required" example:"1"`
}

type UpdateDocumentRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1"`
	DocumentType *string          `json:"document_type" binding:"omitempty,min=1"`
	Notes        Optional[string] `json:"notes,omitzero" swaggertype:"string"`
	IsRequired   *bool            `json:"is_required"`
	IsCompleted  *bool            `json:"is_completed"`
	CarID        *uint            `json:"car_id"`
}

type ListDocumentsQuery struct {
	Pagination
	CarID        *uint  `form:"car_id"`
	DocumentType string `form:"document_type"`
}

// CreateDocumentWithFileRequest is bound from the multipart form fields
type CreateDocumentWithFileRequest struct {
	Name         string `form:"name" binding:"required"`
	DocumentType string `form:"document_type" binding:"required"`
	Notes        string `form:"notes"`
	IsRequired   bool   `form:"is_required"`
}

// FileUpload is an uploaded file as handed to the document service
type FileUpload struct {
	Filename    string
	Size        int64
	ContentType string
	Content     io.Reader
}
