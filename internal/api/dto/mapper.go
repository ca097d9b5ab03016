package dto

import (
	"github.com/kingrain94/dealer-api/internal/domain"
)

const TokenTypeBearer = "bearer"

func NewTokenResponse(token string) TokenResponse {
	return TokenResponse{AccessToken: token, TokenType: TokenTypeBearer}
}

func FromAccount(account *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:       account.ID,
		Email:    account.Email,
		FullName: account.FullName,
		TenantID: account.TenantID,
		IsActive: account.IsActive,
	}
}

func FromTenant(tenant *domain.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:        tenant.ID,
		Slug:      tenant.Slug,
		Name:      tenant.Name,
		IsActive:  tenant.IsActive,
		CreatedAt: tenant.CreatedAt,
		UpdatedAt: tenant.UpdatedAt,
	}
}

// ToCar builds a new car for tenantID; the tenant never comes from the request body
func (r *CreateCarRequest) ToCar(tenantID uint) *domain.Car {
	status := domain.CarStatus(r.Status)
	if status == "" {
		status = domain.CarStatusAvailable
	}
	return &domain.Car{
		TenantID:     tenantID,
		Title:        r.Title,
		Brand:        r.Brand,
		Model:        r.Model,
		Year:         r.Year,
		Price:        r.Price,
		PhotoURL:     r.PhotoURL,
		Observations: r.Observations,
		Status:       status,
	}
}

func (r *UpdateCarRequest) ApplyTo(car *domain.Car) {
	if r.Title != nil {
		car.Title = *r.Title
	}
	if r.Brand != nil {
		car.Brand = *r.Brand
	}
	if r.Model != nil {
		car.Model = *r.Model
	}
	if r.Year != nil {
		car.Year = *r.Year
	}
	r.Price.applyTo(&car.Price)
	r.PhotoURL.applyTo(&car.PhotoURL)
	r.Observations.applyTo(&car.Observations)
	if r.Status != nil {
		car.Status = domain.CarStatus(*r.Status)
	}
}

func FromCar(car *domain.Car) *CarResponse {
	return &CarResponse{
		ID:           car.ID,
		TenantID:     car.TenantID,
		Title:        car.Title,
		Brand:        car.Brand,
		Model:        car.Model,
		Year:         car.Year,
		Price:        car.Price,
		PhotoURL:     car.PhotoURL,
		Observations: car.Observations,
		Status:       string(car.Status),
		CreatedAt:    car.CreatedAt,
		UpdatedAt:    car.UpdatedAt,
	}
}

func FromCars(cars []domain.Car) []CarResponse {
	responses := make([]CarResponse, len(cars))
	for i := range cars {
		responses[i] = *FromCar(&cars[i])
	}
	return responses
}

func (r *CreateClientRequest) ToClient(tenantID uint) *domain.Client {
	status := domain.NegotiationStatus(r.NegotiationStatus)
	if status == "" {
		status = domain.NegotiationInterested
	}
	return &domain.Client{
		TenantID:          tenantID,
		Name:              r.Name,
		Phone:             r.Phone,
		CPF:               r.CPF,
		Email:             r.Email,
		NegotiationStatus: status,
		Notes:             r.Notes,
		CarID:             r.CarID,
	}
}

func (r *UpdateClientRequest) ApplyTo(client *domain.Client) {
	if r.Name != nil {
		client.Name = *r.Name
	}
	if r.Phone != nil {
		client.Phone = *r.Phone
	}
	r.CPF.applyTo(&client.CPF)
	r.Email.applyTo(&client.Email)
	if r.NegotiationStatus != nil {
		client.NegotiationStatus = domain.NegotiationStatus(*r.NegotiationStatus)
	}
	r.Notes.applyTo(&client.Notes)
	r.CarID.applyTo(&client.CarID)
}

func FromClient(client *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:                client.ID,
		TenantID:          client.TenantID,
		Name:              client.Name,
		Phone:             client.Phone,
		CPF:               client.CPF,
		Email:             client.Email,
		NegotiationStatus: string(client.NegotiationStatus),
		Notes:             client.Notes,
		CarID:             client.CarID,
		CreatedAt:         client.CreatedAt,
		UpdatedAt:         client.UpdatedAt,
	}
}

func FromClients(clients []domain.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = *FromClient(&clients[i])
	}
	return responses
}

func (r *CreateDocumentRequest) ToDocument() *domain.Document {
	return &domain.Document{
		CarID:        r.CarID,
		Name:         r.Name,
		DocumentType: r.DocumentType,
		Notes:        r.Notes,
		IsRequired:   r.IsRequired,
		IsCompleted:  r.IsCompleted,
	}
}

func (r *UpdateDocumentRequest) ApplyTo(document *domain.Document) {
	if r.Name != nil {
		document.Name = *r.Name
	}
	if r.DocumentType != nil {
		document.DocumentType = *r.DocumentType
	}
	r.Notes.applyTo(&document.Notes)
	if r.IsRequired != nil {
		document.IsRequired = *r.IsRequired
	}
	if r.IsCompleted != nil {
		document.IsCompleted = *r.IsCompleted
	}
	if r.CarID != nil {
		document.CarID = *r.CarID
	}
}

func FromDocument(document *domain.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:           document.ID,
		Name:         document.Name,
		DocumentType: document.DocumentType,
		FileURL:      document.FileURL,
		Notes:        document.Notes,
		IsRequired:   document.IsRequired,
		IsCompleted:  document.IsCompleted,
		CarID:        document.CarID,
	}
}

func FromDocuments(documents []domain.Document) []DocumentResponse {
	responses := make([]DocumentResponse, len(documents))
	for i := range documents {
		responses[i] = *FromDocument(&documents[i])
	}
	return responses
}
