package dto

import (
	"time"

	"sweet-shop/models"
)

type CreateSweetInput struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

// UpdateSweetInput distinguishes omitted fields (nil) from provided ones.
type UpdateSweetInput struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

type PurchaseInput struct {
	Quantity *int `json:"quantity"`
}

type RestockInput struct {
	Quantity *int `json:"quantity"`
}

type SweetResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func NewSweetResponse(sweet *models.Sweet) SweetResponse {
	return SweetResponse{
		ID:        sweet.ID,
		Name:      sweet.Name,
		Category:  sweet.Category,
		Price:     sweet.Price,
		Quantity:  sweet.Quantity,
		CreatedAt: sweet.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: sweet.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func NewSweetResponses(sweets []models.Sweet) []SweetResponse {
	responses := make([]SweetResponse, 0, len(sweets))
	for i := range sweets {
		responses = append(responses, NewSweetResponse(&sweets[i]))
	}
	return responses
}
