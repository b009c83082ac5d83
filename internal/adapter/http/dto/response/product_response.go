package response

import (
	"time"

	"pix_direct_sales/internal/domain/entities"
)

type ProductResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price" example:"49.90"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		UserID:      p.SellerID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
	}
}
