package request

import "github.com/shopspring/decimal"

type SellerConfigRequest struct {
	AccessToken string `json:"access_token" example:"APP_USR-0000000000000000-000000-00000000000000000000000000000000-000000000"`
}

// CreateProductRequest accepts price either as a JSON number or a string.
type CreateProductRequest struct {
	Name        string          `json:"name" example:"Curso de fotografia"`
	Description string          `json:"description" example:"12 aulas gravadas"`
	Price       decimal.Decimal `json:"price" swaggertype:"number" example:"49.90"`
}

type SaleStatusRequest struct {
	Status string `json:"status" example:"approved"`
}
