package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/models"
	"github.com/google/uuid"
)

// CreateProductRequest prices are integer cents (19999 = R$199,99).
type CreateProductRequest struct {
	Name               string      `json:"name" validate:"required,min=3,max=100"`
	Brand              string      `json:"brand" validate:"required,max=30"`
	Description        string      `json:"description" validate:"required,min=30,max=600"`
	Price              int64       `json:"price" validate:"required,min=1"`
	Quantity           int         `json:"quantity" validate:"min=0"`
	IsFeatured         bool        `json:"is_featured"`
	DiscountPercentage *int        `json:"discount_percentage" validate:"omitempty,min=0,max=100"`
	DiscountEndDate    *time.Time  `json:"discount_end_date"`
	Categories         []uuid.UUID `json:"categories" validate:"required,min=1"`
}

// UpdateProductRequest is a partial update. A nil Categories leaves the
// links untouched; a non-nil one replaces them, an empty list clears them.
type UpdateProductRequest struct {
	Name               *string      `json:"name" validate:"omitempty,min=3,max=100"`
	Brand              *string      `json:"brand" validate:"omitempty,max=30"`
	Description        *string      `json:"description" validate:"omitempty,min=30,max=600"`
	Price              *int64       `json:"price" validate:"omitempty,min=1"`
	Quantity           *int         `json:"quantity" validate:"omitempty,min=0"`
	IsFeatured         *bool        `json:"is_featured"`
	DiscountPercentage *int         `json:"discount_percentage" validate:"omitempty,min=0,max=100"`
	DiscountEndDate    *time.Time   `json:"discount_end_date"`
	Categories         *[]uuid.UUID `json:"categories"`
}

type Pagination struct {
	Offset *int
	Limit  *int
}

type ProductFilter struct {
	Pagination
	Q          string
	CategoryID *uuid.UUID
	MinPrice   *int64
	MaxPrice   *int64
	OrderBy    string
	Order      string
}

type ProductPage struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
	Offset   int              `json:"offset"`
	Limit    int              `json:"limit"`
}
