package models

import (
	"time"

	"github.com/google/uuid"
)

// Product prices are integer cents.
type Product struct {
	ID                 uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	SellerID           uuid.UUID         `gorm:"type:uuid;not null;index" json:"seller_id"`
	Name               string            `gorm:"size:100;not null" json:"name"`
	Brand              string            `gorm:"size:30;not null" json:"brand"`
	Description        string            `gorm:"type:text;not null" json:"description"`
	Price              int64             `gorm:"not null;index" json:"price"`
	Quantity           int               `gorm:"not null" json:"quantity"`
	IsFeatured         bool              `gorm:"not null" json:"is_featured"`
	DiscountPercentage *int              `json:"discount_percentage"`
	DiscountEndDate    *time.Time        `json:"discount_end_date"`
	CreatedAt          time.Time         `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
	Seller             *Seller           `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Categories         []ProductCategory `gorm:"foreignKey:ProductID" json:"categories"`
	Images             []ProductImage    `gorm:"foreignKey:ProductID" json:"images"`
}

// ProductCategory links a product to a category.
type ProductCategory struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_category_pair" json:"product_id"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_category_pair;index" json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (ProductCategory) TableName() string {
	return "product_categories"
}

type ProductImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	URL       string    `gorm:"size:500;not null" json:"url"`
	Position  int       `gorm:"not null" json:"position"`
	CreatedAt time.Time `json:"created_at"`
}
