package models

import (
	"time"

	"github.com/google/uuid"
)

// Seller is the store profile of exactly one user.
type Seller struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CNPJ                  string    `gorm:"column:cnpj;size:18;not null;uniqueIndex" json:"cnpj"`
	StoreName             string    `gorm:"size:100;not null" json:"store_name"`
	CompanyName           string    `gorm:"size:150;not null" json:"company_name"`
	TaxRegime             string    `gorm:"size:50;not null" json:"tax_regime"`
	StateRegistration     string    `gorm:"size:50;not null" json:"state_registration"`
	MunicipalRegistration *string   `gorm:"size:50" json:"municipal_registration"`
	BusinessEmail         *string   `gorm:"size:255" json:"business_email"`
	PhoneNumber           *string   `gorm:"size:30" json:"phone_number"`
	Website               *string   `gorm:"size:255" json:"website"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
	User                  *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
