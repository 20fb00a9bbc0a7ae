package models

import (
	"time"

	"github.com/google/uuid"
)

// Address belongs to a user or a seller, discriminated by OwnerKind.
// At most one address per owner may be default (partial unique index).
type Address struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerKind    string    `gorm:"size:10;not null;index:idx_addresses_owner;uniqueIndex:idx_addresses_owner_default,where:is_default = true" json:"owner_kind"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index:idx_addresses_owner;uniqueIndex:idx_addresses_owner_default,where:is_default = true" json:"owner_id"`
	Landlord     string    `gorm:"size:100;not null" json:"landlord"`
	PhoneNumber  string    `gorm:"size:30;not null" json:"phone_number"`
	Label        string    `gorm:"size:50;not null" json:"label"`
	Street       string    `gorm:"size:100;not null" json:"street"`
	Number       int       `gorm:"not null" json:"number"`
	Complement   *string   `gorm:"size:100" json:"complement"`
	Neighborhood string    `gorm:"size:100;not null" json:"neighborhood"`
	City         string    `gorm:"size:100;not null" json:"city"`
	State        string    `gorm:"size:2;not null" json:"state"`
	ZipCode      string    `gorm:"size:9;not null" json:"zip_code"`
	IsDefault    bool      `gorm:"not null" json:"is_default"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
