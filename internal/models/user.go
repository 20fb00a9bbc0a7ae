package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser   = "user"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

type User struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email           string     `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Username        string     `gorm:"not null;size:20;uniqueIndex" json:"username"`
	Password        string     `gorm:"not null" json:"-"`
	FirstName       *string    `gorm:"size:100" json:"first_name"`
	LastName        *string    `gorm:"size:100" json:"last_name"`
	Avatar          *string    `gorm:"size:255" json:"avatar"`
	Phone           *string    `gorm:"size:30" json:"phone"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	Role            string     `gorm:"size:20;not null" json:"role"`
	IsSeller        bool       `gorm:"not null" json:"is_seller"`
	SellerID        *uuid.UUID `gorm:"type:uuid" json:"seller_id"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
