package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the entity repositories over one GORM handle. A Store built
// inside Transaction shares the transaction with every repository it holds.
type Store struct {
	db *gorm.DB

	Users         *UserRepository
	Sellers       *SellerRepository
	Addresses     *AddressRepository
	Categories    *CategoryRepository
	Products      *ProductRepository
	RefreshTokens *RefreshTokenRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:            db,
		Users:         &UserRepository{db: db},
		Sellers:       &SellerRepository{db: db},
		Addresses:     &AddressRepository{db: db},
		Categories:    &CategoryRepository{db: db},
		Products:      &ProductRepository{db: db},
		RefreshTokens: &RefreshTokenRepository{db: db},
	}
}

// Transaction runs fn atomically. Every write made through the Store passed
// to fn commits or rolls back together.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

func (s *Store) DB() *gorm.DB {
	return s.db
}
