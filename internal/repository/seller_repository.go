package repository

import (
	"context"
	"errors"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SellerRepository struct {
	db *gorm.DB
}

func (r *SellerRepository) FindAll(ctx context.Context) ([]models.Seller, error) {
	var sellers []models.Seller
	err := r.db.WithContext(ctx).Preload("User").Order("created_at ASC").Find(&sellers).Error
	return sellers, err
}

// FindByID returns nil, nil when no seller matches.
func (r *SellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Seller, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *SellerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Seller, error) {
	return r.first(ctx, "user_id = ?", userID)
}

func (r *SellerRepository) FindByCNPJ(ctx context.Context, cnpj string) (*models.Seller, error) {
	return r.first(ctx, "cnpj = ?", cnpj)
}

func (r *SellerRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Seller{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *SellerRepository) Create(ctx context.Context, seller *models.Seller) error {
	return r.db.WithContext(ctx).Omit("User").Create(seller).Error
}

func (r *SellerRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Seller{}).Where("id = ?", id).Updates(fields).Error
}

func (r *SellerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Seller{}).Error
}

func (r *SellerRepository) first(ctx context.Context, query string, args ...interface{}) (*models.Seller, error) {
	var seller models.Seller
	err := r.db.WithContext(ctx).Preload("User").Where(query, args...).First(&seller).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &seller, nil
}
