package repository

import (
	"context"
	"errors"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/actor"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AddressRepository struct {
	db *gorm.DB
}

func (r *AddressRepository) FindAll(ctx context.Context, owner actor.Owner) ([]models.Address, error) {
	var addresses []models.Address
	err := r.db.WithContext(ctx).Scopes(actor.ForOwner(owner)).
		Order("created_at ASC").
		Find(&addresses).Error
	return addresses, err
}

// FindOne returns nil, nil unless the address exists and belongs to owner.
func (r *AddressRepository) FindOne(ctx context.Context, id uuid.UUID, owner actor.Owner) (*models.Address, error) {
	var address models.Address
	err := r.db.WithContext(ctx).Scopes(actor.ForOwner(owner)).Where("id = ?", id).First(&address).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &address, nil
}

// CountDefaults counts the owner's default addresses, ignoring exclude when
// it is not uuid.Nil.
func (r *AddressRepository) CountDefaults(ctx context.Context, owner actor.Owner, exclude uuid.UUID) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Address{}).
		Scopes(actor.ForOwner(owner)).
		Where("is_default = ?", true)
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *AddressRepository) Create(ctx context.Context, address *models.Address) error {
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *AddressRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Address{}).Where("id = ?", id).Updates(fields).Error
}

func (r *AddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Address{}).Error
}

func (r *AddressRepository) DeleteAll(ctx context.Context, owner actor.Owner) error {
	return r.db.WithContext(ctx).Scopes(actor.ForOwner(owner)).Delete(&models.Address{}).Error
}
