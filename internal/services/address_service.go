package services

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/actor"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/repository"
	"github.com/google/uuid"
)

// AddressService manages addresses of users and sellers. Each owner has at
// most one default address; a second one is rejected rather than swapped.
type AddressService struct {
	store *repository.Store
}

func NewAddressService(store *repository.Store) *AddressService {
	return &AddressService{store: store}
}

func (s *AddressService) ListForOwner(ctx context.Context, owner actor.Owner) ([]models.Address, error) {
	if !owner.Valid() {
		return nil, ErrInvalidOwner
	}
	return s.store.Addresses.FindAll(ctx, owner)
}

func (s *AddressService) GetForOwner(ctx context.Context, id uuid.UUID, owner actor.Owner) (*models.Address, error) {
	if !owner.Valid() {
		return nil, ErrInvalidOwner
	}
	address, err := s.store.Addresses.FindOne(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}
	return address, nil
}

func (s *AddressService) Create(ctx context.Context, req *dto.CreateAddressRequest, owner actor.Owner) (*models.Address, error) {
	if !owner.Valid() {
		return nil, ErrInvalidOwner
	}

	if req.IsDefault {
		if err := s.ensureNoOtherDefault(ctx, owner, uuid.Nil); err != nil {
			return nil, err
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	address := models.Address{
		ID:           id,
		OwnerKind:    string(owner.Kind),
		OwnerID:      owner.ID,
		Landlord:     req.Landlord,
		PhoneNumber:  req.PhoneNumber,
		Label:        req.Label,
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		IsDefault:    req.IsDefault,
	}
	if err := s.store.Addresses.Create(ctx, &address); err != nil {
		return nil, conflictOnDuplicate(err, ErrDuplicateDefault, "create address")
	}

	return &address, nil
}

func (s *AddressService) Update(ctx context.Context, req *dto.UpdateAddressRequest, id uuid.UUID, owner actor.Owner) (*models.Address, error) {
	if _, err := s.GetForOwner(ctx, id, owner); err != nil {
		return nil, err
	}

	if req.IsDefault != nil && *req.IsDefault {
		if err := s.ensureNoOtherDefault(ctx, owner, id); err != nil {
			return nil, err
		}
	}

	if err := s.store.Addresses.Update(ctx, id, addressUpdates(req)); err != nil {
		return nil, conflictOnDuplicate(err, ErrDuplicateDefault, "update address")
	}

	return s.GetForOwner(ctx, id, owner)
}

func (s *AddressService) Delete(ctx context.Context, id uuid.UUID, owner actor.Owner) error {
	if _, err := s.GetForOwner(ctx, id, owner); err != nil {
		return err
	}
	return s.store.Addresses.Delete(ctx, id)
}

func (s *AddressService) ensureNoOtherDefault(ctx context.Context, owner actor.Owner, exclude uuid.UUID) error {
	count, err := s.store.Addresses.CountDefaults(ctx, owner, exclude)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateDefault
	}
	return nil
}

func addressUpdates(req *dto.UpdateAddressRequest) map[string]interface{} {
	fields := map[string]interface{}{}
	if req.Landlord != nil {
		fields["landlord"] = *req.Landlord
	}
	if req.PhoneNumber != nil {
		fields["phone_number"] = *req.PhoneNumber
	}
	if req.Label != nil {
		fields["label"] = *req.Label
	}
	if req.Street != nil {
		fields["street"] = *req.Street
	}
	if req.Number != nil {
		fields["number"] = *req.Number
	}
	if req.Complement != nil {
		fields["complement"] = *req.Complement
	}
	if req.Neighborhood != nil {
		fields["neighborhood"] = *req.Neighborhood
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.State != nil {
		fields["state"] = *req.State
	}
	if req.ZipCode != nil {
		fields["zip_code"] = *req.ZipCode
	}
	if req.IsDefault != nil {
		fields["is_default"] = *req.IsDefault
	}
	return fields
}
