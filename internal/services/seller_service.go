package services

import (
	"context"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/actor"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/validation"
	"github.com/google/uuid"
)

type SellerService struct {
	store *repository.Store
}

func NewSellerService(store *repository.Store) *SellerService {
	return &SellerService{store: store}
}

// Create registers a store for userID. The seller row and the user's seller
// link are written in one transaction.
func (s *SellerService) Create(ctx context.Context, req *dto.CreateSellerRequest, userID uuid.UUID) (*models.Seller, error) {
	owned, err := s.store.Sellers.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if owned != nil {
		return nil, ErrStoreAlreadyOwned
	}

	cnpj := validation.NormalizeCNPJ(req.CNPJ)
	byCNPJ, err := s.store.Sellers.FindByCNPJ(ctx, cnpj)
	if err != nil {
		return nil, err
	}
	if byCNPJ != nil {
		return nil, ErrCNPJTaken
	}

	user, err := s.store.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.IsSeller {
		return nil, ErrAlreadySeller
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	seller := models.Seller{
		ID:                    id,
		UserID:                userID,
		CNPJ:                  cnpj,
		StoreName:             req.StoreName,
		CompanyName:           req.CompanyName,
		TaxRegime:             req.TaxRegime,
		StateRegistration:     req.StateRegistration,
		MunicipalRegistration: req.MunicipalRegistration,
		BusinessEmail:         req.BusinessEmail,
		PhoneNumber:           req.PhoneNumber,
		Website:               req.Website,
	}

	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Sellers.Create(ctx, &seller); err != nil {
			return conflictOnDuplicate(err, ErrCNPJTaken, "create seller")
		}
		if err := tx.Users.SetSellerLink(ctx, userID, models.RoleSeller, &seller.ID); err != nil {
			return fmt.Errorf("failed to link user to seller: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.FindOne(ctx, id)
}

func (s *SellerService) FindAll(ctx context.Context) ([]models.Seller, error) {
	return s.store.Sellers.FindAll(ctx)
}

func (s *SellerService) FindOne(ctx context.Context, id uuid.UUID) (*models.Seller, error) {
	seller, err := s.store.Sellers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, ErrSellerNotFound
	}
	return seller, nil
}

func (s *SellerService) Update(ctx context.Context, req *dto.UpdateSellerRequest, id uuid.UUID, a actor.Actor) (*models.Seller, error) {
	seller, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if seller.UserID != a.UserID {
		return nil, ErrNotSellerOwner
	}

	if req.CNPJ != nil {
		cnpj := validation.NormalizeCNPJ(*req.CNPJ)
		req.CNPJ = &cnpj
	}
	if req.CNPJ != nil && *req.CNPJ != validation.NormalizeCNPJ(seller.CNPJ) {
		other, err := s.store.Sellers.FindByCNPJ(ctx, *req.CNPJ)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, ErrCNPJTaken
		}
	}

	if err := s.store.Sellers.Update(ctx, id, sellerUpdates(req)); err != nil {
		return nil, conflictOnDuplicate(err, ErrCNPJTaken, "update seller")
	}

	return s.FindOne(ctx, id)
}

// Delete removes a store that has no products left, together with its
// addresses, and demotes the owning user back to a plain user.
func (s *SellerService) Delete(ctx context.Context, id uuid.UUID, a actor.Actor) error {
	seller, err := s.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if seller.UserID != a.UserID {
		return ErrNotSellerOwner
	}

	products, err := s.store.Products.CountBySeller(ctx, id)
	if err != nil {
		return err
	}
	if products > 0 {
		return ErrSellerHasProducts
	}

	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Addresses.DeleteAll(ctx, actor.SellerOwner(id)); err != nil {
			return err
		}
		if err := tx.Sellers.Delete(ctx, id); err != nil {
			return err
		}
		return tx.Users.SetSellerLink(ctx, seller.UserID, models.RoleUser, nil)
	})
}

func sellerUpdates(req *dto.UpdateSellerRequest) map[string]interface{} {
	fields := map[string]interface{}{}
	if req.StoreName != nil {
		fields["store_name"] = *req.StoreName
	}
	if req.CNPJ != nil {
		fields["cnpj"] = *req.CNPJ
	}
	if req.CompanyName != nil {
		fields["company_name"] = *req.CompanyName
	}
	if req.TaxRegime != nil {
		fields["tax_regime"] = *req.TaxRegime
	}
	if req.StateRegistration != nil {
		fields["state_registration"] = *req.StateRegistration
	}
	if req.MunicipalRegistration != nil {
		fields["municipal_registration"] = *req.MunicipalRegistration
	}
	if req.BusinessEmail != nil {
		fields["business_email"] = *req.BusinessEmail
	}
	if req.PhoneNumber != nil {
		fields["phone_number"] = *req.PhoneNumber
	}
	if req.Website != nil {
		fields["website"] = *req.Website
	}
	return fields
}
