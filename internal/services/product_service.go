package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/repository"
	"github.com/google/uuid"
)

const (
	OrderByPrice     = "price"
	OrderByCreatedAt = "createdAt"
)

type ProductService struct {
	store *repository.Store
	now   func() time.Time
}

func NewProductService(store *repository.Store) *ProductService {
	return &ProductService{store: store, now: time.Now}
}

// Create inserts a product for sellerID and links it to the requested
// categories in one transaction.
func (s *ProductService) Create(ctx context.Context, req *dto.CreateProductRequest, sellerID uuid.UUID) (*models.Product, error) {
	if err := s.ensureSeller(ctx, sellerID); err != nil {
		return nil, err
	}

	categoryIDs := uniqueIDs(req.Categories)
	if err := s.ensureCategories(ctx, categoryIDs); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	product := models.Product{
		ID:                 id,
		SellerID:           sellerID,
		Name:               req.Name,
		Brand:              req.Brand,
		Description:        req.Description,
		Price:              req.Price,
		Quantity:           req.Quantity,
		IsFeatured:         req.IsFeatured,
		DiscountPercentage: discountPercentage(req.DiscountPercentage),
		DiscountEndDate:    discountEndDate(req.DiscountEndDate),
	}

	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Products.Create(ctx, &product); err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}
		return tx.Products.AttachCategories(ctx, id, categoryIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.FindOne(ctx, id)
}

func (s *ProductService) FindAll(ctx context.Context, filter dto.ProductFilter) (*dto.ProductPage, error) {
	q := repository.ProductQuery{
		Search:     filter.Q,
		MinPrice:   filter.MinPrice,
		MaxPrice:   filter.MaxPrice,
		CategoryID: filter.CategoryID,
		Offset:     normalizeOffset(filter.Offset),
		Limit:      normalizeLimit(filter.Limit, DefaultPageLimit),
	}

	switch filter.Order {
	case "", "asc", "desc":
	default:
		return nil, ErrInvalidOrder
	}

	switch filter.OrderBy {
	case "", OrderByCreatedAt:
		q.OrderBy = "created_at"
		q.Descending = true
	case OrderByPrice:
		q.OrderBy = "price"
		q.Descending = filter.Order == "desc"
	default:
		return nil, ErrInvalidOrderBy
	}

	return s.page(ctx, q)
}

// FindBySeller lists one seller's products with the default pagination and
// no custom ordering.
func (s *ProductService) FindBySeller(ctx context.Context, sellerID uuid.UUID, p dto.Pagination) (*dto.ProductPage, error) {
	if err := s.ensureSeller(ctx, sellerID); err != nil {
		return nil, err
	}

	return s.page(ctx, repository.ProductQuery{
		SellerID: &sellerID,
		Offset:   normalizeOffset(p.Offset),
		Limit:    normalizeLimit(p.Limit, DefaultPageLimit),
	})
}

func (s *ProductService) FindNew(ctx context.Context, limit *int) ([]models.Product, error) {
	return s.store.Products.FindNew(ctx, normalizeLimit(limit, DefaultNewLimit))
}

// FindFeatured returns products flagged as featured plus products whose
// discount ends today or later.
func (s *ProductService) FindFeatured(ctx context.Context, limit *int) ([]models.Product, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return s.store.Products.FindFeatured(ctx, normalizeLimit(limit, DefaultFeaturedLimit), today)
}

func (s *ProductService) FindOne(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.store.Products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Update applies a partial update. When Categories is set, the scalar
// update and the replacement of every category link commit together.
func (s *ProductService) Update(ctx context.Context, req *dto.UpdateProductRequest, id, sellerID uuid.UUID) (*models.Product, error) {
	if err := s.ensureOwnership(ctx, id, sellerID); err != nil {
		return nil, err
	}

	fields := productUpdates(req)

	if req.Categories == nil {
		if err := s.store.Products.Update(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
		return s.FindOne(ctx, id)
	}

	categoryIDs := uniqueIDs(*req.Categories)
	if len(categoryIDs) > 0 {
		if err := s.ensureCategories(ctx, categoryIDs); err != nil {
			return nil, err
		}
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Products.Update(ctx, id, fields); err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		if err := tx.Products.DetachAllCategories(ctx, id); err != nil {
			return err
		}
		return tx.Products.AttachCategories(ctx, id, categoryIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.FindOne(ctx, id)
}

func (s *ProductService) Delete(ctx context.Context, id, sellerID uuid.UUID) error {
	if err := s.ensureOwnership(ctx, id, sellerID); err != nil {
		return err
	}
	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		return tx.Products.Delete(ctx, id)
	})
}

func (s *ProductService) page(ctx context.Context, q repository.ProductQuery) (*dto.ProductPage, error) {
	products, total, err := s.store.Products.FindPage(ctx, q)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return &dto.ProductPage{
		Products: products,
		Total:    total,
		Offset:   q.Offset,
		Limit:    q.Limit,
	}, nil
}

func (s *ProductService) ensureSeller(ctx context.Context, sellerID uuid.UUID) error {
	exists, err := s.store.Sellers.Exists(ctx, sellerID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrSellerNotFound
	}
	return nil
}

// ensureOwnership checks, in order, that the seller exists, that the
// product exists and that the seller owns it.
func (s *ProductService) ensureOwnership(ctx context.Context, id, sellerID uuid.UUID) error {
	if err := s.ensureSeller(ctx, sellerID); err != nil {
		return err
	}

	exists, err := s.store.Products.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrProductNotFound
	}

	owned, err := s.store.Products.IsOwnedBy(ctx, id, sellerID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrNotProductOwner
	}
	return nil
}

// ensureCategories fails unless ids is non-empty and every id names an
// existing category. ids must be free of duplicates.
func (s *ProductService) ensureCategories(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return ErrCategoryNotFound
	}
	count, err := s.store.Categories.CountExisting(ctx, ids)
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return ErrCategoryNotFound
	}
	return nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func discountPercentage(p *int) *int {
	if p == nil || *p == 0 {
		return nil
	}
	return p
}

func discountEndDate(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	utc := t.UTC()
	return &utc
}

func productUpdates(req *dto.UpdateProductRequest) map[string]interface{} {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Brand != nil {
		fields["brand"] = *req.Brand
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Quantity != nil {
		fields["quantity"] = *req.Quantity
	}
	if req.IsFeatured != nil {
		fields["is_featured"] = *req.IsFeatured
	}
	if req.DiscountPercentage != nil {
		if p := discountPercentage(req.DiscountPercentage); p != nil {
			fields["discount_percentage"] = *p
		} else {
			fields["discount_percentage"] = nil
		}
	}
	if req.DiscountEndDate != nil {
		if t := discountEndDate(req.DiscountEndDate); t != nil {
			fields["discount_end_date"] = *t
		} else {
			fields["discount_end_date"] = nil
		}
	}
	return fields
}
