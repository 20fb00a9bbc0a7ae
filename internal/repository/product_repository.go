package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository struct {
	db *gorm.DB
}

// ProductQuery is a resolved product listing request. Zero-valued filters
// are ignored; Limit and Offset are applied as given.
type ProductQuery struct {
	Search     string
	MinPrice   *int64
	MaxPrice   *int64
	CategoryID *uuid.UUID
	SellerID   *uuid.UUID

	OrderBy    string
	Descending bool

	Offset int
	Limit  int
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Seller").
		Preload("Categories.Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
}

func (r *ProductRepository) filtered(ctx context.Context, q ProductQuery) *gorm.DB {
	db := r.db.WithContext(ctx).Model(&models.Product{})

	if q.Search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(q.Search)) + "%"
		db = db.Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\')`, pattern, pattern)
	}
	if q.MinPrice != nil {
		db = db.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		db = db.Where("price <= ?", *q.MaxPrice)
	}
	if q.CategoryID != nil {
		links := r.db.WithContext(ctx).Model(&models.ProductCategory{}).
			Select("product_id").
			Where("category_id = ?", *q.CategoryID)
		db = db.Where("id IN (?)", links)
	}
	if q.SellerID != nil {
		db = db.Where("seller_id = ?", *q.SellerID)
	}
	return db
}

// FindPage returns one page of matching products and the total number of
// matches ignoring pagination.
func (r *ProductRepository) FindPage(ctx context.Context, q ProductQuery) ([]models.Product, int64, error) {
	var total int64
	if err := r.filtered(ctx, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db := r.filtered(ctx, q).Scopes(withRelations)
	if q.OrderBy != "" {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: q.OrderBy}, Desc: q.Descending})
	}

	var products []models.Product
	err := db.Order("id ASC").Offset(q.Offset).Limit(q.Limit).Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepository) FindNew(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).Scopes(withRelations).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

// FindFeatured returns products flagged as featured or carrying a discount
// that is still active at activeFrom.
func (r *ProductRepository) FindFeatured(ctx context.Context, limit int, activeFrom time.Time) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).Scopes(withRelations).
		Where("is_featured = ? OR (discount_percentage IS NOT NULL AND discount_end_date >= ?)", true, activeFrom).
		Order("updated_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

// FindByID returns nil, nil when no product matches.
func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Scopes(withRelations).Where("id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ProductRepository) IsOwnedBy(ctx context.Context, id, sellerID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND seller_id = ?", id, sellerID).
		Count(&count).Error
	return count > 0, err
}

func (r *ProductRepository) CountBySeller(ctx context.Context, sellerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Product{}).Where("seller_id = ?", sellerID).Count(&count).Error
	return count, err
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error
}

// AttachCategories links the product to each category. Links that already
// exist are skipped.
func (r *ProductRepository) AttachCategories(ctx context.Context, productID uuid.UUID, categoryIDs []uuid.UUID) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	links := make([]models.ProductCategory, 0, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		links = append(links, models.ProductCategory{ID: id, ProductID: productID, CategoryID: categoryID})
	}

	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&links).Error
}

func (r *ProductRepository) DetachAllCategories(ctx context.Context, productID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.ProductCategory{}).Error
}

func (r *ProductRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes the product with its category links and images. Call it
// inside Store.Transaction.
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("product_id = ?", id).Delete(&models.ProductCategory{}).Error; err != nil {
		return err
	}
	if err := db.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&models.Product{}).Error
}
