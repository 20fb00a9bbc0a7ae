package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
)

// newTestStore returns a Store over a migrated, seeded in-memory database.
// The pool holds a single connection so every query sees the same database.
func newTestStore(t *testing.T) *repository.Store {
	t.Helper()

	db, err := database.Open(sqlite.Open(":memory:"))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	_, err = database.SeedCategories(db)
	require.NoError(t, err)

	return repository.NewStore(db)
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
		BcryptCost:       bcrypt.MinCost,
	}
}

func mustUser(t *testing.T, store *repository.Store, name string) *models.User {
	t.Helper()
	user, err := NewUserService(store, testConfig()).Create(context.Background(), &dto.CreateUserRequest{
		Username: name,
		Email:    name + "@olympia.test",
		Password: "Sup3r$ecret",
	})
	require.NoError(t, err)
	return user
}

func sellerRequest(cnpj string) *dto.CreateSellerRequest {
	return &dto.CreateSellerRequest{
		StoreName:         "Loja Centro",
		CNPJ:              cnpj,
		CompanyName:       "Loja Centro LTDA",
		TaxRegime:         "Simples Nacional",
		StateRegistration: "123456789",
	}
}

func mustSeller(t *testing.T, store *repository.Store, name, cnpj string) (*models.User, *models.Seller) {
	t.Helper()
	user := mustUser(t, store, name)
	seller, err := NewSellerService(store).Create(context.Background(), sellerRequest(cnpj), user.ID)
	require.NoError(t, err)
	return user, seller
}

func categoryIDs(t *testing.T, store *repository.Store, n int) []uuid.UUID {
	t.Helper()
	categories, err := store.Categories.FindAll(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(categories), n)

	ids := make([]uuid.UUID, 0, n)
	for _, c := range categories[:n] {
		ids = append(ids, c.ID)
	}
	return ids
}

// insertProduct writes a product row directly so tests control timestamps.
func insertProduct(t *testing.T, store *repository.Store, sellerID uuid.UUID, name string, price int64, createdAt time.Time) *models.Product {
	t.Helper()
	product := models.Product{
		ID:          uuid.Must(uuid.NewV7()),
		SellerID:    sellerID,
		Name:        name,
		Brand:       "Olympia",
		Description: fmt.Sprintf("%s, a product used by the test suite", name),
		Price:       price,
		Quantity:    1,
		CreatedAt:   createdAt.UTC(),
		UpdatedAt:   createdAt.UTC(),
	}
	require.NoError(t, store.Products.Create(context.Background(), &product))
	return &product
}

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }
