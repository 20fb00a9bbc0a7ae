package database

import (
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var DefaultCategories = []struct {
	Name string
	Slug string
}{
	{"Eletrônicos", "eletronicos"},
	{"Smartphones", "smartphones"},
	{"Informática", "informatica"},
	{"Eletrodomésticos", "eletrodomesticos"},
	{"Moda", "moda"},
	{"Casa e Decoração", "casa-e-decoracao"},
	{"Esporte e Lazer", "esporte-e-lazer"},
	{"Livros", "livros"},
	{"Beleza", "beleza"},
	{"Brinquedos", "brinquedos"},
}

// SeedCategories inserts the default categories, skipping slugs that
// already exist. It is safe to run on every start.
func SeedCategories(db *gorm.DB) (int64, error) {
	categories := make([]models.Category, 0, len(DefaultCategories))
	for _, c := range DefaultCategories {
		id, err := uuid.NewV7()
		if err != nil {
			return 0, fmt.Errorf("failed to generate category id: %w", err)
		}
		categories = append(categories, models.Category{ID: id, Name: c.Name, Slug: c.Slug})
	}

	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&categories)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to seed categories: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		slog.Info("categories seeded", "inserted", result.RowsAffected)
	}
	return result.RowsAffected, nil
}
