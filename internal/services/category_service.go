package services

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/repository"
)

type CategoryService struct {
	store *repository.Store
}

func NewCategoryService(store *repository.Store) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) FindAll(ctx context.Context) ([]models.Category, error) {
	return s.store.Categories.FindAll(ctx)
}
