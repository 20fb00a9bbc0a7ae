package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/actor"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	store *repository.Store
	cfg   *config.Config
}

func NewUserService(store *repository.Store, cfg *config.Config) *UserService {
	return &UserService{store: store, cfg: cfg}
}

func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	taken, err := s.store.Users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	taken, err = s.store.Users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:       id,
		Email:    req.Email,
		Username: req.Username,
		Password: string(hash),
		Role:     models.RoleUser,
	}
	if err := s.store.Users.Create(ctx, &user); err != nil {
		return nil, s.createConflict(ctx, err, req)
	}

	return &user, nil
}

// createConflict maps a failed insert to the unique field it collided on.
func (s *UserService) createConflict(ctx context.Context, err error, req *dto.CreateUserRequest) error {
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("failed to create user: %w", err)
	}
	taken, lookupErr := s.store.Users.ExistsByUsername(ctx, req.Username)
	if lookupErr == nil && taken {
		if emailTaken, _ := s.store.Users.ExistsByEmail(ctx, req.Email); !emailTaken {
			return ErrUsernameTaken
		}
	}
	return ErrEmailTaken
}

func (s *UserService) FindAll(ctx context.Context) ([]models.User, error) {
	return s.store.Users.FindAll(ctx)
}

func (s *UserService) FindOne(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.store.Users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Delete removes a user together with its addresses and refresh tokens.
// Users that still own a store must delete it first.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	user, err := s.FindOne(ctx, id)
	if err != nil {
		return err
	}
	if user.IsSeller {
		return ErrUserOwnsStore
	}

	return s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Addresses.DeleteAll(ctx, actor.UserOwner(id)); err != nil {
			return err
		}
		if err := tx.RefreshTokens.DeleteForUser(ctx, id); err != nil {
			return err
		}
		return tx.Users.Delete(ctx, id)
	})
}
