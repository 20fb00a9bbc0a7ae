package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	store *repository.Store
	cfg   *config.Config
}

func NewAuthService(store *repository.Store, cfg *config.Config) *AuthService {
	return &AuthService{store: store, cfg: cfg}
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.store.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.generateTokenPair(ctx, s.store, user)
}

// Refresh rotates a refresh token: the presented one is revoked and a new
// pair is issued.
func (s *AuthService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	var resp *dto.AuthResponse
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		stored, err := tx.RefreshTokens.FindActive(ctx, tokenHash)
		if err != nil {
			return err
		}
		if stored == nil {
			return ErrInvalidToken
		}

		if time.Now().After(stored.ExpiresAt) {
			return ErrInvalidToken
		}
		if err := tx.RefreshTokens.Revoke(ctx, tokenHash); err != nil {
			return err
		}

		user, err := tx.Users.FindByID(ctx, stored.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrInvalidToken
		}

		resp, err = s.generateTokenPair(ctx, tx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *AuthService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	return s.store.RefreshTokens.Revoke(ctx, hashToken(req.RefreshToken))
}

func (s *AuthService) generateTokenPair(ctx context.Context, store *repository.Store, user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(ctx, store, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.cfg.JWTAccessExpiry.Seconds()),
		User:         user,
	}, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(ctx context.Context, store *repository.Store, user *models.User) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}

	record := models.RefreshToken{
		ID:        id,
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}
	if err := store.RefreshTokens.Create(ctx, &record); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
