package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds. Every business failure returned by a service wraps exactly
// one of these, so callers can branch with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrBadInput     = errors.New("bad input")
	ErrUnauthorized = errors.New("unauthorized")
)

var (
	ErrUserNotFound       = kindError(ErrNotFound, "user not found")
	ErrEmailTaken         = kindError(ErrConflict, "email already registered")
	ErrUsernameTaken      = kindError(ErrConflict, "username already taken")
	ErrUserOwnsStore      = kindError(ErrConflict, "user still owns a store")
	ErrInvalidCredentials = kindError(ErrUnauthorized, "invalid email or password")
	ErrInvalidToken       = kindError(ErrUnauthorized, "invalid or expired refresh token")

	ErrSellerNotFound    = kindError(ErrNotFound, "seller not found")
	ErrStoreAlreadyOwned = kindError(ErrConflict, "user already owns a store")
	ErrCNPJTaken         = kindError(ErrConflict, "cnpj already in use by another store")
	ErrAlreadySeller     = kindError(ErrConflict, "user is already registered as a seller")
	ErrSellerHasProducts = kindError(ErrConflict, "store still has products")
	ErrNotSellerOwner    = kindError(ErrForbidden, "you do not own this store")
	ErrActorNotSeller    = kindError(ErrForbidden, "a seller account is required")
	ErrAddressNotFound   = kindError(ErrNotFound, "address not found")
	ErrDuplicateDefault  = kindError(ErrConflict, "cannot have more than one default address")
	ErrInvalidOwner      = kindError(ErrBadInput, "invalid address owner")
	ErrProductNotFound   = kindError(ErrNotFound, "product not found")
	ErrCategoryNotFound  = kindError(ErrNotFound, "some category does not exist")
	ErrNotProductOwner   = kindError(ErrForbidden, "you are not allowed to modify this product")
	ErrInvalidOrderBy    = kindError(ErrBadInput, "order_by must be price or createdAt")
	ErrInvalidOrder      = kindError(ErrBadInput, "order must be asc or desc")
)

type kindErr struct {
	kind error
	msg  string
}

func kindError(kind error, msg string) error {
	return &kindErr{kind: kind, msg: msg}
}

func (e *kindErr) Error() string { return e.msg }

func (e *kindErr) Unwrap() error { return e.kind }

// Kind returns the kind sentinel wrapped by err, or nil for errors that
// carry no business meaning.
func Kind(err error) error {
	for _, k := range []error{ErrNotFound, ErrConflict, ErrForbidden, ErrBadInput, ErrUnauthorized} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// conflictOnDuplicate maps a unique-key violation raised by the store to
// the given conflict error. Other errors are wrapped unchanged.
func conflictOnDuplicate(err error, conflict error, action string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return conflict
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
