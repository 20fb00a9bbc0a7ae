package actor

import (
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/models"
	"github.com/google/uuid"
)

// OwnerKind discriminates what an address belongs to.
type OwnerKind string

const (
	OwnerUser   OwnerKind = "user"
	OwnerSeller OwnerKind = "seller"
)

// Owner is a tagged reference to a user or a seller.
type Owner struct {
	Kind OwnerKind
	ID   uuid.UUID
}

func UserOwner(id uuid.UUID) Owner {
	return Owner{Kind: OwnerUser, ID: id}
}

func SellerOwner(id uuid.UUID) Owner {
	return Owner{Kind: OwnerSeller, ID: id}
}

func (o Owner) Valid() bool {
	return (o.Kind == OwnerUser || o.Kind == OwnerSeller) && o.ID != uuid.Nil
}

// Actor is the authenticated caller of a request, rebuilt from the users
// table on every request.
type Actor struct {
	UserID   uuid.UUID
	Email    string
	Role     string
	SellerID *uuid.UUID
}

func FromUser(u *models.User) Actor {
	return Actor{
		UserID:   u.ID,
		Email:    u.Email,
		Role:     u.Role,
		SellerID: u.SellerID,
	}
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

func (a Actor) IsSeller() bool {
	return a.SellerID != nil && *a.SellerID != uuid.Nil
}

// CanAccessUser reports whether the actor may read or remove the given user.
func (a Actor) CanAccessUser(userID uuid.UUID) bool {
	return a.IsAdmin() || a.UserID == userID
}
