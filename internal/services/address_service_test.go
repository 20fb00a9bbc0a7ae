package services

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/actor"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addressRequest(isDefault bool) *dto.CreateAddressRequest {
	return &dto.CreateAddressRequest{
		Landlord:     "Maria Souza",
		PhoneNumber:  "+55 11 99999-0000",
		Label:        "Casa",
		Street:       "Rua das Flores",
		Number:       42,
		Neighborhood: "Centro",
		City:         "São Paulo",
		State:        "SP",
		ZipCode:      "01001-000",
		IsDefault:    isDefault,
	}
}

func TestAddressSingleDefaultPerOwner(t *testing.T) {
	store := newTestStore(t)
	svc := NewAddressService(store)
	ctx := context.Background()
	owner := actor.UserOwner(mustUser(t, store, "maria").ID)

	_, err := svc.Create(ctx, addressRequest(true), owner)
	require.NoError(t, err)

	_, err = svc.Create(ctx, addressRequest(true), owner)
	assert.ErrorIs(t, err, ErrDuplicateDefault)
	assert.Equal(t, ErrConflict, Kind(err))

	_, err = svc.Create(ctx, addressRequest(false), owner)
	require.NoError(t, err)

	other := actor.UserOwner(mustUser(t, store, "joao").ID)
	_, err = svc.Create(ctx, addressRequest(true), other)
	assert.NoError(t, err)

	addresses, err := svc.ListForOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, addresses, 2)
}

func TestAddressOwnersAreIsolated(t *testing.T) {
	store := newTestStore(t)
	svc := NewAddressService(store)
	ctx := context.Background()
	user, seller := mustSeller(t, store, "maria", "11.222.333/0001-81")

	address, err := svc.Create(ctx, addressRequest(true), actor.UserOwner(user.ID))
	require.NoError(t, err)

	_, err = svc.GetForOwner(ctx, address.ID, actor.SellerOwner(seller.ID))
	assert.ErrorIs(t, err, ErrAddressNotFound)

	_, err = svc.GetForOwner(ctx, address.ID, actor.UserOwner(uuid.New()))
	assert.ErrorIs(t, err, ErrAddressNotFound)

	// A seller can have its own default alongside the user's.
	_, err = svc.Create(ctx, addressRequest(true), actor.SellerOwner(seller.ID))
	assert.NoError(t, err)
}

func TestAddressUpdate(t *testing.T) {
	store := newTestStore(t)
	svc := NewAddressService(store)
	ctx := context.Background()
	owner := actor.UserOwner(mustUser(t, store, "maria").ID)

	home, err := svc.Create(ctx, addressRequest(true), owner)
	require.NoError(t, err)
	work, err := svc.Create(ctx, addressRequest(false), owner)
	require.NoError(t, err)

	_, err = svc.Update(ctx, &dto.UpdateAddressRequest{IsDefault: boolPtr(true)}, work.ID, owner)
	assert.ErrorIs(t, err, ErrDuplicateDefault)

	updated, err := svc.Update(ctx, &dto.UpdateAddressRequest{
		IsDefault: boolPtr(true),
		Label:     strPtr("Casa nova"),
	}, home.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, "Casa nova", updated.Label)
	assert.True(t, updated.IsDefault)
	assert.Equal(t, "Rua das Flores", updated.Street)

	_, err = svc.Update(ctx, &dto.UpdateAddressRequest{}, home.ID, actor.UserOwner(uuid.New()))
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestAddressDelete(t *testing.T) {
	store := newTestStore(t)
	svc := NewAddressService(store)
	ctx := context.Background()
	owner := actor.UserOwner(mustUser(t, store, "maria").ID)

	address, err := svc.Create(ctx, addressRequest(true), owner)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, address.ID, actor.UserOwner(uuid.New())), ErrAddressNotFound)
	require.NoError(t, svc.Delete(ctx, address.ID, owner))

	_, err = svc.GetForOwner(ctx, address.ID, owner)
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestAddressRejectsInvalidOwner(t *testing.T) {
	svc := NewAddressService(newTestStore(t))

	_, err := svc.ListForOwner(context.Background(), actor.Owner{Kind: "store", ID: uuid.New()})
	assert.ErrorIs(t, err, ErrInvalidOwner)
	assert.Equal(t, ErrBadInput, Kind(err))
}
