package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/actor"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// AddressHandler serves the address routes of one owner kind. ownerOf
// resolves the owner from the authenticated actor.
type AddressHandler struct {
	addressService *services.AddressService
	ownerOf        func(a actor.Actor) (actor.Owner, error)
}

func NewUserAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
		ownerOf: func(a actor.Actor) (actor.Owner, error) {
			return actor.UserOwner(a.UserID), nil
		},
	}
}

func NewSellerAddressHandler(addressService *services.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
		ownerOf: func(a actor.Actor) (actor.Owner, error) {
			if !a.IsSeller() {
				return actor.Owner{}, services.ErrActorNotSeller
			}
			return actor.SellerOwner(*a.SellerID), nil
		},
	}
}

func (h *AddressHandler) owner(c *fiber.Ctx) (actor.Owner, error) {
	a, err := actor.Get(c)
	if err != nil {
		return actor.Owner{}, err
	}
	return h.ownerOf(a)
}

func (h *AddressHandler) List(c *fiber.Ctx) error {
	owner, err := h.owner(c)
	if err != nil {
		return ownerError(c, err)
	}

	addresses, err := h.addressService.ListForOwner(c.UserContext(), owner)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Addresses found", addresses)
}

func (h *AddressHandler) Get(c *fiber.Ctx) error {
	owner, err := h.owner(c)
	if err != nil {
		return ownerError(c, err)
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	address, err := h.addressService.GetForOwner(c.UserContext(), id, owner)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Address found", address)
}

func (h *AddressHandler) Create(c *fiber.Ctx) error {
	owner, err := h.owner(c)
	if err != nil {
		return ownerError(c, err)
	}

	var req dto.CreateAddressRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	address, err := h.addressService.Create(c.UserContext(), &req, owner)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusCreated, "Address created", address)
}

func (h *AddressHandler) Update(c *fiber.Ctx) error {
	owner, err := h.owner(c)
	if err != nil {
		return ownerError(c, err)
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.UpdateAddressRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	address, err := h.addressService.Update(c.UserContext(), &req, id, owner)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Address updated", address)
}

func (h *AddressHandler) Delete(c *fiber.Ctx) error {
	owner, err := h.owner(c)
	if err != nil {
		return ownerError(c, err)
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.addressService.Delete(c.UserContext(), id, owner); err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Address deleted", nil)
}

func ownerError(c *fiber.Ctx, err error) error {
	if errors.Is(err, actor.ErrNoActor) {
		return fail(c, fiber.StatusUnauthorized, CodeUnauthorized, "Unauthorized")
	}
	return handleError(c, err)
}
