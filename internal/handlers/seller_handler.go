package handlers

import (
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/actor"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SellerHandler struct {
	sellerService  *services.SellerService
	productService *services.ProductService
}

func NewSellerHandler(sellerService *services.SellerService, productService *services.ProductService) *SellerHandler {
	return &SellerHandler{sellerService: sellerService, productService: productService}
}

func (h *SellerHandler) Create(c *fiber.Ctx) error {
	a, err := actor.Get(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, CodeUnauthorized, "Unauthorized")
	}

	var req dto.CreateSellerRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	seller, err := h.sellerService.Create(c.UserContext(), &req, a.UserID)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusCreated, "Seller created", seller)
}

func (h *SellerHandler) List(c *fiber.Ctx) error {
	sellers, err := h.sellerService.FindAll(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Sellers found", sellers)
}

func (h *SellerHandler) Get(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	seller, err := h.sellerService.FindOne(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Seller found", seller)
}

func (h *SellerHandler) Products(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	page, err := queryPagination(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	products, err := h.productService.FindBySeller(c.UserContext(), id, page)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Products found", products)
}

func (h *SellerHandler) Update(c *fiber.Ctx) error {
	a, err := actor.Get(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, CodeUnauthorized, "Unauthorized")
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.UpdateSellerRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	seller, err := h.sellerService.Update(c.UserContext(), &req, id, a)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Seller updated", seller)
}

func (h *SellerHandler) Delete(c *fiber.Ctx) error {
	a, err := actor.Get(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, CodeUnauthorized, "Unauthorized")
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.sellerService.Delete(c.UserContext(), id, a); err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Seller deleted", nil)
}
