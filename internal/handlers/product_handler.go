package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/actor"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles GET /products?q=&min_price=&max_price=&category_id=&order_by=&order=&offset=&limit=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter, err := productFilter(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	page, err := h.productService.FindAll(c.UserContext(), filter)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Products found", page)
}

func (h *ProductHandler) New(c *fiber.Ctx) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return badRequest(c, err.Error())
	}

	products, err := h.productService.FindNew(c.UserContext(), limit)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Products found", products)
}

func (h *ProductHandler) Featured(c *fiber.Ctx) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return badRequest(c, err.Error())
	}

	products, err := h.productService.FindFeatured(c.UserContext(), limit)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Products found", products)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	product, err := h.productService.FindOne(c.UserContext(), id)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Product found", product)
}

// Mine lists the products of the authenticated seller.
func (h *ProductHandler) Mine(c *fiber.Ctx) error {
	sellerID, err := actorSellerID(c)
	if err != nil {
		return ownerError(c, err)
	}
	page, err := queryPagination(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	products, err := h.productService.FindBySeller(c.UserContext(), sellerID, page)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Products found", products)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	sellerID, err := actorSellerID(c)
	if err != nil {
		return ownerError(c, err)
	}

	var req dto.CreateProductRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	product, err := h.productService.Create(c.UserContext(), &req, sellerID)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusCreated, "Product created", product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	sellerID, err := actorSellerID(c)
	if err != nil {
		return ownerError(c, err)
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req dto.UpdateProductRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	product, err := h.productService.Update(c.UserContext(), &req, id, sellerID)
	if err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Product updated", product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	sellerID, err := actorSellerID(c)
	if err != nil {
		return ownerError(c, err)
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.productService.Delete(c.UserContext(), id, sellerID); err != nil {
		return handleError(c, err)
	}
	return success(c, fiber.StatusOK, "Product deleted", nil)
}

func actorSellerID(c *fiber.Ctx) (uuid.UUID, error) {
	a, err := actor.Get(c)
	if err != nil {
		return uuid.Nil, err
	}
	if !a.IsSeller() {
		return uuid.Nil, services.ErrActorNotSeller
	}
	return *a.SellerID, nil
}

func productFilter(c *fiber.Ctx) (dto.ProductFilter, error) {
	page, err := queryPagination(c)
	if err != nil {
		return dto.ProductFilter{}, err
	}
	minPrice, err := queryInt64(c, "min_price")
	if err != nil {
		return dto.ProductFilter{}, err
	}
	maxPrice, err := queryInt64(c, "max_price")
	if err != nil {
		return dto.ProductFilter{}, err
	}
	categoryID, err := queryUUID(c, "category_id")
	if err != nil {
		return dto.ProductFilter{}, err
	}
	if (minPrice != nil && *minPrice < 0) || (maxPrice != nil && *maxPrice < 0) {
		return dto.ProductFilter{}, errors.New("prices cannot be negative")
	}

	return dto.ProductFilter{
		Pagination: page,
		Q:          c.Query("q"),
		CategoryID: categoryID,
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		OrderBy:    c.Query("order_by"),
		Order:      c.Query("order"),
	}, nil
}
