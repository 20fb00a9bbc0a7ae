package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorMapsKinds(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		code    string
		message string
	}{
		{services.ErrProductNotFound, http.StatusNotFound, CodeNotFound, "product not found"},
		{services.ErrCNPJTaken, http.StatusConflict, CodeConflict, "cnpj already in use by another store"},
		{services.ErrNotProductOwner, http.StatusForbidden, CodeForbidden, "you are not allowed to modify this product"},
		{services.ErrInvalidOrderBy, http.StatusBadRequest, CodeBadInput, "order_by must be price or createdAt"},
		{services.ErrInvalidCredentials, http.StatusUnauthorized, CodeUnauthorized, "invalid email or password"},
		{fmt.Errorf("wrapped: %w", services.ErrDuplicateDefault), http.StatusConflict, CodeConflict, "wrapped: cannot have more than one default address"},
		{errors.New("pq: connection reset"), http.StatusInternalServerError, CodeInternal, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.code+"/"+tc.message, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return handleError(c, tc.err) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.True(t, body.Error)
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, tc.message, body.Message)
		})
	}
}

func TestErrorHandlerHidesServerErrors(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("secret detail") })
	app.Get("/gone", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusNotFound, "Nothing here") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal server error", body.Message)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/gone", nil), -1)
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, CodeNotFound, body.Code)
	assert.Equal(t, "Nothing here", body.Message)
}

func TestQueryParsing(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		filter, err := productFilter(c)
		if err != nil {
			return badRequest(c, err.Error())
		}
		return c.JSON(filter)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/?limit=5&offset=10&min_price=100&order_by=price&order=desc", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var filter dto.ProductFilter
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&filter))
	resp.Body.Close()
	require.NotNil(t, filter.Limit)
	assert.Equal(t, 5, *filter.Limit)
	require.NotNil(t, filter.Offset)
	assert.Equal(t, 10, *filter.Offset)
	require.NotNil(t, filter.MinPrice)
	assert.Equal(t, int64(100), *filter.MinPrice)
	assert.Nil(t, filter.MaxPrice)
	assert.Equal(t, "price", filter.OrderBy)

	for _, q := range []string{"?limit=x", "?category_id=nope", "?min_price=-1"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/"+q, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}
