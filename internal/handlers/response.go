package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/olympia-backend/internal/validation"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeForbidden    = "forbidden"
	CodeBadInput     = "bad_input"
	CodeUnauthorized = "unauthorized"
	CodeInternal     = "internal"
)

func success(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(dto.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Error:   true,
		Code:    code,
		Message: message,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return fail(c, fiber.StatusBadRequest, CodeBadInput, message)
}

// handleError renders a service error. Errors without a business kind are
// logged, reported to Sentry and rendered without detail.
func handleError(c *fiber.Ctx, err error) error {
	switch services.Kind(err) {
	case services.ErrNotFound:
		return fail(c, fiber.StatusNotFound, CodeNotFound, err.Error())
	case services.ErrConflict:
		return fail(c, fiber.StatusConflict, CodeConflict, err.Error())
	case services.ErrForbidden:
		return fail(c, fiber.StatusForbidden, CodeForbidden, err.Error())
	case services.ErrBadInput:
		return badRequest(c, err.Error())
	case services.ErrUnauthorized:
		return fail(c, fiber.StatusUnauthorized, CodeUnauthorized, err.Error())
	}

	slog.Error("request failed",
		"method", c.Method(),
		"path", c.Path(),
		"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
		"error", err,
	)
	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
	return fail(c, fiber.StatusInternalServerError, CodeInternal, "Internal server error")
}

// parseBody decodes the JSON body into req and runs its validation rules.
func parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return errors.New("invalid request body")
	}
	return validation.Struct(req)
}

func paramUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, errors.New("invalid " + name)
	}
	return id, nil
}

func queryInt(c *fiber.Ctx, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New(name + " must be an integer")
	}
	return &n, nil
}

func queryInt64(c *fiber.Ctx, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errors.New(name + " must be an integer")
	}
	return &n, nil
}

func queryUUID(c *fiber.Ctx, name string) (*uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.New("invalid " + name)
	}
	return &id, nil
}

func queryPagination(c *fiber.Ctx) (dto.Pagination, error) {
	offset, err := queryInt(c, "offset")
	if err != nil {
		return dto.Pagination{}, err
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return dto.Pagination{}, err
	}
	return dto.Pagination{Offset: offset, Limit: limit}, nil
}

// ErrorHandler renders errors that escape a handler, such as unknown routes
// or recovered panics, with the standard error envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= fiber.StatusInternalServerError {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		return fail(c, code, CodeInternal, "Internal server error")
	}

	return fail(c, code, codeForStatus(code), message)
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return CodeNotFound
	case fiber.StatusConflict:
		return CodeConflict
	case fiber.StatusForbidden:
		return CodeForbidden
	case fiber.StatusUnauthorized:
		return CodeUnauthorized
	default:
		return CodeBadInput
	}
}
