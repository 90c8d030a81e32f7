package server

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"photogram/internal/middleware"
	"photogram/internal/models"
)

// parseID extracts a positive numeric route parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid " + name + " parameter.")
	}
	return uint(id), nil
}

// respondError translates a service error into an HTTP response. Unknown
// errors are logged and hidden behind a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		middleware.Logger.ErrorContext(c.UserContext(), "unhandled error", "error", err)
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}

	status := fiber.StatusInternalServerError
	switch appErr.Code {
	case models.CodeNotFound:
		status = fiber.StatusNotFound
	case models.CodeValidation:
		status = fiber.StatusBadRequest
	case models.CodeUnauthenticated, models.CodeInvalidCredential:
		status = fiber.StatusUnauthorized
	case models.CodeForbidden:
		status = fiber.StatusForbidden
	case models.CodeConflict:
		status = fiber.StatusConflict
	}
	return models.RespondWithError(c, status, appErr)
}

// viewer returns the request's viewer, anonymous when no middleware set one.
func viewer(c *fiber.Ctx) models.Viewer {
	if v, ok := c.Locals("viewer").(models.Viewer); ok {
		return v
	}
	return models.Anonymous()
}
