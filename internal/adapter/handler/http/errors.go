package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	domainerrors "github.com/buildloghq/buildlog-backend/internal/domain/errors"
)

// respondError maps domain errors onto the HTTP status contract. Anything
// unrecognized is a 500 with no internal detail leaked to the client.
func respondError(c echo.Context, logger *zap.Logger, err error) error {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Validation failed",
			"code":  "VALIDATION_ERROR",
		})
	}

	switch {
	case errors.Is(err, domainerrors.ErrMalformedCode):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid share code format",
			"code":  "MALFORMED_CODE",
		})
	case errors.Is(err, domainerrors.ErrLinkNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Share link not found or expired",
			"code":  "NOT_FOUND_OR_EXPIRED",
		})
	case errors.Is(err, domainerrors.ErrPermissionDenied):
		return c.JSON(http.StatusForbidden, echo.Map{
			"error": "This share link does not allow that action",
			"code":  "PERMISSION_DENIED",
		})
	case errors.Is(err, domainerrors.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{
			"error": "You do not have access to this resource",
			"code":  "FORBIDDEN",
		})
	case errors.Is(err, domainerrors.ErrAppNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "App not found",
			"code":  "APP_NOT_FOUND",
		})
	case errors.Is(err, domainerrors.ErrTaskNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Task not found",
			"code":  "TASK_NOT_FOUND",
		})
	case errors.Is(err, domainerrors.ErrTaskAlreadyCompleted):
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Task is already completed",
			"code":  "ALREADY_COMPLETED",
		})
	case errors.Is(err, domainerrors.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "Invalid task status transition",
			"code":  "INVALID_TRANSITION",
		})
	case errors.Is(err, domainerrors.ErrSlugTaken):
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "An app with this name already exists",
			"code":  "SLUG_TAKEN",
		})
	case errors.Is(err, domainerrors.ErrInvalidCredentials), errors.Is(err, domainerrors.ErrUserNotFound):
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Invalid credentials",
			"code":  "INVALID_CREDENTIALS",
		})
	default:
		logger.Error("Unhandled error",
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Internal server error",
			"code":  "INTERNAL_ERROR",
		})
	}
}
