package response

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "rentnest/pkg/errors"
	"rentnest/pkg/logger"
)

type Response struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Message   string      `json:"message,omitempty"`
	Timestamp string      `json:"timestamp"`
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Response{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Error is the single error boundary for every handler. Known application
// errors keep their status and message; anything else degrades to a generic
// 500 with the detail logged server-side only.
func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			logger.Error("%s: %v", appErr.Message, appErr.Err)
			return errorJSON(c, http.StatusInternalServerError, "Server error")
		}
		return errorJSON(c, appErr.Status, appErr.Message)
	}

	logger.Error("unexpected error: %v", err)
	return errorJSON(c, http.StatusInternalServerError, "Server error")
}

func errorJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, Response{
		Success:   false,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	for _, err := range validationErr {
		field := strings.ToLower(err.Field())
		tag := err.Tag()
		param := err.Param()

		var message string
		switch tag {
		case "required":
			message = field + " is required"
		case "email":
			message = field + " must be a valid email address"
		case "oneof":
			message = field + " must be one of: " + param
		case "gt":
			message = field + " must be greater than " + param
		case "min":
			message = field + " must be at least " + param
		default:
			message = field + " is invalid"
		}

		return errorJSON(c, http.StatusBadRequest, message)
	}

	return errorJSON(c, http.StatusBadRequest, "Invalid input data")
}
