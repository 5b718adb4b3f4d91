// Package handler exposes the HTTP handlers of the EventSphere API.  Every
// error body has the shape {"message": "..."}.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// requestTimeout bounds every store call made by a handler.
const requestTimeout = 5 * time.Second

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func withTimeout(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), requestTimeout)
}

func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"message": msg})
}

// bindValid binds the JSON body into dst and runs its validate tags.  On
// failure it returns the client-facing reason.
func bindValid(c echo.Context, dst any) (string, bool) {
	if err := c.Bind(dst); err != nil {
		return "Invalid request body", false
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fieldMessage(verrs[0]), false
		}
		return "Invalid request body", false
	}
	return "", true
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "gte":
		return field + " must not be negative"
	}
	return field + " is invalid"
}

// internalError logs err and answers 500 without leaking details.
func internalError(c echo.Context, log *slog.Logger, op string, err error) error {
	log.ErrorContext(c.Request().Context(), op+" failed",
		"err", err,
		"request_id", c.Response().Header().Get(echo.HeaderXRequestID))
	return message(c, http.StatusInternalServerError, "Internal server error")
}
