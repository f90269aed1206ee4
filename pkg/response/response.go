// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"errors"
	"net/http"

	"github.com/coastalops/launchtours/internal/listview"
	"github.com/coastalops/launchtours/internal/repository"
	"github.com/coastalops/launchtours/internal/service"
	"github.com/gin-gonic/gin"
)

// ErrorPayload is the canonical error envelope returned by the API.
type ErrorPayload struct {
	Error       string               `json:"error"`
	Message     string               `json:"message,omitempty"`
	FieldErrors []service.FieldError `json:"field_errors,omitempty"`
}

// ListPayload is the envelope every list endpoint returns: one page of
// records plus the metadata pagination controls need. Data and count mirror
// the upstream list contract; stale and empty drive presentation.
type ListPayload struct {
	Data     any  `json:"data"`
	Count    int  `json:"count"`
	Page     int  `json:"page"`
	PageSize int  `json:"pageSize"`
	Empty    bool `json:"empty"`
	Stale    bool `json:"stale"`
}

// MapError converts a domain / infrastructure error into an HTTP status and payload.
// Extend here as new domain error categories emerge.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Error: "ok"}
	}

	if errors.Is(err, service.ErrInvalidInput) {
		return http.StatusBadRequest, ErrorPayload{
			Error:       "invalid_input",
			Message:     "one or more fields are invalid",
			FieldErrors: service.FieldErrors(err),
		}
	}

	switch {
	case errors.Is(err, service.ErrCapacityExceeded):
		return http.StatusConflict, ErrorPayload{Error: "capacity_exceeded", Message: "not enough seats left on this trip"}
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, ErrorPayload{Error: "not_found"}
	case errors.Is(err, repository.ErrAlreadyExists):
		return http.StatusConflict, ErrorPayload{Error: "already_exists"}
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict, ErrorPayload{Error: "conflict"}
	default:
		return http.StatusInternalServerError, ErrorPayload{Error: "internal_error"}
	}
}

// WriteError writes an error response and aborts the context.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	c.AbortWithStatusJSON(status, payload)
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// WriteView renders a list-view result. The view may carry stale data after a
// failed refresh; it still renders 200 so the table never goes blank.
func WriteView[T any](c *gin.Context, v listview.View[T]) {
	c.JSON(http.StatusOK, ListPayload{
		Data:     v.Items,
		Count:    v.Total,
		Page:     v.Query.Page,
		PageSize: v.Query.PageSize,
		Empty:    v.Empty,
		Stale:    v.Stale,
	})
}
