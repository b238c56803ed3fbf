package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/bookstore"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`  // machine-readable error code
	Field string `json:"field,omitempty"` // offending field for validation errors
	ID    string `json:"id,omitempty"`    // offending id for not-found errors
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondStoreError maps store errors by kind: validation -> 400,
// not found -> 404, anything else -> 500.
func respondStoreError(c *gin.Context, err error, context string) {
	var sErr *bookstore.Error
	if !errors.As(err, &sErr) {
		respondInternalError(c, err, context)
		return
	}

	switch sErr.Kind {
	case bookstore.KindValidation:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: sErr.Message, Code: string(sErr.Kind), Field: sErr.Field})
	case bookstore.KindNotFound:
		c.JSON(http.StatusNotFound, ErrorResponse{Error: sErr.Message, Code: string(sErr.Kind), ID: sErr.ID})
	default:
		respondInternalError(c, err, context)
	}
}

// --- Success Response Helpers ---

// respondSuccess sends a 200 OK response with a message.
func respondSuccess(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message, Data: data})
}

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// --- Parameter Parsing ---

// parsePositiveQuery reads an optional positive integer query parameter.
// Returns fallback when absent, or responds with a 400 error and returns 0, false.
func parsePositiveQuery(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		respondBadRequest(c, "invalid "+name)
		return 0, false
	}
	return value, true
}
