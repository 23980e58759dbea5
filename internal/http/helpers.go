package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/livrariapp/livraria-server/internal/services"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: message})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondServiceError translates service error kinds to status codes.
// This is the only place that mapping lives: validation failures become
// 400, missing targets become 404, everything else is a 500.
func respondServiceError(c *gin.Context, err error, context string) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		respondBadRequest(c, validationErr.Message)
		return
	}
	var notFoundErr *services.NotFoundError
	if errors.As(err, &notFoundErr) {
		respondNotFound(c, notFoundErr.Message)
		return
	}
	respondInternalError(c, err, context)
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL parameters.
// Returns the parsed ID or responds with a 400 error and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// requireDevicePair extracts the deviceId/googleBooksId query pair.
// Responds with a 400 error and returns false when either is missing.
func requireDevicePair(c *gin.Context) (string, string, bool) {
	deviceID := c.Query("deviceId")
	googleBooksID := c.Query("googleBooksId")
	if deviceID == "" || googleBooksID == "" {
		respondBadRequest(c, "deviceId e googleBooksId são obrigatórios")
		return "", "", false
	}
	return deviceID, googleBooksID, true
}
