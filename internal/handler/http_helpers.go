package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON envelope for every non-2xx response.
type ErrorResponse struct {
	Message   string `json:"message"`
	Status    int    `json:"status"`
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"`
	Stack     string `json:"stack,omitempty"`
}

func newErrorResponse(status int, path, message string) ErrorResponse {
	return ErrorResponse{
		Message:   message,
		Status:    status,
		Path:      path,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, newErrorResponse(status, c.Request.URL.Path, message))
}

// writeEnvelope emits the error envelope outside a gin context, for
// middleware operating on the raw ResponseWriter.
func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(newErrorResponse(status, r.URL.Path, message))
}

// NoRoute answers unmatched paths: API paths get the JSON envelope,
// everything else a bare 404.
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			respondError(c, http.StatusNotFound, "API endpoint not found")
			return
		}
		c.Status(http.StatusNotFound)
	}
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}
