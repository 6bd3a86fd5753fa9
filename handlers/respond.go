package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sogcms/content-api/internal/repository"
	"github.com/sogcms/content-api/pkg/logger"
	"github.com/sogcms/content-api/pkg/metrics"
)

// statusFor maps the repository error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	var invalidID *repository.InvalidIDError
	var notFound *repository.NotFoundError
	var duplicate *repository.DuplicateKeyError
	switch {
	case errors.As(err, &invalidID):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &duplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error response for a store operation and records the
// outcome. Store-layer failures are logged; their details stay server-side.
func fail(c *gin.Context, resource, op string, err error) {
	metrics.Requests.WithLabelValues(resource, op, "error").Inc()
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Errorf("%s %s: %v", resource, op, err)
		c.JSON(status, gin.H{"status": "error", "message": "something went wrong"})
		return
	}
	c.JSON(status, gin.H{"status": "fail", "message": err.Error()})
}

// badRequest rejects malformed input (query params, request body) before the
// store is involved.
func badRequest(c *gin.Context, resource, op string, err error) {
	metrics.Requests.WithLabelValues(resource, op, "error").Inc()
	c.JSON(http.StatusBadRequest, gin.H{"status": "fail", "message": err.Error()})
}

func ok(c *gin.Context, resource, op string, status int, body interface{}) {
	metrics.Requests.WithLabelValues(resource, op, "ok").Inc()
	if body == nil {
		c.Status(status)
		return
	}
	c.JSON(status, body)
}

// pageParams reads the limit/page query parameters (defaults 10 and 1).
func pageParams(c *gin.Context) (int64, int64, error) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		return 0, 0, errors.New("limit must be a positive integer")
	}
	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil || page < 1 {
		return 0, 0, errors.New("page must be a positive integer")
	}
	return limit, page, nil
}
