package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orbisedu/academy_mgmt_app/internal/apperrors"
	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	"github.com/orbisedu/academy_mgmt_app/internal/core/services"
	"github.com/orbisedu/academy_mgmt_app/internal/middleware"
)

// respondError maps service-layer errors onto HTTP statuses. Unknown errors
// become an opaque 500; their detail stays in the logs.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, services.ErrStakeholderSumMismatch),
		errors.Is(err, services.ErrNotSharedExpense),
		errors.Is(err, services.ErrScheduleOrder),
		errors.Is(err, services.ErrDateOrder):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// respondBindError reports a request-body binding failure.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}

// parseDateRange reads optional from/to query params, accepting RFC 3339 or a
// bare date. From is inclusive, to is exclusive; either side may be absent.
func parseDateRange(c *gin.Context) (domain.DateRange, error) {
	var rng domain.DateRange
	parse := func(raw string) (time.Time, error) {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t, nil
		}
		return time.Parse("2006-01-02", raw)
	}
	if raw := c.Query("from"); raw != "" {
		t, err := parse(raw)
		if err != nil {
			return rng, fmt.Errorf("%w: invalid 'from' date %q", apperrors.ErrValidation, raw)
		}
		rng.From = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := parse(raw)
		if err != nil {
			return rng, fmt.Errorf("%w: invalid 'to' date %q", apperrors.ErrValidation, raw)
		}
		rng.To = t
	}
	return rng, nil
}
