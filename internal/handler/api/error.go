package api

import (
	"errors"
	"net/http"

	"agenda-espacos/internal/handler/httperr"
	"agenda-espacos/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithBackendError maps read-path failures onto the wire. The
// backend owns authorization, so its denials pass through as 401.
func abortWithBackendError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Authentication required", nil)
	case errors.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, errs.ErrBackendUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Reservation service unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
