package api

import (
	"errors"
	"log/slog"
	"net/http"

	"room-reservation/internal/domain/availability"
	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/handler/middleware"
	"room-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const msgCannotPerform = "This action cannot be performed"

// abortWithError picks the status from the error's category. Lifecycle
// refusals and ownership failures share one generic message.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, errs.ErrConflict):
		var detail any
		if kind, ok := availability.KindOf(err); ok {
			detail = gin.H{"conflict": kind}
		}
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), detail)
	case errs.Is(err, errs.ErrNotPending), errs.Is(err, errs.ErrNotCancellable):
		httperr.AbortWithError(c, http.StatusConflict, err, msgCannotPerform, nil)
	case errs.Is(err, errs.ErrNotOwner), errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, msgCannotPerform, nil)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errs.Is(err, errs.ErrDuplicate), errs.Is(err, errs.ErrInUse):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	case errs.Is(err, errs.ErrUnauthenticated):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, err.Error(), nil)
	default:
		if errs.Is(err, errs.ErrIntegrity) {
			slog.ErrorContext(c.Request.Context(), "integrity violation surfaced to client",
				"error", err,
				"request_id", middleware.GetRequestID(c),
				"path", c.Request.URL.Path,
				"stack", errs.ExtractStackLines(err, 12),
			)
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// abortWithBindError reports validator failures as a field to tag map.
func abortWithBindError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve))
		for _, fe := range ve {
			fields[fe.Field()] = fe.Tag()
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", gin.H{"fields": fields})
		return
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
}

func abortUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errs.NewKind("user not authenticated", errs.ErrUnauthenticated), "User not authenticated", nil)
}
