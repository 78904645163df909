package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/escoladigital/sge/internal/app/models/dto"
	"github.com/escoladigital/sge/internal/pkg/apperrors"
	"github.com/escoladigital/sge/internal/pkg/logger"
)

// statusByKind maps error kinds to HTTP statuses. Unexpected persistence
// failures surface as 400 with the raw message, matching the API's historical
// contract; only invariant violations are masked behind a 500.
var statusByKind = map[apperrors.Kind]int{
	apperrors.KindNotFound:     http.StatusNotFound,
	apperrors.KindValidation:   http.StatusBadRequest,
	apperrors.KindConflict:     http.StatusBadRequest,
	apperrors.KindUnauthorized: http.StatusUnauthorized,
	apperrors.KindInternal:     http.StatusBadRequest,
}

// HandleAPIError converts a service error into the HTTP response the client
// sees and logs what should not be exposed.
func HandleAPIError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)

	if kind == apperrors.KindInvariant {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Invariant violation")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "erro interno"})
		return
	}

	status, ok := statusByKind[kind]
	if !ok {
		status = http.StatusBadRequest
	}
	if kind == apperrors.KindInternal {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
	}

	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}
