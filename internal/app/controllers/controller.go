// Package controllers binds the HTTP surface to the services: request
// decoding, id parsing and status-code selection live here and nowhere else.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/escoladigital/sge/internal/app/models/dto"
)

// parseID reads the ':id' path parameter. On a non-numeric id it writes the
// 400 response itself and reports false.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "id inválido"})
		return 0, false
	}
	return id, true
}
