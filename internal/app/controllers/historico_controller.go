package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/escoladigital/sge/internal/app/models/dto"
	"github.com/escoladigital/sge/internal/app/services"
	"github.com/escoladigital/sge/internal/middleware"
)

const msgHistoricoNaoEncontrado = "Histórico escolar não encontrado"

// HistoricoController serves the /historicos-escolares resource.
type HistoricoController struct {
	historicos *services.HistoricoService
}

// NewHistoricoController creates a new HistoricoController.
func NewHistoricoController(historicos *services.HistoricoService) *HistoricoController {
	return &HistoricoController{historicos: historicos}
}

// List responds with every transcript.
func (ctrl *HistoricoController) List(c *gin.Context) {
	historicos, err := ctrl.historicos.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, historicos)
}

// Get responds with one transcript or 404.
func (ctrl *HistoricoController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	historico, err := ctrl.historicos.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	if historico == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgHistoricoNaoEncontrado})
		return
	}
	c.JSON(http.StatusOK, historico)
}

// Create records a transcript.
func (ctrl *HistoricoController) Create(c *gin.Context) {
	var req dto.NovoHistoricoEscolarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	novo := req.Normalize()
	historico, err := ctrl.historicos.Create(c.Request.Context(), &novo)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, historico)
}

// Update rewrites a transcript.
func (ctrl *HistoricoController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.NovoHistoricoEscolarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	novo := req.Normalize()
	historico, err := ctrl.historicos.Update(c.Request.Context(), id, &novo)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, historico)
}

// Delete removes a transcript.
func (ctrl *HistoricoController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.historicos.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
