package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/escoladigital/sge/internal/app/models/dto"
	"github.com/escoladigital/sge/internal/app/services"
	"github.com/escoladigital/sge/internal/middleware"
)

const msgTurmaNaoEncontrada = "Turma não encontrada"

// TurmaController serves the /turmas resource.
type TurmaController struct {
	turmas *services.TurmaService
}

// NewTurmaController creates a new TurmaController.
func NewTurmaController(turmas *services.TurmaService) *TurmaController {
	return &TurmaController{turmas: turmas}
}

// List responds with every class.
func (ctrl *TurmaController) List(c *gin.Context) {
	turmas, err := ctrl.turmas.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, turmas)
}

// Get responds with one class or 404.
func (ctrl *TurmaController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	turma, err := ctrl.turmas.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	if turma == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgTurmaNaoEncontrada})
		return
	}
	c.JSON(http.StatusOK, turma)
}

// Create adds a class.
func (ctrl *TurmaController) Create(c *gin.Context) {
	var req dto.NovaTurmaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	novo := req.Normalize()
	turma, err := ctrl.turmas.Create(c.Request.Context(), &novo)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, turma)
}

// Update rewrites a class.
func (ctrl *TurmaController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.NovaTurmaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	novo := req.Normalize()
	turma, err := ctrl.turmas.Update(c.Request.Context(), id, &novo)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, turma)
}

// Delete removes a class.
func (ctrl *TurmaController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.turmas.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
