package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/escoladigital/sge/internal/app/models/dto"
	"github.com/escoladigital/sge/internal/app/services"
	"github.com/escoladigital/sge/internal/middleware"
)

const msgProfessorNaoEncontrado = "Professor não encontrado"

// ProfessorController serves the /professores resource.
type ProfessorController struct {
	professores *services.ProfessorService
}

// NewProfessorController creates a new ProfessorController.
func NewProfessorController(professores *services.ProfessorService) *ProfessorController {
	return &ProfessorController{professores: professores}
}

// List responds with every teacher.
func (ctrl *ProfessorController) List(c *gin.Context) {
	professores, err := ctrl.professores.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, professores)
}

// Get responds with one teacher or 404.
func (ctrl *ProfessorController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	professor, err := ctrl.professores.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	if professor == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgProfessorNaoEncontrado})
		return
	}
	c.JSON(http.StatusOK, professor)
}

// Create registers a teacher account.
func (ctrl *ProfessorController) Create(c *gin.Context) {
	var req dto.NovoProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	novo := req.Normalize()
	professor, err := ctrl.professores.Create(c.Request.Context(), &novo)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, professor)
}

// Update rewrites a teacher account.
func (ctrl *ProfessorController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.NovoProfessorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	novo := req.Normalize()
	professor, err := ctrl.professores.Update(c.Request.Context(), id, &novo)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, professor)
}

// Delete removes a teacher account.
func (ctrl *ProfessorController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.professores.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
