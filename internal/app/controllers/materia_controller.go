package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/escoladigital/sge/internal/app/models/dto"
	"github.com/escoladigital/sge/internal/app/services"
	"github.com/escoladigital/sge/internal/middleware"
)

const msgMateriaNaoEncontrada = "Matéria não encontrada"

// MateriaController serves the /materias resource.
type MateriaController struct {
	materias *services.MateriaService
}

// NewMateriaController creates a new MateriaController.
func NewMateriaController(materias *services.MateriaService) *MateriaController {
	return &MateriaController{materias: materias}
}

// List responds with every subject.
func (ctrl *MateriaController) List(c *gin.Context) {
	materias, err := ctrl.materias.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, materias)
}

// Get responds with one subject or 404.
func (ctrl *MateriaController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	materia, err := ctrl.materias.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	if materia == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgMateriaNaoEncontrada})
		return
	}
	c.JSON(http.StatusOK, materia)
}

// Create adds a subject to the catalog.
func (ctrl *MateriaController) Create(c *gin.Context) {
	var req dto.NovaMateriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	novo := req.Normalize()
	materia, err := ctrl.materias.Create(c.Request.Context(), &novo)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, materia)
}

// Update renames a subject.
func (ctrl *MateriaController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.NovaMateriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	novo := req.Normalize()
	materia, err := ctrl.materias.Update(c.Request.Context(), id, &novo)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, materia)
}

// Delete removes a subject.
func (ctrl *MateriaController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.materias.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
