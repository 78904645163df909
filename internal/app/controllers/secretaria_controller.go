package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/escoladigital/sge/internal/app/models/dto"
	"github.com/escoladigital/sge/internal/app/services"
	"github.com/escoladigital/sge/internal/middleware"
)

const msgSecretariaNaoEncontrada = "Secretaria não encontrada"

// SecretariaController serves the /secretarias resource.
type SecretariaController struct {
	secretarias *services.SecretariaService
}

// NewSecretariaController creates a new SecretariaController.
func NewSecretariaController(secretarias *services.SecretariaService) *SecretariaController {
	return &SecretariaController{secretarias: secretarias}
}

// List responds with every secretaria.
func (ctrl *SecretariaController) List(c *gin.Context) {
	secretarias, err := ctrl.secretarias.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, secretarias)
}

// Get responds with one secretaria or 404.
func (ctrl *SecretariaController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	secretaria, err := ctrl.secretarias.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	if secretaria == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgSecretariaNaoEncontrada})
		return
	}
	c.JSON(http.StatusOK, secretaria)
}

// Create registers a secretaria account.
func (ctrl *SecretariaController) Create(c *gin.Context) {
	var req dto.NovaSecretariaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	novo := req.Normalize()
	secretaria, err := ctrl.secretarias.Create(c.Request.Context(), &novo)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, secretaria)
}

// Update rewrites a secretaria account.
func (ctrl *SecretariaController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.NovaSecretariaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	novo := req.Normalize()
	secretaria, err := ctrl.secretarias.Update(c.Request.Context(), id, &novo)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, secretaria)
}

// Delete removes a secretaria account.
func (ctrl *SecretariaController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.secretarias.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
