package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/escoladigital/sge/internal/app/models/dto"
	"github.com/escoladigital/sge/internal/app/services"
	"github.com/escoladigital/sge/internal/middleware"
)

// AuthController serves the /auth endpoints.
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Login exchanges credentials for an access token.
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := ctrl.auth.Login(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, token)
}
