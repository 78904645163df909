package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/escoladigital/sge/internal/app/models/dto"
	"github.com/escoladigital/sge/internal/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	ContextUsuarioID   = "usuarioId"
	ContextEmail       = "email"
	ContextTipoUsuario = "tipoUsuario"
)

// JWTAuth rejects requests without a valid bearer token and exposes the
// token's claims on the gin context.
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "token de acesso ausente ou malformado"})
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "token de acesso inválido ou expirado"})
			return
		}

		c.Set(ContextUsuarioID, claims.UsuarioID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextTipoUsuario, claims.TipoUsuario)
		c.Next()
	}
}
