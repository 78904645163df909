package services

import (
	"context"

	"github.com/escoladigital/sge/internal/app/models/dto"
	"github.com/escoladigital/sge/internal/app/repositories"
	"github.com/escoladigital/sge/internal/pkg/apperrors"
	"github.com/escoladigital/sge/internal/pkg/auth"
	"github.com/escoladigital/sge/internal/pkg/logger"
)

const msgCredenciaisInvalidas = "credenciais inválidas"

// AuthService authenticates accounts and issues access tokens.
type AuthService struct {
	usuarios   *repositories.UsuarioRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService.
func NewAuthService(usuarios *repositories.UsuarioRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{usuarios: usuarios, jwtService: jwtService}
}

// Login checks the credentials and returns a signed access token. A wrong
// email and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	usuario, err := s.usuarios.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, apperrors.Unauthorized(msgCredenciaisInvalidas)
	}

	if err := auth.CheckPassword(usuario.HashSenha, req.Senha); err != nil {
		logger.Warn().Str("email", req.Email).Msg("Login rejected: password mismatch")
		return nil, apperrors.Unauthorized(msgCredenciaisInvalidas)
	}

	if req.Role != "" && req.Role != string(usuario.TipoUsuario) {
		return nil, apperrors.Unauthorized(msgCredenciaisInvalidas)
	}

	token, expiresIn, err := s.jwtService.GenerateToken(usuario.ID, usuario.Email, string(usuario.TipoUsuario))
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("usuarioId", usuario.ID).Str("tipo", string(usuario.TipoUsuario)).Msg("Login succeeded")
	return &dto.TokenResponse{Token: token, ExpiresIn: expiresIn}, nil
}
