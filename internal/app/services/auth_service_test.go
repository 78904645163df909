package services

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escoladigital/sge/internal/app/models/dto"
	"github.com/escoladigital/sge/internal/app/repositories"
	"github.com/escoladigital/sge/internal/pkg/apperrors"
	"github.com/escoladigital/sge/internal/pkg/auth"
)

func newAuthService(mock pgxmock.PgxPoolIface) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	return NewAuthService(repositories.NewUsuarioRepository(mock), jwtService)
}

func usuarioRow(hash string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id_usuarios", "nome", "email", "hash_senha", "tipo_usuario"}).
		AddRow(int64(8), "Bia", "bia@escola.com", hash, "secretaria")
}

func TestAuthServiceLoginIssuesToken(t *testing.T) {
	mock := newMockPool(t)
	service := newAuthService(mock)

	hash, err := auth.HashPassword("segredo")
	require.NoError(t, err)

	mock.ExpectQuery("FROM usuarios").
		WithArgs("bia@escola.com").
		WillReturnRows(usuarioRow(hash))

	token, err := service.Login(context.Background(), &dto.LoginRequest{
		Email: "bia@escola.com",
		Senha: "segredo",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)
	assert.Equal(t, 3600, token.ExpiresIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthServiceLoginWrongPasswordIsUnauthorized(t *testing.T) {
	mock := newMockPool(t)
	service := newAuthService(mock)

	hash, err := auth.HashPassword("segredo")
	require.NoError(t, err)

	mock.ExpectQuery("FROM usuarios").
		WithArgs("bia@escola.com").
		WillReturnRows(usuarioRow(hash))

	_, err = service.Login(context.Background(), &dto.LoginRequest{
		Email: "bia@escola.com",
		Senha: "errada",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestAuthServiceLoginUnknownEmailIsUnauthorized(t *testing.T) {
	mock := newMockPool(t)
	service := newAuthService(mock)

	mock.ExpectQuery("FROM usuarios").
		WithArgs("ninguem@escola.com").
		WillReturnRows(pgxmock.NewRows([]string{"id_usuarios", "nome", "email", "hash_senha", "tipo_usuario"}))

	_, err := service.Login(context.Background(), &dto.LoginRequest{
		Email: "ninguem@escola.com",
		Senha: "qualquer",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestAuthServiceLoginRoleMismatchIsUnauthorized(t *testing.T) {
	mock := newMockPool(t)
	service := newAuthService(mock)

	hash, err := auth.HashPassword("segredo")
	require.NoError(t, err)

	mock.ExpectQuery("FROM usuarios").
		WithArgs("bia@escola.com").
		WillReturnRows(usuarioRow(hash))

	_, err = service.Login(context.Background(), &dto.LoginRequest{
		Email: "bia@escola.com",
		Senha: "segredo",
		Role:  "professor",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}
