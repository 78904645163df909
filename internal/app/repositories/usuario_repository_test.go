package repositories

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escoladigital/sge/internal/app/models"
	"github.com/escoladigital/sge/internal/pkg/apperrors"
)

func TestUsuarioRepositoryCreateDuplicateEmailIsConflict(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUsuarioRepository(mock)

	mock.ExpectQuery("INSERT INTO usuarios").
		WithArgs("Ana", "ana@escola.com", "hash", "professor").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "usuarios_email_key"})

	_, err := repo.Create(context.Background(), &models.Usuario{
		Nome:        "Ana",
		Email:       "ana@escola.com",
		HashSenha:   "hash",
		TipoUsuario: models.TipoProfessor,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsuarioRepositoryGetByEmailMissReturnsNil(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUsuarioRepository(mock)

	mock.ExpectQuery("SELECT id_usuarios, nome, email, hash_senha, tipo_usuario FROM usuarios").
		WithArgs("ninguem@escola.com").
		WillReturnRows(pgxmock.NewRows([]string{"id_usuarios", "nome", "email", "hash_senha", "tipo_usuario"}))

	usuario, err := repo.GetByEmail(context.Background(), "ninguem@escola.com")
	require.NoError(t, err)
	assert.Nil(t, usuario)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsuarioRepositoryDeleteZeroRowsIsInvariant(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUsuarioRepository(mock)

	mock.ExpectExec("DELETE FROM usuarios").
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvariant(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
