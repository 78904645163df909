package repositories

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretariaRepositoryGetByUsuarioID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewSecretariaRepository(mock)

	mock.ExpectQuery("FROM secretaria s JOIN usuarios u ON s.usuario_id = u.id_usuarios WHERE s.usuario_id =").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{
			"id_secretaria",
			"id_usuarios", "nome", "email", "hash_senha", "tipo_usuario",
		}).AddRow(int64(2), int64(7), "Bia", "bia@escola.com", "stored-hash", "secretaria"))

	secretaria, err := repo.GetByUsuarioID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), secretaria.ID)
	require.NotNil(t, secretaria.Usuario)
	assert.Equal(t, "bia@escola.com", secretaria.Usuario.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSecretariaRepositoryGetByUsuarioIDMissReturnsNil(t *testing.T) {
	mock := newMockPool(t)
	repo := NewSecretariaRepository(mock)

	mock.ExpectQuery("FROM secretaria s JOIN usuarios u ON s.usuario_id = u.id_usuarios WHERE s.usuario_id =").
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	secretaria, err := repo.GetByUsuarioID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, secretaria)
	assert.NoError(t, mock.ExpectationsWereMet())
}
