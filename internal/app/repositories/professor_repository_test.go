package repositories

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfessorRepositoryGetByUsuarioID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProfessorRepository(mock)

	mock.ExpectQuery("FROM professores p JOIN usuarios u ON p.usuario_id = u.id_usuarios WHERE p.usuario_id =").
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{
			"id_professores", "disciplina_especialidade",
			"id_usuarios", "nome", "email", "hash_senha", "tipo_usuario",
		}).AddRow(int64(3), "Matemática", int64(7), "Ana", "ana@escola.com", "stored-hash", "professor"))

	professor, err := repo.GetByUsuarioID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), professor.ID)
	assert.Equal(t, "Matemática", professor.DisciplinaEspecialidade)
	require.NotNil(t, professor.Usuario)
	assert.Equal(t, int64(7), professor.Usuario.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfessorRepositoryGetByUsuarioIDMissReturnsNil(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProfessorRepository(mock)

	mock.ExpectQuery("FROM professores p JOIN usuarios u ON p.usuario_id = u.id_usuarios WHERE p.usuario_id =").
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	professor, err := repo.GetByUsuarioID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, professor)
	assert.NoError(t, mock.ExpectationsWereMet())
}
