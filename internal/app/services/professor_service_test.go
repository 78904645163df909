package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escoladigital/sge/internal/app/models"
	"github.com/escoladigital/sge/internal/app/repositories"
	"github.com/escoladigital/sge/internal/pkg/apperrors"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func newProfessorService(mock pgxmock.PgxPoolIface) *ProfessorService {
	return NewProfessorService(mock,
		repositories.NewUsuarioRepository(mock),
		repositories.NewProfessorRepository(mock))
}

func TestProfessorServiceCreateCommitsBothRows(t *testing.T) {
	mock := newMockPool(t)
	service := newProfessorService(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO usuarios").
		WithArgs("Ana", "ana@escola.com", pgxmock.AnyArg(), "professor").
		WillReturnRows(pgxmock.NewRows([]string{"id_usuarios"}).AddRow(int64(7)))
	mock.ExpectQuery("INSERT INTO professores").
		WithArgs(int64(7), "Matemática").
		WillReturnRows(pgxmock.NewRows([]string{"id_professores"}).AddRow(int64(3)))
	mock.ExpectCommit()

	professor, err := service.Create(context.Background(), &models.NovoProfessor{
		Usuario: models.NovoUsuario{
			Nome:  "Ana",
			Email: "ana@escola.com",
			Senha: "segredo",
		},
		DisciplinaEspecialidade: "Matemática",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), professor.ID)
	require.NotNil(t, professor.Usuario)
	assert.Equal(t, int64(7), professor.Usuario.ID)
	assert.Equal(t, models.TipoProfessor, professor.Usuario.TipoUsuario)
	assert.NotEqual(t, "segredo", professor.Usuario.HashSenha)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfessorServiceCreateRollsBackWhenRoleInsertFails(t *testing.T) {
	mock := newMockPool(t)
	service := newProfessorService(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO usuarios").
		WithArgs("Ana", "ana@escola.com", pgxmock.AnyArg(), "professor").
		WillReturnRows(pgxmock.NewRows([]string{"id_usuarios"}).AddRow(int64(7)))
	mock.ExpectQuery("INSERT INTO professores").
		WithArgs(int64(7), "Matemática").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := service.Create(context.Background(), &models.NovoProfessor{
		Usuario: models.NovoUsuario{
			Nome:  "Ana",
			Email: "ana@escola.com",
			Senha: "segredo",
		},
		DisciplinaEspecialidade: "Matemática",
	})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfessorServiceUpdateUnknownIDIsNotFound(t *testing.T) {
	mock := newMockPool(t)
	service := newProfessorService(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT usuario_id FROM professores").
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := service.Update(context.Background(), 9, &models.NovoProfessor{
		Usuario: models.NovoUsuario{Nome: "Ana", Email: "ana@escola.com"},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Professor não encontrado", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfessorServiceUpdateWithoutNewPasswordKeepsHash(t *testing.T) {
	mock := newMockPool(t)
	service := newProfessorService(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT usuario_id FROM professores").
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"usuario_id"}).AddRow(int64(7)))
	// no hash_senha column in the SET list when the password is untouched
	mock.ExpectQuery(`UPDATE usuarios SET nome = \$1, email = \$2, tipo_usuario = \$3 WHERE`).
		WithArgs("Ana Maria", "ana@escola.com", "professor", int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id_usuarios", "nome", "email", "hash_senha", "tipo_usuario"}).
			AddRow(int64(7), "Ana Maria", "ana@escola.com", "stored-hash", "professor"))
	mock.ExpectQuery("UPDATE professores SET").
		WithArgs("Física", int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id_professores", "disciplina_especialidade"}).
			AddRow(int64(3), "Física"))
	mock.ExpectCommit()

	professor, err := service.Update(context.Background(), 3, &models.NovoProfessor{
		Usuario: models.NovoUsuario{
			Nome:  "Ana Maria",
			Email: "ana@escola.com",
		},
		DisciplinaEspecialidade: "Física",
	})
	require.NoError(t, err)
	assert.Equal(t, "Física", professor.DisciplinaEspecialidade)
	assert.Equal(t, "stored-hash", professor.Usuario.HashSenha)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfessorServiceDeleteRemovesRoleThenAccount(t *testing.T) {
	mock := newMockPool(t)
	service := newProfessorService(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT usuario_id FROM professores").
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"usuario_id"}).AddRow(int64(7)))
	mock.ExpectExec("DELETE FROM professores").
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM usuarios").
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	require.NoError(t, service.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfessorServiceGetByIDMissReturnsNil(t *testing.T) {
	mock := newMockPool(t)
	service := newProfessorService(mock)

	mock.ExpectQuery("FROM professores p JOIN usuarios u").
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	professor, err := service.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, professor)
	assert.NoError(t, mock.ExpectationsWereMet())
}
