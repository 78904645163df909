package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escoladigital/sge/internal/app/models"
	"github.com/escoladigital/sge/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

var alunoJoinColumns = []string{
	"id_alunos", "data_nascimento", "responsavel_nome",
	"nome_pai", "nome_mae", "profissao_pai", "profissao_mae",
	"alergias", "telefone_pai", "telefone_mae",
	"email_pai", "email_mae", "idade", "religiao",
	"id_usuarios", "nome", "email", "hash_senha", "tipo_usuario",
}

func alunoJoinRow(nascimento *time.Time) *pgxmock.Rows {
	var noStr *string
	return pgxmock.NewRows(alunoJoinColumns).AddRow(
		int64(4), nascimento, strPtr("Maria Souza"),
		noStr, strPtr("Maria Souza"), noStr, strPtr("professora"),
		strPtr("amendoim"), noStr, strPtr("11 99999-0000"),
		noStr, strPtr("maria@escola.com"), intPtr(13), noStr,
		int64(7), "Lia", "lia@escola.com", "stored-hash", "aluno",
	)
}

func TestAlunoRepositoryGetByIDFormatsBirthDate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAlunoRepository(mock)

	nascimento := time.Date(2012, 4, 18, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM alunos a JOIN usuarios u ON a.usuario_id = u.id_usuarios WHERE a.id_alunos =").
		WithArgs(int64(4)).
		WillReturnRows(alunoJoinRow(&nascimento))

	aluno, err := repo.GetByID(context.Background(), 4)
	require.NoError(t, err)
	require.NotNil(t, aluno.DataNascimento)
	assert.Equal(t, "2012-04-18", *aluno.DataNascimento)
	require.NotNil(t, aluno.Alergias)
	assert.Equal(t, "amendoim", *aluno.Alergias)
	require.NotNil(t, aluno.Usuario)
	assert.Equal(t, int64(7), aluno.Usuario.ID)
	assert.Equal(t, "aluno", string(aluno.Usuario.TipoUsuario))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlunoRepositoryGetByIDNullBirthDateStaysNil(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAlunoRepository(mock)

	mock.ExpectQuery("FROM alunos a JOIN usuarios u ON a.usuario_id = u.id_usuarios WHERE a.id_alunos =").
		WithArgs(int64(4)).
		WillReturnRows(alunoJoinRow(nil))

	aluno, err := repo.GetByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Nil(t, aluno.DataNascimento)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlunoRepositoryGetByUsuarioID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAlunoRepository(mock)

	nascimento := time.Date(2012, 4, 18, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM alunos a JOIN usuarios u ON a.usuario_id = u.id_usuarios WHERE a.usuario_id =").
		WithArgs(int64(7)).
		WillReturnRows(alunoJoinRow(&nascimento))

	aluno, err := repo.GetByUsuarioID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(4), aluno.ID)
	assert.Equal(t, int64(7), aluno.Usuario.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlunoRepositoryGetByUsuarioIDMissReturnsNil(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAlunoRepository(mock)

	mock.ExpectQuery("FROM alunos a JOIN usuarios u ON a.usuario_id = u.id_usuarios WHERE a.usuario_id =").
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	aluno, err := repo.GetByUsuarioID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, aluno)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlunoRepositoryUpdateFieldsVanishedRowIsInvariant(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAlunoRepository(mock)

	mock.ExpectQuery("UPDATE alunos SET").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.UpdateFields(context.Background(), 9, &models.NovoAluno{})
	require.Error(t, err)
	assert.True(t, apperrors.IsInvariant(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
