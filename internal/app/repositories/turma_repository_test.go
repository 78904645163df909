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

func novaTurma() *models.NovaTurma {
	return &models.NovaTurma{
		Nome:             "3º Ano A",
		AnoEscolar:       2026,
		QuantidadeMaxima: 30,
		Turno:            "manhã",
		Serie:            "3ª série",
	}
}

func TestTurmaRepositoryList(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTurmaRepository(mock)

	criada := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id_turmas, nome, ano_escolar, quantidade_maxima, turno, serie, created_at, updated_at FROM turmas").
		WillReturnRows(pgxmock.NewRows(turmaColumns).
			AddRow(int64(1), "3º Ano A", 2026, 30, "manhã", "3ª série", criada, criada).
			AddRow(int64(2), "3º Ano B", 2026, 28, "tarde", "3ª série", criada, criada))

	turmas, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, turmas, 2)
	assert.Equal(t, "3º Ano B", turmas[1].Nome)
	assert.Equal(t, "tarde", turmas[1].Turno)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTurmaRepositoryGetByIDMissReturnsNil(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTurmaRepository(mock)

	mock.ExpectQuery("FROM turmas WHERE id_turmas =").
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	turma, err := repo.GetByID(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, turma)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTurmaRepositoryCreateReturnsStorageFields(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTurmaRepository(mock)
	novo := novaTurma()

	criada := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO turmas").
		WithArgs(novo.Nome, novo.AnoEscolar, novo.QuantidadeMaxima, novo.Turno, novo.Serie).
		WillReturnRows(pgxmock.NewRows([]string{"id_turmas", "created_at", "updated_at"}).
			AddRow(int64(5), criada, criada))

	turma, err := repo.Create(context.Background(), novo)
	require.NoError(t, err)
	assert.Equal(t, int64(5), turma.ID)
	assert.Equal(t, "3º Ano A", turma.Nome)
	assert.Equal(t, 2026, turma.AnoEscolar)
	assert.Equal(t, criada, turma.CreatedAt)
	assert.Equal(t, criada, turma.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTurmaRepositoryUpdate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTurmaRepository(mock)
	novo := novaTurma()

	criada := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	atualizada := criada.Add(48 * time.Hour)
	mock.ExpectQuery("UPDATE turmas SET").
		WithArgs(novo.Nome, novo.AnoEscolar, novo.QuantidadeMaxima, novo.Turno, novo.Serie, int64(5)).
		WillReturnRows(pgxmock.NewRows(turmaColumns).
			AddRow(int64(5), novo.Nome, novo.AnoEscolar, novo.QuantidadeMaxima, novo.Turno, novo.Serie, criada, atualizada))

	turma, err := repo.Update(context.Background(), 5, novo)
	require.NoError(t, err)
	assert.Equal(t, int64(5), turma.ID)
	assert.Equal(t, atualizada, turma.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTurmaRepositoryUpdateMissingRowIsNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTurmaRepository(mock)

	mock.ExpectQuery("UPDATE turmas SET").
		WithArgs("3º Ano A", 2026, 30, "manhã", "3ª série", int64(9)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Update(context.Background(), 9, novaTurma())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Turma não encontrada", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTurmaRepositoryDeleteMissingRowIsNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewTurmaRepository(mock)

	mock.ExpectExec("DELETE FROM turmas").
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), 9)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Turma não encontrada", err.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}
