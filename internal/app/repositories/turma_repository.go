package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/escoladigital/sge/internal/app/models"
	"github.com/escoladigital/sge/internal/pkg/apperrors"
)

const msgTurmaNaoEncontrada = "Turma não encontrada"

// TurmaRepository handles class rows in the 'turmas' table.
type TurmaRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewTurmaRepository creates a new TurmaRepository.
func NewTurmaRepository(db DB) *TurmaRepository {
	return &TurmaRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var turmaColumns = []string{
	"id_turmas", "nome", "ano_escolar", "quantidade_maxima",
	"turno", "serie", "created_at", "updated_at",
}

func scanTurma(row pgx.Row) (*models.Turma, error) {
	turma := &models.Turma{}
	err := row.Scan(
		&turma.ID, &turma.Nome, &turma.AnoEscolar, &turma.QuantidadeMaxima,
		&turma.Turno, &turma.Serie, &turma.CreatedAt, &turma.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return turma, nil
}

// List retrieves all classes.
func (r *TurmaRepository) List(ctx context.Context) ([]*models.Turma, error) {
	sql, args, err := r.sb.Select(turmaColumns...).
		From("turmas").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list turmas query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying turmas: %w", err)
	}
	defer rows.Close()

	turmas := make([]*models.Turma, 0)
	for rows.Next() {
		turma, err := scanTurma(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning turma: %w", err)
		}
		turmas = append(turmas, turma)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating turmas: %w", err)
	}

	return turmas, nil
}

// GetByID retrieves a class by id, nil when absent.
func (r *TurmaRepository) GetByID(ctx context.Context, id int64) (*models.Turma, error) {
	sql, args, err := r.sb.Select(turmaColumns...).
		From("turmas").
		Where(squirrel.Eq{"id_turmas": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get turma query: %w", err)
	}

	turma, err := scanTurma(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving turma: %w", err)
	}
	return turma, nil
}

// Create inserts a new class and returns it with storage-assigned fields.
func (r *TurmaRepository) Create(ctx context.Context, novo *models.NovaTurma) (*models.Turma, error) {
	sql, args, err := r.sb.Insert("turmas").
		Columns("nome", "ano_escolar", "quantidade_maxima", "turno", "serie").
		Values(novo.Nome, novo.AnoEscolar, novo.QuantidadeMaxima, novo.Turno, novo.Serie).
		Suffix("RETURNING id_turmas, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create turma query: %w", err)
	}

	turma := &models.Turma{
		Nome:             novo.Nome,
		AnoEscolar:       novo.AnoEscolar,
		QuantidadeMaxima: novo.QuantidadeMaxima,
		Turno:            novo.Turno,
		Serie:            novo.Serie,
	}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&turma.ID, &turma.CreatedAt, &turma.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating turma: %w", err)
	}
	return turma, nil
}

// Update mutates a class by id, NotFound when the id does not resolve.
func (r *TurmaRepository) Update(ctx context.Context, id int64, novo *models.NovaTurma) (*models.Turma, error) {
	sql, args, err := r.sb.Update("turmas").
		Set("nome", novo.Nome).
		Set("ano_escolar", novo.AnoEscolar).
		Set("quantidade_maxima", novo.QuantidadeMaxima).
		Set("turno", novo.Turno).
		Set("serie", novo.Serie).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id_turmas": id}).
		Suffix("RETURNING id_turmas, nome, ano_escolar, quantidade_maxima, turno, serie, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update turma query: %w", err)
	}

	turma, err := scanTurma(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Turma", id, msgTurmaNaoEncontrada)
		}
		return nil, fmt.Errorf("error updating turma: %w", err)
	}
	return turma, nil
}

// Delete removes a class by id, NotFound when no row was affected.
func (r *TurmaRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("turmas").
		Where(squirrel.Eq{"id_turmas": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete turma query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting turma: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("Turma", id, msgTurmaNaoEncontrada)
	}
	return nil
}
