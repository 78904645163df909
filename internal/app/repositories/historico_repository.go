package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/escoladigital/sge/internal/app/models"
	"github.com/escoladigital/sge/internal/pkg/apperrors"
	"github.com/escoladigital/sge/internal/pkg/dberrors"
)

const msgHistoricoNaoEncontrado = "Histórico escolar não encontrado"

// HistoricoRepository handles transcript rows in the 'historicos_escolares'
// table.
type HistoricoRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewHistoricoRepository creates a new HistoricoRepository.
func NewHistoricoRepository(db DB) *HistoricoRepository {
	return &HistoricoRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var historicoColumns = []string{
	"id_historicos_escolares", "id_aluno", "id_disciplina",
	"nome_escola", "serie_concluida", "nota", "ano_conclusao",
	"created_at", "updated_at",
}

func scanHistorico(row pgx.Row) (*models.HistoricoEscolar, error) {
	historico := &models.HistoricoEscolar{}
	err := row.Scan(
		&historico.ID, &historico.IDAluno, &historico.IDDisciplina,
		&historico.NomeEscola, &historico.SerieConcluida, &historico.Nota,
		&historico.AnoConclusao, &historico.CreatedAt, &historico.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return historico, nil
}

// List retrieves all transcripts.
func (r *HistoricoRepository) List(ctx context.Context) ([]*models.HistoricoEscolar, error) {
	sql, args, err := r.sb.Select(historicoColumns...).
		From("historicos_escolares").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list historicos query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying historicos: %w", err)
	}
	defer rows.Close()

	historicos := make([]*models.HistoricoEscolar, 0)
	for rows.Next() {
		historico, err := scanHistorico(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning historico: %w", err)
		}
		historicos = append(historicos, historico)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating historicos: %w", err)
	}

	return historicos, nil
}

// GetByID retrieves a transcript by id, nil when absent.
func (r *HistoricoRepository) GetByID(ctx context.Context, id int64) (*models.HistoricoEscolar, error) {
	sql, args, err := r.sb.Select(historicoColumns...).
		From("historicos_escolares").
		Where(squirrel.Eq{"id_historicos_escolares": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get historico query: %w", err)
	}

	historico, err := scanHistorico(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving historico: %w", err)
	}
	return historico, nil
}

// ListByAluno retrieves all transcripts belonging to a student.
func (r *HistoricoRepository) ListByAluno(ctx context.Context, alunoID int64) ([]*models.HistoricoEscolar, error) {
	sql, args, err := r.sb.Select(historicoColumns...).
		From("historicos_escolares").
		Where(squirrel.Eq{"id_aluno": alunoID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list historicos by aluno query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying historicos: %w", err)
	}
	defer rows.Close()

	historicos := make([]*models.HistoricoEscolar, 0)
	for rows.Next() {
		historico, err := scanHistorico(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning historico: %w", err)
		}
		historicos = append(historicos, historico)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating historicos: %w", err)
	}

	return historicos, nil
}

// Create inserts a new transcript. A broken student or subject reference
// surfaces as a validation error.
func (r *HistoricoRepository) Create(ctx context.Context, novo *models.NovoHistoricoEscolar) (*models.HistoricoEscolar, error) {
	sql, args, err := r.sb.Insert("historicos_escolares").
		Columns("id_aluno", "id_disciplina", "nome_escola", "serie_concluida", "nota", "ano_conclusao").
		Values(novo.IDAluno, novo.IDDisciplina, novo.NomeEscola, novo.SerieConcluida, novo.Nota, novo.AnoConclusao).
		Suffix("RETURNING id_historicos_escolares, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create historico query: %w", err)
	}

	historico := &models.HistoricoEscolar{
		IDAluno:        novo.IDAluno,
		IDDisciplina:   novo.IDDisciplina,
		NomeEscola:     novo.NomeEscola,
		SerieConcluida: novo.SerieConcluida,
		Nota:           novo.Nota,
		AnoConclusao:   novo.AnoConclusao,
	}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&historico.ID, &historico.CreatedAt, &historico.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.Validation("aluno ou disciplina inexistente")
		}
		return nil, fmt.Errorf("error creating historico: %w", err)
	}
	return historico, nil
}

// Update mutates a transcript by id, NotFound when the id does not resolve.
func (r *HistoricoRepository) Update(ctx context.Context, id int64, novo *models.NovoHistoricoEscolar) (*models.HistoricoEscolar, error) {
	sql, args, err := r.sb.Update("historicos_escolares").
		Set("id_aluno", novo.IDAluno).
		Set("id_disciplina", novo.IDDisciplina).
		Set("nome_escola", novo.NomeEscola).
		Set("serie_concluida", novo.SerieConcluida).
		Set("nota", novo.Nota).
		Set("ano_conclusao", novo.AnoConclusao).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id_historicos_escolares": id}).
		Suffix("RETURNING id_historicos_escolares, id_aluno, id_disciplina, nome_escola, serie_concluida, nota, ano_conclusao, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update historico query: %w", err)
	}

	historico, err := scanHistorico(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("HistoricoEscolar", id, msgHistoricoNaoEncontrado)
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.Validation("aluno ou disciplina inexistente")
		}
		return nil, fmt.Errorf("error updating historico: %w", err)
	}
	return historico, nil
}

// Delete removes a transcript by id, NotFound when no row was affected.
func (r *HistoricoRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("historicos_escolares").
		Where(squirrel.Eq{"id_historicos_escolares": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete historico query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting historico: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("HistoricoEscolar", id, msgHistoricoNaoEncontrado)
	}
	return nil
}
