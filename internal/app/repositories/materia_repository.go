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

const msgMateriaNaoEncontrada = "Matéria não encontrada"

// MateriaRepository handles subject rows in the 'materias' table.
type MateriaRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewMateriaRepository creates a new MateriaRepository.
func NewMateriaRepository(db DB) *MateriaRepository {
	return &MateriaRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List retrieves all subjects.
func (r *MateriaRepository) List(ctx context.Context) ([]*models.Materia, error) {
	sql, args, err := r.sb.Select("id_materias", "nome").
		From("materias").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list materias query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying materias: %w", err)
	}
	defer rows.Close()

	materias := make([]*models.Materia, 0)
	for rows.Next() {
		materia := &models.Materia{}
		if err := rows.Scan(&materia.ID, &materia.Nome); err != nil {
			return nil, fmt.Errorf("error scanning materia: %w", err)
		}
		materias = append(materias, materia)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating materias: %w", err)
	}

	return materias, nil
}

// GetByID retrieves a subject by id, nil when absent.
func (r *MateriaRepository) GetByID(ctx context.Context, id int64) (*models.Materia, error) {
	sql, args, err := r.sb.Select("id_materias", "nome").
		From("materias").
		Where(squirrel.Eq{"id_materias": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get materia query: %w", err)
	}

	materia := &models.Materia{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&materia.ID, &materia.Nome); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving materia: %w", err)
	}
	return materia, nil
}

// Create inserts a new subject and returns it with the assigned id.
func (r *MateriaRepository) Create(ctx context.Context, novo *models.NovaMateria) (*models.Materia, error) {
	sql, args, err := r.sb.Insert("materias").
		Columns("nome").
		Values(novo.Nome).
		Suffix("RETURNING id_materias").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create materia query: %w", err)
	}

	materia := &models.Materia{Nome: novo.Nome}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&materia.ID); err != nil {
		return nil, fmt.Errorf("error creating materia: %w", err)
	}
	return materia, nil
}

// Update mutates a subject by id, NotFound when no row was affected.
func (r *MateriaRepository) Update(ctx context.Context, id int64, novo *models.NovaMateria) (*models.Materia, error) {
	sql, args, err := r.sb.Update("materias").
		Set("nome", novo.Nome).
		Where(squirrel.Eq{"id_materias": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update materia query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error updating materia: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.NotFound("Materia", id, msgMateriaNaoEncontrada)
	}
	return &models.Materia{ID: id, Nome: novo.Nome}, nil
}

// Delete removes a subject by id, NotFound when no row was affected.
func (r *MateriaRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("materias").
		Where(squirrel.Eq{"id_materias": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete materia query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting materia: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("Materia", id, msgMateriaNaoEncontrada)
	}
	return nil
}
