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

const msgProfessorNaoEncontrado = "Professor não encontrado"

// ProfessorRepository handles teacher rows in the 'professores' table and
// their joined account rows.
type ProfessorRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewProfessorRepository creates a new ProfessorRepository.
func NewProfessorRepository(db DB) *ProfessorRepository {
	return &ProfessorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *ProfessorRepository) WithTx(tx pgx.Tx) *ProfessorRepository {
	return &ProfessorRepository{db: tx, sb: r.sb}
}

func (r *ProfessorRepository) joinSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"p.id_professores", "p.disciplina_especialidade",
		"u.id_usuarios", "u.nome", "u.email", "u.hash_senha", "u.tipo_usuario",
	).
		From("professores p").
		Join("usuarios u ON p.usuario_id = u.id_usuarios")
}

func scanProfessor(row pgx.Row) (*models.Professor, error) {
	professor := &models.Professor{Usuario: &models.Usuario{}}
	err := row.Scan(
		&professor.ID, &professor.DisciplinaEspecialidade,
		&professor.Usuario.ID, &professor.Usuario.Nome, &professor.Usuario.Email,
		&professor.Usuario.HashSenha, &professor.Usuario.TipoUsuario,
	)
	if err != nil {
		return nil, err
	}
	return professor, nil
}

// Create inserts the role half of a teacher account.
func (r *ProfessorRepository) Create(ctx context.Context, usuarioID int64, disciplinaEspecialidade string) (*models.Professor, error) {
	sql, args, err := r.sb.Insert("professores").
		Columns("usuario_id", "disciplina_especialidade").
		Values(usuarioID, disciplinaEspecialidade).
		Suffix("RETURNING id_professores").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create professor query: %w", err)
	}

	professor := &models.Professor{DisciplinaEspecialidade: disciplinaEspecialidade}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&professor.ID); err != nil {
		return nil, fmt.Errorf("error creating professor: %w", err)
	}

	return professor, nil
}

// GetByID retrieves a teacher with its account, nil when absent.
func (r *ProfessorRepository) GetByID(ctx context.Context, id int64) (*models.Professor, error) {
	sql, args, err := r.joinSelect().
		Where(squirrel.Eq{"p.id_professores": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get professor query: %w", err)
	}

	professor, err := scanProfessor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving professor: %w", err)
	}
	return professor, nil
}

// GetByUsuarioID retrieves the teacher record owning the given account,
// nil when absent.
func (r *ProfessorRepository) GetByUsuarioID(ctx context.Context, usuarioID int64) (*models.Professor, error) {
	sql, args, err := r.joinSelect().
		Where(squirrel.Eq{"p.usuario_id": usuarioID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get professor by usuario query: %w", err)
	}

	professor, err := scanProfessor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving professor: %w", err)
	}
	return professor, nil
}

// List retrieves all teachers with their accounts.
func (r *ProfessorRepository) List(ctx context.Context) ([]*models.Professor, error) {
	sql, args, err := r.joinSelect().ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list professores query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying professores: %w", err)
	}
	defer rows.Close()

	professores := make([]*models.Professor, 0)
	for rows.Next() {
		professor, err := scanProfessor(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning professor: %w", err)
		}
		professores = append(professores, professor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating professores: %w", err)
	}

	return professores, nil
}

// ResolveUsuarioID returns the foreign key to the account row owning the
// teacher record.
func (r *ProfessorRepository) ResolveUsuarioID(ctx context.Context, id int64) (int64, error) {
	sql, args, err := r.sb.Select("usuario_id").
		From("professores").
		Where(squirrel.Eq{"id_professores": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build resolve professor query: %w", err)
	}

	var usuarioID int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&usuarioID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NotFound("Professor", id, msgProfessorNaoEncontrado)
		}
		return 0, fmt.Errorf("error resolving professor: %w", err)
	}
	return usuarioID, nil
}

// UpdateDisciplina mutates the role-specific column. Callers already verified
// existence, so a missing row here is an invariant violation.
func (r *ProfessorRepository) UpdateDisciplina(ctx context.Context, id int64, disciplinaEspecialidade string) (*models.Professor, error) {
	sql, args, err := r.sb.Update("professores").
		Set("disciplina_especialidade", disciplinaEspecialidade).
		Where(squirrel.Eq{"id_professores": id}).
		Suffix("RETURNING id_professores, disciplina_especialidade").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update professor query: %w", err)
	}

	professor := &models.Professor{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&professor.ID, &professor.DisciplinaEspecialidade)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Invariant("Professor", id, "professor ausente após verificação de existência")
		}
		return nil, fmt.Errorf("error updating professor: %w", err)
	}
	return professor, nil
}

// Delete removes the role row. Callers already resolved the id, so a zero
// row count is an invariant violation.
func (r *ProfessorRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("professores").
		Where(squirrel.Eq{"id_professores": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete professor query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting professor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.Invariant("Professor", id, "professor ausente após verificação de existência")
	}
	return nil
}
