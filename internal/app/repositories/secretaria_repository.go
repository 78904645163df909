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

const msgSecretariaNaoEncontrada = "Secretaria não encontrada"

// SecretariaRepository handles secretarial-staff rows in the 'secretaria'
// table and their joined account rows.
type SecretariaRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewSecretariaRepository creates a new SecretariaRepository.
func NewSecretariaRepository(db DB) *SecretariaRepository {
	return &SecretariaRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *SecretariaRepository) WithTx(tx pgx.Tx) *SecretariaRepository {
	return &SecretariaRepository{db: tx, sb: r.sb}
}

func (r *SecretariaRepository) joinSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"s.id_secretaria",
		"u.id_usuarios", "u.nome", "u.email", "u.hash_senha", "u.tipo_usuario",
	).
		From("secretaria s").
		Join("usuarios u ON s.usuario_id = u.id_usuarios")
}

func scanSecretaria(row pgx.Row) (*models.Secretaria, error) {
	secretaria := &models.Secretaria{Usuario: &models.Usuario{}}
	err := row.Scan(
		&secretaria.ID,
		&secretaria.Usuario.ID, &secretaria.Usuario.Nome, &secretaria.Usuario.Email,
		&secretaria.Usuario.HashSenha, &secretaria.Usuario.TipoUsuario,
	)
	if err != nil {
		return nil, err
	}
	return secretaria, nil
}

// Create inserts the role half of a secretaria account.
func (r *SecretariaRepository) Create(ctx context.Context, usuarioID int64) (*models.Secretaria, error) {
	sql, args, err := r.sb.Insert("secretaria").
		Columns("usuario_id").
		Values(usuarioID).
		Suffix("RETURNING id_secretaria").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create secretaria query: %w", err)
	}

	secretaria := &models.Secretaria{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&secretaria.ID); err != nil {
		return nil, fmt.Errorf("error creating secretaria: %w", err)
	}
	return secretaria, nil
}

// GetByID retrieves a secretaria with its account, nil when absent.
func (r *SecretariaRepository) GetByID(ctx context.Context, id int64) (*models.Secretaria, error) {
	sql, args, err := r.joinSelect().
		Where(squirrel.Eq{"s.id_secretaria": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get secretaria query: %w", err)
	}

	secretaria, err := scanSecretaria(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving secretaria: %w", err)
	}
	return secretaria, nil
}

// GetByUsuarioID retrieves the secretaria record owning the given account,
// nil when absent.
func (r *SecretariaRepository) GetByUsuarioID(ctx context.Context, usuarioID int64) (*models.Secretaria, error) {
	sql, args, err := r.joinSelect().
		Where(squirrel.Eq{"s.usuario_id": usuarioID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get secretaria by usuario query: %w", err)
	}

	secretaria, err := scanSecretaria(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving secretaria: %w", err)
	}
	return secretaria, nil
}

// List retrieves all secretarias with their accounts.
func (r *SecretariaRepository) List(ctx context.Context) ([]*models.Secretaria, error) {
	sql, args, err := r.joinSelect().ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list secretarias query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying secretarias: %w", err)
	}
	defer rows.Close()

	secretarias := make([]*models.Secretaria, 0)
	for rows.Next() {
		secretaria, err := scanSecretaria(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning secretaria: %w", err)
		}
		secretarias = append(secretarias, secretaria)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating secretarias: %w", err)
	}

	return secretarias, nil
}

// ResolveUsuarioID returns the foreign key to the account row owning the
// secretaria record.
func (r *SecretariaRepository) ResolveUsuarioID(ctx context.Context, id int64) (int64, error) {
	sql, args, err := r.sb.Select("usuario_id").
		From("secretaria").
		Where(squirrel.Eq{"id_secretaria": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build resolve secretaria query: %w", err)
	}

	var usuarioID int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&usuarioID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NotFound("Secretaria", id, msgSecretariaNaoEncontrada)
		}
		return 0, fmt.Errorf("error resolving secretaria: %w", err)
	}
	return usuarioID, nil
}

// ConfirmExists re-reads the role row after a nested account update. The row
// was just resolved, so its absence here is an invariant violation.
func (r *SecretariaRepository) ConfirmExists(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Select("id_secretaria").
		From("secretaria").
		Where(squirrel.Eq{"id_secretaria": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build confirm secretaria query: %w", err)
	}

	var confirmed int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&confirmed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.Invariant("Secretaria", id, "secretaria ausente após verificação de existência")
		}
		return fmt.Errorf("error confirming secretaria: %w", err)
	}
	return nil
}

// Delete removes the role row. Callers already resolved the id, so a zero
// row count is an invariant violation.
func (r *SecretariaRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("secretaria").
		Where(squirrel.Eq{"id_secretaria": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete secretaria query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting secretaria: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.Invariant("Secretaria", id, "secretaria ausente após verificação de existência")
	}
	return nil
}
