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
	"github.com/escoladigital/sge/internal/pkg/logger"
)

// UsuarioRepository handles account rows in the 'usuarios' table.
type UsuarioRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewUsuarioRepository creates a new UsuarioRepository.
func NewUsuarioRepository(db DB) *UsuarioRepository {
	return &UsuarioRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *UsuarioRepository) WithTx(tx pgx.Tx) *UsuarioRepository {
	return &UsuarioRepository{db: tx, sb: r.sb}
}

// Create inserts a new account row and returns the assigned id.
func (r *UsuarioRepository) Create(ctx context.Context, usuario *models.Usuario) (int64, error) {
	sql, args, err := r.sb.Insert("usuarios").
		Columns("nome", "email", "hash_senha", "tipo_usuario").
		Values(usuario.Nome, usuario.Email, usuario.HashSenha, string(usuario.TipoUsuario)).
		Suffix("RETURNING id_usuarios").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create usuario query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err, "usuarios_email_key") {
			logger.Warn().Str("email", usuario.Email).Msg("Attempted to create usuario with duplicate email")
			return 0, apperrors.Conflict("Usuario", "email já cadastrado")
		}
		return 0, fmt.Errorf("error creating usuario: %w", err)
	}

	return id, nil
}

// Update mutates an account row. hashSenha is only set when a new plaintext
// password was supplied by the caller.
func (r *UsuarioRepository) Update(ctx context.Context, id int64, nome, email string, tipo models.TipoUsuario, hashSenha *string) (*models.Usuario, error) {
	builder := r.sb.Update("usuarios").
		Set("nome", nome).
		Set("email", email).
		Set("tipo_usuario", string(tipo))
	if hashSenha != nil {
		builder = builder.Set("hash_senha", *hashSenha)
	}

	sql, args, err := builder.
		Where(squirrel.Eq{"id_usuarios": id}).
		Suffix("RETURNING id_usuarios, nome, email, hash_senha, tipo_usuario").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update usuario query: %w", err)
	}

	var usuario models.Usuario
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&usuario.ID, &usuario.Nome, &usuario.Email, &usuario.HashSenha, &usuario.TipoUsuario)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Usuario", id, "Usuário não encontrado")
		}
		if dberrors.IsUniqueViolation(err, "usuarios_email_key") {
			return nil, apperrors.Conflict("Usuario", "email já cadastrado")
		}
		return nil, fmt.Errorf("error updating usuario: %w", err)
	}

	return &usuario, nil
}

// GetByEmail retrieves an account by email, nil when absent.
func (r *UsuarioRepository) GetByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	sql, args, err := r.sb.Select("id_usuarios", "nome", "email", "hash_senha", "tipo_usuario").
		From("usuarios").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get usuario query: %w", err)
	}

	var usuario models.Usuario
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&usuario.ID, &usuario.Nome, &usuario.Email, &usuario.HashSenha, &usuario.TipoUsuario)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving usuario: %w", err)
	}

	return &usuario, nil
}

// Delete removes an account row. Callers only reach this after resolving the
// id from a role row, so a zero row count is an invariant violation.
func (r *UsuarioRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("usuarios").
		Where(squirrel.Eq{"id_usuarios": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete usuario query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.Invariant("Usuario", id, "usuário ausente ao remover conta")
	}
	return nil
}
