package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/escoladigital/sge/internal/app/models"
	"github.com/escoladigital/sge/internal/pkg/apperrors"
)

const msgAlunoNaoEncontrado = "Aluno não encontrado"

// AlunoRepository handles student rows in the 'alunos' table and their joined
// account rows.
type AlunoRepository struct {
	db DB
	sb squirrel.StatementBuilderType
}

// NewAlunoRepository creates a new AlunoRepository.
func NewAlunoRepository(db DB) *AlunoRepository {
	return &AlunoRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *AlunoRepository) WithTx(tx pgx.Tx) *AlunoRepository {
	return &AlunoRepository{db: tx, sb: r.sb}
}

var alunoColumns = []string{
	"a.id_alunos", "a.data_nascimento", "a.responsavel_nome",
	"a.nome_pai", "a.nome_mae", "a.profissao_pai", "a.profissao_mae",
	"a.alergias", "a.telefone_pai", "a.telefone_mae",
	"a.email_pai", "a.email_mae", "a.idade", "a.religiao",
}

func (r *AlunoRepository) joinSelect() squirrel.SelectBuilder {
	cols := append(append([]string{}, alunoColumns...),
		"u.id_usuarios", "u.nome", "u.email", "u.hash_senha", "u.tipo_usuario")
	return r.sb.Select(cols...).
		From("alunos a").
		Join("usuarios u ON a.usuario_id = u.id_usuarios")
}

func scanAluno(row pgx.Row) (*models.Aluno, error) {
	aluno := &models.Aluno{Usuario: &models.Usuario{}}
	var nascimento *time.Time
	err := row.Scan(
		&aluno.ID, &nascimento, &aluno.ResponsavelNome,
		&aluno.NomePai, &aluno.NomeMae, &aluno.ProfissaoPai, &aluno.ProfissaoMae,
		&aluno.Alergias, &aluno.TelefonePai, &aluno.TelefoneMae,
		&aluno.EmailPai, &aluno.EmailMae, &aluno.Idade, &aluno.Religiao,
		&aluno.Usuario.ID, &aluno.Usuario.Nome, &aluno.Usuario.Email,
		&aluno.Usuario.HashSenha, &aluno.Usuario.TipoUsuario,
	)
	if err != nil {
		return nil, err
	}
	if nascimento != nil {
		formatted := nascimento.Format("2006-01-02")
		aluno.DataNascimento = &formatted
	}
	return aluno, nil
}

func alunoFromDraft(id int64, novo *models.NovoAluno) *models.Aluno {
	return &models.Aluno{
		ID:              id,
		DataNascimento:  novo.DataNascimento,
		ResponsavelNome: novo.ResponsavelNome,
		NomePai:         novo.NomePai,
		NomeMae:         novo.NomeMae,
		ProfissaoPai:    novo.ProfissaoPai,
		ProfissaoMae:    novo.ProfissaoMae,
		Alergias:        novo.Alergias,
		TelefonePai:     novo.TelefonePai,
		TelefoneMae:     novo.TelefoneMae,
		EmailPai:        novo.EmailPai,
		EmailMae:        novo.EmailMae,
		Idade:           novo.Idade,
		Religiao:        novo.Religiao,
	}
}

// Create inserts the role half of a student account.
func (r *AlunoRepository) Create(ctx context.Context, usuarioID int64, novo *models.NovoAluno) (*models.Aluno, error) {
	sql, args, err := r.sb.Insert("alunos").
		Columns("usuario_id", "data_nascimento", "responsavel_nome",
			"nome_pai", "nome_mae", "profissao_pai", "profissao_mae",
			"alergias", "telefone_pai", "telefone_mae",
			"email_pai", "email_mae", "idade", "religiao").
		Values(usuarioID, novo.DataNascimento, novo.ResponsavelNome,
			novo.NomePai, novo.NomeMae, novo.ProfissaoPai, novo.ProfissaoMae,
			novo.Alergias, novo.TelefonePai, novo.TelefoneMae,
			novo.EmailPai, novo.EmailMae, novo.Idade, novo.Religiao).
		Suffix("RETURNING id_alunos").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create aluno query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return nil, fmt.Errorf("error creating aluno: %w", err)
	}
	return alunoFromDraft(id, novo), nil
}

// GetByID retrieves a student with its account, nil when absent.
func (r *AlunoRepository) GetByID(ctx context.Context, id int64) (*models.Aluno, error) {
	sql, args, err := r.joinSelect().
		Where(squirrel.Eq{"a.id_alunos": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get aluno query: %w", err)
	}

	aluno, err := scanAluno(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving aluno: %w", err)
	}
	return aluno, nil
}

// GetByUsuarioID retrieves the student record owning the given account,
// nil when absent.
func (r *AlunoRepository) GetByUsuarioID(ctx context.Context, usuarioID int64) (*models.Aluno, error) {
	sql, args, err := r.joinSelect().
		Where(squirrel.Eq{"a.usuario_id": usuarioID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get aluno by usuario query: %w", err)
	}

	aluno, err := scanAluno(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving aluno: %w", err)
	}
	return aluno, nil
}

// List retrieves all students with their accounts.
func (r *AlunoRepository) List(ctx context.Context) ([]*models.Aluno, error) {
	sql, args, err := r.joinSelect().ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list alunos query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying alunos: %w", err)
	}
	defer rows.Close()

	alunos := make([]*models.Aluno, 0)
	for rows.Next() {
		aluno, err := scanAluno(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning aluno: %w", err)
		}
		alunos = append(alunos, aluno)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alunos: %w", err)
	}

	return alunos, nil
}

// ResolveUsuarioID returns the foreign key to the account row owning the
// student record.
func (r *AlunoRepository) ResolveUsuarioID(ctx context.Context, id int64) (int64, error) {
	sql, args, err := r.sb.Select("usuario_id").
		From("alunos").
		Where(squirrel.Eq{"id_alunos": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build resolve aluno query: %w", err)
	}

	var usuarioID int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&usuarioID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NotFound("Aluno", id, msgAlunoNaoEncontrado)
		}
		return 0, fmt.Errorf("error resolving aluno: %w", err)
	}
	return usuarioID, nil
}

// UpdateFields mutates the demographic columns. Callers already verified
// existence, so a missing row here is an invariant violation.
func (r *AlunoRepository) UpdateFields(ctx context.Context, id int64, novo *models.NovoAluno) (*models.Aluno, error) {
	sql, args, err := r.sb.Update("alunos").
		Set("data_nascimento", novo.DataNascimento).
		Set("responsavel_nome", novo.ResponsavelNome).
		Set("nome_pai", novo.NomePai).
		Set("nome_mae", novo.NomeMae).
		Set("profissao_pai", novo.ProfissaoPai).
		Set("profissao_mae", novo.ProfissaoMae).
		Set("alergias", novo.Alergias).
		Set("telefone_pai", novo.TelefonePai).
		Set("telefone_mae", novo.TelefoneMae).
		Set("email_pai", novo.EmailPai).
		Set("email_mae", novo.EmailMae).
		Set("idade", novo.Idade).
		Set("religiao", novo.Religiao).
		Where(squirrel.Eq{"id_alunos": id}).
		Suffix("RETURNING id_alunos").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update aluno query: %w", err)
	}

	var updatedID int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Invariant("Aluno", id, "aluno ausente após verificação de existência")
		}
		return nil, fmt.Errorf("error updating aluno: %w", err)
	}
	return alunoFromDraft(updatedID, novo), nil
}

// Delete removes the role row. Callers already resolved the id, so a zero
// row count is an invariant violation.
func (r *AlunoRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("alunos").
		Where(squirrel.Eq{"id_alunos": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete aluno query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting aluno: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.Invariant("Aluno", id, "aluno ausente após verificação de existência")
	}
	return nil
}
