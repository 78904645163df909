package services

import (
	"context"

	"github.com/escoladigital/sge/internal/app/models"
	"github.com/escoladigital/sge/internal/app/repositories"
	"github.com/escoladigital/sge/internal/pkg/logger"
)

// AlunoService manages student accounts together with their demographic
// record. Mutations span the 'usuarios' and 'alunos' tables in one
// transaction.
type AlunoService struct {
	db       repositories.Pool
	usuarios *repositories.UsuarioRepository
	alunos   *repositories.AlunoRepository
}

// NewAlunoService creates a new AlunoService.
func NewAlunoService(db repositories.Pool, usuarios *repositories.UsuarioRepository, alunos *repositories.AlunoRepository) *AlunoService {
	return &AlunoService{db: db, usuarios: usuarios, alunos: alunos}
}

// Create persists the account row and the student row atomically.
func (s *AlunoService) Create(ctx context.Context, novo *models.NovoAluno) (*models.Aluno, error) {
	usuario, err := hashedUsuario(novo.Usuario)
	if err != nil {
		return nil, err
	}
	usuario.TipoUsuario = models.TipoAluno

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	usuarioID, err := s.usuarios.WithTx(tx).Create(ctx, usuario)
	if err != nil {
		return nil, err
	}
	usuario.ID = usuarioID

	aluno, err := s.alunos.WithTx(tx).Create(ctx, usuarioID, novo)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	aluno.Usuario = usuario
	logger.Info().Int64("alunoId", aluno.ID).Int64("usuarioId", usuarioID).Msg("Aluno created")
	return aluno, nil
}

// GetByID retrieves a student by id, nil when absent.
func (s *AlunoService) GetByID(ctx context.Context, id int64) (*models.Aluno, error) {
	return s.alunos.GetByID(ctx, id)
}

// GetByUsuarioID retrieves the student owning the given account, nil when
// absent.
func (s *AlunoService) GetByUsuarioID(ctx context.Context, usuarioID int64) (*models.Aluno, error) {
	return s.alunos.GetByUsuarioID(ctx, usuarioID)
}

// List retrieves all students.
func (s *AlunoService) List(ctx context.Context) ([]*models.Aluno, error) {
	return s.alunos.List(ctx)
}

// Update mutates the account and student rows atomically. The password is only
// re-hashed when the draft carries a new one.
func (s *AlunoService) Update(ctx context.Context, id int64, novo *models.NovoAluno) (*models.Aluno, error) {
	hashSenha, err := optionalHash(novo.Usuario.Senha)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	usuarioID, err := s.alunos.WithTx(tx).ResolveUsuarioID(ctx, id)
	if err != nil {
		return nil, err
	}

	usuario, err := s.usuarios.WithTx(tx).Update(ctx, usuarioID, novo.Usuario.Nome, novo.Usuario.Email, models.TipoAluno, hashSenha)
	if err != nil {
		return nil, err
	}

	aluno, err := s.alunos.WithTx(tx).UpdateFields(ctx, id, novo)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	aluno.Usuario = usuario
	return aluno, nil
}

// Delete removes the student row and then the account row atomically.
func (s *AlunoService) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	usuarioID, err := s.alunos.WithTx(tx).ResolveUsuarioID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.alunos.WithTx(tx).Delete(ctx, id); err != nil {
		return err
	}
	if err := s.usuarios.WithTx(tx).Delete(ctx, usuarioID); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	logger.Info().Int64("alunoId", id).Int64("usuarioId", usuarioID).Msg("Aluno deleted")
	return nil
}
