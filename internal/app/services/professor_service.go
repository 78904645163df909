package services

import (
	"context"

	"github.com/escoladigital/sge/internal/app/models"
	"github.com/escoladigital/sge/internal/app/repositories"
	"github.com/escoladigital/sge/internal/pkg/logger"
)

// ProfessorService manages teacher accounts. Every mutation touches both the
// 'usuarios' and 'professores' tables, so it runs inside one transaction.
type ProfessorService struct {
	db          repositories.Pool
	usuarios    *repositories.UsuarioRepository
	professores *repositories.ProfessorRepository
}

// NewProfessorService creates a new ProfessorService.
func NewProfessorService(db repositories.Pool, usuarios *repositories.UsuarioRepository, professores *repositories.ProfessorRepository) *ProfessorService {
	return &ProfessorService{db: db, usuarios: usuarios, professores: professores}
}

// Create persists the account row and the teacher row atomically.
func (s *ProfessorService) Create(ctx context.Context, novo *models.NovoProfessor) (*models.Professor, error) {
	usuario, err := hashedUsuario(novo.Usuario)
	if err != nil {
		return nil, err
	}
	usuario.TipoUsuario = models.TipoProfessor

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

	professor, err := s.professores.WithTx(tx).Create(ctx, usuarioID, novo.DisciplinaEspecialidade)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	professor.Usuario = usuario
	logger.Info().Int64("professorId", professor.ID).Int64("usuarioId", usuarioID).Msg("Professor created")
	return professor, nil
}

// GetByID retrieves a teacher by id, nil when absent.
func (s *ProfessorService) GetByID(ctx context.Context, id int64) (*models.Professor, error) {
	return s.professores.GetByID(ctx, id)
}

// GetByUsuarioID retrieves the teacher owning the given account, nil when
// absent.
func (s *ProfessorService) GetByUsuarioID(ctx context.Context, usuarioID int64) (*models.Professor, error) {
	return s.professores.GetByUsuarioID(ctx, usuarioID)
}

// List retrieves all teachers.
func (s *ProfessorService) List(ctx context.Context) ([]*models.Professor, error) {
	return s.professores.List(ctx)
}

// Update mutates the account and teacher rows atomically. The password is only
// re-hashed when the draft carries a new one.
func (s *ProfessorService) Update(ctx context.Context, id int64, novo *models.NovoProfessor) (*models.Professor, error) {
	hashSenha, err := optionalHash(novo.Usuario.Senha)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	usuarioID, err := s.professores.WithTx(tx).ResolveUsuarioID(ctx, id)
	if err != nil {
		return nil, err
	}

	usuario, err := s.usuarios.WithTx(tx).Update(ctx, usuarioID, novo.Usuario.Nome, novo.Usuario.Email, models.TipoProfessor, hashSenha)
	if err != nil {
		return nil, err
	}

	professor, err := s.professores.WithTx(tx).UpdateDisciplina(ctx, id, novo.DisciplinaEspecialidade)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	professor.Usuario = usuario
	return professor, nil
}

// Delete removes the teacher row and then the account row atomically.
func (s *ProfessorService) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	usuarioID, err := s.professores.WithTx(tx).ResolveUsuarioID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.professores.WithTx(tx).Delete(ctx, id); err != nil {
		return err
	}
	if err := s.usuarios.WithTx(tx).Delete(ctx, usuarioID); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	logger.Info().Int64("professorId", id).Int64("usuarioId", usuarioID).Msg("Professor deleted")
	return nil
}
