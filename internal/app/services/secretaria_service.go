package services

import (
	"context"

	"github.com/escoladigital/sge/internal/app/models"
	"github.com/escoladigital/sge/internal/app/repositories"
	"github.com/escoladigital/sge/internal/pkg/logger"
)

// SecretariaService manages secretarial-staff accounts. The role table carries
// no columns of its own beyond the account link, so updates only rewrite the
// account row and re-confirm the role row.
type SecretariaService struct {
	db          repositories.Pool
	usuarios    *repositories.UsuarioRepository
	secretarias *repositories.SecretariaRepository
}

// NewSecretariaService creates a new SecretariaService.
func NewSecretariaService(db repositories.Pool, usuarios *repositories.UsuarioRepository, secretarias *repositories.SecretariaRepository) *SecretariaService {
	return &SecretariaService{db: db, usuarios: usuarios, secretarias: secretarias}
}

// Create persists the account row and the secretaria row atomically.
func (s *SecretariaService) Create(ctx context.Context, novo *models.NovaSecretaria) (*models.Secretaria, error) {
	usuario, err := hashedUsuario(novo.Usuario)
	if err != nil {
		return nil, err
	}
	usuario.TipoUsuario = models.TipoSecretaria

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

	secretaria, err := s.secretarias.WithTx(tx).Create(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	secretaria.Usuario = usuario
	logger.Info().Int64("secretariaId", secretaria.ID).Int64("usuarioId", usuarioID).Msg("Secretaria created")
	return secretaria, nil
}

// GetByID retrieves a secretaria by id, nil when absent.
func (s *SecretariaService) GetByID(ctx context.Context, id int64) (*models.Secretaria, error) {
	return s.secretarias.GetByID(ctx, id)
}

// GetByUsuarioID retrieves the secretaria owning the given account, nil when
// absent.
func (s *SecretariaService) GetByUsuarioID(ctx context.Context, usuarioID int64) (*models.Secretaria, error) {
	return s.secretarias.GetByUsuarioID(ctx, usuarioID)
}

// List retrieves all secretarias.
func (s *SecretariaService) List(ctx context.Context) ([]*models.Secretaria, error) {
	return s.secretarias.List(ctx)
}

// Update rewrites the account row atomically and re-confirms the role row.
func (s *SecretariaService) Update(ctx context.Context, id int64, novo *models.NovaSecretaria) (*models.Secretaria, error) {
	hashSenha, err := optionalHash(novo.Usuario.Senha)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	usuarioID, err := s.secretarias.WithTx(tx).ResolveUsuarioID(ctx, id)
	if err != nil {
		return nil, err
	}

	usuario, err := s.usuarios.WithTx(tx).Update(ctx, usuarioID, novo.Usuario.Nome, novo.Usuario.Email, models.TipoSecretaria, hashSenha)
	if err != nil {
		return nil, err
	}

	if err := s.secretarias.WithTx(tx).ConfirmExists(ctx, id); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &models.Secretaria{ID: id, Usuario: usuario}, nil
}

// Delete removes the secretaria row and then the account row atomically.
func (s *SecretariaService) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	usuarioID, err := s.secretarias.WithTx(tx).ResolveUsuarioID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.secretarias.WithTx(tx).Delete(ctx, id); err != nil {
		return err
	}
	if err := s.usuarios.WithTx(tx).Delete(ctx, usuarioID); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	logger.Info().Int64("secretariaId", id).Int64("usuarioId", usuarioID).Msg("Secretaria deleted")
	return nil
}
