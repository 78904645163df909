package services

import (
	"context"
	"strings"

	"github.com/escoladigital/sge/internal/app/models"
	"github.com/escoladigital/sge/internal/app/repositories"
	"github.com/escoladigital/sge/internal/pkg/apperrors"
)

// TurmaService manages school classes.
type TurmaService struct {
	turmas *repositories.TurmaRepository
}

// NewTurmaService creates a new TurmaService.
func NewTurmaService(turmas *repositories.TurmaRepository) *TurmaService {
	return &TurmaService{turmas: turmas}
}

// List retrieves all classes.
func (s *TurmaService) List(ctx context.Context) ([]*models.Turma, error) {
	return s.turmas.List(ctx)
}

// GetByID retrieves a class by id, nil when absent.
func (s *TurmaService) GetByID(ctx context.Context, id int64) (*models.Turma, error) {
	return s.turmas.GetByID(ctx, id)
}

// Create adds a class.
func (s *TurmaService) Create(ctx context.Context, novo *models.NovaTurma) (*models.Turma, error) {
	if strings.TrimSpace(novo.Nome) == "" {
		return nil, apperrors.Validation("nome da turma é obrigatório")
	}
	return s.turmas.Create(ctx, novo)
}

// Update rewrites a class.
func (s *TurmaService) Update(ctx context.Context, id int64, novo *models.NovaTurma) (*models.Turma, error) {
	if strings.TrimSpace(novo.Nome) == "" {
		return nil, apperrors.Validation("nome da turma é obrigatório")
	}
	return s.turmas.Update(ctx, id, novo)
}

// Delete removes a class.
func (s *TurmaService) Delete(ctx context.Context, id int64) error {
	return s.turmas.Delete(ctx, id)
}
