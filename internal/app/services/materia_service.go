package services

import (
	"context"
	"strings"

	"github.com/escoladigital/sge/internal/app/models"
	"github.com/escoladigital/sge/internal/app/repositories"
	"github.com/escoladigital/sge/internal/pkg/apperrors"
)

// MateriaService manages the subject catalog.
type MateriaService struct {
	materias *repositories.MateriaRepository
}

// NewMateriaService creates a new MateriaService.
func NewMateriaService(materias *repositories.MateriaRepository) *MateriaService {
	return &MateriaService{materias: materias}
}

// List retrieves all subjects.
func (s *MateriaService) List(ctx context.Context) ([]*models.Materia, error) {
	return s.materias.List(ctx)
}

// GetByID retrieves a subject by id, nil when absent.
func (s *MateriaService) GetByID(ctx context.Context, id int64) (*models.Materia, error) {
	return s.materias.GetByID(ctx, id)
}

// Create adds a subject to the catalog.
func (s *MateriaService) Create(ctx context.Context, novo *models.NovaMateria) (*models.Materia, error) {
	if strings.TrimSpace(novo.Nome) == "" {
		return nil, apperrors.Validation("nome da matéria é obrigatório")
	}
	return s.materias.Create(ctx, novo)
}

// Update renames a subject.
func (s *MateriaService) Update(ctx context.Context, id int64, novo *models.NovaMateria) (*models.Materia, error) {
	if strings.TrimSpace(novo.Nome) == "" {
		return nil, apperrors.Validation("nome da matéria é obrigatório")
	}
	return s.materias.Update(ctx, id, novo)
}

// Delete removes a subject from the catalog.
func (s *MateriaService) Delete(ctx context.Context, id int64) error {
	return s.materias.Delete(ctx, id)
}
