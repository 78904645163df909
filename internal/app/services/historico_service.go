package services

import (
	"context"
	"strings"

	"github.com/escoladigital/sge/internal/app/models"
	"github.com/escoladigital/sge/internal/app/repositories"
	"github.com/escoladigital/sge/internal/pkg/apperrors"
)

// HistoricoService manages student transcripts.
type HistoricoService struct {
	historicos *repositories.HistoricoRepository
}

// NewHistoricoService creates a new HistoricoService.
func NewHistoricoService(historicos *repositories.HistoricoRepository) *HistoricoService {
	return &HistoricoService{historicos: historicos}
}

func validateHistorico(novo *models.NovoHistoricoEscolar) error {
	if novo.IDAluno == 0 {
		return apperrors.Validation("idAluno é obrigatório")
	}
	if strings.TrimSpace(novo.NomeEscola) == "" {
		return apperrors.Validation("nomeEscola é obrigatório")
	}
	return nil
}

// List retrieves all transcripts.
func (s *HistoricoService) List(ctx context.Context) ([]*models.HistoricoEscolar, error) {
	return s.historicos.List(ctx)
}

// GetByID retrieves a transcript by id, nil when absent.
func (s *HistoricoService) GetByID(ctx context.Context, id int64) (*models.HistoricoEscolar, error) {
	return s.historicos.GetByID(ctx, id)
}

// ListByAluno retrieves all transcripts belonging to a student.
func (s *HistoricoService) ListByAluno(ctx context.Context, alunoID int64) ([]*models.HistoricoEscolar, error) {
	return s.historicos.ListByAluno(ctx, alunoID)
}

// Create records a transcript for a student.
func (s *HistoricoService) Create(ctx context.Context, novo *models.NovoHistoricoEscolar) (*models.HistoricoEscolar, error) {
	if err := validateHistorico(novo); err != nil {
		return nil, err
	}
	return s.historicos.Create(ctx, novo)
}

// Update rewrites a transcript.
func (s *HistoricoService) Update(ctx context.Context, id int64, novo *models.NovoHistoricoEscolar) (*models.HistoricoEscolar, error) {
	if err := validateHistorico(novo); err != nil {
		return nil, err
	}
	return s.historicos.Update(ctx, id, novo)
}

// Delete removes a transcript.
func (s *HistoricoService) Delete(ctx context.Context, id int64) error {
	return s.historicos.Delete(ctx, id)
}
