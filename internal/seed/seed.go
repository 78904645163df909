// Package seed creates the default records a fresh install needs: one
// secretaria account to bootstrap administration and a starter subject
// catalog. Every step is idempotent.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/escoladigital/sge/internal/app/models"
	"github.com/escoladigital/sge/internal/app/repositories"
	"github.com/escoladigital/sge/internal/app/services"
	"github.com/escoladigital/sge/internal/pkg/apperrors"
	"github.com/escoladigital/sge/internal/pkg/logger"
)

const (
	defaultSecretariaEmail = "secretaria@escola.local"
	defaultSecretariaSenha = "mudar123"
)

var defaultMaterias = []string{
	"Português",
	"Matemática",
	"História",
	"Geografia",
	"Ciências",
}

// CreateDefaultData seeds the default secretaria account and subject catalog.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool) error {
	usuarioRepo := repositories.NewUsuarioRepository(dbPool)
	secretariaRepo := repositories.NewSecretariaRepository(dbPool)
	materiaRepo := repositories.NewMateriaRepository(dbPool)

	var finalErr error

	secretariaService := services.NewSecretariaService(dbPool, usuarioRepo, secretariaRepo)

	existing, err := usuarioRepo.GetByEmail(ctx, defaultSecretariaEmail)
	if err != nil {
		finalErr = errors.Join(finalErr, err)
	} else if existing == nil {
		_, err := secretariaService.Create(ctx, &models.NovaSecretaria{
			Usuario: models.NovoUsuario{
				Nome:  "Secretaria Padrão",
				Email: defaultSecretariaEmail,
				Senha: defaultSecretariaSenha,
			},
		})
		if err != nil && apperrors.KindOf(err) != apperrors.KindConflict {
			logger.Error().Err(err).Msg("Error creating default secretaria account")
			finalErr = errors.Join(finalErr, err)
		} else if err == nil {
			logger.Info().Str("email", defaultSecretariaEmail).Msg("Default secretaria account created")
		}
	}

	materias, err := materiaRepo.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing materias for seeding")
		return errors.Join(finalErr, err)
	}

	present := make(map[string]bool, len(materias))
	for _, materia := range materias {
		present[materia.Nome] = true
	}

	for _, nome := range defaultMaterias {
		if present[nome] {
			continue
		}
		if _, err := materiaRepo.Create(ctx, &models.NovaMateria{Nome: nome}); err != nil {
			logger.Error().Err(err).Str("nome", nome).Msg("Error creating default materia")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
