package dto

import "github.com/escoladigital/sge/internal/app/models"

// NovaMateriaRequest is the create/update payload for subjects.
type NovaMateriaRequest struct {
	Nome string `json:"nome"`
}

// Normalize builds the canonical draft.
func (r NovaMateriaRequest) Normalize() models.NovaMateria {
	return models.NovaMateria{Nome: r.Nome}
}
