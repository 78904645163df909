package dto

import "github.com/escoladigital/sge/internal/app/models"

// NovaSecretariaRequest is the create/update payload for secretarial staff.
type NovaSecretariaRequest struct {
	Usuario NovoUsuarioRequest `json:"usuario"`
}

// Normalize builds the canonical draft.
func (r NovaSecretariaRequest) Normalize() models.NovaSecretaria {
	return models.NovaSecretaria{Usuario: r.Usuario.Normalize()}
}
