package dto

import "github.com/escoladigital/sge/internal/app/models"

// NovoUsuarioRequest is the nested account payload of composite creates and
// updates.
type NovoUsuarioRequest struct {
	Nome             string  `json:"nome"`
	Email            string  `json:"email"`
	Senha            string  `json:"senha"`
	TipoUsuario      *string `json:"tipoUsuario"`
	TipoUsuarioSnake *string `json:"tipo_usuario"`
}

// Normalize resolves the dual-spelling fields into a canonical draft.
func (r NovoUsuarioRequest) Normalize() models.NovoUsuario {
	return models.NovoUsuario{
		Nome:        r.Nome,
		Email:       r.Email,
		Senha:       r.Senha,
		TipoUsuario: models.TipoUsuario(pickString(r.TipoUsuario, r.TipoUsuarioSnake)),
	}
}
