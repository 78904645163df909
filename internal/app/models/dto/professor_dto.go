package dto

import "github.com/escoladigital/sge/internal/app/models"

// NovoProfessorRequest is the create/update payload for teachers.
type NovoProfessorRequest struct {
	Usuario                      NovoUsuarioRequest `json:"usuario"`
	DisciplinaEspecialidade      *string            `json:"disciplinaEspecialidade"`
	DisciplinaEspecialidadeSnake *string            `json:"disciplina_especialidade"`
}

// Normalize resolves the dual-spelling fields into a canonical draft.
func (r NovoProfessorRequest) Normalize() models.NovoProfessor {
	return models.NovoProfessor{
		Usuario:                 r.Usuario.Normalize(),
		DisciplinaEspecialidade: pickString(r.DisciplinaEspecialidade, r.DisciplinaEspecialidadeSnake),
	}
}
