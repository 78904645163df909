package models

// Professor is a persisted teacher record. Its lifetime is coupled to the
// nested Usuario: the two rows are created and destroyed together.
type Professor struct {
	ID                      int64    `json:"id" db:"id_professores"`
	Usuario                 *Usuario `json:"usuario"`
	DisciplinaEspecialidade string   `json:"disciplina_especialidade" db:"disciplina_especialidade"`
}

// NovoProfessor is the draft shape for creating or updating a teacher.
type NovoProfessor struct {
	Usuario                 NovoUsuario
	DisciplinaEspecialidade string
}
