package models

// Materia is a persisted subject row from the 'materias' table.
type Materia struct {
	ID   int64  `json:"id" db:"id_materias"`
	Nome string `json:"nome" db:"nome"`
}

// NovaMateria is the draft shape for creating or updating a subject.
type NovaMateria struct {
	Nome string
}
