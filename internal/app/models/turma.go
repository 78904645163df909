package models

import "time"

// Turma is a persisted class row from the 'turmas' table.
type Turma struct {
	ID               int64     `json:"id" db:"id_turmas"`
	Nome             string    `json:"nome" db:"nome"`
	AnoEscolar       int       `json:"anoEscolar" db:"ano_escolar"`
	QuantidadeMaxima int       `json:"quantidadeMaxima" db:"quantidade_maxima"`
	Turno            string    `json:"turno" db:"turno"`
	Serie            string    `json:"serie" db:"serie"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}

// NovaTurma is the draft shape for creating or updating a class.
type NovaTurma struct {
	Nome             string
	AnoEscolar       int
	QuantidadeMaxima int
	Turno            string
	Serie            string
}
