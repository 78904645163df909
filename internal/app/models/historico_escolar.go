package models

import "time"

// HistoricoEscolar is a persisted transcript entry. IDDisciplina is optional:
// an entry may reference no specific subject. The student reference is
// mandatory.
type HistoricoEscolar struct {
	ID             int64     `json:"id" db:"id_historicos_escolares"`
	IDAluno        int64     `json:"idAluno" db:"id_aluno"`
	IDDisciplina   *int64    `json:"idDisciplina" db:"id_disciplina"`
	NomeEscola     string    `json:"nomeEscola" db:"nome_escola"`
	SerieConcluida string    `json:"serieConcluida" db:"serie_concluida"`
	Nota           float64   `json:"nota" db:"nota"`
	AnoConclusao   int       `json:"anoConclusao" db:"ano_conclusao"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// NovoHistoricoEscolar is the draft shape for creating or updating a
// transcript entry.
type NovoHistoricoEscolar struct {
	IDAluno        int64
	IDDisciplina   *int64
	NomeEscola     string
	SerieConcluida string
	Nota           float64
	AnoConclusao   int
}
