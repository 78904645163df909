package dto

import "github.com/escoladigital/sge/internal/app/models"

// NovoHistoricoEscolarRequest is the create/update payload for transcript
// entries.
type NovoHistoricoEscolarRequest struct {
	IDAluno             *int64   `json:"idAluno"`
	IDAlunoSnake        *int64   `json:"id_aluno"`
	IDDisciplina        *int64   `json:"idDisciplina"`
	IDDisciplinaSnake   *int64   `json:"id_disciplina"`
	NomeEscola          *string  `json:"nomeEscola"`
	NomeEscolaSnake     *string  `json:"nome_escola"`
	SerieConcluida      *string  `json:"serieConcluida"`
	SerieConcluidaSnake *string  `json:"serie_concluida"`
	Nota                *float64 `json:"nota"`
	AnoConclusao        *int     `json:"anoConclusao"`
	AnoConclusaoSnake   *int     `json:"ano_conclusao"`
}

// Normalize resolves the dual-spelling fields into a canonical draft.
func (r NovoHistoricoEscolarRequest) Normalize() models.NovoHistoricoEscolar {
	var idAluno int64
	if picked := pickInt64Ptr(r.IDAluno, r.IDAlunoSnake); picked != nil {
		idAluno = *picked
	}
	return models.NovoHistoricoEscolar{
		IDAluno:        idAluno,
		IDDisciplina:   pickInt64Ptr(r.IDDisciplina, r.IDDisciplinaSnake),
		NomeEscola:     pickString(r.NomeEscola, r.NomeEscolaSnake),
		SerieConcluida: pickString(r.SerieConcluida, r.SerieConcluidaSnake),
		Nota:           pickFloat(r.Nota, nil),
		AnoConclusao:   pickInt(r.AnoConclusao, r.AnoConclusaoSnake),
	}
}
