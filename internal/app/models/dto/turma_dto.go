package dto

import "github.com/escoladigital/sge/internal/app/models"

// NovaTurmaRequest is the create/update payload for classes.
type NovaTurmaRequest struct {
	Nome                  string  `json:"nome"`
	AnoEscolar            *int    `json:"anoEscolar"`
	AnoEscolarSnake       *int    `json:"ano_escolar"`
	QuantidadeMaxima      *int    `json:"quantidadeMaxima"`
	QuantidadeMaximaSnake *int    `json:"quantidade_maxima"`
	Turno                 string  `json:"turno"`
	Serie                 string  `json:"serie"`
}

// Normalize resolves the dual-spelling fields into a canonical draft.
func (r NovaTurmaRequest) Normalize() models.NovaTurma {
	return models.NovaTurma{
		Nome:             r.Nome,
		AnoEscolar:       pickInt(r.AnoEscolar, r.AnoEscolarSnake),
		QuantidadeMaxima: pickInt(r.QuantidadeMaxima, r.QuantidadeMaximaSnake),
		Turno:            r.Turno,
		Serie:            r.Serie,
	}
}
