package dto

import "github.com/escoladigital/sge/internal/app/models"

// NovoAlunoRequest is the create/update payload for students. Every
// demographic field is optional; a malformed birth date is normalized to null
// rather than rejected.
type NovoAlunoRequest struct {
	Usuario NovoUsuarioRequest `json:"usuario"`

	DataNascimento       *string `json:"dataNascimento"`
	DataNascimentoSnake  *string `json:"data_nascimento"`
	ResponsavelNome      *string `json:"responsavelNome"`
	ResponsavelNomeSnake *string `json:"responsavel_nome"`
	NomePai              *string `json:"nomePai"`
	NomePaiSnake         *string `json:"nome_pai"`
	NomeMae              *string `json:"nomeMae"`
	NomeMaeSnake         *string `json:"nome_mae"`
	ProfissaoPai         *string `json:"profissaoPai"`
	ProfissaoPaiSnake    *string `json:"profissao_pai"`
	ProfissaoMae         *string `json:"profissaoMae"`
	ProfissaoMaeSnake    *string `json:"profissao_mae"`
	TelefonePai          *string `json:"telefonePai"`
	TelefonePaiSnake     *string `json:"telefone_pai"`
	TelefoneMae          *string `json:"telefoneMae"`
	TelefoneMaeSnake     *string `json:"telefone_mae"`
	EmailPai             *string `json:"emailPai"`
	EmailPaiSnake        *string `json:"email_pai"`
	EmailMae             *string `json:"emailMae"`
	EmailMaeSnake        *string `json:"email_mae"`

	// Single-word fields spell the same in both conventions.
	Alergias *string `json:"alergias"`
	Idade    *int    `json:"idade"`
	Religiao *string `json:"religiao"`
}

// Normalize resolves the dual-spelling fields into a canonical draft and
// applies the birth-date leniency.
func (r NovoAlunoRequest) Normalize() models.NovoAluno {
	return models.NovoAluno{
		Usuario:         r.Usuario.Normalize(),
		DataNascimento:  models.NormalizeBirthDate(pickStringPtr(r.DataNascimento, r.DataNascimentoSnake)),
		ResponsavelNome: pickStringPtr(r.ResponsavelNome, r.ResponsavelNomeSnake),
		NomePai:         pickStringPtr(r.NomePai, r.NomePaiSnake),
		NomeMae:         pickStringPtr(r.NomeMae, r.NomeMaeSnake),
		ProfissaoPai:    pickStringPtr(r.ProfissaoPai, r.ProfissaoPaiSnake),
		ProfissaoMae:    pickStringPtr(r.ProfissaoMae, r.ProfissaoMaeSnake),
		Alergias:        r.Alergias,
		TelefonePai:     pickStringPtr(r.TelefonePai, r.TelefonePaiSnake),
		TelefoneMae:     pickStringPtr(r.TelefoneMae, r.TelefoneMaeSnake),
		EmailPai:        pickStringPtr(r.EmailPai, r.EmailPaiSnake),
		EmailMae:        pickStringPtr(r.EmailMae, r.EmailMaeSnake),
		Idade:           r.Idade,
		Religiao:        r.Religiao,
	}
}
