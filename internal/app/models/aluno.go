package models

import "regexp"

var birthDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// NormalizeBirthDate returns the date unchanged when it matches YYYY-MM-DD and
// nil otherwise. Malformed dates are silently dropped instead of rejected;
// candidate for stricter validation if product intent is ever clarified.
func NormalizeBirthDate(date *string) *string {
	if date == nil || !birthDatePattern.MatchString(*date) {
		return nil
	}
	return date
}

// Aluno is a persisted student record wrapping a Usuario plus optional
// demographic fields.
type Aluno struct {
	ID              int64    `json:"id" db:"id_alunos"`
	Usuario         *Usuario `json:"usuario"`
	DataNascimento  *string  `json:"data_nascimento" db:"data_nascimento"`
	ResponsavelNome *string  `json:"responsavel_nome" db:"responsavel_nome"`
	NomePai         *string  `json:"nome_pai" db:"nome_pai"`
	NomeMae         *string  `json:"nome_mae" db:"nome_mae"`
	ProfissaoPai    *string  `json:"profissao_pai" db:"profissao_pai"`
	ProfissaoMae    *string  `json:"profissao_mae" db:"profissao_mae"`
	Alergias        *string  `json:"alergias" db:"alergias"`
	TelefonePai     *string  `json:"telefone_pai" db:"telefone_pai"`
	TelefoneMae     *string  `json:"telefone_mae" db:"telefone_mae"`
	EmailPai        *string  `json:"email_pai" db:"email_pai"`
	EmailMae        *string  `json:"email_mae" db:"email_mae"`
	Idade           *int     `json:"idade" db:"idade"`
	Religiao        *string  `json:"religiao" db:"religiao"`
}

// NovoAluno is the draft shape for creating or updating a student.
type NovoAluno struct {
	Usuario         NovoUsuario
	DataNascimento  *string
	ResponsavelNome *string
	NomePai         *string
	NomeMae         *string
	ProfissaoPai    *string
	ProfissaoMae    *string
	Alergias        *string
	TelefonePai     *string
	TelefoneMae     *string
	EmailPai        *string
	EmailMae        *string
	Idade           *int
	Religiao        *string
}
