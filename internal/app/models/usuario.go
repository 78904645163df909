package models

// TipoUsuario is the closed set of account role tags.
type TipoUsuario string

const (
	TipoProfessor  TipoUsuario = "professor"
	TipoSecretaria TipoUsuario = "secretaria"
	TipoAluno      TipoUsuario = "aluno"
)

// Usuario is a persisted user account row from the 'usuarios' table.
type Usuario struct {
	ID          int64       `json:"id" db:"id_usuarios"`
	Nome        string      `json:"nome" db:"nome"`
	Email       string      `json:"email" db:"email"`
	HashSenha   string      `json:"hash_senha" db:"hash_senha"`
	TipoUsuario TipoUsuario `json:"tipo_usuario" db:"tipo_usuario"`
}

// NovoUsuario is the draft shape for creating or updating an account. It
// carries a plaintext Senha that must be hashed before persistence and is
// never stored as-is.
type NovoUsuario struct {
	Nome        string
	Email       string
	Senha       string
	TipoUsuario TipoUsuario
}
