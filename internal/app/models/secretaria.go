package models

// Secretaria is a persisted secretarial-staff record wrapping a Usuario.
type Secretaria struct {
	ID      int64    `json:"id" db:"id_secretaria"`
	Usuario *Usuario `json:"usuario"`
}

// NovaSecretaria is the draft shape for creating or updating a secretaria.
// It has no role-specific fields beyond the nested account.
type NovaSecretaria struct {
	Usuario NovoUsuario
}
