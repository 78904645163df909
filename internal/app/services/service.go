// Package services holds the business rules sitting between the HTTP
// controllers and the repositories. Composite account operations run inside a
// single transaction so an account row never outlives its role row.
package services

import (
	"github.com/escoladigital/sge/internal/app/models"
	"github.com/escoladigital/sge/internal/pkg/auth"
)

// hashedUsuario turns an account draft into a persistable row with the
// plaintext password replaced by its bcrypt hash.
func hashedUsuario(novo models.NovoUsuario) (*models.Usuario, error) {
	hash, err := auth.HashPassword(novo.Senha)
	if err != nil {
		return nil, err
	}
	return &models.Usuario{
		Nome:        novo.Nome,
		Email:       novo.Email,
		HashSenha:   hash,
		TipoUsuario: novo.TipoUsuario,
	}, nil
}

// optionalHash hashes the password only when one was supplied, so updates
// without a new password keep the stored hash untouched.
func optionalHash(senha string) (*string, error) {
	if senha == "" {
		return nil, nil
	}
	hash, err := auth.HashPassword(senha)
	if err != nil {
		return nil, err
	}
	return &hash, nil
}
