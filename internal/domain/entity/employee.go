package entity

import "time"

// Papéis de funcionário.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// Employee representa um funcionário da loja. É o principal de autenticação:
// o login da API é feito com email e senha de funcionário.
type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Phone        string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
