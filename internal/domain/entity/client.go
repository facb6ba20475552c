package entity

import "time"

// Client representa um cliente (tutor) da loja.
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CPF       string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
