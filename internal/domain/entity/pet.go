package entity

import "time"

// Pet representa um animal de um cliente.
type Pet struct {
	ID        string
	ClientID  string
	Name      string
	Species   string // cachorro, gato, ave, ...
	Breed     string
	BirthDate *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
