package dto

import "time"

// CreatePetRequest corpo para cadastrar um pet.
type CreatePetRequest struct {
	ClienteID string     `json:"clienteId"`
	Name      string     `json:"name"`
	Species   string     `json:"species"`
	Breed     string     `json:"breed"`
	BirthDate *time.Time `json:"birthDate"`
}

// UpdatePetRequest corpo para atualizar um pet.
type UpdatePetRequest struct {
	Name      string     `json:"name"`
	Species   string     `json:"species"`
	Breed     string     `json:"breed"`
	BirthDate *time.Time `json:"birthDate"`
}

// PetResponse pet na resposta.
type PetResponse struct {
	ID        string     `json:"id"`
	ClienteID string     `json:"clienteId"`
	Name      string     `json:"name"`
	Species   string     `json:"species"`
	Breed     string     `json:"breed"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// PetListResponse listagem paginada de pets.
type PetListResponse struct {
	Items []PetResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
