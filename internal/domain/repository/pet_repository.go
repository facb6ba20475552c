package repository

import "github.com/petlife/petshop-api/internal/domain/entity"

// PetRepository define o porto de persistência para Pet.
type PetRepository interface {
	Create(pet *entity.Pet) error
	GetByID(id string) (*entity.Pet, error)
	ListByClient(clientID string, limit, offset int) ([]*entity.Pet, error)
	List(limit, offset int) ([]*entity.Pet, error)
	Update(pet *entity.Pet) error
	Delete(id string) error
}
