package repository

import "github.com/petlife/petshop-api/internal/domain/entity"

// ClientRepository define o porto de persistência para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByCPF(cpf string) (*entity.Client, error)
	List(limit, offset int) ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
