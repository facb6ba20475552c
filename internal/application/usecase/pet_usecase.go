package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/petlife/petshop-api/internal/application/dto"
	"github.com/petlife/petshop-api/internal/domain"
	"github.com/petlife/petshop-api/internal/domain/entity"
	"github.com/petlife/petshop-api/internal/domain/repository"
)

// PetUseCase casos de uso CRUD para pets.
type PetUseCase struct {
	repo       repository.PetRepository
	clientRepo repository.ClientRepository
}

// NewPetUseCase constrói o caso de uso.
func NewPetUseCase(repo repository.PetRepository, clientRepo repository.ClientRepository) *PetUseCase {
	return &PetUseCase{repo: repo, clientRepo: clientRepo}
}

// Create cadastra um pet. O cliente dono precisa existir.
func (uc *PetUseCase) Create(in dto.CreatePetRequest) (*dto.PetResponse, error) {
	if in.ClienteID == "" || in.Name == "" || in.Species == "" {
		return nil, domain.ErrInvalidInput
	}
	owner, err := uc.clientRepo.GetByID(in.ClienteID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, in.ClienteID)
	}
	now := time.Now()
	pet := &entity.Pet{
		ID:        uuid.New().String(),
		ClientID:  in.ClienteID,
		Name:      in.Name,
		Species:   in.Species,
		Breed:     in.Breed,
		BirthDate: in.BirthDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(pet); err != nil {
		return nil, err
	}
	return toPetResponse(pet), nil
}

// GetByID obtém um pet por ID.
func (uc *PetUseCase) GetByID(id string) (*dto.PetResponse, error) {
	pet, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, fmt.Errorf("%w: pet %s", domain.ErrNotFound, id)
	}
	return toPetResponse(pet), nil
}

// Update atualiza dados do pet.
func (uc *PetUseCase) Update(id string, in dto.UpdatePetRequest) (*dto.PetResponse, error) {
	pet, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, fmt.Errorf("%w: pet %s", domain.ErrNotFound, id)
	}
	if in.Name != "" {
		pet.Name = in.Name
	}
	if in.Species != "" {
		pet.Species = in.Species
	}
	if in.Breed != "" {
		pet.Breed = in.Breed
	}
	if in.BirthDate != nil {
		pet.BirthDate = in.BirthDate
	}
	pet.UpdatedAt = time.Now()
	if err := uc.repo.Update(pet); err != nil {
		return nil, err
	}
	return toPetResponse(pet), nil
}

// List lista pets, opcionalmente filtrados por cliente.
func (uc *PetUseCase) List(clientID string, limit, offset int) (*dto.PetListResponse, error) {
	var list []*entity.Pet
	var err error
	if clientID != "" {
		list, err = uc.repo.ListByClient(clientID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	resp := &dto.PetListResponse{
		Items: make([]dto.PetResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, p := range list {
		resp.Items = append(resp.Items, *toPetResponse(p))
	}
	return resp, nil
}

// Delete remove um pet por ID.
func (uc *PetUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toPetResponse(p *entity.Pet) *dto.PetResponse {
	if p == nil {
		return nil
	}
	return &dto.PetResponse{
		ID:        p.ID,
		ClienteID: p.ClientID,
		Name:      p.Name,
		Species:   p.Species,
		Breed:     p.Breed,
		BirthDate: p.BirthDate,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
