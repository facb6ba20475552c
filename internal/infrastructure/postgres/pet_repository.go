package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/petlife/petshop-api/internal/domain/entity"
	"github.com/petlife/petshop-api/internal/domain/repository"
)

var _ repository.PetRepository = (*PetRepo)(nil)

// PetRepo implementação de PetRepository (usável com pool ou tx).
type PetRepo struct {
	q Querier
}

// NewPetRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewPetRepository(q Querier) *PetRepo {
	return &PetRepo{q: q}
}

// Create persiste um novo pet.
func (r *PetRepo) Create(pet *entity.Pet) error {
	query := `
		INSERT INTO pets (id, client_id, name, species, breed, birth_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		pet.ID, pet.ClientID, pet.Name, pet.Species, pet.Breed, pet.BirthDate,
		pet.CreatedAt, pet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pet: %w", err)
	}
	return nil
}

// GetByID obtém um pet por ID. Retorna nil se não existir.
func (r *PetRepo) GetByID(id string) (*entity.Pet, error) {
	query := `
		SELECT id, client_id, name, species, breed, birth_date, created_at, updated_at
		FROM pets WHERE id = $1`
	var p entity.Pet
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ClientID, &p.Name, &p.Species, &p.Breed, &p.BirthDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pet: %w", err)
	}
	return &p, nil
}

// ListByClient lista pets de um cliente com paginação.
func (r *PetRepo) ListByClient(clientID string, limit, offset int) ([]*entity.Pet, error) {
	query := `
		SELECT id, client_id, name, species, breed, birth_date, created_at, updated_at
		FROM pets WHERE client_id = $3 ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.scanPets(query, limit, offset, clientID)
}

// List lista pets com paginação.
func (r *PetRepo) List(limit, offset int) ([]*entity.Pet, error) {
	query := `
		SELECT id, client_id, name, species, breed, birth_date, created_at, updated_at
		FROM pets ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.scanPets(query, limit, offset)
}

func (r *PetRepo) scanPets(query string, args ...any) ([]*entity.Pet, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pet
	for rows.Next() {
		var p entity.Pet
		if err := rows.Scan(&p.ID, &p.ClientID, &p.Name, &p.Species, &p.Breed, &p.BirthDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pet: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update atualiza um pet existente.
func (r *PetRepo) Update(pet *entity.Pet) error {
	query := `
		UPDATE pets SET name = $2, species = $3, breed = $4, birth_date = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		pet.ID, pet.Name, pet.Species, pet.Breed, pet.BirthDate, pet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pet: %w", err)
	}
	return nil
}

// Delete remove um pet por ID.
func (r *PetRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pet: %w", err)
	}
	return nil
}
