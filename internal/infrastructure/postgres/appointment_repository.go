package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/petlife/petshop-api/internal/domain/entity"
	"github.com/petlife/petshop-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo implementação de AppointmentRepository (usável com pool ou tx).
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

// Create persiste um novo agendamento.
func (r *AppointmentRepo) Create(appointment *entity.Appointment) error {
	query := `
		INSERT INTO appointments (id, pet_id, employee_id, service, scheduled_at, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		appointment.ID, appointment.PetID, appointment.EmployeeID, appointment.Service,
		appointment.ScheduledAt, appointment.Status, appointment.Notes,
		appointment.CreatedAt, appointment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// GetByID obtém um agendamento por ID. Retorna nil se não existir.
func (r *AppointmentRepo) GetByID(id string) (*entity.Appointment, error) {
	query := `
		SELECT id, pet_id, employee_id, service, scheduled_at, status, notes, created_at, updated_at
		FROM appointments WHERE id = $1`
	var a entity.Appointment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.PetID, &a.EmployeeID, &a.Service, &a.ScheduledAt, &a.Status, &a.Notes,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return &a, nil
}

// List lista agendamentos com paginação.
func (r *AppointmentRepo) List(limit, offset int) ([]*entity.Appointment, error) {
	query := `
		SELECT id, pet_id, employee_id, service, scheduled_at, status, notes, created_at, updated_at
		FROM appointments ORDER BY scheduled_at DESC LIMIT $1 OFFSET $2`
	return r.scanAppointments(query, limit, offset)
}

// ListByPet lista agendamentos de um pet com paginação.
func (r *AppointmentRepo) ListByPet(petID string, limit, offset int) ([]*entity.Appointment, error) {
	query := `
		SELECT id, pet_id, employee_id, service, scheduled_at, status, notes, created_at, updated_at
		FROM appointments WHERE pet_id = $3 ORDER BY scheduled_at DESC LIMIT $1 OFFSET $2`
	return r.scanAppointments(query, limit, offset, petID)
}

func (r *AppointmentRepo) scanAppointments(query string, args ...any) ([]*entity.Appointment, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Appointment
	for rows.Next() {
		var a entity.Appointment
		if err := rows.Scan(&a.ID, &a.PetID, &a.EmployeeID, &a.Service, &a.ScheduledAt, &a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update atualiza um agendamento existente.
func (r *AppointmentRepo) Update(appointment *entity.Appointment) error {
	query := `
		UPDATE appointments SET service = $2, scheduled_at = $3, status = $4, notes = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		appointment.ID, appointment.Service, appointment.ScheduledAt,
		appointment.Status, appointment.Notes, appointment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	return nil
}

// Delete remove um agendamento por ID.
func (r *AppointmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}
