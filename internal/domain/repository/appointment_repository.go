package repository

import "github.com/petlife/petshop-api/internal/domain/entity"

// AppointmentRepository define o porto de persistência para Appointment.
type AppointmentRepository interface {
	Create(appointment *entity.Appointment) error
	GetByID(id string) (*entity.Appointment, error)
	List(limit, offset int) ([]*entity.Appointment, error)
	ListByPet(petID string, limit, offset int) ([]*entity.Appointment, error)
	Update(appointment *entity.Appointment) error
	Delete(id string) error
}
