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

// AppointmentUseCase casos de uso para agendamentos de atendimento.
type AppointmentUseCase struct {
	repo         repository.AppointmentRepository
	petRepo      repository.PetRepository
	employeeRepo repository.EmployeeRepository
}

// NewAppointmentUseCase constrói o caso de uso.
func NewAppointmentUseCase(
	repo repository.AppointmentRepository,
	petRepo repository.PetRepository,
	employeeRepo repository.EmployeeRepository,
) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo, petRepo: petRepo, employeeRepo: employeeRepo}
}

// Create cria um agendamento. Pet e funcionário precisam existir.
func (uc *AppointmentUseCase) Create(in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if in.PetID == "" || in.EmployeeID == "" || in.Service == "" || in.ScheduledAt.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	pet, err := uc.petRepo.GetByID(in.PetID)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, fmt.Errorf("%w: pet %s", domain.ErrNotFound, in.PetID)
	}
	emp, err := uc.employeeRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil || !emp.Active {
		return nil, fmt.Errorf("%w: funcionário %s", domain.ErrNotFound, in.EmployeeID)
	}
	now := time.Now()
	appt := &entity.Appointment{
		ID:          uuid.New().String(),
		PetID:       in.PetID,
		EmployeeID:  in.EmployeeID,
		Service:     in.Service,
		ScheduledAt: in.ScheduledAt,
		Status:      entity.AppointmentAgendado,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(appt); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appt), nil
}

// GetByID obtém um agendamento por ID.
func (uc *AppointmentUseCase) GetByID(id string) (*dto.AppointmentResponse, error) {
	appt, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, fmt.Errorf("%w: agendamento %s", domain.ErrNotFound, id)
	}
	return toAppointmentResponse(appt), nil
}

// Update atualiza serviço, horário, observações e status.
// Transições de status: agendado → concluido | cancelado; estados finais não mudam.
func (uc *AppointmentUseCase) Update(id string, in dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appt, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, fmt.Errorf("%w: agendamento %s", domain.ErrNotFound, id)
	}
	if in.Status != "" && in.Status != appt.Status {
		if !entity.CanTransitionAppointment(appt.Status, in.Status) {
			return nil, fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, appt.Status, in.Status)
		}
		appt.Status = in.Status
	}
	if in.Service != "" {
		appt.Service = in.Service
	}
	if in.ScheduledAt != nil {
		appt.ScheduledAt = *in.ScheduledAt
	}
	if in.Notes != "" {
		appt.Notes = in.Notes
	}
	appt.UpdatedAt = time.Now()
	if err := uc.repo.Update(appt); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appt), nil
}

// List lista agendamentos, opcionalmente filtrados por pet.
func (uc *AppointmentUseCase) List(petID string, limit, offset int) (*dto.AppointmentListResponse, error) {
	var list []*entity.Appointment
	var err error
	if petID != "" {
		list, err = uc.repo.ListByPet(petID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	resp := &dto.AppointmentListResponse{
		Items: make([]dto.AppointmentResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, a := range list {
		resp.Items = append(resp.Items, *toAppointmentResponse(a))
	}
	return resp, nil
}

// Delete remove um agendamento por ID.
func (uc *AppointmentUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		ID:          a.ID,
		PetID:       a.PetID,
		EmployeeID:  a.EmployeeID,
		Service:     a.Service,
		ScheduledAt: a.ScheduledAt,
		Status:      a.Status,
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
