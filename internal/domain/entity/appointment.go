package entity

import "time"

// Status de um agendamento.
const (
	AppointmentAgendado  = "agendado"
	AppointmentConcluido = "concluido"
	AppointmentCancelado = "cancelado"
)

// Appointment representa um atendimento agendado (banho, tosa, consulta).
type Appointment struct {
	ID          string
	PetID       string
	EmployeeID  string
	Service     string
	ScheduledAt time.Time
	Status      string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanTransitionAppointment valida a transição de status de agendamento.
// concluido e cancelado são terminais.
func CanTransitionAppointment(from, to string) bool {
	if from != AppointmentAgendado {
		return false
	}
	return to == AppointmentConcluido || to == AppointmentCancelado
}
