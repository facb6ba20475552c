package dto

import "time"

// CreateAppointmentRequest corpo para criar um agendamento.
type CreateAppointmentRequest struct {
	PetID       string    `json:"petId"`
	EmployeeID  string    `json:"employeeId"`
	Service     string    `json:"service"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Notes       string    `json:"notes"`
}

// UpdateAppointmentRequest corpo para atualizar um agendamento.
// Status segue a máquina: agendado → concluido | cancelado.
type UpdateAppointmentRequest struct {
	Service     string     `json:"service"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes"`
}

// AppointmentResponse agendamento na resposta.
type AppointmentResponse struct {
	ID          string    `json:"id"`
	PetID       string    `json:"petId"`
	EmployeeID  string    `json:"employeeId"`
	Service     string    `json:"service"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AppointmentListResponse listagem paginada de agendamentos.
type AppointmentListResponse struct {
	Items []AppointmentResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
