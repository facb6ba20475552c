package repository

import "github.com/petlife/petshop-api/internal/domain/entity"

// EmployeeRepository define o porto de persistência para Employee.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	GetByEmail(email string) (*entity.Employee, error)
	List(limit, offset int) ([]*entity.Employee, error)
	Update(employee *entity.Employee) error
	// Deactivate marca o funcionário como inativo (sem delete físico:
	// vendas e agendamentos referenciam o registro).
	Deactivate(id string) error
}
