package usecase

import (
	"fmt"
	"time"

	"github.com/petlife/petshop-api/internal/application/dto"
	"github.com/petlife/petshop-api/internal/domain"
	"github.com/petlife/petshop-api/internal/domain/entity"
	"github.com/petlife/petshop-api/internal/domain/repository"
)

// EmployeeUseCase consulta e manutenção de funcionários.
// O cadastro (com hash de senha) fica no caso de uso de auth.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase constrói o caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// GetByID obtém um funcionário por ID.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, fmt.Errorf("%w: funcionário %s", domain.ErrNotFound, id)
	}
	return ToEmployeeResponse(emp), nil
}

// Update atualiza nome, telefone e papel.
func (uc *EmployeeUseCase) Update(id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, fmt.Errorf("%w: funcionário %s", domain.ErrNotFound, id)
	}
	if in.Name != "" {
		emp.Name = in.Name
	}
	if in.Phone != "" {
		emp.Phone = in.Phone
	}
	if in.Role != "" {
		if in.Role != entity.RoleAdmin && in.Role != entity.RoleVendedor {
			return nil, domain.ErrInvalidInput
		}
		emp.Role = in.Role
	}
	emp.UpdatedAt = time.Now()
	if err := uc.repo.Update(emp); err != nil {
		return nil, err
	}
	return ToEmployeeResponse(emp), nil
}

// List lista funcionários com paginação.
func (uc *EmployeeUseCase) List(limit, offset int) (*dto.EmployeeListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.EmployeeListResponse{
		Items: make([]dto.EmployeeResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, e := range list {
		resp.Items = append(resp.Items, *ToEmployeeResponse(e))
	}
	return resp, nil
}

// Deactivate desativa um funcionário (sem delete físico).
func (uc *EmployeeUseCase) Deactivate(id string) error {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if emp == nil {
		return fmt.Errorf("%w: funcionário %s", domain.ErrNotFound, id)
	}
	return uc.repo.Deactivate(id)
}

// ToEmployeeResponse converte a entidade para resposta (sem hash de senha).
func ToEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Role:      e.Role,
		Phone:     e.Phone,
		Active:    e.Active,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
