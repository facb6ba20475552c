package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/petlife/petshop-api/internal/application/dto"
	"github.com/petlife/petshop-api/internal/application/usecase"
	"github.com/petlife/petshop-api/internal/domain"
	"github.com/petlife/petshop-api/internal/domain/entity"
	"github.com/petlife/petshop-api/internal/domain/repository"
	"github.com/petlife/petshop-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: cadastro e login de funcionários.
type AuthUseCase struct {
	employeeRepo repository.EmployeeRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(employeeRepo repository.EmployeeRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{employeeRepo: employeeRepo, jwtCfg: jwtCfg}
}

// Register cria um funcionário: faz hash da senha com bcrypt e persiste.
// Retorna ErrEmailAlreadyExists se o email já estiver cadastrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.EmployeeResponse, error) {
	if in.Email == "" || len(in.Password) < 6 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.employeeRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleVendedor
	}
	if role != entity.RoleAdmin && role != entity.RoleVendedor {
		return nil, domain.ErrInvalidInput
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	now := time.Now()
	emp := &entity.Employee{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        in.Phone,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.employeeRepo.Create(emp); err != nil {
		return nil, err
	}
	return usecase.ToEmployeeResponse(emp), nil
}

// Login verifica email/senha, gera JWT e retorna token + funcionário.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	emp, err := uc.employeeRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !emp.Active {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, emp.ID, emp.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		Employee: *usecase.ToEmployeeResponse(emp),
	}, nil
}
