package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petlife/petshop-api/internal/application/auth"
	"github.com/petlife/petshop-api/internal/application/dto"
	"github.com/petlife/petshop-api/internal/domain"
	"github.com/petlife/petshop-api/internal/domain/entity"
)

// memEmployeeRepo guarda funcionários por email, suficiente para auth.
type memEmployeeRepo struct {
	byEmail  map[string]*entity.Employee
	emailErr error
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{byEmail: map[string]*entity.Employee{}}
}

func (r *memEmployeeRepo) Create(emp *entity.Employee) error {
	r.byEmail[emp.Email] = emp
	return nil
}

func (r *memEmployeeRepo) GetByID(string) (*entity.Employee, error) { return nil, nil }

func (r *memEmployeeRepo) GetByEmail(email string) (*entity.Employee, error) {
	if r.emailErr != nil {
		return nil, r.emailErr
	}
	return r.byEmail[email], nil
}

func (r *memEmployeeRepo) List(int, int) ([]*entity.Employee, error) { return nil, nil }
func (r *memEmployeeRepo) Update(*entity.Employee) error             { return nil }
func (r *memEmployeeRepo) Deactivate(string) error                   { return nil }

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{Secret: "segredo-de-teste", ExpMinutes: 60, Issuer: "petshop-api"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CaminhoFeliz(t *testing.T) {
	repo := newMemEmployeeRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	out, err := uc.Register(dto.RegisterRequest{
		Name: "Ana", Email: "ana@petlife.com", Password: "seguro1", Role: entity.RoleVendedor,
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@petlife.com", out.Email)

	// A senha nunca fica em claro no repositório.
	assert.NotEqual(t, "seguro1", repo.byEmail["ana@petlife.com"].PasswordHash)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newMemEmployeeRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@petlife.com", Password: "seguro1"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@petlife.com", Password: "outra23"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Falha no banco durante a checagem de email não pode passar como "email
// livre": o erro do lookup volta para o chamador.
func TestRegister_PropagaErroDeLookup(t *testing.T) {
	repo := newMemEmployeeRepo()
	repo.emailErr = errors.New("conexão recusada")
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@petlife.com", Password: "seguro1"})
	assert.ErrorIs(t, err, repo.emailErr)
	assert.Empty(t, repo.byEmail, "nada deve ser criado quando o lookup falha")
}

func TestRegister_EntradasInvalidas(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemEmployeeRepo(), testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{Email: "", Password: "seguro1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@petlife.com", Password: "curta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@petlife.com", Password: "seguro1", Role: "gerente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CaminhoFeliz(t *testing.T) {
	repo := newMemEmployeeRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@petlife.com", Password: "seguro1", Role: entity.RoleAdmin})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@petlife.com", Password: "seguro1"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleAdmin, out.Employee.Role)
}

func TestLogin_SenhaIncorreta(t *testing.T) {
	repo := newMemEmployeeRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@petlife.com", Password: "seguro1"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@petlife.com", Password: "errada7"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newMemEmployeeRepo(), testJWTConfig())

	_, err := uc.Login(dto.LoginRequest{Email: "ninguem@petlife.com", Password: "seguro1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin_FuncionarioInativo(t *testing.T) {
	repo := newMemEmployeeRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@petlife.com", Password: "seguro1"})
	require.NoError(t, err)
	repo.byEmail["ana@petlife.com"].Active = false

	_, err = uc.Login(dto.LoginRequest{Email: "ana@petlife.com", Password: "seguro1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
