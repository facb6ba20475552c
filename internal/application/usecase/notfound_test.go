package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petlife/petshop-api/internal/application/dto"
	"github.com/petlife/petshop-api/internal/application/usecase"
	"github.com/petlife/petshop-api/internal/domain"
	"github.com/petlife/petshop-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs vazios: todo lookup devolve (nil, nil), como um banco sem registros.
// Os casos de uso devem converter isso em ErrNotFound em vez de devolver
// resposta nil sem erro.
// ──────────────────────────────────────────────────────────────────────────────

type emptyClientRepo struct{}

func (emptyClientRepo) Create(*entity.Client) error                  { return nil }
func (emptyClientRepo) GetByID(string) (*entity.Client, error)       { return nil, nil }
func (emptyClientRepo) GetByCPF(string) (*entity.Client, error)      { return nil, nil }
func (emptyClientRepo) List(int, int) ([]*entity.Client, error)      { return nil, nil }
func (emptyClientRepo) Update(*entity.Client) error                  { return nil }
func (emptyClientRepo) Delete(string) error                          { return nil }

type emptyPetRepo struct{}

func (emptyPetRepo) Create(*entity.Pet) error                           { return nil }
func (emptyPetRepo) GetByID(string) (*entity.Pet, error)                { return nil, nil }
func (emptyPetRepo) ListByClient(string, int, int) ([]*entity.Pet, error) { return nil, nil }
func (emptyPetRepo) List(int, int) ([]*entity.Pet, error)               { return nil, nil }
func (emptyPetRepo) Update(*entity.Pet) error                           { return nil }
func (emptyPetRepo) Delete(string) error                                { return nil }

type emptyEmployeeRepo struct{}

func (emptyEmployeeRepo) Create(*entity.Employee) error             { return nil }
func (emptyEmployeeRepo) GetByID(string) (*entity.Employee, error)  { return nil, nil }
func (emptyEmployeeRepo) GetByEmail(string) (*entity.Employee, error) { return nil, nil }
func (emptyEmployeeRepo) List(int, int) ([]*entity.Employee, error) { return nil, nil }
func (emptyEmployeeRepo) Update(*entity.Employee) error             { return nil }
func (emptyEmployeeRepo) Deactivate(string) error                   { return nil }

type emptyAppointmentRepo struct{}

func (emptyAppointmentRepo) Create(*entity.Appointment) error            { return nil }
func (emptyAppointmentRepo) GetByID(string) (*entity.Appointment, error) { return nil, nil }
func (emptyAppointmentRepo) List(int, int) ([]*entity.Appointment, error) { return nil, nil }
func (emptyAppointmentRepo) ListByPet(string, int, int) ([]*entity.Appointment, error) {
	return nil, nil
}
func (emptyAppointmentRepo) Update(*entity.Appointment) error { return nil }
func (emptyAppointmentRepo) Delete(string) error              { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Registro ausente → ErrNotFound (nunca (nil, nil) de volta para o handler)
// ──────────────────────────────────────────────────────────────────────────────

func TestClientUseCase_NotFound(t *testing.T) {
	uc := usecase.NewClientUseCase(emptyClientRepo{})

	_, err := uc.GetByID("nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update("nao-existe", dto.UpdateClientRequest{Name: "Novo"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPetUseCase_NotFound(t *testing.T) {
	uc := usecase.NewPetUseCase(emptyPetRepo{}, emptyClientRepo{})

	_, err := uc.GetByID("nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update("nao-existe", dto.UpdatePetRequest{Name: "Rex"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Dono inexistente também é not found.
	_, err = uc.Create(dto.CreatePetRequest{ClienteID: "x", Name: "Rex", Species: "cachorro"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmployeeUseCase_NotFound(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(emptyEmployeeRepo{})

	_, err := uc.GetByID("nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update("nao-existe", dto.UpdateEmployeeRequest{Name: "Novo"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Deactivate("nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Erro de lookup não pode ser engolido: uma falha no banco durante a checagem
// de unicidade deve abortar o Create, não passar como "CPF livre".
// ──────────────────────────────────────────────────────────────────────────────

type failingClientRepo struct {
	emptyClientRepo
}

func (failingClientRepo) GetByCPF(string) (*entity.Client, error) {
	return nil, errConexao
}

var errConexao = errors.New("conexão recusada")

func TestClientUseCase_Create_PropagaErroDeLookup(t *testing.T) {
	uc := usecase.NewClientUseCase(failingClientRepo{})

	_, err := uc.Create(dto.CreateClientRequest{Name: "Maria", CPF: "123.456.789-00"})
	assert.ErrorIs(t, err, errConexao)
}

func TestAppointmentUseCase_NotFound(t *testing.T) {
	uc := usecase.NewAppointmentUseCase(emptyAppointmentRepo{}, emptyPetRepo{}, emptyEmployeeRepo{})

	_, err := uc.GetByID("nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update("nao-existe", dto.UpdateAppointmentRequest{Notes: "obs"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
