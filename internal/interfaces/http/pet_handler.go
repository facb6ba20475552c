package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/petlife/petshop-api/internal/application/dto"
	"github.com/petlife/petshop-api/internal/application/usecase"
)

// PetHandler trata as requisições HTTP de pets.
type PetHandler struct {
	uc *usecase.PetUseCase
}

func NewPetHandler(uc *usecase.PetUseCase) *PetHandler {
	return &PetHandler{uc: uc}
}

// Create godoc
// @Summary      Criar pet
// @Tags         pets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePetRequest  true  "Dados do pet"
// @Success      201   {object}  dto.PetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pets [post]
func (h *PetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter pet por ID
// @Tags         pets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do pet"
// @Success      200  {object}  dto.PetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pets/{id} [get]
func (h *PetHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar pet
// @Tags         pets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do pet"
// @Param        body  body  dto.UpdatePetRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.PetResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pets/{id} [put]
func (h *PetHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pets
// @Tags         pets
// @Security     Bearer
// @Produce      json
// @Param        clienteId  query  string  false  "Filtrar por tutor"
// @Param        limit      query  int     false  "Limite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.PetListResponse
// @Router       /api/pets [get]
func (h *PetHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("clienteId"), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir pet
// @Tags         pets
// @Security     Bearer
// @Param        id  path  string  true  "ID do pet"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pets/{id} [delete]
func (h *PetHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
