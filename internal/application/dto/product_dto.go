package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest corpo para criar um produto.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

// UpdateProductRequest corpo para atualizar um produto.
// Stock não é alterado por aqui: estoque muda pelo fluxo de vendas
// ou pelo ajuste explícito (AdjustStockRequest).
type UpdateProductRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Active      *bool            `json:"active"`
}

// AdjustStockRequest ajuste manual de estoque (entrada de mercadoria,
// quebra, inventário). Delta pode ser negativo; o decremento é condicional.
type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

// ProductResponse produto na resposta.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductListResponse listagem paginada de produtos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
