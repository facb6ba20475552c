package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest corpo para criar uma venda.
// Os nomes de campo seguem o contrato JSON do front-end (pt-BR).
type CreateSaleRequest struct {
	ClienteID  string            `json:"clienteId"`
	FormaPagto string            `json:"formaPagto"`
	Itens      []SaleItemRequest `json:"itens"`
}

// SaleItemRequest um item solicitado na venda.
type SaleItemRequest struct {
	ProdutoID  string `json:"produtoId"`
	Quantidade int    `json:"quantidade"`
}

// UpdateSaleStatusRequest corpo para transição de status da venda.
type UpdateSaleStatusRequest struct {
	Status string `json:"status"`
}

// SaleItemResponse item da venda com nome do produto resolvido.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProdutoID   string          `json:"produtoId"`
	ProdutoNome string          `json:"produtoNome"`
	Quantidade  int             `json:"quantidade"`
	PrecoUnit   decimal.Decimal `json:"precoUnit"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse venda com itens e nome do cliente resolvido.
type SaleResponse struct {
	ID          string             `json:"id"`
	ClienteID   string             `json:"clienteId"`
	ClienteNome string             `json:"clienteNome"`
	Total       decimal.Decimal    `json:"total"`
	FormaPagto  string             `json:"formaPagto"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	Itens       []SaleItemResponse `json:"itens"`
}

// SaleListResponse listagem paginada de vendas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
