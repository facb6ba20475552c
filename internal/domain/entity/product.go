package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do catálogo da loja.
// Stock é mutado apenas pelo fluxo de vendas (decremento condicional na venda,
// incremento na compensação de cancelamento) ou por ajuste explícito.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // preço de venda atual
	Stock       int             // quantidade em estoque, nunca negativa
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
