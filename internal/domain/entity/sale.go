package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de uma venda.
const (
	SaleStatusPendente  = "pendente"
	SaleStatusPago      = "pago"
	SaleStatusCancelado = "cancelado"
)

// Formas de pagamento aceitas.
const (
	PaymentDinheiro = "dinheiro"
	PaymentCartao   = "cartao"
	PaymentPix      = "pix"
)

// Sale representa a cabeceira de uma venda.
// Total é derivado: soma dos subtotais dos itens no momento da criação.
type Sale struct {
	ID            string
	ClientID      string
	Total         decimal.Decimal
	PaymentMethod string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SaleItem representa uma linha da venda. UnitPrice é o preço do produto
// congelado no momento da venda; não acompanha mudanças futuras do catálogo.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// ValidSaleStatus verifica se o valor é um status conhecido.
func ValidSaleStatus(s string) bool {
	return s == SaleStatusPendente || s == SaleStatusPago || s == SaleStatusCancelado
}

// ValidPaymentMethod verifica se a forma de pagamento é aceita.
func ValidPaymentMethod(m string) bool {
	return m == PaymentDinheiro || m == PaymentCartao || m == PaymentPix
}

// CanTransition valida as transições permitidas do status de venda:
// pendente → pago, pendente → cancelado, pago → cancelado.
// cancelado é terminal: nenhuma transição sai dele (re-cancelar é inválido).
func CanTransition(from, to string) bool {
	switch from {
	case SaleStatusPendente:
		return to == SaleStatusPago || to == SaleStatusCancelado
	case SaleStatusPago:
		return to == SaleStatusCancelado
	default:
		return false
	}
}
