package sales

import (
	"context"

	"github.com/petlife/petshop-api/internal/domain/entity"
	"github.com/petlife/petshop-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação com repositórios de
// venda e produto atados à mesma tx. Qualquer erro retornado por fn causa
// rollback de tudo que fn fez.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// ReceiptGenerator gera o comprovante (PDF) de uma venda.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, sale *entity.Sale, client *entity.Client, items []ReceiptItem) ([]byte, error)
}

// ReceiptItem item da venda com o nome do produto resolvido para impressão.
type ReceiptItem struct {
	Item        *entity.SaleItem
	ProductName string
}
