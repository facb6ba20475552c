package sales

import (
	"context"
	"fmt"

	"github.com/petlife/petshop-api/internal/domain"
)

// Receipt gera o comprovante em PDF de uma venda existente.
func (uc *SaleUseCase) Receipt(ctx context.Context, id string) ([]byte, error) {
	if uc.receipts == nil {
		return nil, fmt.Errorf("geração de comprovante não habilitada")
	}
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, fmt.Errorf("%w: venda %s", domain.ErrNotFound, id)
	}
	items, err := uc.saleRepo.GetItemsBySaleID(id)
	if err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(sale.ClientID)
	if err != nil {
		return nil, err
	}

	receiptItems := make([]ReceiptItem, 0, len(items))
	for _, item := range items {
		name := item.ProductID
		if p, err := uc.productRepo.GetByID(item.ProductID); err == nil && p != nil {
			name = p.Name
		}
		receiptItems = append(receiptItems, ReceiptItem{Item: item, ProductName: name})
	}
	return uc.receipts.GenerateReceipt(ctx, sale, client, receiptItems)
}
