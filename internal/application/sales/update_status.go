package sales

import (
	"context"
	"fmt"

	"github.com/petlife/petshop-api/internal/application/dto"
	"github.com/petlife/petshop-api/internal/domain"
	"github.com/petlife/petshop-api/internal/domain/entity"
	"github.com/petlife/petshop-api/internal/domain/repository"
)

// UpdateStatus transiciona o status da venda.
//
// A checagem de CanTransition sobre a leitura é só o fast path: quem decide é
// o update condicional (status = novo WHERE status = lido), no mesmo molde do
// decremento de estoque. Duas transições concorrentes a partir do mesmo
// status nunca passam ambas. Qualquer transição para cancelado dispara a
// compensação: para cada item, a quantidade volta ao estoque do produto, na
// mesma transação que grava o novo status — um crash entre os dois não pode
// deixar estoque faltando, e a compensação só roda se o guard passou.
// Re-cancelar uma venda já cancelada retorna ErrInvalidTransition (rodar a
// compensação de novo duplicaria a devolução de estoque).
func (uc *SaleUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateSaleStatusRequest) (*dto.SaleResponse, error) {
	if !entity.ValidSaleStatus(in.Status) {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, in.Status)
	}
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, fmt.Errorf("%w: venda %s", domain.ErrNotFound, id)
	}
	if !entity.CanTransition(sale.Status, in.Status) {
		return nil, fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, sale.Status, in.Status)
	}

	items, err := uc.saleRepo.GetItemsBySaleID(id)
	if err != nil {
		return nil, err
	}

	if in.Status == entity.SaleStatusCancelado {
		err = uc.txRunner.Run(ctx, func(
			saleRepo repository.SaleRepository,
			productRepo repository.ProductRepository,
		) error {
			ok, err := saleRepo.TransitionStatus(id, sale.Status, entity.SaleStatusCancelado)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: venda %s já saiu do status %s", domain.ErrInvalidTransition, id, sale.Status)
			}
			for _, item := range items {
				if err := productRepo.IncrementStock(item.ProductID, item.Quantity); err != nil {
					return err
				}
			}
			return nil
		})
	} else {
		var ok bool
		ok, err = uc.saleRepo.TransitionStatus(id, sale.Status, in.Status)
		if err == nil && !ok {
			err = fmt.Errorf("%w: venda %s já saiu do status %s", domain.ErrInvalidTransition, id, sale.Status)
		}
	}
	if err != nil {
		return nil, err
	}
	sale.Status = in.Status

	return uc.buildResponse(sale, items)
}

// Delete remove uma venda. Permitido apenas com status cancelado: o estoque
// já foi reconciliado pela compensação que levou a venda até lá, e registros
// financeiros vivos não podem ser apagados. A leitura do status acontece
// dentro da transação que apaga; como cancelado é terminal, uma venda lida
// como cancelada não pode mudar de status antes do delete commitar.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		_ repository.ProductRepository,
	) error {
		sale, err := saleRepo.GetByID(id)
		if err != nil {
			return err
		}
		if sale == nil {
			return fmt.Errorf("%w: venda %s", domain.ErrNotFound, id)
		}
		if sale.Status != entity.SaleStatusCancelado {
			return fmt.Errorf("%w: só é possível excluir venda cancelada (status atual: %s)", domain.ErrInvalidTransition, sale.Status)
		}
		// Cabeçalho e itens saem juntos.
		return saleRepo.Delete(id)
	})
}

// buildResponse resolve nomes de cliente e produtos para a resposta.
func (uc *SaleUseCase) buildResponse(sale *entity.Sale, items []*entity.SaleItem) (*dto.SaleResponse, error) {
	clientName := ""
	if client, err := uc.clientRepo.GetByID(sale.ClientID); err == nil && client != nil {
		clientName = client.Name
	}
	ids := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			ids = append(ids, item.ProductID)
		}
	}
	productsByID := make(map[string]*entity.Product, len(ids))
	if len(ids) > 0 {
		products, err := uc.productRepo.ListByIDs(ids)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			productsByID[p.ID] = p
		}
	}
	return uc.toResponse(sale, clientName, items, productsByID), nil
}
