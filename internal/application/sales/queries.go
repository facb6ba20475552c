package sales

import (
	"context"
	"fmt"

	"github.com/petlife/petshop-api/internal/application/dto"
	"github.com/petlife/petshop-api/internal/domain"
	"github.com/petlife/petshop-api/internal/domain/entity"
)

// Get retorna uma venda com itens e nomes resolvidos.
func (uc *SaleUseCase) Get(ctx context.Context, id string) (*dto.SaleResponse, error) {
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
	return uc.buildResponse(sale, items)
}

// List retorna vendas paginadas, opcionalmente filtradas por cliente.
func (uc *SaleUseCase) List(ctx context.Context, clientID string, page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()

	var list []*entity.Sale
	var err error
	if clientID != "" {
		list, err = uc.saleRepo.ListByClient(clientID, page.Limit, page.Offset)
	} else {
		list, err = uc.saleRepo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}

	resp := &dto.SaleListResponse{
		Items: make([]dto.SaleResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, sale := range list {
		items, err := uc.saleRepo.GetItemsBySaleID(sale.ID)
		if err != nil {
			return nil, err
		}
		one, err := uc.buildResponse(sale, items)
		if err != nil {
			return nil, err
		}
		resp.Items = append(resp.Items, *one)
	}
	return resp, nil
}
