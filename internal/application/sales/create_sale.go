package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/petlife/petshop-api/internal/application/dto"
	"github.com/petlife/petshop-api/internal/domain"
	"github.com/petlife/petshop-api/internal/domain/entity"
	"github.com/petlife/petshop-api/internal/domain/repository"
)

// SaleUseCase cria vendas, transiciona status (com compensação de estoque no
// cancelamento) e consulta vendas. A criação é atômica: cabeceira, itens e
// decrementos de estoque entram na mesma transação.
type SaleUseCase struct {
	txRunner    TxRunner
	saleRepo    repository.SaleRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	receipts    ReceiptGenerator
}

// NewSaleUseCase constrói o caso de uso. receipts pode ser nil se a geração
// de comprovante não estiver habilitada.
func NewSaleUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	receipts ReceiptGenerator,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:    txRunner,
		saleRepo:    saleRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		receipts:    receipts,
	}
}

// Create cria uma venda com status pendente.
//
// Fora da transação: valida entrada, resolve cliente e produtos e faz a
// checagem rápida de estoque (apenas para mensagem de erro cedo — a regra é
// aplicada de novo pelo decremento condicional). Dentro da transação: insere
// cabeceira com total derivado, insere itens com preço congelado e decrementa
// o estoque de cada produto; qualquer falha desfaz tudo.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.ClienteID == "" || len(in.Itens) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.FormaPagto) {
		return nil, fmt.Errorf("%w: forma de pagamento %q", domain.ErrInvalidInput, in.FormaPagto)
	}
	for _, item := range in.Itens {
		if item.ProdutoID == "" || item.Quantidade <= 0 {
			return nil, fmt.Errorf("%w: quantidade deve ser positiva", domain.ErrInvalidInput)
		}
	}

	client, err := uc.clientRepo.GetByID(in.ClienteID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, in.ClienteID)
	}

	// Quantidade total por produto (o mesmo produto pode aparecer em mais de
	// um item do pedido).
	wanted := make(map[string]int)
	var ids []string
	for _, item := range in.Itens {
		if _, ok := wanted[item.ProdutoID]; !ok {
			ids = append(ids, item.ProdutoID)
		}
		wanted[item.ProdutoID] += item.Quantidade
	}

	products, err := uc.productRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	productsByID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}
	// O repositório só diz que faltou algo pelo tamanho do resultado;
	// os IDs ausentes são re-derivados aqui para a mensagem de erro.
	if len(productsByID) < len(ids) {
		var missing []string
		for _, id := range ids {
			if _, ok := productsByID[id]; !ok {
				missing = append(missing, id)
			}
		}
		return nil, fmt.Errorf("%w: produto(s) %s", domain.ErrNotFound, strings.Join(missing, ", "))
	}

	for _, id := range ids {
		p := productsByID[id]
		if !p.Active {
			return nil, fmt.Errorf("%w: produto %s inativo", domain.ErrInvalidInput, p.Name)
		}
		if p.Stock < wanted[id] {
			return nil, fmt.Errorf("%w: produto %s", domain.ErrInsufficientStock, p.Name)
		}
	}

	// Snapshot de preço: o preço unitário do item é o preço atual do catálogo
	// e fica imutável daqui em diante.
	now := time.Now()
	saleID := uuid.New().String()
	items := make([]*entity.SaleItem, 0, len(in.Itens))
	total := decimal.Zero
	for _, req := range in.Itens {
		p := productsByID[req.ProdutoID]
		qty := decimal.NewFromInt(int64(req.Quantidade))
		subtotal := qty.Mul(p.Price)
		items = append(items, &entity.SaleItem{
			ID:        uuid.New().String(),
			SaleID:    saleID,
			ProductID: req.ProdutoID,
			Quantity:  req.Quantidade,
			UnitPrice: p.Price,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	sale := &entity.Sale{
		ID:            saleID,
		ClientID:      in.ClienteID,
		Total:         total,
		PaymentMethod: in.FormaPagto,
		Status:        entity.SaleStatusPendente,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, item := range items {
			if err := saleRepo.CreateItem(item); err != nil {
				return err
			}
		}
		// O decremento condicional é o ponto real de aplicação da regra de
		// estoque: se uma venda concorrente consumiu o saldo depois da
		// checagem acima, o guard falha e a transação inteira volta.
		for _, item := range items {
			ok, err := productRepo.DecrementStock(item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: produto %s", domain.ErrInsufficientStock, productsByID[item.ProductID].Name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.toResponse(sale, client.Name, items, productsByID), nil
}

func (uc *SaleUseCase) toResponse(sale *entity.Sale, clientName string, items []*entity.SaleItem, productsByID map[string]*entity.Product) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:          sale.ID,
		ClienteID:   sale.ClientID,
		ClienteNome: clientName,
		Total:       sale.Total,
		FormaPagto:  sale.PaymentMethod,
		Status:      sale.Status,
		CreatedAt:   sale.CreatedAt,
		Itens:       make([]dto.SaleItemResponse, 0, len(items)),
	}
	for _, item := range items {
		name := ""
		if p := productsByID[item.ProductID]; p != nil {
			name = p.Name
		}
		resp.Itens = append(resp.Itens, dto.SaleItemResponse{
			ID:          item.ID,
			ProdutoID:   item.ProductID,
			ProdutoNome: name,
			Quantidade:  item.Quantity,
			PrecoUnit:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}
	return resp
}
