package repository

import "github.com/petlife/petshop-api/internal/domain/entity"

// SaleRepository define o porto de persistência para Sale e seus itens.
// Itens são criados somente junto com a venda, dentro da mesma transação;
// nunca são alterados individualmente depois.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItem(item *entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error)
	List(limit, offset int) ([]*entity.Sale, error)
	ListByClient(clientID string, limit, offset int) ([]*entity.Sale, error)
	// TransitionStatus grava o novo status apenas se o status atual ainda for
	// `from` (compare-and-swap, como o decremento condicional de estoque).
	// Retorna (false, nil) quando a linha já saiu de `from` — o caller trata
	// como transição inválida, sem rodar efeitos colaterais.
	TransitionStatus(id, from, to string) (bool, error)
	// Delete remove cabeceira e itens. O caso de uso garante que só é chamado
	// com a venda em status cancelado.
	Delete(id string) error
}
