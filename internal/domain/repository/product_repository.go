package repository

import "github.com/petlife/petshop-api/internal/domain/entity"

// ProductRepository define o porto de persistência para Product.
// DecrementStock é o ponto de aplicação da regra "estoque nunca negativo":
// decrementa apenas se o resultado ficar >= 0 e informa se a linha foi afetada.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// ListByIDs retorna os produtos encontrados para o conjunto de IDs.
	// Pode retornar menos itens que o solicitado; o caller decide o que fazer
	// com os ausentes.
	ListByIDs(ids []string) ([]*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	// DecrementStock executa o decremento condicional:
	// UPDATE ... SET stock = stock - qty WHERE id = $1 AND stock >= qty.
	// Retorna (false, nil) quando o guard falhou (estoque insuficiente).
	DecrementStock(productID string, quantity int) (bool, error)
	// IncrementStock devolve quantidade ao estoque (compensação de cancelamento).
	IncrementStock(productID string, quantity int) error
}
