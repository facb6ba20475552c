package sales_test

import (
	"context"
	"errors"
	"sync"

	"github.com/petlife/petshop-api/internal/domain/entity"
	"github.com/petlife/petshop-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
//
// Um único memStore compartilhado faz o papel do banco. O fakeTxRunner
// serializa as "transações" com um mutex e tira um snapshot do estado antes de
// executar o callback: se o callback falha, o snapshot é restaurado — o mesmo
// efeito observável de um ROLLBACK.
// ──────────────────────────────────────────────────────────────────────────────

var errBoom = errors.New("boom")

type memStore struct {
	mu       sync.Mutex
	clients  map[string]*entity.Client
	products map[string]*entity.Product
	sales    map[string]*entity.Sale
	items    map[string][]*entity.SaleItem // por saleID

	// Injeção de falha: CreateItem falha após N inserções bem-sucedidas.
	failItemAfter int
	itemInserts   int
}

func newMemStore() *memStore {
	return &memStore{
		clients:       map[string]*entity.Client{},
		products:      map[string]*entity.Product{},
		sales:         map[string]*entity.Sale{},
		items:         map[string][]*entity.SaleItem{},
		failItemAfter: -1,
	}
}

func (s *memStore) snapshot() *memStore {
	snap := newMemStore()
	for k, v := range s.clients {
		c := *v
		snap.clients[k] = &c
	}
	for k, v := range s.products {
		p := *v
		snap.products[k] = &p
	}
	for k, v := range s.sales {
		sale := *v
		snap.sales[k] = &sale
	}
	for k, v := range s.items {
		list := make([]*entity.SaleItem, 0, len(v))
		for _, it := range v {
			item := *it
			list = append(list, &item)
		}
		snap.items[k] = list
	}
	return snap
}

func (s *memStore) restore(snap *memStore) {
	s.clients = snap.clients
	s.products = snap.products
	s.sales = snap.sales
	s.items = snap.items
}

// fakeClientRepo implementa repository.ClientRepository sobre o memStore.
type fakeClientRepo struct{ store *memStore }

func (r *fakeClientRepo) Create(c *entity.Client) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.clients[c.ID] = c
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.clients[id], nil
}

func (r *fakeClientRepo) GetByCPF(string) (*entity.Client, error) { return nil, nil }

func (r *fakeClientRepo) List(int, int) ([]*entity.Client, error) { return nil, nil }

func (r *fakeClientRepo) Update(*entity.Client) error { return nil }

func (r *fakeClientRepo) Delete(string) error { return nil }

// fakeProductRepo implementa repository.ProductRepository sobre o memStore.
type fakeProductRepo struct{ store *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.products[id], nil
}

func (r *fakeProductRepo) ListByIDs(ids []string) ([]*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := r.store.products[id]; ok {
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) Update(*entity.Product) error { return nil }

func (r *fakeProductRepo) Delete(string) error { return nil }

func (r *fakeProductRepo) DecrementStock(productID string, quantity int) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.products[productID]
	if !ok {
		return false, nil
	}
	if p.Stock < quantity {
		return false, nil
	}
	p.Stock -= quantity
	return true, nil
}

func (r *fakeProductRepo) IncrementStock(productID string, quantity int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.products[productID]
	if !ok {
		return errors.New("produto inexistente")
	}
	p.Stock += quantity
	return nil
}

// fakeSaleRepo implementa repository.SaleRepository sobre o memStore.
type fakeSaleRepo struct{ store *memStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copia := *sale
	r.store.sales[sale.ID] = &copia
	return nil
}

func (r *fakeSaleRepo) CreateItem(item *entity.SaleItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.failItemAfter >= 0 && r.store.itemInserts >= r.store.failItemAfter {
		return errBoom
	}
	r.store.itemInserts++
	copia := *item
	r.store.items[item.SaleID] = append(r.store.items[item.SaleID], &copia)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if sale, ok := r.store.sales[id]; ok {
		copia := *sale
		return &copia, nil
	}
	return nil, nil
}

func (r *fakeSaleRepo) GetItemsBySaleID(saleID string) ([]*entity.SaleItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.SaleItem
	for _, it := range r.store.items[saleID] {
		copia := *it
		out = append(out, &copia)
	}
	return out, nil
}

func (r *fakeSaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Sale
	for _, sale := range r.store.sales {
		copia := *sale
		out = append(out, &copia)
	}
	return out, nil
}

func (r *fakeSaleRepo) ListByClient(clientID string, limit, offset int) ([]*entity.Sale, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Sale
	for _, sale := range r.store.sales {
		if sale.ClientID == clientID {
			copia := *sale
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) TransitionStatus(id, from, to string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	sale, ok := r.store.sales[id]
	if !ok || sale.Status != from {
		return false, nil
	}
	sale.Status = to
	return true, nil
}

func (r *fakeSaleRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.items, id)
	delete(r.store.sales, id)
	return nil
}

// fakeTxRunner serializa transações e restaura o snapshot em caso de erro.
type fakeTxRunner struct {
	store *memStore
	txMu  sync.Mutex
}

func (tx *fakeTxRunner) Run(
	_ context.Context,
	fn func(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) error,
) error {
	tx.txMu.Lock()
	defer tx.txMu.Unlock()

	tx.store.mu.Lock()
	snap := tx.store.snapshot()
	tx.store.mu.Unlock()

	err := fn(&fakeSaleRepo{store: tx.store}, &fakeProductRepo{store: tx.store})
	if err != nil {
		tx.store.mu.Lock()
		tx.store.restore(snap)
		tx.store.mu.Unlock()
		return err
	}
	return nil
}
