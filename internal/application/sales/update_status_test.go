package sales_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petlife/petshop-api/internal/application/dto"
	"github.com/petlife/petshop-api/internal/domain"
	"github.com/petlife/petshop-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus
// ──────────────────────────────────────────────────────────────────────────────

// pendente → pago: atualização simples, estoque intocado.
func TestUpdateStatus_PendenteParaPago(t *testing.T) {
	uc, store := newTestEnv()
	resp, err := uc.Create(context.Background(), saleRequest(3))
	require.NoError(t, err)

	out, err := uc.UpdateStatus(context.Background(), resp.ID, dto.UpdateSaleStatusRequest{Status: entity.SaleStatusPago})
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusPago, out.Status)
	assert.Equal(t, entity.SaleStatusPago, store.sales[resp.ID].Status)
	assert.Equal(t, 7, store.products[testProductID].Stock,
		"pagar não mexe no estoque")
}

// Cancelar devolve exatamente as quantidades vendidas ao estoque.
func TestUpdateStatus_CancelamentoCompensaEstoque(t *testing.T) {
	uc, store := newTestEnv()
	resp, err := uc.Create(context.Background(), saleRequest(3))
	require.NoError(t, err)
	require.Equal(t, 7, store.products[testProductID].Stock)

	out, err := uc.UpdateStatus(context.Background(), resp.ID, dto.UpdateSaleStatusRequest{Status: entity.SaleStatusCancelado})
	require.NoError(t, err)

	assert.Equal(t, entity.SaleStatusCancelado, out.Status)
	assert.Equal(t, 10, store.products[testProductID].Stock,
		"cancelamento deve devolver as 3 unidades")
}

// Cancelar venda já paga também compensa: pago → cancelado é permitido.
func TestUpdateStatus_PagoParaCancelado(t *testing.T) {
	uc, store := newTestEnv()
	resp, err := uc.Create(context.Background(), saleRequest(2))
	require.NoError(t, err)
	_, err = uc.UpdateStatus(context.Background(), resp.ID, dto.UpdateSaleStatusRequest{Status: entity.SaleStatusPago})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), resp.ID, dto.UpdateSaleStatusRequest{Status: entity.SaleStatusCancelado})
	require.NoError(t, err)
	assert.Equal(t, 10, store.products[testProductID].Stock)
}

// Re-cancelar é rejeitado: a compensação não pode rodar duas vezes.
func TestUpdateStatus_RecancelarNaoDuplicaCompensacao(t *testing.T) {
	uc, store := newTestEnv()
	resp, err := uc.Create(context.Background(), saleRequest(3))
	require.NoError(t, err)
	_, err = uc.UpdateStatus(context.Background(), resp.ID, dto.UpdateSaleStatusRequest{Status: entity.SaleStatusCancelado})
	require.NoError(t, err)
	require.Equal(t, 10, store.products[testProductID].Stock)

	_, err = uc.UpdateStatus(context.Background(), resp.ID, dto.UpdateSaleStatusRequest{Status: entity.SaleStatusCancelado})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, 10, store.products[testProductID].Stock,
		"estoque não pode passar de 10: compensação única")
}

// Dois cancelamentos concorrentes da mesma venda: o update condicional de
// status (status = cancelado WHERE status = lido) garante que só um passa.
// A compensação roda exatamente uma vez — o estoque volta a 10, nunca a 13.
func TestUpdateStatus_CancelamentoConcorrenteCompensaUmaVez(t *testing.T) {
	uc, store := newTestEnv()
	resp, err := uc.Create(context.Background(), saleRequest(3))
	require.NoError(t, err)
	require.Equal(t, 7, store.products[testProductID].Stock)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.UpdateStatus(context.Background(), resp.ID,
				dto.UpdateSaleStatusRequest{Status: entity.SaleStatusCancelado})
		}(i)
	}
	wg.Wait()

	var oks, fails int
	for _, err := range errs {
		if err == nil {
			oks++
		} else {
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			fails++
		}
	}
	assert.Equal(t, 1, oks, "exatamente um cancelamento deve passar")
	assert.Equal(t, 1, fails, "o outro deve ser rejeitado")
	assert.Equal(t, entity.SaleStatusCancelado, store.sales[resp.ID].Status)
	assert.Equal(t, 10, store.products[testProductID].Stock,
		"compensação deve rodar uma única vez")
}

// Pagamentos concorrentes da mesma venda pendente: só um passa pelo guard.
func TestUpdateStatus_PagamentoConcorrenteUnico(t *testing.T) {
	uc, store := newTestEnv()
	resp, err := uc.Create(context.Background(), saleRequest(2))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.UpdateStatus(context.Background(), resp.ID,
				dto.UpdateSaleStatusRequest{Status: entity.SaleStatusPago})
		}(i)
	}
	wg.Wait()

	var oks int
	for _, err := range errs {
		if err == nil {
			oks++
		} else {
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		}
	}
	assert.Equal(t, 1, oks)
	assert.Equal(t, entity.SaleStatusPago, store.sales[resp.ID].Status)
	assert.Equal(t, 8, store.products[testProductID].Stock)
}

// cancelado é terminal: não volta para pago nem para pendente.
func TestUpdateStatus_CanceladoEhTerminal(t *testing.T) {
	uc, _ := newTestEnv()
	resp, err := uc.Create(context.Background(), saleRequest(1))
	require.NoError(t, err)
	_, err = uc.UpdateStatus(context.Background(), resp.ID, dto.UpdateSaleStatusRequest{Status: entity.SaleStatusCancelado})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), resp.ID, dto.UpdateSaleStatusRequest{Status: entity.SaleStatusPago})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = uc.UpdateStatus(context.Background(), resp.ID, dto.UpdateSaleStatusRequest{Status: entity.SaleStatusPendente})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// Status desconhecido é rejeitado antes de qualquer consulta.
func TestUpdateStatus_StatusDesconhecido(t *testing.T) {
	uc, _ := newTestEnv()
	resp, err := uc.Create(context.Background(), saleRequest(1))
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), resp.ID, dto.UpdateSaleStatusRequest{Status: "entregue"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Venda inexistente → not found.
func TestUpdateStatus_VendaInexistente(t *testing.T) {
	uc, _ := newTestEnv()
	_, err := uc.UpdateStatus(context.Background(), "nao-existe", dto.UpdateSaleStatusRequest{Status: entity.SaleStatusPago})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

// Excluir exige status cancelado; pendente e pago são recusados.
func TestDelete_ApenasVendaCancelada(t *testing.T) {
	uc, store := newTestEnv()
	resp, err := uc.Create(context.Background(), saleRequest(2))
	require.NoError(t, err)

	err = uc.Delete(context.Background(), resp.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "pendente não pode ser excluída")

	_, err = uc.UpdateStatus(context.Background(), resp.ID, dto.UpdateSaleStatusRequest{Status: entity.SaleStatusPago})
	require.NoError(t, err)
	err = uc.Delete(context.Background(), resp.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "paga não pode ser excluída")

	_, err = uc.UpdateStatus(context.Background(), resp.ID, dto.UpdateSaleStatusRequest{Status: entity.SaleStatusCancelado})
	require.NoError(t, err)
	err = uc.Delete(context.Background(), resp.ID)
	require.NoError(t, err)

	assert.Empty(t, store.sales, "cabeceira removida")
	assert.Empty(t, store.items, "itens removidos junto")
	assert.Equal(t, 10, store.products[testProductID].Stock,
		"estoque já havia sido reconciliado pelo cancelamento")
}

func TestDelete_VendaInexistente(t *testing.T) {
	uc, _ := newTestEnv()
	err := uc.Delete(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

// Get resolve nomes de cliente e produto na resposta.
func TestGet_ResolveNomes(t *testing.T) {
	uc, _ := newTestEnv()
	created, err := uc.Create(context.Background(), saleRequest(2))
	require.NoError(t, err)

	out, err := uc.Get(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, "Maria Silva", out.ClienteNome)
	require.Len(t, out.Itens, 1)
	assert.Equal(t, "Ração Premium 10kg", out.Itens[0].ProdutoNome)
	assert.True(t, out.Total.Equal(created.Total))
}

func TestGet_VendaInexistente(t *testing.T) {
	uc, _ := newTestEnv()
	_, err := uc.Get(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
