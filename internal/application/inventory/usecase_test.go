package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsales/pos-api/internal/application/dto"
	"github.com/itsales/pos-api/internal/application/inventory"
	"github.com/itsales/pos-api/internal/domain"
	"github.com/itsales/pos-api/internal/domain/entity"
	"github.com/itsales/pos-api/internal/domain/lifecycle"
	"github.com/itsales/pos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct{ items map[string]*entity.Product }

func (r *fakeProductRepo) Create(p *entity.Product) error              { r.items[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error)  { return r.items[id], nil }
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.items[id], nil }
func (r *fakeProductRepo) Update(p *entity.Product) error              { r.items[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateStatus(id, status string) error        { return nil }
func (r *fakeProductRepo) UpdateStock(id string, qty int) error {
	if p, ok := r.items[id]; ok {
		p.StockQuantity = qty
	}
	return nil
}
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error)          { return nil, nil }

type fakeMovementRepo struct{ items []*entity.StockMovement }

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error { r.items = append(r.items, m); return nil }
func (r *fakeMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	return r.items, nil
}
func (r *fakeMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.items {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

// fakeTxRunner emula el rollback: si fn falla, restaura el stock previo y
// descarta los movimientos añadidos.
type fakeTxRunner struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (r *fakeTxRunner) RunMovement(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	stockBefore := make(map[string]int, len(r.products.items))
	for id, p := range r.products.items {
		stockBefore[id] = p.StockQuantity
	}
	movsBefore := len(r.movements.items)

	if err := fn(r.products, r.movements); err != nil {
		for id, qty := range stockBefore {
			r.products.items[id].StockQuantity = qty
		}
		r.movements.items = r.movements.items[:movsBefore]
		return err
	}
	return nil
}

type env struct {
	uc        *inventory.RegisterMovementUseCase
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func newEnv() *env {
	products := &fakeProductRepo{items: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", Name: "Agua", StockQuantity: 10, MinThreshold: 3, Status: lifecycle.StatusActive},
		"prod-2": {ID: "prod-2", Name: "Vino", StockQuantity: 5, MinThreshold: 0, Status: lifecycle.StatusDeleted},
	}}
	movements := &fakeMovementRepo{}
	tx := &fakeTxRunner{products: products, movements: movements}
	return &env{
		uc:        inventory.NewRegisterMovementUseCase(tx, movements),
		products:  products,
		movements: movements,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterMovement
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_EntradaSumaStock(t *testing.T) {
	e := newEnv()
	out, err := e.uc.RegisterMovement(context.Background(), "u-1", dto.RegisterMovementRequest{
		ProductID: "prod-1", Type: entity.MovementTypeIn, Quantity: 7, Comment: "recepción",
	})
	require.NoError(t, err)

	assert.Equal(t, 17, e.products.items["prod-1"].StockQuantity)
	assert.False(t, out.LowStock)
	require.Len(t, e.movements.items, 1)
	assert.Equal(t, "u-1", e.movements.items[0].UserID)
	assert.Equal(t, "recepción", e.movements.items[0].Comment)
}

func TestRegisterMovement_SalidaMayorQueStock(t *testing.T) {
	e := newEnv()
	_, err := e.uc.RegisterMovement(context.Background(), "u-1", dto.RegisterMovementRequest{
		ProductID: "prod-1", Type: entity.MovementTypeOut, Quantity: 11,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, e.products.items["prod-1"].StockQuantity, "el stock no cambia")
	assert.Empty(t, e.movements.items, "no se escribe nada en el libro")
}

func TestRegisterMovement_SalidaHastaCero(t *testing.T) {
	e := newEnv()
	out, err := e.uc.RegisterMovement(context.Background(), "u-1", dto.RegisterMovementRequest{
		ProductID: "prod-1", Type: entity.MovementTypeLoss, Quantity: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, e.products.items["prod-1"].StockQuantity)
	assert.True(t, out.LowStock, "0 ≤ umbral 3 dispara la alerta")
}

func TestRegisterMovement_DevolucionSuma(t *testing.T) {
	e := newEnv()
	_, err := e.uc.RegisterMovement(context.Background(), "u-1", dto.RegisterMovementRequest{
		ProductID: "prod-1", Type: entity.MovementTypeReturn, Quantity: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, e.products.items["prod-1"].StockQuantity)
}

func TestRegisterMovement_TipoInvalido(t *testing.T) {
	e := newEnv()
	_, err := e.uc.RegisterMovement(context.Background(), "u-1", dto.RegisterMovementRequest{
		ProductID: "prod-1", Type: "transfer", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_CantidadInvalida(t *testing.T) {
	e := newEnv()
	_, err := e.uc.RegisterMovement(context.Background(), "u-1", dto.RegisterMovementRequest{
		ProductID: "prod-1", Type: entity.MovementTypeIn, Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_ProductoEliminado(t *testing.T) {
	e := newEnv()
	_, err := e.uc.RegisterMovement(context.Background(), "u-1", dto.RegisterMovementRequest{
		ProductID: "prod-2", Type: entity.MovementTypeIn, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestRegisterMovement_ProductoInexistente(t *testing.T) {
	e := newEnv()
	_, err := e.uc.RegisterMovement(context.Background(), "u-1", dto.RegisterMovementRequest{
		ProductID: "no-existe", Type: entity.MovementTypeIn, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyMovement (regla pura)
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyMovement(t *testing.T) {
	p := &entity.Product{StockQuantity: 5}

	qty, err := inventory.ApplyMovement(p, &entity.StockMovement{Type: entity.MovementTypeIn, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 8, qty)

	qty, err = inventory.ApplyMovement(p, &entity.StockMovement{Type: entity.MovementTypeOut, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 0, qty)

	_, err = inventory.ApplyMovement(p, &entity.StockMovement{Type: entity.MovementTypeLoss, Quantity: 6})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = inventory.ApplyMovement(p, &entity.StockMovement{Type: entity.MovementTypeIn, Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
