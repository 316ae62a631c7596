package workflow_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsales/pos-api/internal/application/workflow"
	"github.com/itsales/pos-api/internal/domain"
	"github.com/itsales/pos-api/internal/domain/entity"
	"github.com/itsales/pos-api/internal/domain/lifecycle"
	"github.com/itsales/pos-api/internal/domain/permission"
	"github.com/itsales/pos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct{ items map[string]*entity.Category }

func (r *fakeCategoryRepo) Create(c *entity.Category) error          { r.items[c.ID] = c; return nil }
func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) { return r.items[id], nil }
func (r *fakeCategoryRepo) Update(c *entity.Category) error          { r.items[c.ID] = c; return nil }
func (r *fakeCategoryRepo) UpdateStatus(id, status string) error {
	if c, ok := r.items[id]; ok {
		c.Status = status
	}
	return nil
}
func (r *fakeCategoryRepo) List(limit, offset int) ([]*entity.Category, error) { return nil, nil }

type fakeProductRepo struct{ items map[string]*entity.Product }

func (r *fakeProductRepo) Create(p *entity.Product) error              { r.items[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error)  { return r.items[id], nil }
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.items[id], nil }
func (r *fakeProductRepo) Update(p *entity.Product) error              { r.items[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateStatus(id, status string) error {
	if p, ok := r.items[id]; ok {
		p.Status = status
	}
	return nil
}
func (r *fakeProductRepo) UpdateStock(id string, qty int) error {
	if p, ok := r.items[id]; ok {
		p.StockQuantity = qty
	}
	return nil
}
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error)          { return nil, nil }

type fakeSaleRepo struct{ items map[string]*entity.Sale }

func (r *fakeSaleRepo) Create(s *entity.Sale) error             { r.items[s.ID] = s; return nil }
func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) { return r.items[id], nil }
func (r *fakeSaleRepo) UpdateStatus(id, status string) error {
	if s, ok := r.items[id]; ok {
		s.Status = status
	}
	return nil
}
func (r *fakeSaleRepo) List(limit, offset int) ([]*entity.Sale, error) { return nil, nil }
func (r *fakeSaleRepo) ListByCashier(cashierID string, limit, offset int) ([]*entity.Sale, error) {
	return nil, nil
}

type fakeValidationRepo struct {
	items map[string]*entity.Validation
	// fuerza MarkResolved a perder la carrera aunque el GetByID previo viera pending
	loseResolveRace bool
}

func (r *fakeValidationRepo) Create(v *entity.Validation) error {
	for _, e := range r.items {
		if e.TargetType == v.TargetType && e.TargetID == v.TargetID && e.Status == entity.ValidationPending {
			return domain.ErrDuplicate
		}
	}
	cp := *v
	r.items[v.ID] = &cp
	return nil
}
func (r *fakeValidationRepo) GetByID(id string) (*entity.Validation, error) { return r.items[id], nil }
func (r *fakeValidationRepo) GetPendingByTarget(targetType, targetID string) (*entity.Validation, error) {
	for _, v := range r.items {
		if v.TargetType == targetType && v.TargetID == targetID && v.Status == entity.ValidationPending {
			return v, nil
		}
	}
	return nil, nil
}
func (r *fakeValidationRepo) MarkResolved(id, status, resolverID string, at time.Time) (bool, error) {
	if r.loseResolveRace {
		return false, nil
	}
	v, ok := r.items[id]
	if !ok || v.Status != entity.ValidationPending {
		return false, nil
	}
	v.Status = status
	v.ResolverID = &resolverID
	v.ResolvedAt = &at
	return true, nil
}
func (r *fakeValidationRepo) List(limit, offset int) ([]*entity.Validation, error) {
	out := make([]*entity.Validation, 0, len(r.items))
	for _, v := range r.items {
		out = append(out, v)
	}
	return out, nil
}
func (r *fakeValidationRepo) ListByStatus(status string, limit, offset int) ([]*entity.Validation, error) {
	var out []*entity.Validation
	for _, v := range r.items {
		if v.Status == status {
			out = append(out, v)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback directamente sobre los mismos fakes.
type fakeTxRunner struct {
	validations *fakeValidationRepo
	targets     workflow.TargetRepos
}

func (r *fakeTxRunner) RunWorkflow(ctx context.Context, fn func(repository.ValidationRepository, workflow.TargetRepos) error) error {
	return fn(r.validations, r.targets)
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

type env struct {
	uc          *workflow.UseCase
	categories  *fakeCategoryRepo
	products    *fakeProductRepo
	sales       *fakeSaleRepo
	validations *fakeValidationRepo
}

func newEnv() *env {
	categories := &fakeCategoryRepo{items: map[string]*entity.Category{
		"cat-1": {ID: "cat-1", Name: "Bebidas", Status: lifecycle.StatusActive, CreatedBy: "u-gestor"},
	}}
	products := &fakeProductRepo{items: map[string]*entity.Product{
		"prod-1": {ID: "prod-1", Name: "Agua", Status: lifecycle.StatusActive, CreatedBy: "u-gestor"},
		"prod-2": {ID: "prod-2", Name: "Vino", Status: lifecycle.StatusDeleted, CreatedBy: "u-gestor"},
	}}
	sales := &fakeSaleRepo{items: map[string]*entity.Sale{
		"sale-1": {ID: "sale-1", CashierID: "u-cajero", Status: lifecycle.StatusValid},
	}}
	validations := &fakeValidationRepo{items: map[string]*entity.Validation{}}
	targets := workflow.TargetRepos{Categories: categories, Products: products, Sales: sales}
	uc := workflow.NewUseCase(
		&fakeTxRunner{validations: validations, targets: targets},
		validations, categories, products, sales,
	)
	return &env{uc: uc, categories: categories, products: products, sales: sales, validations: validations}
}

var (
	adminActor  = permission.Actor{ID: "u-admin", Role: entity.RoleAdmin}
	gestorActor = permission.Actor{ID: "u-gestor", Role: entity.RoleStockManager}
	cajeroActor = permission.Actor{ID: "u-cajero", Role: entity.RoleCashier}
)

// ──────────────────────────────────────────────────────────────────────────────
// RequestDeletion
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestDeletion_GestorSobreCategoriaActiva(t *testing.T) {
	e := newEnv()
	out, err := e.uc.RequestDeletion(context.Background(), gestorActor, entity.TargetCategory, "cat-1")
	require.NoError(t, err)

	assert.Equal(t, entity.ValidationPending, out.Status)
	assert.Equal(t, entity.ActionDeletion, out.Action)
	assert.Equal(t, "u-gestor", out.RequesterID)
	assert.Equal(t, lifecycle.StatusPendingDeletion, e.categories.items["cat-1"].Status,
		"la categoría pasa a pending_deletion junto con la solicitud")
}

func TestRequestDeletion_SegundaSolicitudRechazada(t *testing.T) {
	e := newEnv()
	_, err := e.uc.RequestDeletion(context.Background(), gestorActor, entity.TargetCategory, "cat-1")
	require.NoError(t, err)

	_, err = e.uc.RequestDeletion(context.Background(), gestorActor, entity.TargetCategory, "cat-1")
	assert.ErrorIs(t, err, domain.ErrInvalidState,
		"con una solicitud abierta (y la entidad ya fuera de activo) no cabe otra")
}

func TestRequestDeletion_SinPermiso(t *testing.T) {
	e := newEnv()
	_, err := e.uc.RequestDeletion(context.Background(), cajeroActor, entity.TargetCategory, "cat-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, lifecycle.StatusActive, e.categories.items["cat-1"].Status, "sin mutación")
}

func TestRequestDeletion_EntidadInexistente(t *testing.T) {
	e := newEnv()
	_, err := e.uc.RequestDeletion(context.Background(), gestorActor, entity.TargetProduct, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRequestDeletion_EntidadEliminada(t *testing.T) {
	e := newEnv()
	_, err := e.uc.RequestDeletion(context.Background(), adminActor, entity.TargetProduct, "prod-2")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolve
// ──────────────────────────────────────────────────────────────────────────────

func requestDeletion(t *testing.T, e *env, actor permission.Actor, targetType, targetID string) string {
	t.Helper()
	out, err := e.uc.RequestDeletion(context.Background(), actor, targetType, targetID)
	require.NoError(t, err)
	return out.ID
}

func TestResolve_AprobarEliminacion(t *testing.T) {
	e := newEnv()
	id := requestDeletion(t, e, gestorActor, entity.TargetCategory, "cat-1")

	out, err := e.uc.Resolve(context.Background(), adminActor, id, workflow.DecisionApprove)
	require.NoError(t, err)

	assert.Equal(t, entity.ValidationApproved, out.Status)
	require.NotNil(t, out.ResolverID)
	assert.Equal(t, "u-admin", *out.ResolverID)
	assert.NotNil(t, out.ResolvedAt)
	assert.Equal(t, lifecycle.StatusDeleted, e.categories.items["cat-1"].Status)
}

func TestResolve_RechazarEliminacion_VuelveActivo(t *testing.T) {
	e := newEnv()
	id := requestDeletion(t, e, gestorActor, entity.TargetCategory, "cat-1")

	out, err := e.uc.Resolve(context.Background(), adminActor, id, workflow.DecisionReject)
	require.NoError(t, err)

	assert.Equal(t, entity.ValidationRejected, out.Status)
	assert.Equal(t, lifecycle.StatusActive, e.categories.items["cat-1"].Status,
		"el rechazo devuelve la categoría a active")
}

func TestResolve_RechazarEliminacionDeVenta_VuelveValid(t *testing.T) {
	e := newEnv()
	id := requestDeletion(t, e, cajeroActor, entity.TargetSale, "sale-1")

	_, err := e.uc.Resolve(context.Background(), adminActor, id, workflow.DecisionReject)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusValid, e.sales.items["sale-1"].Status,
		"las ventas vuelven a valid, no a active")
}

func TestResolve_SoloAdmin(t *testing.T) {
	e := newEnv()
	id := requestDeletion(t, e, gestorActor, entity.TargetCategory, "cat-1")

	_, err := e.uc.Resolve(context.Background(), gestorActor, id, workflow.DecisionApprove)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, lifecycle.StatusPendingDeletion, e.categories.items["cat-1"].Status)
}

func TestResolve_YaResuelta(t *testing.T) {
	e := newEnv()
	id := requestDeletion(t, e, gestorActor, entity.TargetCategory, "cat-1")
	_, err := e.uc.Resolve(context.Background(), adminActor, id, workflow.DecisionApprove)
	require.NoError(t, err)

	_, err = e.uc.Resolve(context.Background(), adminActor, id, workflow.DecisionReject)
	assert.ErrorIs(t, err, domain.ErrInvalidState,
		"una validación terminal no se vuelve a resolver")
	assert.Equal(t, lifecycle.StatusDeleted, e.categories.items["cat-1"].Status)
}

func TestResolve_CarreraPerdida_Conflict(t *testing.T) {
	e := newEnv()
	id := requestDeletion(t, e, gestorActor, entity.TargetCategory, "cat-1")

	// Otra resolución gana entre el GetByID y el UPDATE condicional.
	e.validations.loseResolveRace = true
	_, err := e.uc.Resolve(context.Background(), adminActor, id, workflow.DecisionApprove)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestResolve_DecisionInvalida(t *testing.T) {
	e := newEnv()
	id := requestDeletion(t, e, gestorActor, entity.TargetCategory, "cat-1")
	_, err := e.uc.Resolve(context.Background(), adminActor, id, "maybe")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolve_TransicionNoEnumerada(t *testing.T) {
	e := newEnv()
	id := requestDeletion(t, e, gestorActor, entity.TargetCategory, "cat-1")

	// La categoría fue eliminada por fuera del flujo antes de resolver.
	e.categories.items["cat-1"].Status = lifecycle.StatusDeleted

	_, err := e.uc.Resolve(context.Background(), adminActor, id, workflow.DecisionApprove)
	assert.ErrorIs(t, err, domain.ErrInvalidState,
		"deleted→deleted no es una arista del ciclo de vida")
	assert.Equal(t, lifecycle.StatusDeleted, e.categories.items["cat-1"].Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Restauración
// ──────────────────────────────────────────────────────────────────────────────

func TestRestauracion_AprobarDevuelveActivo(t *testing.T) {
	e := newEnv()
	out, err := e.uc.RequestRestoration(context.Background(), gestorActor, entity.TargetProduct, "prod-2")
	require.NoError(t, err)
	assert.Equal(t, entity.ActionRestoration, out.Action)
	assert.Equal(t, lifecycle.StatusDeleted, e.products.items["prod-2"].Status,
		"la entidad sigue deleted mientras la solicitud está abierta")

	_, err = e.uc.Resolve(context.Background(), adminActor, out.ID, workflow.DecisionApprove)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusActive, e.products.items["prod-2"].Status)
}

func TestRestauracion_RechazarDejaDeleted(t *testing.T) {
	e := newEnv()
	out, err := e.uc.RequestRestoration(context.Background(), gestorActor, entity.TargetProduct, "prod-2")
	require.NoError(t, err)

	_, err = e.uc.Resolve(context.Background(), adminActor, out.ID, workflow.DecisionReject)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusDeleted, e.products.items["prod-2"].Status)
}

func TestRestauracion_SobreEntidadActiva(t *testing.T) {
	e := newEnv()
	_, err := e.uc.RequestRestoration(context.Background(), gestorActor, entity.TargetProduct, "prod-1")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteDirect
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteDirect_AdminSinAprobacion(t *testing.T) {
	e := newEnv()
	err := e.uc.DeleteDirect(context.Background(), adminActor, entity.TargetCategory, "cat-1")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusDeleted, e.categories.items["cat-1"].Status)
}

func TestDeleteDirect_CajeroSuVentaValida(t *testing.T) {
	e := newEnv()
	err := e.uc.DeleteDirect(context.Background(), cajeroActor, entity.TargetSale, "sale-1")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusDeleted, e.sales.items["sale-1"].Status)
}

func TestDeleteDirect_GestorNoPuede(t *testing.T) {
	e := newEnv()
	err := e.uc.DeleteDirect(context.Background(), gestorActor, entity.TargetCategory, "cat-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, lifecycle.StatusActive, e.categories.items["cat-1"].Status)
}
