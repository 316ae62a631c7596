package permission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itsales/pos-api/internal/domain/entity"
	"github.com/itsales/pos-api/internal/domain/lifecycle"
	"github.com/itsales/pos-api/internal/domain/permission"
)

var (
	admin   = permission.Actor{ID: "u-admin", Role: entity.RoleAdmin}
	gestor  = permission.Actor{ID: "u-gestor", Role: entity.RoleStockManager}
	cajero  = permission.Actor{ID: "u-cajero", Role: entity.RoleCashier}
	extrano = permission.Actor{ID: "u-x", Role: "superuser"} // rol desconocido
)

// La misma categoría vista por los tres roles: solo cambia el veredicto.
func TestCanPerform_BorrarCategoriaSegunRol(t *testing.T) {
	cat := permission.Target{Type: entity.TargetCategory, OwnerID: "u-gestor", Status: lifecycle.StatusActive}

	assert.True(t, permission.CanPerform(admin, permission.ActionDelete, cat),
		"admin borra directo cualquier categoría")
	assert.False(t, permission.CanPerform(gestor, permission.ActionDelete, cat),
		"stock_manager nunca borra directo, ni lo propio")
	assert.True(t, permission.CanPerform(gestor, permission.ActionRequestDelete, cat),
		"stock_manager sí puede solicitar el borrado")
	assert.False(t, permission.CanPerform(cajero, permission.ActionDelete, cat),
		"cashier no toca el catálogo")
	assert.False(t, permission.CanPerform(cajero, permission.ActionRequestDelete, cat))
}

func TestCanPerform_StockManagerEditaSoloLoPropio(t *testing.T) {
	propio := permission.Target{Type: entity.TargetProduct, OwnerID: "u-gestor", Status: lifecycle.StatusActive}
	ajeno := permission.Target{Type: entity.TargetProduct, OwnerID: "u-otro", Status: lifecycle.StatusActive}

	assert.True(t, permission.CanPerform(gestor, permission.ActionEdit, propio))
	assert.False(t, permission.CanPerform(gestor, permission.ActionEdit, ajeno))
	assert.True(t, permission.CanPerform(gestor, permission.ActionCreate, permission.Target{Type: entity.TargetProduct}))
	assert.True(t, permission.CanPerform(gestor, permission.ActionCreate, permission.Target{Type: entity.TargetCategory}))
	assert.False(t, permission.CanPerform(gestor, permission.ActionCreate, permission.Target{Type: entity.TargetSale}),
		"stock_manager no registra ventas")
}

func TestCanPerform_CashierSobreSusVentas(t *testing.T) {
	propia := permission.Target{Type: entity.TargetSale, OwnerID: "u-cajero", Status: lifecycle.StatusValid}
	ajena := permission.Target{Type: entity.TargetSale, OwnerID: "u-otro", Status: lifecycle.StatusValid}
	propiaBorrada := permission.Target{Type: entity.TargetSale, OwnerID: "u-cajero", Status: lifecycle.StatusDeleted}

	assert.True(t, permission.CanPerform(cajero, permission.ActionCreate, permission.Target{Type: entity.TargetSale}))
	assert.True(t, permission.CanPerform(cajero, permission.ActionDelete, propia),
		"cashier borra directo su venta en estado valid")
	assert.False(t, permission.CanPerform(cajero, permission.ActionDelete, ajena))
	assert.False(t, permission.CanPerform(cajero, permission.ActionDelete, propiaBorrada),
		"solo las ventas valid se borran directo")
	assert.True(t, permission.CanPerform(cajero, permission.ActionRequestDelete, propia))
	assert.False(t, permission.CanPerform(cajero, permission.ActionRequestDelete, ajena))
}

func TestCanPerform_RolDesconocidoSinAcceso(t *testing.T) {
	for _, action := range []string{
		permission.ActionCreate, permission.ActionEdit,
		permission.ActionDelete, permission.ActionRequestDelete,
	} {
		assert.False(t, permission.CanPerform(extrano, action,
			permission.Target{Type: entity.TargetProduct, OwnerID: "u-x"}),
			"rol no reconocido debe negar %s", action)
	}
}
