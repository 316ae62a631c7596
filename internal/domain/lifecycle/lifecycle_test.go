package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itsales/pos-api/internal/domain/entity"
	"github.com/itsales/pos-api/internal/domain/lifecycle"
)

func TestCanTransition(t *testing.T) {
	// aristas válidas
	assert.True(t, lifecycle.CanTransition(lifecycle.StatusActive, lifecycle.StatusPendingDeletion))
	assert.True(t, lifecycle.CanTransition(lifecycle.StatusValid, lifecycle.StatusDeleted))
	assert.True(t, lifecycle.CanTransition(lifecycle.StatusPendingDeletion, lifecycle.StatusDeleted))
	assert.True(t, lifecycle.CanTransition(lifecycle.StatusPendingDeletion, lifecycle.StatusActive),
		"rechazo de borrado devuelve la entidad a activo")
	assert.True(t, lifecycle.CanTransition(lifecycle.StatusDeleted, lifecycle.StatusValid),
		"restauración aprobada")

	// aristas inexistentes
	assert.False(t, lifecycle.CanTransition(lifecycle.StatusDeleted, lifecycle.StatusPendingDeletion))
	assert.False(t, lifecycle.CanTransition(lifecycle.StatusActive, lifecycle.StatusActive))
	assert.False(t, lifecycle.CanTransition("desconocido", lifecycle.StatusDeleted))
}

func TestActiveStatus(t *testing.T) {
	assert.Equal(t, lifecycle.StatusValid, lifecycle.ActiveStatus(entity.TargetSale))
	assert.Equal(t, lifecycle.StatusActive, lifecycle.ActiveStatus(entity.TargetProduct))
	assert.Equal(t, lifecycle.StatusActive, lifecycle.ActiveStatus(entity.TargetCategory))
}

func TestIsActiveIsDeleted(t *testing.T) {
	assert.True(t, lifecycle.IsActive(lifecycle.StatusActive))
	assert.True(t, lifecycle.IsActive(lifecycle.StatusValid))
	assert.False(t, lifecycle.IsActive(lifecycle.StatusPendingDeletion))
	assert.True(t, lifecycle.IsDeleted(lifecycle.StatusDeleted))
	assert.False(t, lifecycle.IsDeleted(lifecycle.StatusActive))
}
