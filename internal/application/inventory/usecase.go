package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/itsales/pos-api/internal/application/dto"
	"github.com/itsales/pos-api/internal/domain"
	"github.com/itsales/pos-api/internal/domain/entity"
	"github.com/itsales/pos-api/internal/domain/lifecycle"
	"github.com/itsales/pos-api/internal/domain/repository"
)

// TxRunner ejecuta el callback dentro de una transacción con repos atados a ella.
type TxRunner interface {
	RunMovement(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}

// RegisterMovementUseCase registra movimientos de stock (in, out, return, loss)
// de forma transaccional con bloqueo de fila (SELECT FOR UPDATE).
type RegisterMovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.StockMovementRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, movementRepo repository.StockMovementRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// MovementResult movimiento registrado más la señal de bajo stock resultante.
// LowStock es puramente informativo para la capa de presentación.
type MovementResult struct {
	Movement dto.MovementResponse
	LowStock bool
}

// RegisterMovement valida y aplica un movimiento: bloquea la fila del
// producto, verifica que out/loss no dejen el stock negativo
// (ErrInsufficientStock antes de escribir el ledger), actualiza la cantidad
// y añade la entrada inmutable del libro en la misma transacción.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*MovementResult, error) {
	if !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		UserID:    userID,
		Comment:   in.Comment,
		CreatedAt: time.Now(),
	}

	var lowStock bool
	err := uc.txRunner.RunMovement(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if lifecycle.IsDeleted(product.Status) {
			return domain.ErrInvalidState
		}
		newQty, err := ApplyMovement(product, mov)
		if err != nil {
			return err
		}
		if err := productRepo.UpdateStock(product.ID, newQty); err != nil {
			return err
		}
		lowStock = newQty <= product.MinThreshold
		return movementRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return &MovementResult{Movement: *ToMovementResponse(mov), LowStock: lowStock}, nil
}

// ApplyMovement calcula el nuevo stock del producto para un movimiento.
// Regla pura: out/loss con cantidad mayor al stock actual falla con
// ErrInsufficientStock; el resultado nunca baja de cero.
func ApplyMovement(product *entity.Product, mov *entity.StockMovement) (int, error) {
	if mov.Quantity <= 0 {
		return 0, domain.ErrInvalidInput
	}
	if mov.Direction() < 0 && mov.Quantity > product.StockQuantity {
		return 0, domain.ErrInsufficientStock
	}
	newQty := product.StockQuantity + mov.Direction()*mov.Quantity
	if newQty < 0 {
		newQty = 0
	}
	return newQty, nil
}

// ListMovementsUseCase listados de solo lectura del libro de movimientos.
type ListMovementsUseCase struct {
	movementRepo repository.StockMovementRepository
}

// NewListMovementsUseCase construye el caso de uso.
func NewListMovementsUseCase(movementRepo repository.StockMovementRepository) *ListMovementsUseCase {
	return &ListMovementsUseCase{movementRepo: movementRepo}
}

// List devuelve movimientos paginados, opcionalmente filtrados por producto.
func (uc *ListMovementsUseCase) List(productID string, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	var (
		items []*entity.StockMovement
		err   error
	)
	if productID != "" {
		items, err = uc.movementRepo.ListByProduct(productID, page.Limit, page.Offset)
	} else {
		items, err = uc.movementRepo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := &dto.MovementListResponse{
		Items: make([]dto.MovementResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, m := range items {
		out.Items = append(out.Items, *ToMovementResponse(m))
	}
	return out, nil
}

// ToMovementResponse mapea la entidad al DTO de salida.
func ToMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		UserID:    m.UserID,
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
	}
}
