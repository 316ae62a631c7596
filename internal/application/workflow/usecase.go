package workflow

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/itsales/pos-api/internal/application/dto"
	"github.com/itsales/pos-api/internal/domain"
	"github.com/itsales/pos-api/internal/domain/entity"
	"github.com/itsales/pos-api/internal/domain/lifecycle"
	"github.com/itsales/pos-api/internal/domain/permission"
	"github.com/itsales/pos-api/internal/domain/repository"
)

// Decisiones posibles al resolver una Validation.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// TargetRepos repositorios de las entidades objetivo, atados a la transacción
// en curso cuando los entrega el TxRunner.
type TargetRepos struct {
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	Sales      repository.SaleRepository
}

// statusRepo es lo mínimo que el workflow necesita de cada repo objetivo.
type statusRepo interface {
	UpdateStatus(id, status string) error
}

// forType devuelve el repo del tipo objetivo, o nil si el tipo no participa
// del flujo (los usuarios nunca se eliminan).
func (t TargetRepos) forType(targetType string) statusRepo {
	switch targetType {
	case entity.TargetCategory:
		return t.Categories
	case entity.TargetProduct:
		return t.Products
	case entity.TargetSale:
		return t.Sales
	}
	return nil
}

// transition aplica el cambio de estado solo si la arista from→to está
// enumerada en lifecycle; toda escritura de estado del flujo pasa por aquí.
func transition(repo statusRepo, id, from, to string) error {
	if repo == nil || !lifecycle.CanTransition(from, to) {
		return domain.ErrInvalidState
	}
	return repo.UpdateStatus(id, to)
}

// TxRunner ejecuta el callback dentro de una transacción: o la entidad y la
// Validation cambian juntas, o ninguna lo hace.
type TxRunner interface {
	RunWorkflow(ctx context.Context, fn func(validationRepo repository.ValidationRepository, targets TargetRepos) error) error
}

// UseCase implementa el flujo de aprobación: solicitud de eliminación o
// restauración por actores sin permiso directo, y resolución por un admin.
type UseCase struct {
	txRunner       TxRunner
	validationRepo repository.ValidationRepository
	categoryRepo   repository.CategoryRepository
	productRepo    repository.ProductRepository
	saleRepo       repository.SaleRepository
}

// NewUseCase construye el caso de uso con los puertos de persistencia.
func NewUseCase(
	txRunner TxRunner,
	validationRepo repository.ValidationRepository,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) *UseCase {
	return &UseCase{
		txRunner:       txRunner,
		validationRepo: validationRepo,
		categoryRepo:   categoryRepo,
		productRepo:    productRepo,
		saleRepo:       saleRepo,
	}
}

// targetState carga propietario y estado actual de la entidad objetivo.
func (uc *UseCase) targetState(targetType, targetID string) (owner, status string, err error) {
	switch targetType {
	case entity.TargetCategory:
		c, err := uc.categoryRepo.GetByID(targetID)
		if err != nil {
			return "", "", err
		}
		if c == nil {
			return "", "", domain.ErrNotFound
		}
		return c.CreatedBy, c.Status, nil
	case entity.TargetProduct:
		p, err := uc.productRepo.GetByID(targetID)
		if err != nil {
			return "", "", err
		}
		if p == nil {
			return "", "", domain.ErrNotFound
		}
		return p.CreatedBy, p.Status, nil
	case entity.TargetSale:
		s, err := uc.saleRepo.GetByID(targetID)
		if err != nil {
			return "", "", err
		}
		if s == nil {
			return "", "", domain.ErrNotFound
		}
		return s.CashierID, s.Status, nil
	}
	return "", "", domain.ErrInvalidInput
}

// RequestDeletion pasa la entidad a pending_deletion y crea la Validation
// pendiente en la misma transacción. Falla con ErrInvalidState si la entidad
// no está activa o ya tiene una solicitud abierta, y con ErrForbidden si el
// actor no tiene derechos de solicitud sobre ese tipo.
func (uc *UseCase) RequestDeletion(ctx context.Context, actor permission.Actor, targetType, targetID string) (*dto.ValidationResponse, error) {
	owner, status, err := uc.targetState(targetType, targetID)
	if err != nil {
		return nil, err
	}
	if !permission.CanPerform(actor, permission.ActionRequestDelete, permission.Target{Type: targetType, OwnerID: owner, Status: status}) {
		return nil, domain.ErrForbidden
	}
	if !lifecycle.IsActive(status) {
		return nil, domain.ErrInvalidState
	}
	if pending, err := uc.validationRepo.GetPendingByTarget(targetType, targetID); err != nil {
		return nil, err
	} else if pending != nil {
		return nil, domain.ErrInvalidState
	}

	v := &entity.Validation{
		ID:          uuid.New().String(),
		TargetType:  targetType,
		TargetID:    targetID,
		Action:      entity.ActionDeletion,
		Status:      entity.ValidationPending,
		RequesterID: actor.ID,
		RequestedAt: time.Now(),
	}
	err = uc.txRunner.RunWorkflow(ctx, func(validationRepo repository.ValidationRepository, targets TargetRepos) error {
		if err := transition(targets.forType(targetType), targetID, status, lifecycle.StatusPendingDeletion); err != nil {
			return err
		}
		return validationRepo.Create(v)
	})
	if err != nil {
		// El índice parcial sobre (target_type, target_id, pending) respalda
		// la comprobación previa ante dos solicitudes simultáneas.
		if err == domain.ErrDuplicate {
			return nil, domain.ErrInvalidState
		}
		return nil, err
	}
	return ToValidationResponse(v), nil
}

// RequestRestoration crea una Validation de restauración sobre una entidad
// eliminada. La entidad permanece deleted mientras la solicitud esté abierta.
func (uc *UseCase) RequestRestoration(ctx context.Context, actor permission.Actor, targetType, targetID string) (*dto.ValidationResponse, error) {
	owner, status, err := uc.targetState(targetType, targetID)
	if err != nil {
		return nil, err
	}
	if !permission.CanPerform(actor, permission.ActionRequestDelete, permission.Target{Type: targetType, OwnerID: owner, Status: status}) {
		return nil, domain.ErrForbidden
	}
	if !lifecycle.IsDeleted(status) {
		return nil, domain.ErrInvalidState
	}
	if pending, err := uc.validationRepo.GetPendingByTarget(targetType, targetID); err != nil {
		return nil, err
	} else if pending != nil {
		return nil, domain.ErrInvalidState
	}

	v := &entity.Validation{
		ID:          uuid.New().String(),
		TargetType:  targetType,
		TargetID:    targetID,
		Action:      entity.ActionRestoration,
		Status:      entity.ValidationPending,
		RequesterID: actor.ID,
		RequestedAt: time.Now(),
	}
	if err := uc.validationRepo.Create(v); err != nil {
		if err == domain.ErrDuplicate {
			return nil, domain.ErrInvalidState
		}
		return nil, err
	}
	return ToValidationResponse(v), nil
}

// DeleteDirect elimina la entidad sin pasar por aprobación. Solo para actores
// con derecho de borrado directo (admin en todos los tipos; cashier en sus
// ventas valid). La entidad debe estar activa.
func (uc *UseCase) DeleteDirect(ctx context.Context, actor permission.Actor, targetType, targetID string) error {
	owner, status, err := uc.targetState(targetType, targetID)
	if err != nil {
		return err
	}
	if !permission.CanPerform(actor, permission.ActionDelete, permission.Target{Type: targetType, OwnerID: owner, Status: status}) {
		return domain.ErrForbidden
	}
	if !lifecycle.IsActive(status) {
		return domain.ErrInvalidState
	}
	return uc.txRunner.RunWorkflow(ctx, func(_ repository.ValidationRepository, targets TargetRepos) error {
		return transition(targets.forType(targetType), targetID, status, lifecycle.StatusDeleted)
	})
}

// Resolve aprueba o rechaza una Validation pendiente. Solo admin.
// approve: deletion ⇒ entidad deleted; restoration ⇒ entidad vuelve a su
// estado activo. reject: deletion ⇒ entidad vuelve a su estado activo;
// restoration ⇒ la entidad sigue deleted.
// El UPDATE de la Validation está condicionado a status=pending: si otra
// resolución gana la carrera, se devuelve ErrConflict sin mutación parcial.
func (uc *UseCase) Resolve(ctx context.Context, resolver permission.Actor, validationID, decision string) (*dto.ValidationResponse, error) {
	if decision != DecisionApprove && decision != DecisionReject {
		return nil, domain.ErrInvalidInput
	}
	if resolver.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	v, err := uc.validationRepo.GetByID(validationID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	if v.Resolved() {
		return nil, domain.ErrInvalidState
	}
	_, targetStatus, err := uc.targetState(v.TargetType, v.TargetID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newStatus := entity.ValidationApproved
	if decision == DecisionReject {
		newStatus = entity.ValidationRejected
	}
	err = uc.txRunner.RunWorkflow(ctx, func(validationRepo repository.ValidationRepository, targets TargetRepos) error {
		ok, err := validationRepo.MarkResolved(v.ID, newStatus, resolver.ID, now)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrConflict
		}
		target := targets.forType(v.TargetType)
		switch {
		case v.Action == entity.ActionDeletion && decision == DecisionApprove:
			return transition(target, v.TargetID, targetStatus, lifecycle.StatusDeleted)
		case v.Action == entity.ActionDeletion && decision == DecisionReject:
			return transition(target, v.TargetID, targetStatus, lifecycle.ActiveStatus(v.TargetType))
		case v.Action == entity.ActionRestoration && decision == DecisionApprove:
			return transition(target, v.TargetID, targetStatus, lifecycle.ActiveStatus(v.TargetType))
		}
		// restoration rechazada: la entidad permanece deleted
		return nil
	})
	if err != nil {
		return nil, err
	}
	v.Status = newStatus
	v.ResolverID = &resolver.ID
	v.ResolvedAt = &now
	return ToValidationResponse(v), nil
}

// List devuelve validaciones, opcionalmente filtradas por estado.
func (uc *UseCase) List(status string, page dto.PageRequest) (*dto.ValidationListResponse, error) {
	page.DefaultPage()
	var (
		items []*entity.Validation
		err   error
	)
	if status != "" {
		items, err = uc.validationRepo.ListByStatus(status, page.Limit, page.Offset)
	} else {
		items, err = uc.validationRepo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := &dto.ValidationListResponse{
		Items: make([]dto.ValidationResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, v := range items {
		out.Items = append(out.Items, *ToValidationResponse(v))
	}
	return out, nil
}

// ToValidationResponse mapea la entidad al DTO de salida.
func ToValidationResponse(v *entity.Validation) *dto.ValidationResponse {
	if v == nil {
		return nil
	}
	return &dto.ValidationResponse{
		ID:          v.ID,
		TargetType:  v.TargetType,
		TargetID:    v.TargetID,
		Action:      v.Action,
		Status:      v.Status,
		RequesterID: v.RequesterID,
		ResolverID:  v.ResolverID,
		RequestedAt: v.RequestedAt,
		ResolvedAt:  v.ResolvedAt,
	}
}
