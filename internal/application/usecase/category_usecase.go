package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/itsales/pos-api/internal/application/dto"
	"github.com/itsales/pos-api/internal/domain"
	"github.com/itsales/pos-api/internal/domain/entity"
	"github.com/itsales/pos-api/internal/domain/lifecycle"
	"github.com/itsales/pos-api/internal/domain/permission"
	"github.com/itsales/pos-api/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías. El borrado no pasa por aquí: borrado
// directo y solicitudes viven en el caso de uso de workflow.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso con el puerto de persistencia.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create da de alta una categoría en estado active.
func (uc *CategoryUseCase) Create(actor permission.Actor, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if !permission.CanPerform(actor, permission.ActionCreate, permission.Target{Type: entity.TargetCategory}) {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Status:      lifecycle.StatusActive,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update modifica nombre/descripción. Propietario o admin; nunca sobre deleted.
func (uc *CategoryUseCase) Update(actor permission.Actor, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	target := permission.Target{Type: entity.TargetCategory, OwnerID: category.CreatedBy, Status: category.Status}
	if !permission.CanPerform(actor, permission.ActionEdit, target) {
		return nil, domain.ErrForbidden
	}
	if lifecycle.IsDeleted(category.Status) {
		return nil, domain.ErrInvalidState
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// List devuelve categorías paginadas.
func (uc *CategoryUseCase) List(page dto.PageRequest) (*dto.CategoryListResponse, error) {
	page.DefaultPage()
	items, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.CategoryListResponse{
		Items: make([]dto.CategoryResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, c := range items {
		out.Items = append(out.Items, *toCategoryResponse(c))
	}
	return out, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Status:      c.Status,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
