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

// ProductUseCase CRUD de productos. El stock no se edita por aquí: solo los
// movimientos de inventario lo modifican.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso con los puertos de persistencia.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create da de alta un producto en estado active con stock cero.
// El stock inicial entra después como movimiento "in".
func (uc *ProductUseCase) Create(actor permission.Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !permission.CanPerform(actor, permission.ActionCreate, permission.Target{Type: entity.TargetProduct}) {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" || in.CategoryID == "" || in.MinThreshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchasePrice.IsNegative() || in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || !lifecycle.IsActive(category.Status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		StockQuantity: 0,
		MinThreshold:  in.MinThreshold,
		Status:        lifecycle.StatusActive,
		CreatedBy:     actor.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update modifica los campos descriptivos y de precio. Propietario o admin.
func (uc *ProductUseCase) Update(actor permission.Actor, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	target := permission.Target{Type: entity.TargetProduct, OwnerID: product.CreatedBy, Status: product.Status}
	if !permission.CanPerform(actor, permission.ActionEdit, target) {
		return nil, domain.ErrForbidden
	}
	if lifecycle.IsDeleted(product.Status) {
		return nil, domain.ErrInvalidState
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil || !lifecycle.IsActive(category.Status) {
			return nil, domain.ErrInvalidInput
		}
		product.CategoryID = *in.CategoryID
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SalePrice != nil {
		if in.SalePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.SalePrice = *in.SalePrice
	}
	if in.MinThreshold != nil {
		if *in.MinThreshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinThreshold = *in.MinThreshold
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List devuelve productos paginados.
func (uc *ProductUseCase) List(page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	items, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range items {
		out.Items = append(out.Items, *toProductResponse(p))
	}
	return out, nil
}

// ListLowStock devuelve los productos en o por debajo de su umbral mínimo.
func (uc *ProductUseCase) ListLowStock() ([]dto.ProductResponse, error) {
	items, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(items))
	for _, p := range items {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		StockQuantity: p.StockQuantity,
		MinThreshold:  p.MinThreshold,
		LowStock:      p.LowStock(),
		Status:        p.Status,
		CreatedBy:     p.CreatedBy,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
