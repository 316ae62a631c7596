package sales

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
	domainsale "github.com/itsales/pos-api/internal/domain/sale"
)

// TxRunner ejecuta el callback dentro de una transacción con repos atados a ella.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}

// UseCase registra y consulta ventas de punto de venta.
// La creación descuenta stock por línea (movimientos out) y guarda la venta
// en la misma transacción: o entra todo, o no entra nada.
type UseCase struct {
	txRunner    TxRunner
	saleRepo    repository.SaleRepository
	settingRepo repository.SettingRepository
}

// NewUseCase construye el caso de uso de ventas.
func NewUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, settingRepo repository.SettingRepository) *UseCase {
	return &UseCase{txRunner: txRunner, saleRepo: saleRepo, settingRepo: settingRepo}
}

// CreateSale valida la venta, recalcula precios y totales en servidor a
// partir del catálogo y la persiste junto con las salidas de stock.
// El descuento no puede superar max_discount_percent de settings; si el
// cliente no manda tasa de IVA se usa la tasa por defecto.
func (uc *UseCase) CreateSale(ctx context.Context, actor permission.Actor, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if !permission.CanPerform(actor, permission.ActionCreate, permission.Target{Type: entity.TargetSale}) {
		return nil, domain.ErrForbidden
	}
	if len(in.Lines) == 0 || !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	for _, l := range in.Lines {
		if l.ProductID == "" || l.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.DiscountPct.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	setting, err := uc.settingRepo.Get()
	if err != nil {
		return nil, err
	}
	if setting == nil {
		// Base sin sembrar: se vende con los valores por defecto.
		setting = entity.DefaultSetting("")
	}
	taxPct := setting.DefaultTaxRate
	if in.TaxPct != nil {
		if in.TaxPct.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		taxPct = *in.TaxPct
	}
	if in.DiscountPct.GreaterThan(setting.MaxDiscountPercent) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		CashierID:     actor.ID,
		DiscountPct:   in.DiscountPct,
		TaxPct:        taxPct,
		PaymentMethod: in.PaymentMethod,
		Status:        lifecycle.StatusValid,
		SoldAt:        now,
		CreatedAt:     now,
	}

	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		lineInputs := make([]domainsale.LineInput, 0, len(in.Lines))
		for _, l := range in.Lines {
			product, err := productRepo.GetForUpdate(l.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if !lifecycle.IsActive(product.Status) {
				return domain.ErrInvalidState
			}
			if l.Quantity > product.StockQuantity {
				return domain.ErrInsufficientStock
			}
			if err := productRepo.UpdateStock(product.ID, product.StockQuantity-l.Quantity); err != nil {
				return err
			}
			mov := &entity.StockMovement{
				ID:        uuid.New().String(),
				ProductID: product.ID,
				Type:      entity.MovementTypeOut,
				Quantity:  l.Quantity,
				UserID:    actor.ID,
				Comment:   "venta " + sale.ID,
				CreatedAt: now,
			}
			if err := movementRepo.Create(mov); err != nil {
				return err
			}
			sale.Lines = append(sale.Lines, entity.SaleLine{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				ProductID: product.ID,
				Quantity:  l.Quantity,
				UnitPrice: product.SalePrice,
				LineTotal: domainsale.LineTotal(l.Quantity, product.SalePrice),
			})
			lineInputs = append(lineInputs, domainsale.LineInput{Quantity: l.Quantity, UnitPrice: product.SalePrice})
		}

		totals := domainsale.ComputeTotals(lineInputs, in.DiscountPct, taxPct)
		sale.Subtotal = totals.Subtotal
		sale.DiscountAmount = totals.DiscountAmount
		sale.NetBeforeTax = totals.NetBeforeTax
		sale.TaxAmount = totals.TaxAmount
		sale.GrandTotal = totals.GrandTotal
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}
	return ToSaleResponse(sale), nil
}

// GetByID obtiene una venta con sus líneas.
func (uc *UseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return ToSaleResponse(sale), nil
}

// List devuelve ventas paginadas; si cashierID no está vacío, solo las suyas.
func (uc *UseCase) List(cashierID string, page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	var (
		items []*entity.Sale
		err   error
	)
	if cashierID != "" {
		items, err = uc.saleRepo.ListByCashier(cashierID, page.Limit, page.Offset)
	} else {
		items, err = uc.saleRepo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := &dto.SaleListResponse{
		Items: make([]dto.SaleResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, s := range items {
		out.Items = append(out.Items, *ToSaleResponse(s))
	}
	return out, nil
}

// ToSaleResponse mapea la entidad al DTO de salida.
func ToSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	lines := make([]dto.SaleLineResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, dto.SaleLineResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.LineTotal,
		})
	}
	return &dto.SaleResponse{
		ID:             s.ID,
		CashierID:      s.CashierID,
		Subtotal:       s.Subtotal,
		DiscountPct:    s.DiscountPct,
		DiscountAmount: s.DiscountAmount,
		NetBeforeTax:   s.NetBeforeTax,
		TaxPct:         s.TaxPct,
		TaxAmount:      s.TaxAmount,
		GrandTotal:     s.GrandTotal,
		PaymentMethod:  s.PaymentMethod,
		Status:         s.Status,
		Lines:          lines,
		SoldAt:         s.SoldAt,
	}
}
