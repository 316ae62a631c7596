package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/itsales/pos-api/internal/application/dto"
	"github.com/itsales/pos-api/internal/domain"
	"github.com/itsales/pos-api/internal/domain/entity"
	"github.com/itsales/pos-api/internal/domain/permission"
	"github.com/itsales/pos-api/internal/domain/repository"
)

// SettingUseCase lectura y actualización de la configuración de la tienda.
type SettingUseCase struct {
	repo repository.SettingRepository
}

// NewSettingUseCase construye el caso de uso con el puerto de persistencia.
func NewSettingUseCase(repo repository.SettingRepository) *SettingUseCase {
	return &SettingUseCase{repo: repo}
}

// Get devuelve la configuración vigente; si la fila no existe todavía,
// devuelve los valores por defecto.
func (uc *SettingUseCase) Get() (*dto.SettingResponse, error) {
	setting, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if setting == nil {
		setting = entity.DefaultSetting("")
	}
	return toSettingResponse(setting), nil
}

// Update muta la configuración. Solo admin; porcentajes en [0, 100].
func (uc *SettingUseCase) Update(actor permission.Actor, in dto.UpdateSettingRequest) (*dto.SettingResponse, error) {
	if actor.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	setting, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if setting == nil {
		// Primer Update sobre base sin sembrar: parte de los defaults
		// y el repo hace upsert de la fila única.
		setting = entity.DefaultSetting("")
	}
	if in.CompanyName != nil {
		if *in.CompanyName == "" {
			return nil, domain.ErrInvalidInput
		}
		setting.CompanyName = *in.CompanyName
	}
	if in.DefaultTaxRate != nil {
		if !validPercent(*in.DefaultTaxRate) {
			return nil, domain.ErrInvalidInput
		}
		setting.DefaultTaxRate = *in.DefaultTaxRate
	}
	if in.Currency != nil {
		if len(*in.Currency) != 3 {
			return nil, domain.ErrInvalidInput
		}
		setting.Currency = *in.Currency
	}
	if in.MaxDiscountPercent != nil {
		if !validPercent(*in.MaxDiscountPercent) {
			return nil, domain.ErrInvalidInput
		}
		setting.MaxDiscountPercent = *in.MaxDiscountPercent
	}
	setting.UpdatedAt = time.Now()
	if err := uc.repo.Update(setting); err != nil {
		return nil, err
	}
	return toSettingResponse(setting), nil
}

func validPercent(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(100))
}

func toSettingResponse(s *entity.Setting) *dto.SettingResponse {
	if s == nil {
		return nil
	}
	return &dto.SettingResponse{
		CompanyName:        s.CompanyName,
		DefaultTaxRate:     s.DefaultTaxRate,
		Currency:           s.Currency,
		MaxDiscountPercent: s.MaxDiscountPercent,
		UpdatedAt:          s.UpdatedAt,
	}
}
