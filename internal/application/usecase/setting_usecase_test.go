package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsales/pos-api/internal/application/dto"
	"github.com/itsales/pos-api/internal/application/usecase"
	"github.com/itsales/pos-api/internal/domain"
	"github.com/itsales/pos-api/internal/domain/entity"
	"github.com/itsales/pos-api/internal/domain/permission"
)

type fakeSettingRepo struct{ setting *entity.Setting }

func (r *fakeSettingRepo) Get() (*entity.Setting, error)  { return r.setting, nil }
func (r *fakeSettingRepo) Update(s *entity.Setting) error { r.setting = s; return nil }

var adminActor = permission.Actor{ID: "u-admin", Role: entity.RoleAdmin}

func TestSettingGet_SinFilaDevuelveDefaults(t *testing.T) {
	uc := usecase.NewSettingUseCase(&fakeSettingRepo{setting: nil})

	out, err := uc.Get()
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.DefaultTaxRate.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, "EUR", out.Currency)
	assert.True(t, out.MaxDiscountPercent.Equal(decimal.NewFromInt(50)))
}

func TestSettingUpdate_SinFilaParteDeDefaults(t *testing.T) {
	repo := &fakeSettingRepo{setting: nil}
	uc := usecase.NewSettingUseCase(repo)

	name := "Tienda Central"
	out, err := uc.Update(adminActor, dto.UpdateSettingRequest{CompanyName: &name})
	require.NoError(t, err)

	assert.Equal(t, "Tienda Central", out.CompanyName)
	assert.True(t, out.DefaultTaxRate.Equal(decimal.NewFromInt(20)), "el resto queda en defaults")

	// La fila quedó persistida para lecturas posteriores.
	require.NotNil(t, repo.setting)
	assert.Equal(t, "Tienda Central", repo.setting.CompanyName)
}

func TestSettingUpdate_SoloAdmin(t *testing.T) {
	uc := usecase.NewSettingUseCase(&fakeSettingRepo{setting: entity.DefaultSetting("Tienda")})

	name := "Otra"
	_, err := uc.Update(permission.Actor{ID: "u-cajero", Role: entity.RoleCashier},
		dto.UpdateSettingRequest{CompanyName: &name})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSettingUpdate_PorcentajesInvalidos(t *testing.T) {
	uc := usecase.NewSettingUseCase(&fakeSettingRepo{setting: entity.DefaultSetting("Tienda")})

	neg := decimal.NewFromInt(-1)
	_, err := uc.Update(adminActor, dto.UpdateSettingRequest{DefaultTaxRate: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	over := decimal.NewFromInt(101)
	_, err = uc.Update(adminActor, dto.UpdateSettingRequest{MaxDiscountPercent: &over})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
