package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/itsales/pos-api/internal/domain/entity"
	"github.com/itsales/pos-api/internal/domain/repository"
)

var _ repository.SettingRepository = (*SettingRepo)(nil)

// SettingRepo implementación del puerto SettingRepository sobre PostgreSQL.
// La tabla settings tiene una única fila con id fijo 1.
type SettingRepo struct {
	q Querier
}

// NewSettingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSettingRepository(q Querier) *SettingRepo {
	return &SettingRepo{q: q}
}

// Get devuelve la configuración vigente.
func (r *SettingRepo) Get() (*entity.Setting, error) {
	query := `
		SELECT company_name, default_tax_rate, currency, max_discount_percent, updated_at
		FROM settings WHERE id = 1`
	var s entity.Setting
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.CompanyName, &s.DefaultTaxRate, &s.Currency, &s.MaxDiscountPercent, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Update guarda la configuración (upsert sobre la fila única).
func (r *SettingRepo) Update(setting *entity.Setting) error {
	query := `
		INSERT INTO settings (id, company_name, default_tax_rate, currency, max_discount_percent, updated_at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			default_tax_rate = EXCLUDED.default_tax_rate,
			currency = EXCLUDED.currency,
			max_discount_percent = EXCLUDED.max_discount_percent,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		setting.CompanyName, setting.DefaultTaxRate, setting.Currency,
		setting.MaxDiscountPercent, setting.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
