package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/itsales/pos-api/internal/domain"
	"github.com/itsales/pos-api/internal/domain/entity"
	"github.com/itsales/pos-api/internal/domain/repository"
)

var _ repository.ValidationRepository = (*ValidationRepo)(nil)

const validationColumns = `id, target_type, target_id, action, status, requester_id, resolver_id, requested_at, resolved_at`

// ValidationRepo implementación del puerto ValidationRepository sobre PostgreSQL.
// Un índice único parcial sobre (target_type, target_id) WHERE status = 'pending'
// garantiza a nivel de DB que no haya dos solicitudes pendientes sobre el mismo objetivo.
type ValidationRepo struct {
	q Querier
}

// NewValidationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewValidationRepository(q Querier) *ValidationRepo {
	return &ValidationRepo{q: q}
}

// Create persiste una nueva solicitud de validación.
func (r *ValidationRepo) Create(validation *entity.Validation) error {
	query := `
		INSERT INTO validations (` + validationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		validation.ID, validation.TargetType, validation.TargetID, validation.Action,
		validation.Status, validation.RequesterID, validation.ResolverID,
		validation.RequestedAt, validation.ResolvedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert validation: %w", err)
	}
	return nil
}

// GetByID obtiene una validación por ID.
func (r *ValidationRepo) GetByID(id string) (*entity.Validation, error) {
	query := `SELECT ` + validationColumns + ` FROM validations WHERE id = $1`
	return r.get(query, id)
}

// GetPendingByTarget devuelve la validación pendiente sobre el objetivo, o nil.
func (r *ValidationRepo) GetPendingByTarget(targetType, targetID string) (*entity.Validation, error) {
	query := `
		SELECT ` + validationColumns + `
		FROM validations WHERE target_type = $1 AND target_id = $2 AND status = 'pending'`
	return r.get(query, targetType, targetID)
}

func (r *ValidationRepo) get(query string, args ...any) (*entity.Validation, error) {
	var v entity.Validation
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&v.ID, &v.TargetType, &v.TargetID, &v.Action, &v.Status,
		&v.RequesterID, &v.ResolverID, &v.RequestedAt, &v.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get validation: %w", err)
	}
	return &v, nil
}

// MarkResolved pasa la validación a su estado terminal de forma condicional.
// El WHERE status = 'pending' hace de guard: si otra resolución llegó antes,
// RowsAffected es 0 y devolvemos false sin tocar nada.
func (r *ValidationRepo) MarkResolved(id, status, resolverID string, at time.Time) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE validations SET status = $2, resolver_id = $3, resolved_at = $4
		WHERE id = $1 AND status = 'pending'`,
		id, status, resolverID, at,
	)
	if err != nil {
		return false, fmt.Errorf("resolve validation: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List lista validaciones con paginación, más recientes primero.
func (r *ValidationRepo) List(limit, offset int) ([]*entity.Validation, error) {
	query := `SELECT ` + validationColumns + ` FROM validations ORDER BY requested_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByStatus lista validaciones filtradas por estado.
func (r *ValidationRepo) ListByStatus(status string, limit, offset int) ([]*entity.Validation, error) {
	query := `SELECT ` + validationColumns + ` FROM validations WHERE status = $1 ORDER BY requested_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, status, limit, offset)
}

func (r *ValidationRepo) list(query string, args ...any) ([]*entity.Validation, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list validations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Validation
	for rows.Next() {
		var v entity.Validation
		if err := rows.Scan(&v.ID, &v.TargetType, &v.TargetID, &v.Action, &v.Status,
			&v.RequesterID, &v.ResolverID, &v.RequestedAt, &v.ResolvedAt); err != nil {
			return nil, fmt.Errorf("scan validation: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
