package dto

import "time"

// ValidationResponse salida de una solicitud de aprobación.
type ValidationResponse struct {
	ID          string     `json:"id"`
	TargetType  string     `json:"target_type"`
	TargetID    string     `json:"target_id"`
	Action      string     `json:"action"`
	Status      string     `json:"status"`
	RequesterID string     `json:"requester_id"`
	ResolverID  *string    `json:"resolver_id,omitempty"`
	RequestedAt time.Time  `json:"requested_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

// ValidationListResponse lista paginada de validaciones.
type ValidationListResponse struct {
	Items []ValidationResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
