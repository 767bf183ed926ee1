package questions

import "context"

type Repository interface {
	Create(ctx context.Context, q Question) error
	// ListByCaregiver devuelve las preguntas más recientes primero.
	ListByCaregiver(ctx context.Context, caregiverID string, limit int) ([]Question, error)
}
