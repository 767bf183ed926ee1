package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"mediconnect/internal/domain/questions"
)

type questionRepo struct {
	mu   sync.RWMutex
	byID map[string]questions.Question
}

func NewQuestionRepo() questions.Repository {
	return &questionRepo{
		byID: make(map[string]questions.Question),
	}
}

func (r *questionRepo) Create(ctx context.Context, q questions.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(q.ID) == "" {
		return errors.New("question id required")
	}
	if _, exists := r.byID[q.ID]; exists {
		return errors.New("question already exists")
	}
	r.byID[q.ID] = q
	return nil
}

func (r *questionRepo) ListByCaregiver(ctx context.Context, caregiverID string, limit int) ([]questions.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]questions.Question, 0)
	for _, q := range r.byID {
		if q.CaregiverID == caregiverID {
			out = append(out, q)
		}
	}

	// Más reciente primero; desempate por ID para orden estable
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
