package questions

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
	MaxTextLength    = 2000
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Submit guarda una pregunta; texto vacío (tras trim) es inválido.
func (s *Service) Submit(ctx context.Context, caregiverID, text string) (Question, error) {
	caregiverID = strings.TrimSpace(caregiverID)
	text = strings.TrimSpace(text)

	if caregiverID == "" || text == "" {
		return Question{}, ErrInvalidInput
	}
	if len([]rune(text)) > MaxTextLength {
		return Question{}, ErrInvalidInput
	}

	q := Question{
		ID:          uuid.NewString(),
		CaregiverID: caregiverID,
		Text:        text,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, q); err != nil {
		return Question{}, err
	}
	return q, nil
}

func (s *Service) ListByCaregiver(ctx context.Context, caregiverID string, limit int) ([]Question, error) {
	caregiverID = strings.TrimSpace(caregiverID)
	if caregiverID == "" {
		return nil, ErrInvalidInput
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.repo.ListByCaregiver(ctx, caregiverID, limit)
}

// AppendChip agrega "- <chip>" en una línea nueva, o inicia el texto con él.
func AppendChip(text, chip string) string {
	chip = strings.TrimSpace(chip)
	if chip == "" {
		return text
	}
	if text == "" {
		return "- " + chip
	}
	return text + "\n- " + chip
}
