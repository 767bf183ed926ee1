package postgres

import (
	"context"
	"database/sql"
	"strings"

	"mediconnect/internal/domain/questions"
)

type QuestionsRepo struct {
	db *sql.DB
}

func NewQuestionsRepo(db *sql.DB) *QuestionsRepo {
	return &QuestionsRepo{db: db}
}

func (r *QuestionsRepo) Create(ctx context.Context, q questions.Question) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO caregiver_questions (id, caregiver_id, text, created_at)
		VALUES ($1,$2,$3,$4)
	`,
		q.ID,
		q.CaregiverID,
		q.Text,
		q.CreatedAt,
	)
	return err
}

func (r *QuestionsRepo) ListByCaregiver(ctx context.Context, caregiverID string, limit int) ([]questions.Question, error) {
	caregiverID = strings.TrimSpace(caregiverID)
	if caregiverID == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = questions.DefaultListLimit
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, caregiver_id, text, created_at
		FROM caregiver_questions
		WHERE caregiver_id = $1
		ORDER BY created_at DESC, id ASC
		LIMIT $2
	`, caregiverID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]questions.Question, 0)
	for rows.Next() {
		var q questions.Question
		if err := rows.Scan(&q.ID, &q.CaregiverID, &q.Text, &q.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
