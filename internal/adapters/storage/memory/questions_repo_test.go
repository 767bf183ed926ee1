package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediconnect/internal/domain/questions"
)

func TestQuestionRepo_CreateAndList(t *testing.T) {
	repo := NewQuestionRepo()
	ctx := context.Background()
	base := time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, questions.Question{ID: "q1", CaregiverID: "cg-1", Text: "a", CreatedAt: base}))
	require.NoError(t, repo.Create(ctx, questions.Question{ID: "q2", CaregiverID: "cg-1", Text: "b", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, questions.Question{ID: "q3", CaregiverID: "cg-2", Text: "c", CreatedAt: base}))

	assert.Error(t, repo.Create(ctx, questions.Question{ID: "q1", CaregiverID: "cg-1"}))
	assert.Error(t, repo.Create(ctx, questions.Question{ID: " ", CaregiverID: "cg-1"}))

	got, err := repo.ListByCaregiver(ctx, "cg-1", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "q2", got[0].ID)
	assert.Equal(t, "q1", got[1].ID)

	got, err = repo.ListByCaregiver(ctx, "cg-1", 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = repo.ListByCaregiver(ctx, "nobody", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}
