package repository

import (
	"testing"

	"github.com/lshigami/MedQuest/internal/model"
	"github.com/lshigami/MedQuest/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptRepository_Aggregates(t *testing.T) {
	db := testutil.NewDB(t)
	users := NewUserRepository(db)
	questions := NewQuestionRepository(db)
	attempts := NewAttemptRepository(db)

	u := &model.User{Email: "a@b.c", Password: "x", Role: model.RoleUser, SubscriptionStatus: model.SubscriptionInactive}
	other := &model.User{Email: "z@b.c", Password: "x", Role: model.RoleUser, SubscriptionStatus: model.SubscriptionInactive}
	require.NoError(t, users.Create(u))
	require.NoError(t, users.Create(other))

	surgery := newQuestion("Surgery")
	peds := newQuestion("Pediatrics")
	require.NoError(t, questions.Create(surgery))
	require.NoError(t, questions.Create(peds))

	record := func(userID, questionID uint, correct bool) {
		require.NoError(t, attempts.Create(&model.Attempt{UserID: userID, QuestionID: questionID, IsCorrect: correct}))
	}
	record(u.ID, surgery.ID, true)
	record(u.ID, surgery.ID, false)
	record(u.ID, peds.ID, true)
	record(other.ID, peds.ID, false)

	totals, err := attempts.TotalsByUser(u.ID)
	require.NoError(t, err)
	assert.Equal(t, AttemptTotals{Total: 3, Correct: 2}, totals)

	// A retired question keeps counting toward its specialty.
	require.NoError(t, questions.Delete(surgery.ID))

	tallies, err := attempts.SpecialtyTalliesByUser(u.ID)
	require.NoError(t, err)
	assert.Equal(t, []SpecialtyTally{
		{Specialty: "Pediatrics", Count: 1, Correct: 1},
		{Specialty: "Surgery", Count: 2, Correct: 1},
	}, tallies)
}

func TestAttemptRepository_EmptyUser(t *testing.T) {
	attempts := NewAttemptRepository(testutil.NewDB(t))

	totals, err := attempts.TotalsByUser(42)
	require.NoError(t, err)
	assert.Zero(t, totals.Total)
	assert.Zero(t, totals.Correct)

	tallies, err := attempts.SpecialtyTalliesByUser(42)
	require.NoError(t, err)
	assert.Empty(t, tallies)
}
