package service

import (
	"math/rand/v2"
	"testing"

	"github.com/lshigami/MedQuest/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsService_NoAttempts(t *testing.T) {
	f := newFixture(t)
	userID := registerUser(t, f, "fresh@example.com")

	got, err := NewAnalyticsService(f.attempts, f.questions).ComputeAnalytics(userID)
	require.NoError(t, err)
	assert.Zero(t, got.TotalAttempts)
	assert.Zero(t, got.CorrectAttempts)
	assert.Zero(t, got.AccuracyPercent)
	assert.EqualValues(t, 3, got.TotalQuestions)
	assert.NotNil(t, got.SpecialtyStats)
	assert.Empty(t, got.SpecialtyStats)
}

func TestAnalyticsService_Invariants(t *testing.T) {
	f := newFixture(t)
	userID := registerUser(t, f, "busy@example.com")
	otherID := registerUser(t, f, "other@example.com")

	questions := NewQuestionService(f.questions, nil)
	bank, err := questions.ListAllQuestions()
	require.NoError(t, err)
	attempts := NewAttemptService(f.attempts, f.questions)

	rng := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 40; i++ {
		q := bank[rng.IntN(len(bank))]
		uid := userID
		if i%5 == 0 {
			uid = otherID
		}
		_, err := attempts.RecordAttempt(uid, dto.RecordAttemptRequest{QuestionID: q.ID, SelectedAnswer: intPtr(rng.IntN(len(q.Options)))})
		require.NoError(t, err)
	}
	// Retiring a question must not break the per-specialty sum.
	require.NoError(t, questions.DeleteQuestion(bank[0].ID))

	got, err := NewAnalyticsService(f.attempts, f.questions).ComputeAnalytics(userID)
	require.NoError(t, err)

	assert.EqualValues(t, 32, got.TotalAttempts)
	assert.LessOrEqual(t, got.CorrectAttempts, got.TotalAttempts)
	assert.EqualValues(t, 2, got.TotalQuestions)

	var sum int64
	for _, s := range got.SpecialtyStats {
		assert.LessOrEqual(t, s.Correct, s.Count, s.Specialty)
		assert.Positive(t, s.Count, s.Specialty)
		assert.Equal(t, AccuracyPercent(s.Correct, s.Count), s.AccuracyPercent)
		sum += s.Count
	}
	assert.Equal(t, got.TotalAttempts, sum)
	assert.Equal(t, AccuracyPercent(got.CorrectAttempts, got.TotalAttempts), got.AccuracyPercent)
}

func TestAnalyticsService_OmitsUnattemptedSpecialties(t *testing.T) {
	f := newFixture(t)
	userID := registerUser(t, f, "focused@example.com")
	surgery, err := NewQuestionService(f.questions, nil).ListQuestions("Surgery", 1)
	require.NoError(t, err)
	require.Len(t, surgery, 1)

	_, err = NewAttemptService(f.attempts, f.questions).RecordAttempt(userID, dto.RecordAttemptRequest{
		QuestionID:     surgery[0].ID,
		SelectedAnswer: intPtr(surgery[0].CorrectAnswer),
	})
	require.NoError(t, err)

	got, err := NewAnalyticsService(f.attempts, f.questions).ComputeAnalytics(userID)
	require.NoError(t, err)
	assert.Equal(t, []dto.SpecialtyStat{{Specialty: "Surgery", Count: 1, Correct: 1, AccuracyPercent: 100}}, got.SpecialtyStats)
}
