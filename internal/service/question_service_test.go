package service

import (
	"math/rand/v2"
	"testing"

	"github.com/lshigami/MedQuest/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededShuffler(seed uint64) Shuffler {
	return rand.New(rand.NewPCG(seed, seed)).Shuffle
}

func ids(qs []dto.QuestionResponse) []uint {
	out := make([]uint, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.ID)
	}
	return out
}

func TestQuestionService_ListQuestionsReproducibleWithSeed(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 12; i++ {
		_, err := NewQuestionService(f.questions, nil).CreateQuestion(sampleRequest("Surgery", 1))
		require.NoError(t, err)
	}

	a, err := NewQuestionService(f.questions, seededShuffler(42)).ListQuestions("", 5)
	require.NoError(t, err)
	b, err := NewQuestionService(f.questions, seededShuffler(42)).ListQuestions("", 5)
	require.NoError(t, err)

	assert.Len(t, a, 5)
	assert.Equal(t, ids(a), ids(b))
}

func TestQuestionService_ListQuestionsFiltersAndLimits(t *testing.T) {
	f := newFixture(t)
	svc := NewQuestionService(f.questions, seededShuffler(1))

	surgery, err := svc.ListQuestions("Surgery", 10)
	require.NoError(t, err)
	require.Len(t, surgery, 1)
	assert.Equal(t, "Surgery", surgery[0].Specialty)
	assert.Len(t, surgery[0].Options, 4)

	one, err := svc.ListQuestions("", 1)
	require.NoError(t, err)
	assert.Len(t, one, 1)

	defaulted, err := svc.ListQuestions("", 0)
	require.NoError(t, err)
	assert.Len(t, defaulted, 3)

	none, err := svc.ListQuestions("Dermatology", 10)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultQuestionLimit, clampLimit(0))
	assert.Equal(t, DefaultQuestionLimit, clampLimit(-3))
	assert.Equal(t, 7, clampLimit(7))
	assert.Equal(t, MaxQuestionLimit, clampLimit(MaxQuestionLimit+1))
}

func TestQuestionService_CreateValidates(t *testing.T) {
	f := newFixture(t)
	svc := NewQuestionService(f.questions, nil)

	cases := map[string]func(r *dto.CreateQuestionRequest){
		"answer out of range": func(r *dto.CreateQuestionRequest) { r.CorrectAnswer = intPtr(4) },
		"negative answer":     func(r *dto.CreateQuestionRequest) { r.CorrectAnswer = intPtr(-1) },
		"missing answer":      func(r *dto.CreateQuestionRequest) { r.CorrectAnswer = nil },
		"one option":          func(r *dto.CreateQuestionRequest) { r.Options = []string{"Only"}; r.CorrectAnswer = intPtr(0) },
		"blank option":        func(r *dto.CreateQuestionRequest) { r.Options[2] = "  " },
		"blank scenario":      func(r *dto.CreateQuestionRequest) { r.Scenario = " " },
		"blank specialty":     func(r *dto.CreateQuestionRequest) { r.Specialty = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := sampleRequest("Surgery", 1)
			mutate(&req)
			_, err := svc.CreateQuestion(req)
			assert.ErrorIs(t, err, ErrInvalidQuestion)
		})
	}
}

func TestQuestionService_CreateListDelete(t *testing.T) {
	f := newFixture(t)
	svc := NewQuestionService(f.questions, nil)

	id, err := svc.CreateQuestion(sampleRequest("Internal Medicine", 1))
	require.NoError(t, err)

	all, err := svc.ListAllQuestions()
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, id, all[0].ID, "newest first")
	assert.Equal(t, []string{"One", "Two", "Three", "Four"}, all[0].Options)

	require.NoError(t, svc.DeleteQuestion(id))
	require.NoError(t, svc.DeleteQuestion(id))

	all, err = svc.ListAllQuestions()
	require.NoError(t, err)
	assert.NotContains(t, ids(all), id)

	sampled, err := svc.ListQuestions("", MaxQuestionLimit)
	require.NoError(t, err)
	assert.NotContains(t, ids(sampled), id)
}

func TestQuestionService_ListSpecialties(t *testing.T) {
	f := newFixture(t)
	specialties, err := NewQuestionService(f.questions, nil).ListSpecialties()
	require.NoError(t, err)
	assert.Equal(t, []string{"Internal Medicine", "Pediatrics", "Surgery"}, specialties)
}
