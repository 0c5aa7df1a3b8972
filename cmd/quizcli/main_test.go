package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/lshigami/MedQuest/internal/client"
	"github.com/lshigami/MedQuest/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOption(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"a", 0, true},
		{"D", 3, true},
		{"2", 1, true},
		{" b ", 1, true},
		{"e", 4, false},
		{"0", -1, false},
		{"5", 4, false},
		{"!", 0, false},
		{"", 0, false},
		{"ab", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseOption(tc.in, 4)
		assert.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, tc.in)
		}
	}
}

func TestRun(t *testing.T) {
	var recorded atomic.Int32
	send := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		send(w, dto.AuthResponse{Token: "tok"})
	})
	mux.HandleFunc("GET /api/questions", func(w http.ResponseWriter, r *http.Request) {
		send(w, []dto.QuestionResponse{
			{ID: 1, Scenario: "First?", Options: []string{"x", "y"}, CorrectAnswer: 1, Specialty: "Surgery"},
			{ID: 2, Scenario: "Second?", Options: []string{"x", "y"}, CorrectAnswer: 0, Specialty: "Surgery"},
		})
	})
	mux.HandleFunc("POST /api/attempts", func(w http.ResponseWriter, r *http.Request) {
		recorded.Add(1)
		send(w, dto.RecordAttemptResponse{Success: true})
	})
	mux.HandleFunc("GET /api/analytics", func(w http.ResponseWriter, r *http.Request) {
		send(w, dto.AnalyticsResponse{
			TotalAttempts: 2, CorrectAttempts: 1, TotalQuestions: 3, AccuracyPercent: 50,
			SpecialtyStats: []dto.SpecialtyStat{{Specialty: "Surgery", Count: 2, Correct: 1, AccuracyPercent: 50}},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	var out bytes.Buffer
	in := strings.NewReader("z\nB\n2\n")
	err := run(context.Background(), client.New(srv.URL), in, &out, options{email: "a@b.c", password: "pw", limit: 2})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Pick A-B")
	assert.Contains(t, text, "Correct!")
	assert.Contains(t, text, "Incorrect. The answer is A) x")
	assert.Contains(t, text, "Score: 1/2")
	assert.Contains(t, text, "Overall: 1/2 correct (50%)")
	assert.EqualValues(t, 2, recorded.Load())
}
