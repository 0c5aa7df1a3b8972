package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lshigami/MedQuest/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "admin123" {
			writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, dto.AuthResponse{Token: "tok", User: dto.UserResponse{ID: 1, Email: req.Email, Role: "admin"}})
	})
	mux.HandleFunc("GET /api/questions", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			writeJSON(w, http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
			return
		}
		writeJSON(w, http.StatusOK, []dto.QuestionResponse{{
			ID:        7,
			Scenario:  r.URL.Query().Get("specialty") + "/" + r.URL.Query().Get("limit"),
			Options:   []string{"a", "b"},
			Specialty: r.URL.Query().Get("specialty"),
		}})
	})
	mux.HandleFunc("POST /api/attempts", func(w http.ResponseWriter, r *http.Request) {
		var req dto.RecordAttemptRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		writeJSON(w, http.StatusOK, dto.RecordAttemptResponse{Success: true, IsCorrect: *req.SelectedAnswer == 1})
	})
	mux.HandleFunc("DELETE /api/questions/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "42" {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid question ID"})
			return
		}
		writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
	})
	mux.HandleFunc("GET /api/analytics", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_LoginStoresToken(t *testing.T) {
	c := New(newServer(t).URL)
	ctx := context.Background()

	_, err := c.Questions(ctx, "", 0)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Unauthorized", apiErr.Message)

	resp, err := c.Login(ctx, "admin@medquest.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.User.Role)
	assert.Equal(t, "tok", c.Token())

	questions, err := c.Questions(ctx, "Surgery", 5)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Surgery/5", questions[0].Scenario)
	assert.Equal(t, []string{"a", "b"}, questions[0].Options)
}

func TestClient_LoginFailure(t *testing.T) {
	c := New(newServer(t).URL)

	_, err := c.Login(context.Background(), "admin@medquest.com", "nope")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.Empty(t, c.Token())
}

func TestClient_RecordAttemptAndDelete(t *testing.T) {
	c := New(newServer(t).URL)
	ctx := context.Background()
	one := 1

	resp, err := c.RecordAttempt(ctx, dto.RecordAttemptRequest{QuestionID: 7, SelectedAnswer: &one})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.True(t, resp.IsCorrect)

	require.NoError(t, c.DeleteQuestion(ctx, 42))
	err = c.DeleteQuestion(ctx, 41)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestClient_ErrorWithoutBody(t *testing.T) {
	c := New(newServer(t).URL)

	_, err := c.Analytics(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}
