package service

import (
	"testing"
	"time"

	"github.com/lshigami/MedQuest/config"
	"github.com/lshigami/MedQuest/internal/dto"
	"github.com/lshigami/MedQuest/internal/repository"
	"github.com/lshigami/MedQuest/internal/testutil"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{JWTSecret: "test-secret", TokenTTL: time.Hour, BcryptCost: bcrypt.MinCost},
	}
}

type fixture struct {
	users     repository.UserRepository
	questions repository.QuestionRepository
	attempts  repository.AttemptRepository
	auth      AuthService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewSeededDB(t)
	f := &fixture{
		users:     repository.NewUserRepository(db),
		questions: repository.NewQuestionRepository(db),
		attempts:  repository.NewAttemptRepository(db),
	}
	f.auth = NewAuthService(f.users, NewTokenService(testConfig()), testConfig())
	return f
}

func intPtr(i int) *int    { return &i }
func boolPtr(b bool) *bool { return &b }

func sampleRequest(specialty string, correct int) dto.CreateQuestionRequest {
	return dto.CreateQuestionRequest{
		Scenario:      "A patient presents with a finding.",
		Options:       []string{"One", "Two", "Three", "Four"},
		CorrectAnswer: intPtr(correct),
		Explanation:   "Two is right.",
		Specialty:     specialty,
		Format:        "clinical scenario",
	}
}
