package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/MedQuest/config"
	"github.com/lshigami/MedQuest/internal/dto"
	"github.com/lshigami/MedQuest/internal/model"
	"github.com/lshigami/MedQuest/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
	Verify(token string) (*Claims, error)
}

type authService struct {
	userRepo   repository.UserRepository
	tokens     TokenService
	bcryptCost int
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenService, cfg *config.Config) AuthService {
	cost := cfg.Auth.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &authService{userRepo: userRepo, tokens: tokens, bcryptCost: cost}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// maxPasswordBytes is bcrypt's input limit. Binding counts characters, so a
// multi-byte password can pass it and still be too long here.
const maxPasswordBytes = 72

func (s *authService) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if len(req.Password) > maxPasswordBytes {
		return nil, ErrPasswordTooLong
	}
	email := normalizeEmail(req.Email)

	_, err := s.userRepo.FindByEmail(email)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("looking up email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := model.User{
		Email:              email,
		Password:           string(hash),
		Role:               model.RoleUser,
		SubscriptionStatus: model.SubscriptionInactive,
	}
	if err := s.userRepo.Create(&user); err != nil {
		// Lost a race against a concurrent registration of the same email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		log.Error().Err(err).Str("email", email).Msg("Failed to create user")
		return nil, fmt.Errorf("creating user: %w", err)
	}
	log.Info().Uint("userID", user.ID).Msg("User registered")

	return s.authResponse(&user)
}

func (s *authService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up email: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.authResponse(user)
}

func (s *authService) Verify(token string) (*Claims, error) {
	return s.tokens.Verify(token)
}

func (s *authService) authResponse(user *model.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Failed to sign token")
		return nil, fmt.Errorf("signing token: %w", err)
	}
	return &dto.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

func toUserResponse(user *model.User) dto.UserResponse {
	var resp dto.UserResponse
	copier.Copy(&resp, user)
	return resp
}
