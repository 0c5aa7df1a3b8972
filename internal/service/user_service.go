package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/MedQuest/internal/dto"
	"github.com/lshigami/MedQuest/internal/model"
	"github.com/lshigami/MedQuest/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type UserService interface {
	Profile(userID uint) (*dto.UserResponse, error)
	Subscribe(userID uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Profile reads the caller from the store rather than from token claims.
func (s *userService) Profile(userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("loading user %d: %w", userID, err)
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// Subscribe activates the subscription unconditionally; there is no payment step.
func (s *userService) Subscribe(userID uint) error {
	if err := s.userRepo.UpdateSubscriptionStatus(userID, model.SubscriptionActive); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to activate subscription")
		return fmt.Errorf("activating subscription: %w", err)
	}
	log.Info().Uint("userID", userID).Msg("Subscription activated")
	return nil
}
