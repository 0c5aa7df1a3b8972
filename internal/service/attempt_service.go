package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/MedQuest/internal/dto"
	"github.com/lshigami/MedQuest/internal/model"
	"github.com/lshigami/MedQuest/internal/repository"
	"github.com/rs/zerolog/log"
)

type AttemptService interface {
	RecordAttempt(userID uint, req dto.RecordAttemptRequest) (*dto.RecordAttemptResponse, error)
}

type attemptService struct {
	attemptRepo  repository.AttemptRepository
	questionRepo repository.QuestionRepository
}

func NewAttemptService(attemptRepo repository.AttemptRepository, questionRepo repository.QuestionRepository) AttemptService {
	return &attemptService{
		attemptRepo:  attemptRepo,
		questionRepo: questionRepo,
	}
}

// RecordAttempt grades the answer against the stored question and appends it.
// A client-supplied is_correct is accepted only when it agrees with the grade.
func (s *attemptService) RecordAttempt(userID uint, req dto.RecordAttemptRequest) (*dto.RecordAttemptResponse, error) {
	if req.SelectedAnswer == nil {
		return nil, ErrInvalidAnswer
	}
	question, err := findQuestion(s.questionRepo, req.QuestionID)
	if err != nil {
		if !errors.Is(err, ErrQuestionNotFound) {
			log.Error().Err(err).Uint("questionID", req.QuestionID).Msg("Failed to find question for attempt")
		}
		return nil, err
	}

	selected := *req.SelectedAnswer
	if selected < 0 || selected >= len(question.Options) {
		return nil, ErrInvalidAnswer
	}
	isCorrect := selected == question.CorrectAnswer
	if req.IsCorrect != nil && *req.IsCorrect != isCorrect {
		log.Warn().
			Uint("userID", userID).
			Uint("questionID", question.ID).
			Bool("claimed", *req.IsCorrect).
			Bool("graded", isCorrect).
			Msg("Rejected attempt with mismatched correctness")
		return nil, ErrCorrectnessMismatch
	}

	attempt := model.Attempt{
		UserID:         userID,
		QuestionID:     question.ID,
		SelectedAnswer: selected,
		IsCorrect:      isCorrect,
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("questionID", question.ID).Msg("Failed to create attempt in DB")
		return nil, fmt.Errorf("recording attempt: %w", err)
	}
	return &dto.RecordAttemptResponse{Success: true, IsCorrect: isCorrect}, nil
}
