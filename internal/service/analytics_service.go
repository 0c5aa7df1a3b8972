package service

import (
	"fmt"

	"github.com/lshigami/MedQuest/internal/dto"
	"github.com/lshigami/MedQuest/internal/repository"
	"github.com/rs/zerolog/log"
)

type AnalyticsService interface {
	ComputeAnalytics(userID uint) (*dto.AnalyticsResponse, error)
}

type analyticsService struct {
	attemptRepo  repository.AttemptRepository
	questionRepo repository.QuestionRepository
}

func NewAnalyticsService(attemptRepo repository.AttemptRepository, questionRepo repository.QuestionRepository) AnalyticsService {
	return &analyticsService{attemptRepo: attemptRepo, questionRepo: questionRepo}
}

// ComputeAnalytics summarizes one user's attempts. total_questions is the size
// of the active bank and is not user-scoped; specialties without attempts are omitted.
func (s *analyticsService) ComputeAnalytics(userID uint) (*dto.AnalyticsResponse, error) {
	totals, err := s.attemptRepo.TotalsByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to aggregate attempts")
		return nil, fmt.Errorf("aggregating attempts: %w", err)
	}
	tallies, err := s.attemptRepo.SpecialtyTalliesByUser(userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to aggregate specialties")
		return nil, fmt.Errorf("aggregating specialties: %w", err)
	}
	bankSize, err := s.questionRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("counting questions: %w", err)
	}

	resp := &dto.AnalyticsResponse{
		TotalAttempts:   totals.Total,
		CorrectAttempts: totals.Correct,
		TotalQuestions:  bankSize,
		AccuracyPercent: AccuracyPercent(totals.Correct, totals.Total),
		SpecialtyStats:  make([]dto.SpecialtyStat, 0, len(tallies)),
	}
	for _, t := range tallies {
		resp.SpecialtyStats = append(resp.SpecialtyStats, dto.SpecialtyStat{
			Specialty:       t.Specialty,
			Count:           t.Count,
			Correct:         t.Correct,
			AccuracyPercent: AccuracyPercent(t.Correct, t.Count),
		})
	}
	return resp, nil
}
