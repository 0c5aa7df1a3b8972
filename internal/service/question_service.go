package service

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/MedQuest/internal/dto"
	"github.com/lshigami/MedQuest/internal/model"
	"github.com/lshigami/MedQuest/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	DefaultQuestionLimit = 10
	MaxQuestionLimit     = 100
)

// Shuffler permutes n elements through swap, like rand.Shuffle.
type Shuffler func(n int, swap func(i, j int))

// NewShuffler returns the process-wide unseeded source used in production.
func NewShuffler() Shuffler {
	return rand.Shuffle
}

type QuestionService interface {
	ListQuestions(specialty string, limit int) ([]dto.QuestionResponse, error)
	ListAllQuestions() ([]dto.QuestionResponse, error)
	ListSpecialties() ([]string, error)
	CreateQuestion(req dto.CreateQuestionRequest) (uint, error)
	DeleteQuestion(id uint) error
}

type questionService struct {
	repo    repository.QuestionRepository
	shuffle Shuffler
}

func NewQuestionService(repo repository.QuestionRepository, shuffle Shuffler) QuestionService {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	return &questionService{repo: repo, shuffle: shuffle}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultQuestionLimit
	}
	if limit > MaxQuestionLimit {
		return MaxQuestionLimit
	}
	return limit
}

// ListQuestions draws a random sample of at most limit questions, optionally
// restricted to one specialty. The order of the result is the draw order.
func (s *questionService) ListQuestions(specialty string, limit int) ([]dto.QuestionResponse, error) {
	limit = clampLimit(limit)

	ids, err := s.repo.FindIDs(strings.TrimSpace(specialty))
	if err != nil {
		log.Error().Err(err).Str("specialty", specialty).Msg("Failed to list question IDs")
		return nil, fmt.Errorf("listing question ids: %w", err)
	}
	s.shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	if len(ids) > limit {
		ids = ids[:limit]
	}

	questions, err := s.repo.FindByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("loading sampled questions: %w", err)
	}
	byID := make(map[uint]*model.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	resp := make([]dto.QuestionResponse, 0, len(ids))
	for _, id := range ids {
		// Deleted between the two queries.
		if q, ok := byID[id]; ok {
			resp = append(resp, toQuestionResponse(q))
		}
	}
	return resp, nil
}

func (s *questionService) ListAllQuestions() ([]dto.QuestionResponse, error) {
	questions, err := s.repo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list all questions")
		return nil, fmt.Errorf("listing questions: %w", err)
	}
	resp := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		resp = append(resp, toQuestionResponse(&questions[i]))
	}
	return resp, nil
}

func (s *questionService) ListSpecialties() ([]string, error) {
	specialties, err := s.repo.Specialties()
	if err != nil {
		return nil, fmt.Errorf("listing specialties: %w", err)
	}
	if specialties == nil {
		specialties = []string{}
	}
	return specialties, nil
}

func (s *questionService) CreateQuestion(req dto.CreateQuestionRequest) (uint, error) {
	question, err := questionFromRequest(req)
	if err != nil {
		return 0, err
	}
	if err := s.repo.Create(question); err != nil {
		log.Error().Err(err).Msg("Failed to create question in service")
		return 0, fmt.Errorf("creating question: %w", err)
	}
	log.Info().Uint("questionID", question.ID).Str("specialty", question.Specialty).Msg("Question created")
	return question.ID, nil
}

// DeleteQuestion retires a question. Unknown or already retired IDs are a no-op.
func (s *questionService) DeleteQuestion(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to delete question")
		return fmt.Errorf("deleting question %d: %w", id, err)
	}
	log.Info().Uint("questionID", id).Msg("Question deleted")
	return nil
}

func findQuestion(repo repository.QuestionRepository, id uint) (*model.Question, error) {
	q, err := repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return q, nil
}

// questionFromRequest trims and validates an incoming question, enforcing
// 0 <= correct_answer < len(options).
func questionFromRequest(req dto.CreateQuestionRequest) (*model.Question, error) {
	if req.CorrectAnswer == nil {
		return nil, fmt.Errorf("%w: correct_answer is required", ErrInvalidQuestion)
	}
	q := &model.Question{
		Scenario:      strings.TrimSpace(req.Scenario),
		CorrectAnswer: *req.CorrectAnswer,
		Explanation:   strings.TrimSpace(req.Explanation),
		Specialty:     strings.TrimSpace(req.Specialty),
		Format:        strings.TrimSpace(req.Format),
	}
	for _, opt := range req.Options {
		q.Options = append(q.Options, strings.TrimSpace(opt))
	}
	return q, validateQuestion(q)
}

func validateQuestion(q *model.Question) error {
	switch {
	case q.Scenario == "":
		return fmt.Errorf("%w: scenario is required", ErrInvalidQuestion)
	case q.Explanation == "":
		return fmt.Errorf("%w: explanation is required", ErrInvalidQuestion)
	case q.Specialty == "":
		return fmt.Errorf("%w: specialty is required", ErrInvalidQuestion)
	case q.Format == "":
		return fmt.Errorf("%w: format is required", ErrInvalidQuestion)
	case len(q.Options) < 2:
		return fmt.Errorf("%w: at least 2 options are required", ErrInvalidQuestion)
	}
	for i, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("%w: option %d is empty", ErrInvalidQuestion, i)
		}
	}
	if !q.HasValidAnswer() {
		return fmt.Errorf("%w: correct_answer %d is out of range for %d options", ErrInvalidQuestion, q.CorrectAnswer, len(q.Options))
	}
	return nil
}

func toQuestionResponse(q *model.Question) dto.QuestionResponse {
	var resp dto.QuestionResponse
	copier.Copy(&resp, q)
	resp.Options = append([]string{}, q.Options...)
	return resp
}
