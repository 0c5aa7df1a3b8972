package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/MedQuest/config"
	"github.com/lshigami/MedQuest/internal/dto"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// QuestionDraftService proposes new bank questions with Gemini. Drafts are
// returned to the admin for review and are never stored by this service.
type QuestionDraftService interface {
	Draft(ctx context.Context, req dto.DraftQuestionRequest) (*dto.CreateQuestionRequest, error)
}

// textGenerator is the slice of *genai.GenerativeModel used here.
type textGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type questionDraftService struct {
	model textGenerator
}

func NewQuestionDraftService(cfg *config.Config) (QuestionDraftService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Question drafting will be unavailable.")
		return &questionDraftService{}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	m := client.GenerativeModel(cfg.GeminiModel)
	m.SetTemperature(0.7)
	return &questionDraftService{model: m}, nil
}

func (s *questionDraftService) Draft(ctx context.Context, req dto.DraftQuestionRequest) (*dto.CreateQuestionRequest, error) {
	if s.model == nil {
		return nil, ErrLLMUnavailable
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(draftPrompt(req.Specialty, req.Format)))
	if err != nil {
		log.Error().Err(err).Str("specialty", req.Specialty).Msg("Gemini API error during drafting")
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		log.Warn().Msg("Gemini returned no candidates in response.")
		return nil, fmt.Errorf("%w: empty response", ErrDraftUnparseable)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}

	draft, err := parseDraft(text.String())
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", text.String()).Msg("Failed to parse drafted question")
		return nil, err
	}
	draft.Specialty = req.Specialty
	draft.Format = req.Format

	if _, err := questionFromRequest(*draft); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDraftUnparseable, err)
	}
	return draft, nil
}

func draftPrompt(specialty, format string) string {
	var b strings.Builder
	b.WriteString("You are a medical educator writing board-exam style multiple-choice questions.\n")
	fmt.Fprintf(&b, "Write ONE %s question for the specialty %q.\n", format, specialty)
	b.WriteString("Give exactly four answer options with a single best answer.\n\n")
	b.WriteString("Format your response strictly as:\n")
	b.WriteString("Scenario: [question stem]\n")
	b.WriteString("A) [option]\nB) [option]\nC) [option]\nD) [option]\n")
	b.WriteString("Answer: [letter]\n")
	b.WriteString("Explanation: [why the answer is correct]\n")
	return b.String()
}

var optionLine = regexp.MustCompile(`^\(?([A-Fa-f])[\).:]\s+(.+)$`)

// parseDraft reads the line-oriented draft format. Scenario and explanation may
// span several lines; options are lettered from A.
func parseDraft(raw string) (*dto.CreateQuestionRequest, error) {
	var (
		scenario, explanation []string
		options               []string
		answer                = -1
		section               string
	)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.Trim(line, "*"))
		if line == "" || line == "---" {
			continue
		}
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "scenario:"):
			section = "scenario"
			scenario = appendNonEmpty(scenario, line[len("scenario:"):])
		case strings.HasPrefix(lower, "explanation:"):
			section = "explanation"
			explanation = appendNonEmpty(explanation, line[len("explanation:"):])
		case strings.HasPrefix(lower, "answer:"):
			section = ""
			letter := strings.TrimSpace(line[len("answer:"):])
			if letter == "" {
				return nil, fmt.Errorf("%w: empty answer", ErrDraftUnparseable)
			}
			answer = int(strings.ToUpper(letter)[0] - 'A')
		case section != "explanation" && optionLine.MatchString(line):
			m := optionLine.FindStringSubmatch(line)
			if int(strings.ToUpper(m[1])[0]-'A') != len(options) {
				return nil, fmt.Errorf("%w: option %s out of order", ErrDraftUnparseable, m[1])
			}
			section = "options"
			options = append(options, strings.TrimSpace(m[2]))
		case section == "scenario":
			scenario = append(scenario, line)
		case section == "explanation":
			explanation = append(explanation, line)
		}
	}

	if len(scenario) == 0 || len(explanation) == 0 {
		return nil, fmt.Errorf("%w: missing scenario or explanation", ErrDraftUnparseable)
	}
	if answer < 0 || answer >= len(options) {
		return nil, fmt.Errorf("%w: answer does not match an option", ErrDraftUnparseable)
	}
	return &dto.CreateQuestionRequest{
		Scenario:      strings.Join(scenario, "\n"),
		Options:       options,
		CorrectAnswer: &answer,
		Explanation:   strings.Join(explanation, "\n"),
	}, nil
}

func appendNonEmpty(lines []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		return append(lines, s)
	}
	return lines
}
