// Package quiz drives one pass over a drawn question set.
package quiz

import (
	"context"
	"sync"

	"github.com/lshigami/MedQuest/internal/dto"
	"github.com/rs/zerolog/log"
)

type State int

const (
	Loading State = iota
	InProgress
	Answered
	Finished
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case InProgress:
		return "in_progress"
	case Answered:
		return "answered"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Recorder persists an answered question. *client.Client satisfies it.
type Recorder interface {
	RecordAttempt(ctx context.Context, req dto.RecordAttemptRequest) (*dto.RecordAttemptResponse, error)
}

// Runner moves strictly forward: loading, then in_progress and answered for
// each question, then finished. It is not safe for concurrent use apart from
// the background recordings it starts.
type Runner struct {
	recorder  Recorder
	questions []dto.QuestionResponse

	state     State
	index     int
	score     int
	selection int

	pending sync.WaitGroup
}

func NewRunner(recorder Recorder) *Runner {
	return &Runner{recorder: recorder, state: Loading, selection: -1}
}

// Load starts the quiz. An empty set finishes immediately with score 0.
// Calls outside the loading state are ignored.
func (r *Runner) Load(questions []dto.QuestionResponse) {
	if r.state != Loading {
		return
	}
	r.questions = questions
	if len(questions) == 0 {
		r.state = Finished
		return
	}
	r.state = InProgress
}

// Current returns the question on screen, if any.
func (r *Runner) Current() (dto.QuestionResponse, bool) {
	if r.state != InProgress && r.state != Answered {
		return dto.QuestionResponse{}, false
	}
	return r.questions[r.index], true
}

// Select answers the current question. Only the first valid selection per
// question counts; later calls return ok=false. The attempt is recorded in
// the background and a failure is only logged.
func (r *Runner) Select(ctx context.Context, option int) (correct bool, ok bool) {
	if r.state != InProgress {
		return false, false
	}
	q := r.questions[r.index]
	if option < 0 || option >= len(q.Options) {
		return false, false
	}

	correct = option == q.CorrectAnswer
	r.selection = option
	r.state = Answered
	if correct {
		r.score++
	}
	r.record(ctx, q.ID, option, correct)
	return correct, true
}

func (r *Runner) record(ctx context.Context, questionID uint, option int, correct bool) {
	if r.recorder == nil {
		return
	}
	req := dto.RecordAttemptRequest{QuestionID: questionID, SelectedAnswer: &option, IsCorrect: &correct}
	r.pending.Add(1)
	go func() {
		defer r.pending.Done()
		if _, err := r.recorder.RecordAttempt(ctx, req); err != nil {
			log.Warn().Err(err).Uint("questionID", questionID).Msg("Failed to record attempt")
		}
	}()
}

// Next leaves the answered state for the following question, or finishes
// after the last one.
func (r *Runner) Next() {
	if r.state != Answered {
		return
	}
	r.selection = -1
	if r.index+1 >= len(r.questions) {
		r.state = Finished
		return
	}
	r.index++
	r.state = InProgress
}

// Wait blocks until every background recording has returned.
func (r *Runner) Wait() {
	r.pending.Wait()
}

func (r *Runner) State() State { return r.state }
func (r *Runner) Index() int { return r.index }
func (r *Runner) Score() int { return r.score }
func (r *Runner) Total() int { return len(r.questions) }
func (r *Runner) Selection() int { return r.selection }
