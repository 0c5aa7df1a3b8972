package dto

import "time"

// CreateQuestionRequest is the admin payload for a new bank entry.
// CorrectAnswer is a pointer so that index 0 passes the "required" check.
type CreateQuestionRequest struct {
	Scenario      string   `json:"scenario" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2,dive,required"`
	CorrectAnswer *int     `json:"correct_answer" binding:"required,min=0"`
	Explanation   string   `json:"explanation" binding:"required"`
	Specialty     string   `json:"specialty" binding:"required"`
	Format        string   `json:"format" binding:"required"`
}

type QuestionResponse struct {
	ID            uint      `json:"id"`
	Scenario      string    `json:"scenario"`
	Options       []string  `json:"options"`
	CorrectAnswer int       `json:"correct_answer"`
	Explanation   string    `json:"explanation"`
	Specialty     string    `json:"specialty"`
	Format        string    `json:"format"`
	CreatedAt     time.Time `json:"created_at"`
}

// ListQuestionsQuery binds GET /api/questions query parameters.
type ListQuestionsQuery struct {
	Specialty string `form:"specialty"`
	Limit     int    `form:"limit" binding:"omitempty,min=0"`
}

// DraftQuestionRequest asks the LLM for an unsaved question proposal.
type DraftQuestionRequest struct {
	Specialty string `json:"specialty" binding:"required"`
	Format    string `json:"format" binding:"required"`
}
