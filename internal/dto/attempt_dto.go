package dto

// RecordAttemptRequest logs one answer. IsCorrect is optional; when present it
// must agree with the server's own grading.
type RecordAttemptRequest struct {
	QuestionID     uint  `json:"question_id" binding:"required"`
	SelectedAnswer *int  `json:"selected_answer" binding:"required,min=0"`
	IsCorrect      *bool `json:"is_correct"`
}

type RecordAttemptResponse struct {
	Success   bool `json:"success"`
	IsCorrect bool `json:"is_correct"`
}
