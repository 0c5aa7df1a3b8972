package dto

type SpecialtyStat struct {
	Specialty       string `json:"specialty"`
	Count           int64  `json:"count"`
	Correct         int64  `json:"correct"`
	AccuracyPercent int    `json:"accuracy_percent"`
}

// AnalyticsResponse keeps the camel-cased specialtyStats key the web client expects.
type AnalyticsResponse struct {
	TotalAttempts   int64           `json:"total_attempts"`
	CorrectAttempts int64           `json:"correct_attempts"`
	TotalQuestions  int64           `json:"total_questions"`
	AccuracyPercent int             `json:"accuracy_percent"`
	SpecialtyStats  []SpecialtyStat `json:"specialtyStats"`
}
