package dto

// ErrorResponse is the only error shape the API returns.
type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type IDResponse struct {
	ID uint `json:"id"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
