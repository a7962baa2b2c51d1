package models

type ErrorResponse struct {
	Error APIError `json:"error"`
}

type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
	App    string `json:"app"`
}
