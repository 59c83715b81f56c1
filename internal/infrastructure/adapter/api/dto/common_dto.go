package dto

// Envelope is the standard response shape for successful requests
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PageMeta carries pagination info alongside list payloads
type PageMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// PagedData wraps a list payload with its pagination meta
type PagedData struct {
	Items any      `json:"items"`
	Meta  PageMeta `json:"meta"`
}
