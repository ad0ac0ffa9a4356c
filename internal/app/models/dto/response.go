package dto

import "time"

// APIResponse is the standard success envelope.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// SuccessResponse is a plain message response for delete-style
// endpoints.
type SuccessResponse struct {
	Message string `json:"message"`
}
