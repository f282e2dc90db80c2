// File: internal/api/message_response.go
package api

// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Car deleted successfully"`
}
