package models

// AIRequest is one user turn sent to the booking assistant.
type AIRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

// AIResponse is the assistant's reply.
type AIResponse struct {
	ResponseText string      `json:"responseText"`
	ServiceType  ServiceType `json:"serviceType,omitempty"`
}

// AIContext is the rolling conversation state kept in Redis between turns.
type AIContext struct {
	ServiceType ServiceType `json:"serviceType,omitempty"`
	History     []string    `json:"history,omitempty"`
}
