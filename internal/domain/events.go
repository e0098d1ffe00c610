package domain

import "time"

// Topics published on the notification bus by the auth forms.
const (
	TopicResetRequested  = "auth.reset_requested"
	TopicPasswordChanged = "auth.password_changed"
	TopicAccountCreated  = "auth.account_created"
)

// AuthTopics lists every topic the notification subscriber listens to.
var AuthTopics = []string{TopicResetRequested, TopicPasswordChanged, TopicAccountCreated}

// AuthEvent is the payload of every auth.* notification.
// No credentials or tokens are ever carried.
type AuthEvent struct {
	Email      string    `json:"email,omitempty"`
	Name       string    `json:"name,omitempty"`
	RequestID  string    `json:"requestId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
