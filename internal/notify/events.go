package notify

import (
	"github.com/ecowaste/site/internal/domain"
	"github.com/ecowaste/site/internal/pubsub"
)

// Typed auth events published by the auth handlers.
var (
	ResetRequested  = pubsub.NewEvent[domain.AuthEvent](domain.TopicResetRequested)
	PasswordChanged = pubsub.NewEvent[domain.AuthEvent](domain.TopicPasswordChanged)
	AccountCreated  = pubsub.NewEvent[domain.AuthEvent](domain.TopicAccountCreated)
)

// EventInfo describes a topic for tooling.
type EventInfo struct {
	Name        string `json:"name"`
	Publisher   string `json:"publisher"`
	Description string `json:"description"`
}

// Catalog lists the auth events in the order the forms are usually used.
var Catalog = []EventInfo{
	{Name: AccountCreated.Name(), Publisher: "POST /auth/signup", Description: "A visitor created an account; sends the welcome email"},
	{Name: ResetRequested.Name(), Publisher: "POST /auth/forgot-password", Description: "A reset link was requested; sends the reset email"},
	{Name: PasswordChanged.Name(), Publisher: "POST /auth/change-password", Description: "A password was changed; logged, no recipient is known"},
}
