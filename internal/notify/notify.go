// Package notify turns auth events into outgoing email.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/ecowaste/site/internal/domain"
	"github.com/ecowaste/site/internal/pubsub"
	"github.com/ecowaste/site/internal/rendering"
)

// Service subscribes to the auth topics and sends one email per event.
type Service struct {
	sub      pubsub.Subscriber
	sender   domain.EmailSender
	renderer rendering.Renderer
	baseURL  string
}

// New creates a notification service.
func New(sub pubsub.Subscriber, sender domain.EmailSender, renderer rendering.Renderer, baseURL string) *Service {
	return &Service{sub: sub, sender: sender, renderer: renderer, baseURL: baseURL}
}

// Start subscribes to every auth topic. Messages are handled in the
// background until ctx is canceled or the bus is closed.
func (s *Service) Start(ctx context.Context) error {
	for _, event := range []pubsub.Event[domain.AuthEvent]{ResetRequested, PasswordChanged, AccountCreated} {
		topic := event.Name()
		err := pubsub.Subscribe(ctx, s.sub, event, func(ctx context.Context, ev domain.AuthEvent) error {
			return s.deliver(ctx, topic, ev)
		})
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
		}
	}
	slog.Info("Notification service started", "topics", domain.AuthTopics)
	return nil
}

func (s *Service) deliver(ctx context.Context, topic string, ev domain.AuthEvent) error {
	if ev.Email == "" {
		slog.Info("Auth event has no recipient, skipping email", "topic", topic, "request_id", ev.RequestID)
		return nil
	}
	subject, content, err := Compose(topic, ev, s.baseURL)
	if err != nil {
		return err
	}
	body, err := s.renderer.RenderComponent(ctx, emailLayout(subject, content))
	if err != nil {
		return fmt.Errorf("failed to render %s email: %w", topic, err)
	}
	if err := s.sender.Send(ev.Email, subject, string(body)); err != nil {
		return fmt.Errorf("failed to send %s email: %w", topic, err)
	}
	slog.Info("Notification sent", "topic", topic, "request_id", ev.RequestID)
	return nil
}

// Compose builds the subject and HTML body of the email for an auth event.
func Compose(topic string, ev domain.AuthEvent, baseURL string) (subject string, body cmp.Node, err error) {
	var content cmp.Node
	switch topic {
	case domain.TopicResetRequested:
		subject = "Reset your EcoWaste password"
		content = g.Div(
			g.P(cmp.Text("We received a request to reset the password for "+ev.Email+".")),
			g.P(cmp.Text("Follow the link below to choose a new password:")),
			g.A(g.Href(baseURL+"/auth/change-password"), cmp.Text("Change Password")),
		)
	case domain.TopicPasswordChanged:
		subject = "Your EcoWaste password was changed"
		content = g.Div(
			g.P(cmp.Text("Your password has been updated. Please sign in with your new password.")),
			g.A(g.Href(baseURL+"/auth/signin"), cmp.Text("Sign In")),
		)
	case domain.TopicAccountCreated:
		subject = "Welcome to EcoWaste"
		greeting := "Welcome!"
		if ev.Name != "" {
			greeting = "Welcome, " + ev.Name + "!"
		}
		content = g.Div(
			g.P(cmp.Text(greeting)),
			g.P(cmp.Text("Your account is ready. Start tracking your waste on the dashboard.")),
			g.A(g.Href(baseURL+"/dashboard"), cmp.Text("Open Dashboard")),
		)
	default:
		return "", nil, fmt.Errorf("no email template for topic %q", topic)
	}
	return subject, content, nil
}
