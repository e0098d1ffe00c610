package notify_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecowaste/site/internal/domain"
	"github.com/ecowaste/site/internal/notify"
	"github.com/ecowaste/site/internal/pubsub"
	"github.com/ecowaste/site/internal/rendering"
)

type sentMail struct {
	To, Subject, Body string
}

type fakeSender struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeSender) Send(to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{to, subject, body})
	return f.err
}

func (f *fakeSender) Sent() []sentMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMail(nil), f.sent...)
}

func TestService_DeliversAuthEvents(t *testing.T) {
	bus := pubsub.NewWatermillBridge(nil)
	defer bus.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &fakeSender{}
	require.NoError(t, notify.New(bus, sender, rendering.NewUniversalRenderer(), "http://eco.test").Start(ctx))

	ev := domain.AuthEvent{Email: "eco@example.com", RequestID: "req-1", OccurredAt: time.Now()}
	require.NoError(t, pubsub.Publish(ctx, bus, notify.ResetRequested, ev.RequestID, ev))
	require.NoError(t, pubsub.Publish(ctx, bus, notify.PasswordChanged, ev.RequestID, ev))

	require.Eventually(t, func() bool { return len(sender.Sent()) == 2 }, 2*time.Second, 10*time.Millisecond)

	subjects := []string{sender.Sent()[0].Subject, sender.Sent()[1].Subject}
	assert.ElementsMatch(t, []string{"Reset your EcoWaste password", "Your EcoWaste password was changed"}, subjects)
	for _, m := range sender.Sent() {
		assert.Equal(t, "eco@example.com", m.To)
		assert.True(t, strings.HasPrefix(m.Body, "<!DOCTYPE html>"), "emails are full documents")
		assert.Contains(t, m.Body, "<title>"+m.Subject+"</title>")
		assert.Contains(t, m.Body, `href="http://eco.test/auth/`)
	}
}

func TestService_SkipsEventsWithoutRecipient(t *testing.T) {
	bus := pubsub.NewWatermillBridge(nil)
	defer bus.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &fakeSender{err: errors.New("should not be called")}
	require.NoError(t, notify.New(bus, sender, rendering.NewUniversalRenderer(), "").Start(ctx))

	require.NoError(t, pubsub.Publish(ctx, bus, notify.AccountCreated, "", domain.AuthEvent{Name: "Ada"}))

	assert.Never(t, func() bool { return len(sender.Sent()) > 0 }, 200*time.Millisecond, 20*time.Millisecond)
}

func compose(t *testing.T, topic string, ev domain.AuthEvent, baseURL string) (string, string, error) {
	t.Helper()
	subject, content, err := notify.Compose(topic, ev, baseURL)
	if err != nil {
		return "", "", err
	}
	var buf bytes.Buffer
	require.NoError(t, content.Render(&buf))
	return subject, buf.String(), nil
}

func TestCompose(t *testing.T) {
	t.Run("welcome email escapes the name", func(t *testing.T) {
		subject, body, err := compose(t, domain.TopicAccountCreated, domain.AuthEvent{Name: "<Ada>"}, "http://eco.test")
		require.NoError(t, err)
		assert.Equal(t, "Welcome to EcoWaste", subject)
		assert.Contains(t, body, "Welcome, &lt;Ada&gt;!")
		assert.Contains(t, body, `href="http://eco.test/dashboard"`)
	})

	t.Run("reset email links to the change password form", func(t *testing.T) {
		_, body, err := compose(t, domain.TopicResetRequested, domain.AuthEvent{Email: "eco@example.com"}, "http://eco.test")
		require.NoError(t, err)
		assert.Contains(t, body, "eco@example.com")
		assert.Contains(t, body, `href="http://eco.test/auth/change-password"`)
	})

	t.Run("unknown topic", func(t *testing.T) {
		_, _, err := compose(t, "auth.unknown", domain.AuthEvent{}, "")
		assert.Error(t, err)
	})
}
