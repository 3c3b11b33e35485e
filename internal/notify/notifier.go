// Package notify mirrors persisted notifications to an external
// messenger so users see board activity without keeping a client open.
package notify

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	slacklib "github.com/slack-go/slack"
	"github.com/sony/gobreaker"
)

// Mirror sends a copy of a user's notification to an external channel.
// The in-app notification is the source of truth; mirror failures never
// surface to the user who triggered the event.
type Mirror interface {
	Send(ctx context.Context, recipientID uuid.UUID, text string) error
}

// SlackAPI abstracts the subset of the Slack client used by SlackMirror.
// This allows testing without real HTTP calls.
type SlackAPI interface {
	PostMessage(channelID string, options ...slacklib.MsgOption) (string, string, error)
}

// SlackMirror posts every mirrored notification to a single configured
// Slack channel. A circuit breaker keeps a degraded Slack workspace from
// slowing down the mutations that produce notifications.
type SlackMirror struct {
	api     SlackAPI
	channel string
	breaker *gobreaker.CircuitBreaker
}

var _ Mirror = (*SlackMirror)(nil)

// NewSlackMirror creates a SlackMirror posting to the given channel.
func NewSlackMirror(api SlackAPI, channel string) *SlackMirror {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "slack-mirror",
		MaxRequests: 1,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Info().Str("breaker", name).Stringer("from", from).Stringer("to", to).Msg("notify: circuit breaker state change")
		},
	})

	return &SlackMirror{
		api:     api,
		channel: channel,
		breaker: breaker,
	}
}

// Send posts the notification text to the configured channel. The
// recipient id is included so a shared channel stays attributable.
func (m *SlackMirror) Send(_ context.Context, recipientID uuid.UUID, text string) error {
	_, err := m.breaker.Execute(func() (any, error) {
		msg := fmt.Sprintf("[%s] %s", recipientID, text)
		_, _, postErr := m.api.PostMessage(m.channel, slacklib.MsgOptionText(msg, false))
		return nil, postErr
	})
	if err != nil {
		return fmt.Errorf("notify.SlackMirror.Send: %w", err)
	}

	return nil
}
