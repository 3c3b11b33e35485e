package board

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/devgrid/boardhub/internal/domain"
	"github.com/devgrid/boardhub/internal/notify"
)

// Dispatcher decides whether a board event warrants a personal
// notification, persists it, and pushes it to the recipient's channel.
// Delivery is best-effort: the persisted row remains readable through the
// pull-based listing even when no connection is live to receive the push.
type Dispatcher struct {
	notifications domain.NotificationRepository
	publisher     Publisher
	mirror        notify.Mirror // nil when no external mirror is configured
}

func NewDispatcher(notifications domain.NotificationRepository, publisher Publisher, mirror notify.Mirror) *Dispatcher {
	return &Dispatcher{
		notifications: notifications,
		publisher:     publisher,
		mirror:        mirror,
	}
}

// Notify creates a notification for recipientID and pushes it to that
// user's personal channel. Acting on your own task never notifies you.
// All failures are logged and swallowed; the mutation that triggered the
// notification has already committed and must still report success.
func (d *Dispatcher) Notify(ctx context.Context, actorID, recipientID uuid.UUID, title, message, notifType string, relatedID uuid.UUID, relatedType string) {
	if recipientID == actorID {
		return
	}

	n := &domain.Notification{
		ID:                uuid.New(),
		UserID:            recipientID,
		Title:             title,
		Message:           message,
		Type:              notifType,
		RelatedEntityID:   &relatedID,
		RelatedEntityType: relatedType,
		CreatedAt:         time.Now(),
	}

	if err := d.notifications.Create(ctx, n); err != nil {
		log.Error().Err(err).Stringer("user_id", recipientID).Msg("board: notification persist failed")
		return
	}

	if err := d.publisher.PublishToUser(ctx, recipientID, EventNotificationReceived, n); err != nil {
		log.Warn().Err(err).Stringer("user_id", recipientID).Msg("board: notification push failed")
	}

	if d.mirror != nil {
		if err := d.mirror.Send(ctx, recipientID, title+": "+message); err != nil {
			log.Debug().Err(err).Msg("board: notification mirror failed")
		}
	}
}
