package board

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/devgrid/boardhub/internal/domain"
)

// ListNotifications returns the actor's notifications, newest first.
func (s *Service) ListNotifications(ctx context.Context, actorID uuid.UUID) ([]*domain.Notification, error) {
	list, err := s.store.Notifications().ListByUser(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.ListNotifications: %w", err)
	}

	return list, nil
}

// CountUnreadNotifications returns the actor's unread badge count.
func (s *Service) CountUnreadNotifications(ctx context.Context, actorID uuid.UUID) (int, error) {
	count, err := s.store.Notifications().CountUnread(ctx, actorID)
	if err != nil {
		return 0, fmt.Errorf("board.Service.CountUnreadNotifications: %w", err)
	}

	return count, nil
}

// MarkNotificationRead marks one of the actor's notifications as read.
// Another user's notification id yields ErrNotFound.
func (s *Service) MarkNotificationRead(ctx context.Context, actorID, notificationID uuid.UUID) error {
	if err := s.store.Notifications().MarkRead(ctx, actorID, notificationID); err != nil {
		return fmt.Errorf("board.Service.MarkNotificationRead: %w", err)
	}

	return nil
}

// MarkAllNotificationsRead clears the actor's unread badge.
func (s *Service) MarkAllNotificationsRead(ctx context.Context, actorID uuid.UUID) error {
	if err := s.store.Notifications().MarkAllRead(ctx, actorID); err != nil {
		return fmt.Errorf("board.Service.MarkAllNotificationsRead: %w", err)
	}

	return nil
}

// DeleteNotification removes one of the actor's notifications.
func (s *Service) DeleteNotification(ctx context.Context, actorID, notificationID uuid.UUID) error {
	if err := s.store.Notifications().Delete(ctx, actorID, notificationID); err != nil {
		return fmt.Errorf("board.Service.DeleteNotification: %w", err)
	}

	return nil
}
