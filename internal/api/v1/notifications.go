package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/devgrid/boardhub/internal/domain"
)

type ListNotificationsOutput struct {
	Body []*domain.Notification
}

type UnreadCountOutput struct {
	Body struct {
		Count int `json:"count" doc:"Number of unread notifications"`
	}
}

type NotificationIDInput struct {
	ID uuid.UUID `path:"id" doc:"Notification ID"`
}

func RegisterNotificationRoutes(api huma.API, svc BoardService) {
	huma.Register(api, huma.Operation{
		OperationID: "list-notifications",
		Method:      http.MethodGet,
		Path:        "/notifications",
		Summary:     "List the caller's notifications, newest first",
		Tags:        []string{"Notifications"},
	}, func(ctx context.Context, _ *struct{}) (*ListNotificationsOutput, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		notifications, err := svc.ListNotifications(ctx, actor)
		if err != nil {
			return nil, serviceError(err, "notification")
		}

		return &ListNotificationsOutput{Body: notifications}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "unread-notification-count",
		Method:      http.MethodGet,
		Path:        "/notifications/unread-count",
		Summary:     "Count the caller's unread notifications",
		Tags:        []string{"Notifications"},
	}, func(ctx context.Context, _ *struct{}) (*UnreadCountOutput, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		count, err := svc.CountUnreadNotifications(ctx, actor)
		if err != nil {
			return nil, serviceError(err, "notification")
		}

		out := &UnreadCountOutput{}
		out.Body.Count = count
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "mark-notification-read",
		Method:      http.MethodPut,
		Path:        "/notifications/{id}/read",
		Summary:     "Mark a notification as read",
		Tags:        []string{"Notifications"},
	}, func(ctx context.Context, input *NotificationIDInput) (*struct{}, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		if err := svc.MarkNotificationRead(ctx, actor, input.ID); err != nil {
			return nil, serviceError(err, "notification")
		}

		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "mark-all-notifications-read",
		Method:      http.MethodPut,
		Path:        "/notifications/read-all",
		Summary:     "Mark all of the caller's notifications as read",
		Tags:        []string{"Notifications"},
	}, func(ctx context.Context, _ *struct{}) (*struct{}, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		if err := svc.MarkAllNotificationsRead(ctx, actor); err != nil {
			return nil, serviceError(err, "notification")
		}

		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-notification",
		Method:      http.MethodDelete,
		Path:        "/notifications/{id}",
		Summary:     "Delete a notification",
		Tags:        []string{"Notifications"},
	}, func(ctx context.Context, input *NotificationIDInput) (*struct{}, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		if err := svc.DeleteNotification(ctx, actor, input.ID); err != nil {
			return nil, serviceError(err, "notification")
		}

		return nil, nil
	})
}
