package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/devgrid/boardhub/internal/api/v1"
	"github.com/devgrid/boardhub/internal/domain"
)

func TestListNotifications(t *testing.T) {
	t.Parallel()

	t.Run("happy_path", func(t *testing.T) {
		t.Parallel()

		uid := uuid.New()
		notifications := []*domain.Notification{
			{ID: uuid.New(), UserID: uid, Title: "New Comment", Message: "Alice commented on task: Fix login", CreatedAt: time.Now()},
			{ID: uuid.New(), UserID: uid, Title: "New Task Assignment", Message: "You have been assigned to task: Fix login", IsRead: true, CreatedAt: time.Now().Add(-time.Hour)},
		}

		_, api := humatest.New(t)
		svc := &mockBoardService{
			listNotificationsFunc: func(_ context.Context, actorID uuid.UUID) ([]*domain.Notification, error) {
				assert.Equal(t, uid, actorID)
				return notifications, nil
			},
		}
		v1.RegisterNotificationRoutes(api, svc)

		resp := api.GetCtx(userCtx(uid), "/notifications")

		require.Equal(t, http.StatusOK, resp.Code)

		var body []domain.Notification
		err := json.Unmarshal(resp.Body.Bytes(), &body)
		require.NoError(t, err)
		require.Len(t, body, 2)
		assert.Equal(t, "New Comment", body[0].Title)
		assert.False(t, body[0].IsRead)
		assert.True(t, body[1].IsRead)
	})

	t.Run("missing_user_context", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		v1.RegisterNotificationRoutes(api, &mockBoardService{})

		resp := api.GetCtx(context.Background(), "/notifications")

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})
}

func TestUnreadNotificationCount(t *testing.T) {
	t.Parallel()

	t.Run("happy_path", func(t *testing.T) {
		t.Parallel()

		uid := uuid.New()
		_, api := humatest.New(t)
		svc := &mockBoardService{
			countUnreadNotificationsFunc: func(_ context.Context, actorID uuid.UUID) (int, error) {
				assert.Equal(t, uid, actorID)
				return 3, nil
			},
		}
		v1.RegisterNotificationRoutes(api, svc)

		resp := api.GetCtx(userCtx(uid), "/notifications/unread-count")

		require.Equal(t, http.StatusOK, resp.Code)

		var body struct {
			Count int `json:"count"`
		}
		err := json.Unmarshal(resp.Body.Bytes(), &body)
		require.NoError(t, err)
		assert.Equal(t, 3, body.Count)
	})
}

func TestMarkNotificationRead(t *testing.T) {
	t.Parallel()

	t.Run("happy_path", func(t *testing.T) {
		t.Parallel()

		nid := uuid.New()
		_, api := humatest.New(t)
		svc := &mockBoardService{
			markNotificationReadFunc: func(_ context.Context, _, notificationID uuid.UUID) error {
				assert.Equal(t, nid, notificationID)
				return nil
			},
		}
		v1.RegisterNotificationRoutes(api, svc)

		resp := api.PutCtx(userCtx(uuid.New()), "/notifications/"+nid.String()+"/read", nil)

		assert.Equal(t, http.StatusNoContent, resp.Code)
	})

	t.Run("foreign_notification_not_found", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockBoardService{
			markNotificationReadFunc: func(_ context.Context, _, _ uuid.UUID) error {
				return domain.ErrNotFound
			},
		}
		v1.RegisterNotificationRoutes(api, svc)

		resp := api.PutCtx(userCtx(uuid.New()), "/notifications/"+uuid.New().String()+"/read", nil)

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestMarkAllNotificationsRead(t *testing.T) {
	t.Parallel()

	t.Run("happy_path", func(t *testing.T) {
		t.Parallel()

		uid := uuid.New()
		called := false
		_, api := humatest.New(t)
		svc := &mockBoardService{
			markAllNotificationsReadFunc: func(_ context.Context, actorID uuid.UUID) error {
				assert.Equal(t, uid, actorID)
				called = true
				return nil
			},
		}
		v1.RegisterNotificationRoutes(api, svc)

		resp := api.PutCtx(userCtx(uid), "/notifications/read-all", nil)

		assert.Equal(t, http.StatusNoContent, resp.Code)
		assert.True(t, called)
	})
}
