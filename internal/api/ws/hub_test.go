package ws_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devgrid/boardhub/internal/api/ws"
	"github.com/devgrid/boardhub/internal/server/middleware"
	redisstore "github.com/devgrid/boardhub/internal/store/redis"
)

// wsFixture runs a hub behind an httptest server with a fixed
// authenticated user injected the way the auth middleware would.
type wsFixture struct {
	hub    *ws.Hub
	server *httptest.Server
	userID uuid.UUID
}

func newWSFixture(t *testing.T) *wsFixture {
	t.Helper()

	m := miniredis.RunT(t)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	ps, err := redisstore.New(ctx, m.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ps.Close() })

	hub := ws.NewHub(ps)
	userID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqCtx := context.WithValue(r.Context(), middleware.ContextKeyUserID, userID)
		hub.Serve(w, r.WithContext(reqCtx))
	}))
	t.Cleanup(srv.Close)

	return &wsFixture{hub: hub, server: srv, userID: userID}
}

func (f *wsFixture) dial(ctx context.Context, t *testing.T) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(f.server.URL, "http")
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.CloseNow() })

	return conn
}

// readEnvelope blocks until the next frame arrives or the deadline hits.
func readEnvelope(ctx context.Context, t *testing.T, conn *websocket.Conn) ws.Envelope {
	t.Helper()

	readCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	_, data, err := conn.Read(readCtx)
	require.NoError(t, err)

	var env ws.Envelope
	require.NoError(t, json.Unmarshal(data, &env))
	return env
}

func sendAction(ctx context.Context, t *testing.T, conn *websocket.Conn, action string, projectID uuid.UUID) {
	t.Helper()

	frame, err := json.Marshal(map[string]any{"action": action, "project_id": projectID})
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, frame))
}

func TestHub_UserChannelAutoSubscribed(t *testing.T) {
	t.Parallel()

	f := newWSFixture(t)
	ctx := t.Context()
	conn := f.dial(ctx, t)

	// No join needed: personal notifications arrive on connect.
	// Publish retries cover the window before the subscription lands.
	payload := map[string]any{"title": "New Comment"}
	go func() {
		for i := 0; i < 20; i++ {
			_ = f.hub.PublishToUser(ctx, f.userID, "NotificationReceived", payload)
			time.Sleep(50 * time.Millisecond)
		}
	}()

	env := readEnvelope(ctx, t, conn)
	assert.Equal(t, "NotificationReceived", env.Event)
}

func TestHub_JoinReceivesProjectEvents(t *testing.T) {
	t.Parallel()

	f := newWSFixture(t)
	ctx := t.Context()
	conn := f.dial(ctx, t)
	projectID := uuid.New()

	sendAction(ctx, t, conn, "join", projectID)

	go func() {
		for i := 0; i < 20; i++ {
			_ = f.hub.PublishToProject(ctx, projectID, "TaskMoved", map[string]any{"task_id": uuid.New()})
			time.Sleep(50 * time.Millisecond)
		}
	}()

	env := readEnvelope(ctx, t, conn)
	assert.Equal(t, "TaskMoved", env.Event)
}

func TestHub_OtherProjectsNotDelivered(t *testing.T) {
	t.Parallel()

	f := newWSFixture(t)
	ctx := t.Context()
	conn := f.dial(ctx, t)
	joined := uuid.New()
	other := uuid.New()

	sendAction(ctx, t, conn, "join", joined)

	// Give the join frame time to take effect before publishing.
	time.Sleep(200 * time.Millisecond)

	require.NoError(t, f.hub.PublishToProject(ctx, other, "TaskCreated", nil))

	readCtx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
	defer cancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "events for an unjoined project must not arrive")
}

func TestHub_LeaveStopsDelivery(t *testing.T) {
	t.Parallel()

	f := newWSFixture(t)
	ctx := t.Context()
	conn := f.dial(ctx, t)
	projectID := uuid.New()

	sendAction(ctx, t, conn, "join", projectID)

	// Confirm delivery while joined.
	go func() {
		for i := 0; i < 20; i++ {
			_ = f.hub.PublishToProject(ctx, projectID, "ColumnCreated", nil)
			time.Sleep(50 * time.Millisecond)
		}
	}()
	env := readEnvelope(ctx, t, conn)
	require.Equal(t, "ColumnCreated", env.Event)

	sendAction(ctx, t, conn, "leave", projectID)
	time.Sleep(200 * time.Millisecond)

	// Drain anything published before the leave landed, then verify
	// silence.
	drainCtx, drainCancel := context.WithTimeout(ctx, 300*time.Millisecond)
	for {
		_, _, err := conn.Read(drainCtx)
		if err != nil {
			break
		}
	}
	drainCancel()

	require.NoError(t, f.hub.PublishToProject(ctx, projectID, "ColumnDeleted", nil))

	readCtx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
	defer cancel()
	_, _, err := conn.Read(readCtx)
	assert.Error(t, err, "events must stop after leaving the project group")
}

func TestHub_RejectsMissingUser(t *testing.T) {
	t.Parallel()

	m := miniredis.RunT(t)
	ctx := t.Context()

	ps, err := redisstore.New(ctx, m.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ps.Close() })

	hub := ws.NewHub(ps)

	// No user injected into the request context.
	srv := httptest.NewServer(http.HandlerFunc(hub.Serve))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, dialErr := websocket.Dial(ctx, url, nil)
	if conn != nil {
		_ = conn.CloseNow()
	}
	require.Error(t, dialErr)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
