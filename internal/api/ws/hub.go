package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/devgrid/boardhub/internal/server/middleware"
	redisstore "github.com/devgrid/boardhub/internal/store/redis"
)

// Hub manages WebSocket connections backed by Redis pub/sub. Events
// published on one server instance reach sockets held by any instance.
type Hub struct {
	pubsub *redisstore.PubSub
}

// NewHub creates a new WebSocket hub.
func NewHub(pubsub *redisstore.PubSub) *Hub {
	return &Hub{pubsub: pubsub}
}

// Envelope is the wire frame for every pushed event.
type Envelope struct {
	Event   string `json:"event"`
	Payload any    `json:"payload,omitempty"`
}

// clientMessage is what a connected client sends to manage its group
// membership.
type clientMessage struct {
	Action    string    `json:"action"` // "join" or "leave"
	ProjectID uuid.UUID `json:"project_id"`
}

// PublishToProject broadcasts an event to every connection currently
// joined to the project's group.
func (h *Hub) PublishToProject(ctx context.Context, projectID uuid.UUID, event string, payload any) error {
	data, err := json.Marshal(Envelope{Event: event, Payload: payload})
	if err != nil {
		return fmt.Errorf("ws.Hub.PublishToProject: marshal: %w", err)
	}
	if err := h.pubsub.Publish(ctx, redisstore.ProjectChannel(projectID), data); err != nil {
		return fmt.Errorf("ws.Hub.PublishToProject: %w", err)
	}
	return nil
}

// PublishToUser sends an event to all of one user's active connections.
func (h *Hub) PublishToUser(ctx context.Context, userID uuid.UUID, event string, payload any) error {
	data, err := json.Marshal(Envelope{Event: event, Payload: payload})
	if err != nil {
		return fmt.Errorf("ws.Hub.PublishToUser: marshal: %w", err)
	}
	if err := h.pubsub.Publish(ctx, redisstore.UserChannel(userID), data); err != nil {
		return fmt.Errorf("ws.Hub.PublishToUser: %w", err)
	}
	return nil
}

// Serve handles the single WebSocket connection a board client keeps
// open. The connection is subscribed to the user's personal channel
// immediately; the client then joins and leaves project groups by
// sending {"action":"join","project_id":"..."} frames. All group
// memberships die with the connection.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "missing user", http.StatusUnauthorized)
		return
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket accept")
		return
	}
	defer conn.CloseNow()

	ctx, cancel := context.WithCancel(r.Context())

	// Merged stream of everything this socket should carry.
	out := make(chan []byte, 64)

	session := &session{hub: h, ctx: ctx, out: out, joined: make(map[uuid.UUID]context.CancelFunc)}
	defer func() {
		cancel()
		session.leaveAll()
	}()

	if err := session.attach(redisstore.UserChannel(userID)); err != nil {
		log.Error().Err(err).Msg("websocket subscribe user channel")
		_ = conn.Close(websocket.StatusInternalError, "subscribe failed")
		return
	}

	go session.readLoop(conn, cancel)

	for {
		select {
		case <-ctx.Done():
			_ = conn.Close(websocket.StatusNormalClosure, "connection closed")
			return
		case msg := <-out:
			if writeErr := conn.Write(ctx, websocket.MessageText, msg); writeErr != nil {
				log.Debug().Err(writeErr).Msg("websocket write")
				return
			}
		}
	}
}

// session tracks one connection's subscriptions. The wait group covers
// forwarder goroutines during teardown.
type session struct {
	hub    *Hub
	ctx    context.Context
	out    chan []byte
	mu     sync.Mutex
	joined map[uuid.UUID]context.CancelFunc
	wg     sync.WaitGroup
}

// attach subscribes the session to a channel and forwards its messages
// into the merged stream until cancel.
func (s *session) attach(channel string) error {
	return s.attachCancelable(s.ctx, channel)
}

func (s *session) attachCancelable(ctx context.Context, channel string) error {
	messages, cleanup, err := s.hub.pubsub.Subscribe(ctx, channel)
	if err != nil {
		return err
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cleanup()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				select {
				case s.out <- msg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return nil
}

// readLoop consumes join/leave frames until the client goes away.
func (s *session) readLoop(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	for {
		_, data, err := conn.Read(s.ctx)
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Debug().Err(err).Msg("websocket bad client frame")
			continue
		}

		switch msg.Action {
		case "join":
			s.join(msg.ProjectID)
		case "leave":
			s.leave(msg.ProjectID)
		default:
			log.Debug().Str("action", msg.Action).Msg("websocket unknown action")
		}
	}
}

// join subscribes the connection to a project group. Joining a group the
// connection is already in is a no-op.
func (s *session) join(projectID uuid.UUID) {
	if projectID == uuid.Nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.joined[projectID]; ok {
		return
	}

	subCtx, subCancel := context.WithCancel(s.ctx)
	if err := s.attachCancelable(subCtx, redisstore.ProjectChannel(projectID)); err != nil {
		subCancel()
		log.Warn().Err(err).Stringer("project_id", projectID).Msg("websocket join failed")
		return
	}
	s.joined[projectID] = subCancel
}

// leave drops one project group subscription. Leaving a group the
// connection never joined is a no-op.
func (s *session) leave(projectID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	subCancel, ok := s.joined[projectID]
	if !ok {
		return
	}
	subCancel()
	delete(s.joined, projectID)
}

// leaveAll tears down every subscription when the connection closes.
func (s *session) leaveAll() {
	s.mu.Lock()
	for id, subCancel := range s.joined {
		subCancel()
		delete(s.joined, id)
	}
	s.mu.Unlock()
	s.wg.Wait()
}
