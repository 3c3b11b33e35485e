package board

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/devgrid/boardhub/internal/domain"
)

// Store abstracts the repository accessor pattern for service testing.
// *postgres.Store satisfies this interface.
type Store interface {
	Users() domain.UserRepository
	Projects() domain.ProjectRepository
	Columns() domain.ColumnRepository
	Tasks() domain.TaskRepository
	Comments() domain.CommentRepository
	Checklists() domain.ChecklistRepository
	Tags() domain.TagRepository
	Attachments() domain.AttachmentRepository
	Members() domain.MemberRepository
	Notifications() domain.NotificationRepository
}

// Service orchestrates board mutations: it loads sibling snapshots, plans
// new orderings, persists the result, and emits exactly one domain event
// per successful mutation. Failed mutations emit nothing.
type Service struct {
	store      Store
	publisher  Publisher
	dispatcher *Dispatcher
	locks      *keyedMutex
}

func NewService(store Store, publisher Publisher, dispatcher *Dispatcher) *Service {
	return &Service{
		store:      store,
		publisher:  publisher,
		dispatcher: dispatcher,
		locks:      newKeyedMutex(),
	}
}

// publish sends a group event for the project. Broadcast failures are
// logged and swallowed: the persisted mutation stands and the caller
// still sees success.
func (s *Service) publish(ctx context.Context, projectID uuid.UUID, event string, payload any) {
	if err := s.publisher.PublishToProject(ctx, projectID, event, payload); err != nil {
		log.Warn().Err(err).Str("event", event).Stringer("project_id", projectID).Msg("board: group publish failed")
	}
}
