package board

import (
	"context"

	"github.com/google/uuid"

	"github.com/devgrid/boardhub/internal/domain"
)

// Event names pushed to project groups and user channels. They are the
// wire contract consumed by board clients and must not be renamed.
const (
	EventTaskCreated = "TaskCreated"
	EventTaskUpdated = "TaskUpdated"
	EventTaskDeleted = "TaskDeleted"
	EventTaskMoved   = "TaskMoved"

	EventColumnCreated    = "ColumnCreated"
	EventColumnUpdated    = "ColumnUpdated"
	EventColumnDeleted    = "ColumnDeleted"
	EventColumnsReordered = "ColumnsReordered"

	EventCommentAdded   = "CommentAdded"
	EventCommentDeleted = "CommentDeleted"

	EventChecklistItemAdded   = "ChecklistItemAdded"
	EventChecklistItemUpdated = "ChecklistItemUpdated"
	EventChecklistItemDeleted = "ChecklistItemDeleted"

	EventTagAdded   = "TagAdded"
	EventTagDeleted = "TagDeleted"

	EventAttachmentAdded   = "AttachmentAdded"
	EventAttachmentDeleted = "AttachmentDeleted"

	EventMemberJoined      = "MemberJoined"
	EventMemberRemoved     = "MemberRemoved"
	EventMemberRoleUpdated = "MemberRoleUpdated"

	EventNotificationReceived = "NotificationReceived"
)

// Publisher fans a named event out to every connection currently joined
// to a project group, or to all active connections of a single user.
// Publication is fire-and-forget: a failed publish never rolls back the
// mutation that produced the event.
type Publisher interface {
	PublishToProject(ctx context.Context, projectID uuid.UUID, event string, payload any) error
	PublishToUser(ctx context.Context, userID uuid.UUID, event string, payload any) error
}

type TaskMovedPayload struct {
	TaskID      uuid.UUID `json:"task_id"`
	NewColumnID uuid.UUID `json:"new_column_id"`
	NewPosition int       `json:"new_position"`
}

type TaskDeletedPayload struct {
	TaskID uuid.UUID `json:"task_id"`
}

type ColumnDeletedPayload struct {
	ColumnID uuid.UUID `json:"column_id"`
}

type ColumnsReorderedPayload struct {
	OrderedColumnIDs []uuid.UUID `json:"ordered_column_ids"`
}

type CommentAddedPayload struct {
	TaskID  uuid.UUID           `json:"task_id"`
	Comment *domain.TaskComment `json:"comment"`
}

type CommentDeletedPayload struct {
	TaskID    uuid.UUID `json:"task_id"`
	CommentID uuid.UUID `json:"comment_id"`
}

type ChecklistItemPayload struct {
	TaskID uuid.UUID             `json:"task_id"`
	Item   *domain.ChecklistItem `json:"item"`
}

type ChecklistItemDeletedPayload struct {
	TaskID uuid.UUID `json:"task_id"`
	ItemID uuid.UUID `json:"item_id"`
}

type TagAddedPayload struct {
	TaskID uuid.UUID       `json:"task_id"`
	Tag    *domain.TaskTag `json:"tag"`
}

type TagDeletedPayload struct {
	TaskID uuid.UUID `json:"task_id"`
	TagID  uuid.UUID `json:"tag_id"`
}

type AttachmentAddedPayload struct {
	TaskID     uuid.UUID              `json:"task_id"`
	Attachment *domain.TaskAttachment `json:"attachment"`
}

type AttachmentDeletedPayload struct {
	TaskID       uuid.UUID `json:"task_id"`
	AttachmentID uuid.UUID `json:"attachment_id"`
}

type MemberPayload struct {
	ProjectID uuid.UUID         `json:"project_id"`
	UserID    uuid.UUID         `json:"user_id"`
	Role      domain.MemberRole `json:"role,omitempty"`
}
