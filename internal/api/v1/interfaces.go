package v1

import (
	"context"

	"github.com/google/uuid"

	"github.com/devgrid/boardhub/internal/board"
	"github.com/devgrid/boardhub/internal/domain"
)

// BoardService abstracts board operations for handler testing.
// *board.Service satisfies this interface.
type BoardService interface {
	CreateProject(ctx context.Context, actorID uuid.UUID, name, description string) (*domain.Project, error)
	GetProject(ctx context.Context, actorID, projectID uuid.UUID) (*domain.Project, error)
	ListProjects(ctx context.Context, actorID uuid.UUID) ([]*domain.Project, error)
	UpdateProject(ctx context.Context, actorID, projectID uuid.UUID, in board.UpdateProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, actorID, projectID uuid.UUID) error
	GetBoard(ctx context.Context, actorID, projectID uuid.UUID) ([]*board.BoardColumn, error)

	CreateColumn(ctx context.Context, actorID, projectID uuid.UUID, in board.CreateColumnInput) (*domain.Column, error)
	UpdateColumn(ctx context.Context, actorID, columnID uuid.UUID, in board.UpdateColumnInput) (*domain.Column, error)
	DeleteColumn(ctx context.Context, actorID, columnID uuid.UUID) error
	ReorderColumns(ctx context.Context, actorID, projectID uuid.UUID, orderedIDs []uuid.UUID) error
	ListColumns(ctx context.Context, actorID, projectID uuid.UUID) ([]*domain.Column, error)

	CreateTask(ctx context.Context, actorID, projectID uuid.UUID, in board.CreateTaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, actorID, taskID uuid.UUID) (*domain.Task, error)
	GetTaskDetail(ctx context.Context, actorID, taskID uuid.UUID) (*board.TaskDetail, error)
	UpdateTask(ctx context.Context, actorID, taskID uuid.UUID, in board.UpdateTaskInput) (*domain.Task, error)
	MoveTask(ctx context.Context, actorID, taskID, newColumnID uuid.UUID, newPosition int) error
	DeleteTask(ctx context.Context, actorID, taskID uuid.UUID) error

	AddComment(ctx context.Context, actorID, taskID uuid.UUID, content string) (*domain.TaskComment, error)
	DeleteComment(ctx context.Context, actorID, taskID, commentID uuid.UUID) error
	AddChecklistItem(ctx context.Context, actorID, taskID uuid.UUID, text string) (*domain.ChecklistItem, error)
	UpdateChecklistItem(ctx context.Context, actorID, taskID, itemID uuid.UUID, in board.UpdateChecklistItemInput) (*domain.ChecklistItem, error)
	DeleteChecklistItem(ctx context.Context, actorID, taskID, itemID uuid.UUID) error
	AddTag(ctx context.Context, actorID, taskID uuid.UUID, name, color string) (*domain.TaskTag, error)
	DeleteTag(ctx context.Context, actorID, taskID, tagID uuid.UUID) error
	AddAttachment(ctx context.Context, actorID, taskID uuid.UUID, fileName, filePath, contentType string, fileSize int64) (*domain.TaskAttachment, error)
	DeleteAttachment(ctx context.Context, actorID, taskID, attachmentID uuid.UUID) error

	AddMember(ctx context.Context, actorID, projectID, userID uuid.UUID, role domain.MemberRole) (*domain.ProjectMember, error)
	ListMembers(ctx context.Context, actorID, projectID uuid.UUID) ([]*domain.ProjectMember, error)
	UpdateMemberRole(ctx context.Context, actorID, projectID, userID uuid.UUID, role domain.MemberRole) error
	RemoveMember(ctx context.Context, actorID, projectID, userID uuid.UUID) error

	ListNotifications(ctx context.Context, actorID uuid.UUID) ([]*domain.Notification, error)
	CountUnreadNotifications(ctx context.Context, actorID uuid.UUID) (int, error)
	MarkNotificationRead(ctx context.Context, actorID, notificationID uuid.UUID) error
	MarkAllNotificationsRead(ctx context.Context, actorID uuid.UUID) error
	DeleteNotification(ctx context.Context, actorID, notificationID uuid.UUID) error
}

// AuthService abstracts authentication operations for handler testing.
// *auth.Service satisfies this interface.
type AuthService interface {
	Register(ctx context.Context, email, password, displayName string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, err error)
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
}
