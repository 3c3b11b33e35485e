package v1_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/devgrid/boardhub/internal/board"
	"github.com/devgrid/boardhub/internal/domain"
	"github.com/devgrid/boardhub/internal/server/middleware"
)

// ---------------------------------------------------------------------------
// Context helper — inject the authenticated user for DoCtx calls
// ---------------------------------------------------------------------------

func userCtx(userID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), middleware.ContextKeyUserID, userID)
}

// ---------------------------------------------------------------------------
// Mock BoardService
// ---------------------------------------------------------------------------

type mockBoardService struct {
	createProjectFunc func(ctx context.Context, actorID uuid.UUID, name, description string) (*domain.Project, error)
	getProjectFunc    func(ctx context.Context, actorID, projectID uuid.UUID) (*domain.Project, error)
	listProjectsFunc  func(ctx context.Context, actorID uuid.UUID) ([]*domain.Project, error)
	updateProjectFunc func(ctx context.Context, actorID, projectID uuid.UUID, in board.UpdateProjectInput) (*domain.Project, error)
	deleteProjectFunc func(ctx context.Context, actorID, projectID uuid.UUID) error
	getBoardFunc      func(ctx context.Context, actorID, projectID uuid.UUID) ([]*board.BoardColumn, error)

	createColumnFunc   func(ctx context.Context, actorID, projectID uuid.UUID, in board.CreateColumnInput) (*domain.Column, error)
	updateColumnFunc   func(ctx context.Context, actorID, columnID uuid.UUID, in board.UpdateColumnInput) (*domain.Column, error)
	deleteColumnFunc   func(ctx context.Context, actorID, columnID uuid.UUID) error
	reorderColumnsFunc func(ctx context.Context, actorID, projectID uuid.UUID, orderedIDs []uuid.UUID) error
	listColumnsFunc    func(ctx context.Context, actorID, projectID uuid.UUID) ([]*domain.Column, error)

	createTaskFunc    func(ctx context.Context, actorID, projectID uuid.UUID, in board.CreateTaskInput) (*domain.Task, error)
	getTaskFunc       func(ctx context.Context, actorID, taskID uuid.UUID) (*domain.Task, error)
	getTaskDetailFunc func(ctx context.Context, actorID, taskID uuid.UUID) (*board.TaskDetail, error)
	updateTaskFunc    func(ctx context.Context, actorID, taskID uuid.UUID, in board.UpdateTaskInput) (*domain.Task, error)
	moveTaskFunc      func(ctx context.Context, actorID, taskID, newColumnID uuid.UUID, newPosition int) error
	deleteTaskFunc    func(ctx context.Context, actorID, taskID uuid.UUID) error

	addCommentFunc          func(ctx context.Context, actorID, taskID uuid.UUID, content string) (*domain.TaskComment, error)
	deleteCommentFunc       func(ctx context.Context, actorID, taskID, commentID uuid.UUID) error
	addChecklistItemFunc    func(ctx context.Context, actorID, taskID uuid.UUID, text string) (*domain.ChecklistItem, error)
	updateChecklistItemFunc func(ctx context.Context, actorID, taskID, itemID uuid.UUID, in board.UpdateChecklistItemInput) (*domain.ChecklistItem, error)
	deleteChecklistItemFunc func(ctx context.Context, actorID, taskID, itemID uuid.UUID) error
	addTagFunc              func(ctx context.Context, actorID, taskID uuid.UUID, name, color string) (*domain.TaskTag, error)
	deleteTagFunc           func(ctx context.Context, actorID, taskID, tagID uuid.UUID) error
	addAttachmentFunc       func(ctx context.Context, actorID, taskID uuid.UUID, fileName, filePath, contentType string, fileSize int64) (*domain.TaskAttachment, error)
	deleteAttachmentFunc    func(ctx context.Context, actorID, taskID, attachmentID uuid.UUID) error

	addMemberFunc        func(ctx context.Context, actorID, projectID, userID uuid.UUID, role domain.MemberRole) (*domain.ProjectMember, error)
	listMembersFunc      func(ctx context.Context, actorID, projectID uuid.UUID) ([]*domain.ProjectMember, error)
	updateMemberRoleFunc func(ctx context.Context, actorID, projectID, userID uuid.UUID, role domain.MemberRole) error
	removeMemberFunc     func(ctx context.Context, actorID, projectID, userID uuid.UUID) error

	listNotificationsFunc        func(ctx context.Context, actorID uuid.UUID) ([]*domain.Notification, error)
	countUnreadNotificationsFunc func(ctx context.Context, actorID uuid.UUID) (int, error)
	markNotificationReadFunc     func(ctx context.Context, actorID, notificationID uuid.UUID) error
	markAllNotificationsReadFunc func(ctx context.Context, actorID uuid.UUID) error
	deleteNotificationFunc       func(ctx context.Context, actorID, notificationID uuid.UUID) error
}

func (m *mockBoardService) CreateProject(ctx context.Context, actorID uuid.UUID, name, description string) (*domain.Project, error) {
	return m.createProjectFunc(ctx, actorID, name, description)
}

func (m *mockBoardService) GetProject(ctx context.Context, actorID, projectID uuid.UUID) (*domain.Project, error) {
	return m.getProjectFunc(ctx, actorID, projectID)
}

func (m *mockBoardService) ListProjects(ctx context.Context, actorID uuid.UUID) ([]*domain.Project, error) {
	return m.listProjectsFunc(ctx, actorID)
}

func (m *mockBoardService) UpdateProject(ctx context.Context, actorID, projectID uuid.UUID, in board.UpdateProjectInput) (*domain.Project, error) {
	return m.updateProjectFunc(ctx, actorID, projectID, in)
}

func (m *mockBoardService) DeleteProject(ctx context.Context, actorID, projectID uuid.UUID) error {
	return m.deleteProjectFunc(ctx, actorID, projectID)
}

func (m *mockBoardService) GetBoard(ctx context.Context, actorID, projectID uuid.UUID) ([]*board.BoardColumn, error) {
	return m.getBoardFunc(ctx, actorID, projectID)
}

func (m *mockBoardService) CreateColumn(ctx context.Context, actorID, projectID uuid.UUID, in board.CreateColumnInput) (*domain.Column, error) {
	return m.createColumnFunc(ctx, actorID, projectID, in)
}

func (m *mockBoardService) UpdateColumn(ctx context.Context, actorID, columnID uuid.UUID, in board.UpdateColumnInput) (*domain.Column, error) {
	return m.updateColumnFunc(ctx, actorID, columnID, in)
}

func (m *mockBoardService) DeleteColumn(ctx context.Context, actorID, columnID uuid.UUID) error {
	return m.deleteColumnFunc(ctx, actorID, columnID)
}

func (m *mockBoardService) ReorderColumns(ctx context.Context, actorID, projectID uuid.UUID, orderedIDs []uuid.UUID) error {
	return m.reorderColumnsFunc(ctx, actorID, projectID, orderedIDs)
}

func (m *mockBoardService) ListColumns(ctx context.Context, actorID, projectID uuid.UUID) ([]*domain.Column, error) {
	return m.listColumnsFunc(ctx, actorID, projectID)
}

func (m *mockBoardService) CreateTask(ctx context.Context, actorID, projectID uuid.UUID, in board.CreateTaskInput) (*domain.Task, error) {
	return m.createTaskFunc(ctx, actorID, projectID, in)
}

func (m *mockBoardService) GetTask(ctx context.Context, actorID, taskID uuid.UUID) (*domain.Task, error) {
	return m.getTaskFunc(ctx, actorID, taskID)
}

func (m *mockBoardService) GetTaskDetail(ctx context.Context, actorID, taskID uuid.UUID) (*board.TaskDetail, error) {
	return m.getTaskDetailFunc(ctx, actorID, taskID)
}

func (m *mockBoardService) UpdateTask(ctx context.Context, actorID, taskID uuid.UUID, in board.UpdateTaskInput) (*domain.Task, error) {
	return m.updateTaskFunc(ctx, actorID, taskID, in)
}

func (m *mockBoardService) MoveTask(ctx context.Context, actorID, taskID, newColumnID uuid.UUID, newPosition int) error {
	return m.moveTaskFunc(ctx, actorID, taskID, newColumnID, newPosition)
}

func (m *mockBoardService) DeleteTask(ctx context.Context, actorID, taskID uuid.UUID) error {
	return m.deleteTaskFunc(ctx, actorID, taskID)
}

func (m *mockBoardService) AddComment(ctx context.Context, actorID, taskID uuid.UUID, content string) (*domain.TaskComment, error) {
	return m.addCommentFunc(ctx, actorID, taskID, content)
}

func (m *mockBoardService) DeleteComment(ctx context.Context, actorID, taskID, commentID uuid.UUID) error {
	return m.deleteCommentFunc(ctx, actorID, taskID, commentID)
}

func (m *mockBoardService) AddChecklistItem(ctx context.Context, actorID, taskID uuid.UUID, text string) (*domain.ChecklistItem, error) {
	return m.addChecklistItemFunc(ctx, actorID, taskID, text)
}

func (m *mockBoardService) UpdateChecklistItem(ctx context.Context, actorID, taskID, itemID uuid.UUID, in board.UpdateChecklistItemInput) (*domain.ChecklistItem, error) {
	return m.updateChecklistItemFunc(ctx, actorID, taskID, itemID, in)
}

func (m *mockBoardService) DeleteChecklistItem(ctx context.Context, actorID, taskID, itemID uuid.UUID) error {
	return m.deleteChecklistItemFunc(ctx, actorID, taskID, itemID)
}

func (m *mockBoardService) AddTag(ctx context.Context, actorID, taskID uuid.UUID, name, color string) (*domain.TaskTag, error) {
	return m.addTagFunc(ctx, actorID, taskID, name, color)
}

func (m *mockBoardService) DeleteTag(ctx context.Context, actorID, taskID, tagID uuid.UUID) error {
	return m.deleteTagFunc(ctx, actorID, taskID, tagID)
}

func (m *mockBoardService) AddAttachment(ctx context.Context, actorID, taskID uuid.UUID, fileName, filePath, contentType string, fileSize int64) (*domain.TaskAttachment, error) {
	return m.addAttachmentFunc(ctx, actorID, taskID, fileName, filePath, contentType, fileSize)
}

func (m *mockBoardService) DeleteAttachment(ctx context.Context, actorID, taskID, attachmentID uuid.UUID) error {
	return m.deleteAttachmentFunc(ctx, actorID, taskID, attachmentID)
}

func (m *mockBoardService) AddMember(ctx context.Context, actorID, projectID, userID uuid.UUID, role domain.MemberRole) (*domain.ProjectMember, error) {
	return m.addMemberFunc(ctx, actorID, projectID, userID, role)
}

func (m *mockBoardService) ListMembers(ctx context.Context, actorID, projectID uuid.UUID) ([]*domain.ProjectMember, error) {
	return m.listMembersFunc(ctx, actorID, projectID)
}

func (m *mockBoardService) UpdateMemberRole(ctx context.Context, actorID, projectID, userID uuid.UUID, role domain.MemberRole) error {
	return m.updateMemberRoleFunc(ctx, actorID, projectID, userID, role)
}

func (m *mockBoardService) RemoveMember(ctx context.Context, actorID, projectID, userID uuid.UUID) error {
	return m.removeMemberFunc(ctx, actorID, projectID, userID)
}

func (m *mockBoardService) ListNotifications(ctx context.Context, actorID uuid.UUID) ([]*domain.Notification, error) {
	return m.listNotificationsFunc(ctx, actorID)
}

func (m *mockBoardService) CountUnreadNotifications(ctx context.Context, actorID uuid.UUID) (int, error) {
	return m.countUnreadNotificationsFunc(ctx, actorID)
}

func (m *mockBoardService) MarkNotificationRead(ctx context.Context, actorID, notificationID uuid.UUID) error {
	return m.markNotificationReadFunc(ctx, actorID, notificationID)
}

func (m *mockBoardService) MarkAllNotificationsRead(ctx context.Context, actorID uuid.UUID) error {
	return m.markAllNotificationsReadFunc(ctx, actorID)
}

func (m *mockBoardService) DeleteNotification(ctx context.Context, actorID, notificationID uuid.UUID) error {
	return m.deleteNotificationFunc(ctx, actorID, notificationID)
}

// ---------------------------------------------------------------------------
// Mock AuthService
// ---------------------------------------------------------------------------

type mockAuthService struct {
	registerFunc     func(ctx context.Context, email, password, displayName string) (*domain.User, error)
	loginFunc        func(ctx context.Context, email, password string) (string, string, error)
	refreshTokenFunc func(ctx context.Context, refreshToken string) (string, error)
}

func (m *mockAuthService) Register(ctx context.Context, email, password, displayName string) (*domain.User, error) {
	return m.registerFunc(ctx, email, password, displayName)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (accessToken, refreshToken string, err error) {
	return m.loginFunc(ctx, email, password)
}

func (m *mockAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	return m.refreshTokenFunc(ctx, refreshToken)
}
