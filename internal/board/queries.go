package board

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/devgrid/boardhub/internal/domain"
)

// BoardColumn is a column with its tasks in position order, the shape
// clients render a board from.
type BoardColumn struct {
	Column *domain.Column `json:"column"`
	Tasks  []*domain.Task `json:"tasks"`
}

// GetBoard returns the project's columns with their tasks, both in
// ascending position order.
func (s *Service) GetBoard(ctx context.Context, actorID, projectID uuid.UUID) ([]*BoardColumn, error) {
	if err := s.requireMember(ctx, projectID, actorID, nil); err != nil {
		return nil, fmt.Errorf("board.Service.GetBoard: %w", err)
	}

	columns, err := s.store.Columns().ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.GetBoard: %w", err)
	}
	tasks, err := s.store.Tasks().ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.GetBoard: %w", err)
	}

	byColumn := make(map[uuid.UUID][]*domain.Task, len(columns))
	for _, t := range tasks {
		byColumn[t.ColumnID] = append(byColumn[t.ColumnID], t)
	}

	board := make([]*BoardColumn, len(columns))
	for i, c := range columns {
		board[i] = &BoardColumn{Column: c, Tasks: byColumn[c.ID]}
	}

	return board, nil
}

// ListColumns returns the project's columns in position order.
func (s *Service) ListColumns(ctx context.Context, actorID, projectID uuid.UUID) ([]*domain.Column, error) {
	if err := s.requireMember(ctx, projectID, actorID, nil); err != nil {
		return nil, fmt.Errorf("board.Service.ListColumns: %w", err)
	}

	columns, err := s.store.Columns().ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.ListColumns: %w", err)
	}

	return columns, nil
}

// GetTask returns a single task visible to the actor.
func (s *Service) GetTask(ctx context.Context, actorID, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.store.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.GetTask: %w", err)
	}
	if err := s.requireMember(ctx, task.ProjectID, actorID, nil); err != nil {
		return nil, fmt.Errorf("board.Service.GetTask: %w", err)
	}

	return task, nil
}

// TaskDetail bundles a task with its comments, checklist, tags, and
// attachment metadata for the task drawer view.
type TaskDetail struct {
	Task        *domain.Task             `json:"task"`
	Comments    []*domain.TaskComment    `json:"comments"`
	Checklist   []*domain.ChecklistItem  `json:"checklist"`
	Tags        []*domain.TaskTag        `json:"tags"`
	Attachments []*domain.TaskAttachment `json:"attachments"`
}

// GetTaskDetail loads a task and all of its child collections.
func (s *Service) GetTaskDetail(ctx context.Context, actorID, taskID uuid.UUID) (*TaskDetail, error) {
	task, err := s.GetTask(ctx, actorID, taskID)
	if err != nil {
		return nil, err
	}

	comments, err := s.store.Comments().ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.GetTaskDetail: %w", err)
	}
	checklist, err := s.store.Checklists().ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.GetTaskDetail: %w", err)
	}
	tags, err := s.store.Tags().ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.GetTaskDetail: %w", err)
	}
	attachments, err := s.store.Attachments().ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.GetTaskDetail: %w", err)
	}

	return &TaskDetail{
		Task:        task,
		Comments:    comments,
		Checklist:   checklist,
		Tags:        tags,
		Attachments: attachments,
	}, nil
}
