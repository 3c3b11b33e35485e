package board

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/devgrid/boardhub/internal/domain"
	"github.com/devgrid/boardhub/internal/ordering"
)

type CreateTaskInput struct {
	ColumnID    uuid.UUID
	Title       string
	Description string
	AssigneeID  *uuid.UUID
	Priority    int
	DueDate     *time.Time
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	AssigneeID  *uuid.UUID
	Priority    *int
	DueDate     *time.Time
}

// CreateTask appends a task at the end of the target column and assigns
// the project's next task number.
func (s *Service) CreateTask(ctx context.Context, actorID, projectID uuid.UUID, in CreateTaskInput) (*domain.Task, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("board.Service.CreateTask: title: %w", domain.ErrValidation)
	}

	if err := s.requireEditor(ctx, projectID, actorID); err != nil {
		return nil, fmt.Errorf("board.Service.CreateTask: %w", err)
	}

	column, err := s.store.Columns().GetByID(ctx, in.ColumnID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.CreateTask: column: %w", err)
	}
	if column.ProjectID != projectID {
		// A column claimed under the wrong project is not silently
		// corrected; the caller's view of the board is stale.
		return nil, fmt.Errorf("board.Service.CreateTask: column project mismatch: %w", domain.ErrNotFound)
	}

	unlock := s.locks.Lock(projectID)
	defer unlock()

	maxPos, err := s.store.Tasks().MaxPosition(ctx, in.ColumnID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.CreateTask: %w", err)
	}

	maxNum, err := s.store.Tasks().MaxTaskNumber(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.CreateTask: %w", err)
	}

	now := time.Now()
	task := &domain.Task{
		ID:          uuid.New(),
		ProjectID:   projectID,
		ColumnID:    in.ColumnID,
		Title:       in.Title,
		Description: in.Description,
		AssigneeID:  in.AssigneeID,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		Position:    ordering.NextPosition(maxPos),
		TaskNumber:  maxNum + 1,
		CreatedByID: actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Tasks().Create(ctx, task); err != nil {
		return nil, fmt.Errorf("board.Service.CreateTask: %w", err)
	}

	s.publish(ctx, projectID, EventTaskCreated, task)

	if task.AssigneeID != nil {
		s.dispatcher.Notify(ctx, actorID, *task.AssigneeID,
			"New Task Assignment",
			"You have been assigned to task: "+task.Title,
			domain.NotificationTypeInfo, task.ID, "Task")
	}

	return task, nil
}

// UpdateTask applies a field-level update. Assigning the task to a new
// user (other than the actor) notifies that user.
func (s *Service) UpdateTask(ctx context.Context, actorID, taskID uuid.UUID, in UpdateTaskInput) (*domain.Task, error) {
	task, err := s.store.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.UpdateTask: %w", err)
	}

	if err := s.requireEditor(ctx, task.ProjectID, actorID); err != nil {
		return nil, fmt.Errorf("board.Service.UpdateTask: %w", err)
	}

	oldAssignee := task.AssigneeID

	if in.Title != nil {
		if *in.Title == "" {
			return nil, fmt.Errorf("board.Service.UpdateTask: title: %w", domain.ErrValidation)
		}
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.AssigneeID != nil {
		task.AssigneeID = in.AssigneeID
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	task.UpdatedAt = time.Now()

	if err := s.store.Tasks().Update(ctx, task); err != nil {
		return nil, fmt.Errorf("board.Service.UpdateTask: %w", err)
	}

	s.publish(ctx, task.ProjectID, EventTaskUpdated, task)

	if task.AssigneeID != nil && (oldAssignee == nil || *oldAssignee != *task.AssigneeID) {
		s.dispatcher.Notify(ctx, actorID, *task.AssigneeID,
			"Task Assignment",
			"You have been assigned to task: "+task.Title,
			domain.NotificationTypeInfo, task.ID, "Task")
	}

	return task, nil
}

// MoveTask places a task at the requested position in the target column
// and renumbers every affected sibling to a dense 0..N-1 range. The
// requested position is clamped, never rejected: clients send raw
// drag-and-drop indices. Moving into a column id that does not exist
// leaves the task as the sole member of that column context at position
// 0 rather than failing.
func (s *Service) MoveTask(ctx context.Context, actorID, taskID, newColumnID uuid.UUID, newPosition int) error {
	task, err := s.store.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("board.Service.MoveTask: %w", err)
	}

	if err := s.requireEditor(ctx, task.ProjectID, actorID); err != nil {
		return fmt.Errorf("board.Service.MoveTask: %w", err)
	}

	if newColumnID != task.ColumnID {
		target, err := s.store.Columns().GetByID(ctx, newColumnID)
		if err == nil && target.ProjectID != task.ProjectID {
			return fmt.Errorf("board.Service.MoveTask: target column project mismatch: %w", domain.ErrNotFound)
		}
	}

	unlock := s.locks.Lock(task.ProjectID)
	defer unlock()

	// The pre-lock snapshot can go stale while waiting for the lock: a
	// concurrent move may have relocated the task. Re-read so the branch
	// below sees the task's current column.
	task, err = s.store.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("board.Service.MoveTask: %w", err)
	}

	var moved *domain.Task

	if task.ColumnID == newColumnID {
		siblings, err := s.store.Tasks().ListByColumn(ctx, task.ColumnID)
		if err != nil {
			return fmt.Errorf("board.Service.MoveTask: %w", err)
		}

		others, byID := splitSiblings(siblings, task)
		plan := ordering.PlanSameColumn(task.ColumnID, others, task.ID, newPosition)
		changed := applyPlacements(plan, byID)

		if err := s.store.Tasks().SavePositions(ctx, changed); err != nil {
			return fmt.Errorf("board.Service.MoveTask: %w", err)
		}
		moved = byID[task.ID]
	} else {
		oldSiblings, err := s.store.Tasks().ListByColumn(ctx, task.ColumnID)
		if err != nil {
			return fmt.Errorf("board.Service.MoveTask: %w", err)
		}
		newSiblings, err := s.store.Tasks().ListByColumn(ctx, newColumnID)
		if err != nil {
			return fmt.Errorf("board.Service.MoveTask: %w", err)
		}

		oldOthers, byID := splitSiblings(oldSiblings, task)
		newIDs := make([]uuid.UUID, len(newSiblings))
		for i, t := range newSiblings {
			newIDs[i] = t.ID
			byID[t.ID] = t
		}

		oldPlan, newPlan := ordering.PlanCrossColumn(task.ColumnID, newColumnID, oldOthers, newIDs, task.ID, newPosition)

		changed := applyPlacements(oldPlan, byID)
		changed = append(changed, applyPlacements(newPlan, byID)...)

		if err := s.store.Tasks().SavePositions(ctx, changed); err != nil {
			return fmt.Errorf("board.Service.MoveTask: %w", err)
		}
		moved = byID[task.ID]
	}

	s.publish(ctx, task.ProjectID, EventTaskMoved, TaskMovedPayload{
		TaskID:      task.ID,
		NewColumnID: newColumnID,
		NewPosition: moved.Position,
	})

	return nil
}

// DeleteTask removes the task without renumbering its surviving
// siblings; position gaps after deletion are permitted.
func (s *Service) DeleteTask(ctx context.Context, actorID, taskID uuid.UUID) error {
	task, err := s.store.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("board.Service.DeleteTask: %w", err)
	}

	if err := s.requireEditor(ctx, task.ProjectID, actorID); err != nil {
		return fmt.Errorf("board.Service.DeleteTask: %w", err)
	}

	if err := s.store.Tasks().Delete(ctx, taskID); err != nil {
		return fmt.Errorf("board.Service.DeleteTask: %w", err)
	}

	s.publish(ctx, task.ProjectID, EventTaskDeleted, TaskDeletedPayload{TaskID: taskID})

	return nil
}

// splitSiblings separates the moved task from its column siblings. The
// returned id list preserves the siblings' ascending position order; the
// map indexes every task (moved included) for plan application.
func splitSiblings(siblings []*domain.Task, moved *domain.Task) ([]uuid.UUID, map[uuid.UUID]*domain.Task) {
	others := make([]uuid.UUID, 0, len(siblings))
	byID := make(map[uuid.UUID]*domain.Task, len(siblings)+1)
	byID[moved.ID] = moved
	for _, t := range siblings {
		if t.ID == moved.ID {
			byID[moved.ID] = t
			continue
		}
		others = append(others, t.ID)
		byID[t.ID] = t
	}
	return others, byID
}

// applyPlacements writes a plan's column/position assignments onto the
// loaded task records and returns them for persistence.
func applyPlacements(plan []ordering.Placement, byID map[uuid.UUID]*domain.Task) []*domain.Task {
	changed := make([]*domain.Task, 0, len(plan))
	for _, p := range plan {
		t := byID[p.ID]
		t.ColumnID = p.ColumnID
		t.Position = p.Position
		changed = append(changed, t)
	}
	return changed
}
