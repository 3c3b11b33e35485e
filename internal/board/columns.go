package board

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/devgrid/boardhub/internal/domain"
	"github.com/devgrid/boardhub/internal/ordering"
)

const (
	defaultColumnColor = "#64748b"
	defaultTagColor    = "#64748b"
)

type CreateColumnInput struct {
	Name  string
	Color string
}

type UpdateColumnInput struct {
	Name  *string
	Color *string
}

// CreateColumn appends a column at the end of the project's board.
func (s *Service) CreateColumn(ctx context.Context, actorID, projectID uuid.UUID, in CreateColumnInput) (*domain.Column, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("board.Service.CreateColumn: name: %w", domain.ErrValidation)
	}

	if err := s.requireEditor(ctx, projectID, actorID); err != nil {
		return nil, fmt.Errorf("board.Service.CreateColumn: %w", err)
	}

	color := in.Color
	if color == "" {
		color = defaultColumnColor
	}

	unlock := s.locks.Lock(projectID)
	defer unlock()

	maxPos, err := s.store.Columns().MaxPosition(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.CreateColumn: %w", err)
	}

	column := &domain.Column{
		ID:        uuid.New(),
		ProjectID: projectID,
		Name:      in.Name,
		Color:     color,
		Position:  ordering.NextPosition(maxPos),
		CreatedAt: time.Now(),
	}

	if err := s.store.Columns().Create(ctx, column); err != nil {
		return nil, fmt.Errorf("board.Service.CreateColumn: %w", err)
	}

	s.publish(ctx, projectID, EventColumnCreated, column)

	return column, nil
}

// UpdateColumn renames or recolors a column. Position changes go through
// ReorderColumns, never through here.
func (s *Service) UpdateColumn(ctx context.Context, actorID, columnID uuid.UUID, in UpdateColumnInput) (*domain.Column, error) {
	column, err := s.store.Columns().GetByID(ctx, columnID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.UpdateColumn: %w", err)
	}

	if err := s.requireEditor(ctx, column.ProjectID, actorID); err != nil {
		return nil, fmt.Errorf("board.Service.UpdateColumn: %w", err)
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("board.Service.UpdateColumn: name: %w", domain.ErrValidation)
		}
		column.Name = *in.Name
	}
	if in.Color != nil {
		column.Color = *in.Color
	}

	if err := s.store.Columns().Update(ctx, column); err != nil {
		return nil, fmt.Errorf("board.Service.UpdateColumn: %w", err)
	}

	s.publish(ctx, column.ProjectID, EventColumnUpdated, column)

	return column, nil
}

// DeleteColumn removes a column and everything in it. Surviving columns
// keep their positions; gaps are permitted.
func (s *Service) DeleteColumn(ctx context.Context, actorID, columnID uuid.UUID) error {
	column, err := s.store.Columns().GetByID(ctx, columnID)
	if err != nil {
		return fmt.Errorf("board.Service.DeleteColumn: %w", err)
	}

	if err := s.requireEditor(ctx, column.ProjectID, actorID); err != nil {
		return fmt.Errorf("board.Service.DeleteColumn: %w", err)
	}

	if err := s.store.Columns().Delete(ctx, columnID); err != nil {
		return fmt.Errorf("board.Service.DeleteColumn: %w", err)
	}

	s.publish(ctx, column.ProjectID, EventColumnDeleted, ColumnDeletedPayload{ColumnID: columnID})

	return nil
}

// ReorderColumns assigns each listed column the position of its index in
// the supplied order. The list may be a subset of the project's columns;
// unlisted columns keep their stored positions. Ids that do not belong
// to the project are skipped rather than rejected.
func (s *Service) ReorderColumns(ctx context.Context, actorID, projectID uuid.UUID, orderedIDs []uuid.UUID) error {
	if len(orderedIDs) == 0 {
		return fmt.Errorf("board.Service.ReorderColumns: empty order: %w", domain.ErrValidation)
	}

	if err := s.requireEditor(ctx, projectID, actorID); err != nil {
		return fmt.Errorf("board.Service.ReorderColumns: %w", err)
	}

	unlock := s.locks.Lock(projectID)
	defer unlock()

	columns, err := s.store.Columns().ListByProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("board.Service.ReorderColumns: %w", err)
	}

	byID := make(map[uuid.UUID]*domain.Column, len(columns))
	for _, c := range columns {
		byID[c.ID] = c
	}

	order := ordering.SubsetOrder(orderedIDs)
	changed := make([]*domain.Column, 0, len(order))
	for id, pos := range order {
		c, ok := byID[id]
		if !ok {
			continue
		}
		c.Position = pos
		changed = append(changed, c)
	}

	if err := s.store.Columns().SavePositions(ctx, changed); err != nil {
		return fmt.Errorf("board.Service.ReorderColumns: %w", err)
	}

	s.publish(ctx, projectID, EventColumnsReordered, ColumnsReorderedPayload{OrderedColumnIDs: orderedIDs})

	return nil
}
