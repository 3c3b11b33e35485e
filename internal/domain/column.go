package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Column is an ordered lane of tasks inside a project. Position is the
// column's rank among its sibling columns of the same project.
type Column struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

type ColumnRepository interface {
	Create(ctx context.Context, c *Column) error
	GetByID(ctx context.Context, id uuid.UUID) (*Column, error)
	// ListByProject returns all columns of a project ordered ascending by position.
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*Column, error)
	// MaxPosition returns the highest position among a project's columns,
	// or -1 when the project has no columns.
	MaxPosition(ctx context.Context, projectID uuid.UUID) (int, error)
	Update(ctx context.Context, c *Column) error
	// SavePositions persists the Position field of every given column.
	SavePositions(ctx context.Context, cols []*Column) error
	Delete(ctx context.Context, id uuid.UUID) error
}
