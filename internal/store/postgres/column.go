package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devgrid/boardhub/internal/domain"
)

type ColumnRepo struct {
	pool *pgxpool.Pool
}

func NewColumnRepo(pool *pgxpool.Pool) *ColumnRepo {
	return &ColumnRepo{pool: pool}
}

func (r *ColumnRepo) Create(ctx context.Context, c *domain.Column) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO columns (id, project_id, name, color, position, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.ProjectID, c.Name, c.Color, c.Position, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("columnRepo.Create: %w", err)
	}

	return nil
}

func (r *ColumnRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Column, error) {
	var c domain.Column

	err := r.pool.QueryRow(ctx,
		`SELECT id, project_id, name, color, position, created_at FROM columns WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.ProjectID, &c.Name, &c.Color, &c.Position, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("columnRepo.GetByID: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("columnRepo.GetByID: %w", err)
	}

	return &c, nil
}

func (r *ColumnRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Column, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, project_id, name, color, position, created_at
		 FROM columns WHERE project_id = $1 ORDER BY position`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("columnRepo.ListByProject: %w", err)
	}
	defer rows.Close()

	var cols []*domain.Column
	for rows.Next() {
		var c domain.Column
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.Name, &c.Color, &c.Position, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("columnRepo.ListByProject: scan: %w", err)
		}
		cols = append(cols, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("columnRepo.ListByProject: rows: %w", err)
	}

	return cols, nil
}

func (r *ColumnRepo) MaxPosition(ctx context.Context, projectID uuid.UUID) (int, error) {
	var max int
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(position), -1) FROM columns WHERE project_id = $1`,
		projectID,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("columnRepo.MaxPosition: %w", err)
	}

	return max, nil
}

func (r *ColumnRepo) Update(ctx context.Context, c *domain.Column) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE columns SET name = $1, color = $2, position = $3 WHERE id = $4`,
		c.Name, c.Color, c.Position, c.ID,
	)
	if err != nil {
		return fmt.Errorf("columnRepo.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("columnRepo.Update: %w", domain.ErrNotFound)
	}

	return nil
}

func (r *ColumnRepo) SavePositions(ctx context.Context, cols []*domain.Column) error {
	if len(cols) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, c := range cols {
		batch.Queue(`UPDATE columns SET position = $1 WHERE id = $2`, c.Position, c.ID)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range cols {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("columnRepo.SavePositions: %w", err)
		}
	}

	return nil
}

func (r *ColumnRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM columns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("columnRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("columnRepo.Delete: %w", domain.ErrNotFound)
	}

	return nil
}
