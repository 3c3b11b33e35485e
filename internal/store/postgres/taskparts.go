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

// Repositories for the appendable children of a task: comments, checklist
// items, tags, and attachment metadata.

type CommentRepo struct {
	pool *pgxpool.Pool
}

func NewCommentRepo(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{pool: pool}
}

func (r *CommentRepo) Create(ctx context.Context, c *domain.TaskComment) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO task_comments (id, task_id, user_id, content, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.TaskID, c.UserID, c.Content, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("commentRepo.Create: %w", err)
	}

	return nil
}

func (r *CommentRepo) GetByID(ctx context.Context, taskID, id uuid.UUID) (*domain.TaskComment, error) {
	var c domain.TaskComment

	err := r.pool.QueryRow(ctx,
		`SELECT id, task_id, user_id, content, created_at
		 FROM task_comments WHERE task_id = $1 AND id = $2`,
		taskID, id,
	).Scan(&c.ID, &c.TaskID, &c.UserID, &c.Content, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("commentRepo.GetByID: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("commentRepo.GetByID: %w", err)
	}

	return &c, nil
}

func (r *CommentRepo) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskComment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, task_id, user_id, content, created_at
		 FROM task_comments WHERE task_id = $1 ORDER BY created_at DESC`,
		taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("commentRepo.ListByTask: %w", err)
	}
	defer rows.Close()

	var comments []*domain.TaskComment
	for rows.Next() {
		var c domain.TaskComment
		if err := rows.Scan(&c.ID, &c.TaskID, &c.UserID, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("commentRepo.ListByTask: scan: %w", err)
		}
		comments = append(comments, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("commentRepo.ListByTask: rows: %w", err)
	}

	return comments, nil
}

func (r *CommentRepo) Delete(ctx context.Context, taskID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM task_comments WHERE task_id = $1 AND id = $2`, taskID, id,
	)
	if err != nil {
		return fmt.Errorf("commentRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("commentRepo.Delete: %w", domain.ErrNotFound)
	}

	return nil
}

type ChecklistRepo struct {
	pool *pgxpool.Pool
}

func NewChecklistRepo(pool *pgxpool.Pool) *ChecklistRepo {
	return &ChecklistRepo{pool: pool}
}

func (r *ChecklistRepo) Create(ctx context.Context, item *domain.ChecklistItem) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO checklist_items (id, task_id, text, is_completed, position, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.TaskID, item.Text, item.IsCompleted, item.Position, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("checklistRepo.Create: %w", err)
	}

	return nil
}

func (r *ChecklistRepo) GetByID(ctx context.Context, taskID, id uuid.UUID) (*domain.ChecklistItem, error) {
	var item domain.ChecklistItem

	err := r.pool.QueryRow(ctx,
		`SELECT id, task_id, text, is_completed, position, created_at
		 FROM checklist_items WHERE task_id = $1 AND id = $2`,
		taskID, id,
	).Scan(&item.ID, &item.TaskID, &item.Text, &item.IsCompleted, &item.Position, &item.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("checklistRepo.GetByID: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("checklistRepo.GetByID: %w", err)
	}

	return &item, nil
}

func (r *ChecklistRepo) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.ChecklistItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, task_id, text, is_completed, position, created_at
		 FROM checklist_items WHERE task_id = $1 ORDER BY position`,
		taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("checklistRepo.ListByTask: %w", err)
	}
	defer rows.Close()

	var items []*domain.ChecklistItem
	for rows.Next() {
		var item domain.ChecklistItem
		if err := rows.Scan(&item.ID, &item.TaskID, &item.Text, &item.IsCompleted, &item.Position, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("checklistRepo.ListByTask: scan: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("checklistRepo.ListByTask: rows: %w", err)
	}

	return items, nil
}

func (r *ChecklistRepo) MaxPosition(ctx context.Context, taskID uuid.UUID) (int, error) {
	var max int
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(position), -1) FROM checklist_items WHERE task_id = $1`,
		taskID,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("checklistRepo.MaxPosition: %w", err)
	}

	return max, nil
}

func (r *ChecklistRepo) Update(ctx context.Context, item *domain.ChecklistItem) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE checklist_items SET text = $1, is_completed = $2, position = $3
		 WHERE task_id = $4 AND id = $5`,
		item.Text, item.IsCompleted, item.Position, item.TaskID, item.ID,
	)
	if err != nil {
		return fmt.Errorf("checklistRepo.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("checklistRepo.Update: %w", domain.ErrNotFound)
	}

	return nil
}

func (r *ChecklistRepo) Delete(ctx context.Context, taskID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM checklist_items WHERE task_id = $1 AND id = $2`, taskID, id,
	)
	if err != nil {
		return fmt.Errorf("checklistRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("checklistRepo.Delete: %w", domain.ErrNotFound)
	}

	return nil
}

type TagRepo struct {
	pool *pgxpool.Pool
}

func NewTagRepo(pool *pgxpool.Pool) *TagRepo {
	return &TagRepo{pool: pool}
}

func (r *TagRepo) Create(ctx context.Context, t *domain.TaskTag) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO task_tags (id, task_id, name, color) VALUES ($1, $2, $3, $4)`,
		t.ID, t.TaskID, t.Name, t.Color,
	)
	if err != nil {
		return fmt.Errorf("tagRepo.Create: %w", err)
	}

	return nil
}

func (r *TagRepo) GetByID(ctx context.Context, taskID, id uuid.UUID) (*domain.TaskTag, error) {
	var t domain.TaskTag

	err := r.pool.QueryRow(ctx,
		`SELECT id, task_id, name, color FROM task_tags WHERE task_id = $1 AND id = $2`,
		taskID, id,
	).Scan(&t.ID, &t.TaskID, &t.Name, &t.Color)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("tagRepo.GetByID: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("tagRepo.GetByID: %w", err)
	}

	return &t, nil
}

func (r *TagRepo) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskTag, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, task_id, name, color FROM task_tags WHERE task_id = $1 ORDER BY name`,
		taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("tagRepo.ListByTask: %w", err)
	}
	defer rows.Close()

	var tags []*domain.TaskTag
	for rows.Next() {
		var t domain.TaskTag
		if err := rows.Scan(&t.ID, &t.TaskID, &t.Name, &t.Color); err != nil {
			return nil, fmt.Errorf("tagRepo.ListByTask: scan: %w", err)
		}
		tags = append(tags, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tagRepo.ListByTask: rows: %w", err)
	}

	return tags, nil
}

func (r *TagRepo) Delete(ctx context.Context, taskID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM task_tags WHERE task_id = $1 AND id = $2`, taskID, id,
	)
	if err != nil {
		return fmt.Errorf("tagRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tagRepo.Delete: %w", domain.ErrNotFound)
	}

	return nil
}

type AttachmentRepo struct {
	pool *pgxpool.Pool
}

func NewAttachmentRepo(pool *pgxpool.Pool) *AttachmentRepo {
	return &AttachmentRepo{pool: pool}
}

func (r *AttachmentRepo) Create(ctx context.Context, a *domain.TaskAttachment) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO task_attachments (id, task_id, file_name, file_path, file_size, content_type, uploaded_by_id, uploaded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.TaskID, a.FileName, a.FilePath, a.FileSize, a.ContentType, a.UploadedByID, a.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("attachmentRepo.Create: %w", err)
	}

	return nil
}

func (r *AttachmentRepo) GetByID(ctx context.Context, taskID, id uuid.UUID) (*domain.TaskAttachment, error) {
	var a domain.TaskAttachment

	err := r.pool.QueryRow(ctx,
		`SELECT id, task_id, file_name, file_path, file_size, content_type, uploaded_by_id, uploaded_at
		 FROM task_attachments WHERE task_id = $1 AND id = $2`,
		taskID, id,
	).Scan(&a.ID, &a.TaskID, &a.FileName, &a.FilePath, &a.FileSize, &a.ContentType, &a.UploadedByID, &a.UploadedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("attachmentRepo.GetByID: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("attachmentRepo.GetByID: %w", err)
	}

	return &a, nil
}

func (r *AttachmentRepo) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.TaskAttachment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, task_id, file_name, file_path, file_size, content_type, uploaded_by_id, uploaded_at
		 FROM task_attachments WHERE task_id = $1 ORDER BY uploaded_at DESC`,
		taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("attachmentRepo.ListByTask: %w", err)
	}
	defer rows.Close()

	var attachments []*domain.TaskAttachment
	for rows.Next() {
		var a domain.TaskAttachment
		if err := rows.Scan(&a.ID, &a.TaskID, &a.FileName, &a.FilePath, &a.FileSize, &a.ContentType, &a.UploadedByID, &a.UploadedAt); err != nil {
			return nil, fmt.Errorf("attachmentRepo.ListByTask: scan: %w", err)
		}
		attachments = append(attachments, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("attachmentRepo.ListByTask: rows: %w", err)
	}

	return attachments, nil
}

func (r *AttachmentRepo) Delete(ctx context.Context, taskID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM task_attachments WHERE task_id = $1 AND id = $2`, taskID, id,
	)
	if err != nil {
		return fmt.Errorf("attachmentRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("attachmentRepo.Delete: %w", domain.ErrNotFound)
	}

	return nil
}
