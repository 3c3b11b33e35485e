package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaskAttachment records attachment metadata. The file bytes themselves
// live in external storage; only the reference is kept here.
type TaskAttachment struct {
	ID           uuid.UUID `json:"id"`
	TaskID       uuid.UUID `json:"task_id"`
	FileName     string    `json:"file_name"`
	FilePath     string    `json:"file_path"`
	FileSize     int64     `json:"file_size"`
	ContentType  string    `json:"content_type"`
	UploadedByID uuid.UUID `json:"uploaded_by_id"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

type AttachmentRepository interface {
	Create(ctx context.Context, a *TaskAttachment) error
	GetByID(ctx context.Context, taskID, id uuid.UUID) (*TaskAttachment, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*TaskAttachment, error)
	Delete(ctx context.Context, taskID, id uuid.UUID) error
}
