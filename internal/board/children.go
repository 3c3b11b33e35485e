package board

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/devgrid/boardhub/internal/domain"
	"github.com/devgrid/boardhub/internal/ordering"
)

// AddComment attaches a comment to a task and notifies the task's
// assignee that someone commented on their work.
func (s *Service) AddComment(ctx context.Context, actorID, taskID uuid.UUID, content string) (*domain.TaskComment, error) {
	if content == "" {
		return nil, fmt.Errorf("board.Service.AddComment: content: %w", domain.ErrValidation)
	}

	task, err := s.store.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.AddComment: %w", err)
	}

	// Commenting is open to every member, viewers included.
	if err := s.requireMember(ctx, task.ProjectID, actorID, nil); err != nil {
		return nil, fmt.Errorf("board.Service.AddComment: %w", err)
	}

	comment := &domain.TaskComment{
		ID:        uuid.New(),
		TaskID:    taskID,
		UserID:    actorID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	if err := s.store.Comments().Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("board.Service.AddComment: %w", err)
	}

	s.publish(ctx, task.ProjectID, EventCommentAdded, CommentAddedPayload{TaskID: taskID, Comment: comment})

	if task.AssigneeID != nil {
		actorName := "Someone"
		if actor, err := s.store.Users().GetByID(ctx, actorID); err == nil {
			actorName = actor.DisplayName
		}
		s.dispatcher.Notify(ctx, actorID, *task.AssigneeID,
			"New Comment",
			actorName+" commented on task: "+task.Title,
			domain.NotificationTypeInfo, task.ID, "Task")
	}

	return comment, nil
}

// DeleteComment removes a comment. Only its author may delete it.
func (s *Service) DeleteComment(ctx context.Context, actorID, taskID, commentID uuid.UUID) error {
	task, err := s.store.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("board.Service.DeleteComment: %w", err)
	}

	comment, err := s.store.Comments().GetByID(ctx, taskID, commentID)
	if err != nil {
		return fmt.Errorf("board.Service.DeleteComment: %w", err)
	}
	if comment.UserID != actorID {
		return fmt.Errorf("board.Service.DeleteComment: not the author: %w", domain.ErrForbidden)
	}

	if err := s.store.Comments().Delete(ctx, taskID, commentID); err != nil {
		return fmt.Errorf("board.Service.DeleteComment: %w", err)
	}

	s.publish(ctx, task.ProjectID, EventCommentDeleted, CommentDeletedPayload{TaskID: taskID, CommentID: commentID})

	return nil
}

// AddChecklistItem appends an item to the task's checklist.
func (s *Service) AddChecklistItem(ctx context.Context, actorID, taskID uuid.UUID, text string) (*domain.ChecklistItem, error) {
	if text == "" {
		return nil, fmt.Errorf("board.Service.AddChecklistItem: text: %w", domain.ErrValidation)
	}

	task, err := s.store.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.AddChecklistItem: %w", err)
	}

	if err := s.requireEditor(ctx, task.ProjectID, actorID); err != nil {
		return nil, fmt.Errorf("board.Service.AddChecklistItem: %w", err)
	}

	maxPos, err := s.store.Checklists().MaxPosition(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.AddChecklistItem: %w", err)
	}

	item := &domain.ChecklistItem{
		ID:        uuid.New(),
		TaskID:    taskID,
		Text:      text,
		Position:  ordering.NextPosition(maxPos),
		CreatedAt: time.Now(),
	}

	if err := s.store.Checklists().Create(ctx, item); err != nil {
		return nil, fmt.Errorf("board.Service.AddChecklistItem: %w", err)
	}

	s.publish(ctx, task.ProjectID, EventChecklistItemAdded, ChecklistItemPayload{TaskID: taskID, Item: item})

	return item, nil
}

type UpdateChecklistItemInput struct {
	Text        *string
	IsCompleted *bool
}

// UpdateChecklistItem edits an item's text or toggles its completion.
func (s *Service) UpdateChecklistItem(ctx context.Context, actorID, taskID, itemID uuid.UUID, in UpdateChecklistItemInput) (*domain.ChecklistItem, error) {
	task, err := s.store.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.UpdateChecklistItem: %w", err)
	}

	if err := s.requireEditor(ctx, task.ProjectID, actorID); err != nil {
		return nil, fmt.Errorf("board.Service.UpdateChecklistItem: %w", err)
	}

	item, err := s.store.Checklists().GetByID(ctx, taskID, itemID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.UpdateChecklistItem: %w", err)
	}

	if in.Text != nil {
		if *in.Text == "" {
			return nil, fmt.Errorf("board.Service.UpdateChecklistItem: text: %w", domain.ErrValidation)
		}
		item.Text = *in.Text
	}
	if in.IsCompleted != nil {
		item.IsCompleted = *in.IsCompleted
	}

	if err := s.store.Checklists().Update(ctx, item); err != nil {
		return nil, fmt.Errorf("board.Service.UpdateChecklistItem: %w", err)
	}

	s.publish(ctx, task.ProjectID, EventChecklistItemUpdated, ChecklistItemPayload{TaskID: taskID, Item: item})

	return item, nil
}

// DeleteChecklistItem removes an item without renumbering the rest.
func (s *Service) DeleteChecklistItem(ctx context.Context, actorID, taskID, itemID uuid.UUID) error {
	task, err := s.store.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("board.Service.DeleteChecklistItem: %w", err)
	}

	if err := s.requireEditor(ctx, task.ProjectID, actorID); err != nil {
		return fmt.Errorf("board.Service.DeleteChecklistItem: %w", err)
	}

	if err := s.store.Checklists().Delete(ctx, taskID, itemID); err != nil {
		return fmt.Errorf("board.Service.DeleteChecklistItem: %w", err)
	}

	s.publish(ctx, task.ProjectID, EventChecklistItemDeleted, ChecklistItemDeletedPayload{TaskID: taskID, ItemID: itemID})

	return nil
}

// AddTag labels a task.
func (s *Service) AddTag(ctx context.Context, actorID, taskID uuid.UUID, name, color string) (*domain.TaskTag, error) {
	if name == "" {
		return nil, fmt.Errorf("board.Service.AddTag: name: %w", domain.ErrValidation)
	}

	task, err := s.store.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.AddTag: %w", err)
	}

	if err := s.requireEditor(ctx, task.ProjectID, actorID); err != nil {
		return nil, fmt.Errorf("board.Service.AddTag: %w", err)
	}

	if color == "" {
		color = defaultTagColor
	}

	tag := &domain.TaskTag{
		ID:     uuid.New(),
		TaskID: taskID,
		Name:   name,
		Color:  color,
	}

	if err := s.store.Tags().Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("board.Service.AddTag: %w", err)
	}

	s.publish(ctx, task.ProjectID, EventTagAdded, TagAddedPayload{TaskID: taskID, Tag: tag})

	return tag, nil
}

// DeleteTag removes a label from a task.
func (s *Service) DeleteTag(ctx context.Context, actorID, taskID, tagID uuid.UUID) error {
	task, err := s.store.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("board.Service.DeleteTag: %w", err)
	}

	if err := s.requireEditor(ctx, task.ProjectID, actorID); err != nil {
		return fmt.Errorf("board.Service.DeleteTag: %w", err)
	}

	if err := s.store.Tags().Delete(ctx, taskID, tagID); err != nil {
		return fmt.Errorf("board.Service.DeleteTag: %w", err)
	}

	s.publish(ctx, task.ProjectID, EventTagDeleted, TagDeletedPayload{TaskID: taskID, TagID: tagID})

	return nil
}

// AddAttachment records file metadata against a task. The bytes
// themselves live wherever the upload handler put them; only the path
// travels through here.
func (s *Service) AddAttachment(ctx context.Context, actorID, taskID uuid.UUID, fileName, filePath, contentType string, fileSize int64) (*domain.TaskAttachment, error) {
	if fileName == "" {
		return nil, fmt.Errorf("board.Service.AddAttachment: file name: %w", domain.ErrValidation)
	}

	task, err := s.store.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.AddAttachment: %w", err)
	}

	if err := s.requireEditor(ctx, task.ProjectID, actorID); err != nil {
		return nil, fmt.Errorf("board.Service.AddAttachment: %w", err)
	}

	att := &domain.TaskAttachment{
		ID:           uuid.New(),
		TaskID:       taskID,
		FileName:     fileName,
		FilePath:     filePath,
		ContentType:  contentType,
		FileSize:     fileSize,
		UploadedByID: actorID,
		UploadedAt:   time.Now(),
	}

	if err := s.store.Attachments().Create(ctx, att); err != nil {
		return nil, fmt.Errorf("board.Service.AddAttachment: %w", err)
	}

	s.publish(ctx, task.ProjectID, EventAttachmentAdded, AttachmentAddedPayload{TaskID: taskID, Attachment: att})

	return att, nil
}

// DeleteAttachment removes the attachment record.
func (s *Service) DeleteAttachment(ctx context.Context, actorID, taskID, attachmentID uuid.UUID) error {
	task, err := s.store.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("board.Service.DeleteAttachment: %w", err)
	}

	if err := s.requireEditor(ctx, task.ProjectID, actorID); err != nil {
		return fmt.Errorf("board.Service.DeleteAttachment: %w", err)
	}

	if err := s.store.Attachments().Delete(ctx, taskID, attachmentID); err != nil {
		return fmt.Errorf("board.Service.DeleteAttachment: %w", err)
	}

	s.publish(ctx, task.ProjectID, EventAttachmentDeleted, AttachmentDeletedPayload{TaskID: taskID, AttachmentID: attachmentID})

	return nil
}
