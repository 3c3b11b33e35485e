package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/devgrid/boardhub/internal/board"
	"github.com/devgrid/boardhub/internal/domain"
)

type AddCommentInput struct {
	TaskID uuid.UUID `path:"taskID" doc:"Task ID"`
	Body   struct {
		Content string `json:"content" minLength:"1" maxLength:"10000" doc:"Comment text"`
	}
}

type AddCommentOutput struct {
	Body *domain.TaskComment
}

type DeleteCommentInput struct {
	TaskID    uuid.UUID `path:"taskID" doc:"Task ID"`
	CommentID uuid.UUID `path:"commentID" doc:"Comment ID"`
}

type AddChecklistItemInput struct {
	TaskID uuid.UUID `path:"taskID" doc:"Task ID"`
	Body   struct {
		Text string `json:"text" minLength:"1" maxLength:"1000" doc:"Checklist item text"`
	}
}

type AddChecklistItemOutput struct {
	Body *domain.ChecklistItem
}

type UpdateChecklistItemInput struct {
	TaskID uuid.UUID `path:"taskID" doc:"Task ID"`
	ItemID uuid.UUID `path:"itemID" doc:"Checklist item ID"`
	Body   struct {
		Text        *string `json:"text,omitempty" maxLength:"1000" doc:"Checklist item text"`
		IsCompleted *bool   `json:"is_completed,omitempty" doc:"Completion state"`
	}
}

type UpdateChecklistItemOutput struct {
	Body *domain.ChecklistItem
}

type DeleteChecklistItemInput struct {
	TaskID uuid.UUID `path:"taskID" doc:"Task ID"`
	ItemID uuid.UUID `path:"itemID" doc:"Checklist item ID"`
}

type AddTagInput struct {
	TaskID uuid.UUID `path:"taskID" doc:"Task ID"`
	Body   struct {
		Name  string `json:"name" minLength:"1" maxLength:"100" doc:"Tag name"`
		Color string `json:"color,omitempty" maxLength:"32" doc:"Display color, defaults when empty"`
	}
}

type AddTagOutput struct {
	Body *domain.TaskTag
}

type DeleteTagInput struct {
	TaskID uuid.UUID `path:"taskID" doc:"Task ID"`
	TagID  uuid.UUID `path:"tagID" doc:"Tag ID"`
}

type AddAttachmentInput struct {
	TaskID uuid.UUID `path:"taskID" doc:"Task ID"`
	Body   struct {
		FileName    string `json:"file_name" minLength:"1" maxLength:"500" doc:"Original file name"`
		FilePath    string `json:"file_path" minLength:"1" maxLength:"1000" doc:"Storage path or URL"`
		ContentType string `json:"content_type,omitempty" maxLength:"255" doc:"MIME type"`
		FileSize    int64  `json:"file_size,omitempty" minimum:"0" doc:"File size in bytes"`
	}
}

type AddAttachmentOutput struct {
	Body *domain.TaskAttachment
}

type DeleteAttachmentInput struct {
	TaskID       uuid.UUID `path:"taskID" doc:"Task ID"`
	AttachmentID uuid.UUID `path:"attachmentID" doc:"Attachment ID"`
}

func RegisterTaskChildRoutes(api huma.API, svc BoardService) {
	huma.Register(api, huma.Operation{
		OperationID: "add-comment",
		Method:      http.MethodPost,
		Path:        "/tasks/{taskID}/comments",
		Summary:     "Comment on a task",
		Tags:        []string{"Comments"},
	}, func(ctx context.Context, input *AddCommentInput) (*AddCommentOutput, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		comment, err := svc.AddComment(ctx, actor, input.TaskID, input.Body.Content)
		if err != nil {
			return nil, serviceError(err, "task")
		}

		return &AddCommentOutput{Body: comment}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-comment",
		Method:      http.MethodDelete,
		Path:        "/tasks/{taskID}/comments/{commentID}",
		Summary:     "Delete own comment",
		Tags:        []string{"Comments"},
	}, func(ctx context.Context, input *DeleteCommentInput) (*struct{}, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		if err := svc.DeleteComment(ctx, actor, input.TaskID, input.CommentID); err != nil {
			return nil, serviceError(err, "comment")
		}

		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "add-checklist-item",
		Method:      http.MethodPost,
		Path:        "/tasks/{taskID}/checklist",
		Summary:     "Append a checklist item",
		Tags:        []string{"Checklist"},
	}, func(ctx context.Context, input *AddChecklistItemInput) (*AddChecklistItemOutput, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		item, err := svc.AddChecklistItem(ctx, actor, input.TaskID, input.Body.Text)
		if err != nil {
			return nil, serviceError(err, "task")
		}

		return &AddChecklistItemOutput{Body: item}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-checklist-item",
		Method:      http.MethodPut,
		Path:        "/tasks/{taskID}/checklist/{itemID}",
		Summary:     "Edit or toggle a checklist item",
		Tags:        []string{"Checklist"},
	}, func(ctx context.Context, input *UpdateChecklistItemInput) (*UpdateChecklistItemOutput, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		item, err := svc.UpdateChecklistItem(ctx, actor, input.TaskID, input.ItemID, board.UpdateChecklistItemInput{
			Text:        input.Body.Text,
			IsCompleted: input.Body.IsCompleted,
		})
		if err != nil {
			return nil, serviceError(err, "checklist item")
		}

		return &UpdateChecklistItemOutput{Body: item}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-checklist-item",
		Method:      http.MethodDelete,
		Path:        "/tasks/{taskID}/checklist/{itemID}",
		Summary:     "Delete a checklist item",
		Tags:        []string{"Checklist"},
	}, func(ctx context.Context, input *DeleteChecklistItemInput) (*struct{}, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		if err := svc.DeleteChecklistItem(ctx, actor, input.TaskID, input.ItemID); err != nil {
			return nil, serviceError(err, "checklist item")
		}

		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "add-tag",
		Method:      http.MethodPost,
		Path:        "/tasks/{taskID}/tags",
		Summary:     "Tag a task",
		Tags:        []string{"Tags"},
	}, func(ctx context.Context, input *AddTagInput) (*AddTagOutput, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		tag, err := svc.AddTag(ctx, actor, input.TaskID, input.Body.Name, input.Body.Color)
		if err != nil {
			return nil, serviceError(err, "task")
		}

		return &AddTagOutput{Body: tag}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-tag",
		Method:      http.MethodDelete,
		Path:        "/tasks/{taskID}/tags/{tagID}",
		Summary:     "Remove a tag from a task",
		Tags:        []string{"Tags"},
	}, func(ctx context.Context, input *DeleteTagInput) (*struct{}, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		if err := svc.DeleteTag(ctx, actor, input.TaskID, input.TagID); err != nil {
			return nil, serviceError(err, "tag")
		}

		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "add-attachment",
		Method:      http.MethodPost,
		Path:        "/tasks/{taskID}/attachments",
		Summary:     "Record attachment metadata on a task",
		Tags:        []string{"Attachments"},
	}, func(ctx context.Context, input *AddAttachmentInput) (*AddAttachmentOutput, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		attachment, err := svc.AddAttachment(ctx, actor, input.TaskID,
			input.Body.FileName, input.Body.FilePath, input.Body.ContentType, input.Body.FileSize)
		if err != nil {
			return nil, serviceError(err, "task")
		}

		return &AddAttachmentOutput{Body: attachment}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-attachment",
		Method:      http.MethodDelete,
		Path:        "/tasks/{taskID}/attachments/{attachmentID}",
		Summary:     "Delete attachment metadata",
		Tags:        []string{"Attachments"},
	}, func(ctx context.Context, input *DeleteAttachmentInput) (*struct{}, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		if err := svc.DeleteAttachment(ctx, actor, input.TaskID, input.AttachmentID); err != nil {
			return nil, serviceError(err, "attachment")
		}

		return nil, nil
	})
}
