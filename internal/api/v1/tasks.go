package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/devgrid/boardhub/internal/board"
	"github.com/devgrid/boardhub/internal/domain"
)

type CreateTaskInput struct {
	ProjectID uuid.UUID `path:"projectID" doc:"Project ID"`
	Body      struct {
		ColumnID    uuid.UUID  `json:"column_id" doc:"Column the task starts in"`
		Title       string     `json:"title" minLength:"1" maxLength:"500" doc:"Task title"`
		Description string     `json:"description,omitempty" maxLength:"10000" doc:"Task description"`
		AssigneeID  *uuid.UUID `json:"assignee_id,omitempty" doc:"Assigned user"`
		Priority    int        `json:"priority,omitempty" minimum:"0" maximum:"3" doc:"Priority, 0 lowest"`
		DueDate     *time.Time `json:"due_date,omitempty" doc:"Due date"`
	}
}

type CreateTaskOutput struct {
	Body *domain.Task
}

type GetTaskInput struct {
	ID uuid.UUID `path:"id" doc:"Task ID"`
}

type GetTaskOutput struct {
	Body *domain.Task
}

type GetTaskDetailOutput struct {
	Body *board.TaskDetail
}

type UpdateTaskInput struct {
	ID   uuid.UUID `path:"id" doc:"Task ID"`
	Body struct {
		Title       *string    `json:"title,omitempty" maxLength:"500" doc:"Task title"`
		Description *string    `json:"description,omitempty" maxLength:"10000" doc:"Task description"`
		AssigneeID  *uuid.UUID `json:"assignee_id,omitempty" doc:"Assigned user"`
		Priority    *int       `json:"priority,omitempty" minimum:"0" maximum:"3" doc:"Priority, 0 lowest"`
		DueDate     *time.Time `json:"due_date,omitempty" doc:"Due date"`
	}
}

type UpdateTaskOutput struct {
	Body *domain.Task
}

type MoveTaskInput struct {
	ID   uuid.UUID `path:"id" doc:"Task ID"`
	Body struct {
		NewColumnID uuid.UUID `json:"new_column_id" doc:"Target column"`
		NewPosition int       `json:"new_position" doc:"Requested index in the target column, clamped to range"`
	}
}

type DeleteTaskInput struct {
	ID uuid.UUID `path:"id" doc:"Task ID"`
}

func RegisterTaskRoutes(api huma.API, svc BoardService) {
	huma.Register(api, huma.Operation{
		OperationID: "create-task",
		Method:      http.MethodPost,
		Path:        "/projects/{projectID}/tasks",
		Summary:     "Create a task at the end of a column",
		Tags:        []string{"Tasks"},
	}, func(ctx context.Context, input *CreateTaskInput) (*CreateTaskOutput, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		task, err := svc.CreateTask(ctx, actor, input.ProjectID, board.CreateTaskInput{
			ColumnID:    input.Body.ColumnID,
			Title:       input.Body.Title,
			Description: input.Body.Description,
			AssigneeID:  input.Body.AssigneeID,
			Priority:    input.Body.Priority,
			DueDate:     input.Body.DueDate,
		})
		if err != nil {
			return nil, serviceError(err, "column")
		}

		return &CreateTaskOutput{Body: task}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-task",
		Method:      http.MethodGet,
		Path:        "/tasks/{id}",
		Summary:     "Get a task by ID",
		Tags:        []string{"Tasks"},
	}, func(ctx context.Context, input *GetTaskInput) (*GetTaskOutput, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		task, err := svc.GetTask(ctx, actor, input.ID)
		if err != nil {
			return nil, serviceError(err, "task")
		}

		return &GetTaskOutput{Body: task}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-task-detail",
		Method:      http.MethodGet,
		Path:        "/tasks/{id}/detail",
		Summary:     "Get a task with comments, checklist, tags, and attachments",
		Tags:        []string{"Tasks"},
	}, func(ctx context.Context, input *GetTaskInput) (*GetTaskDetailOutput, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		detail, err := svc.GetTaskDetail(ctx, actor, input.ID)
		if err != nil {
			return nil, serviceError(err, "task")
		}

		return &GetTaskDetailOutput{Body: detail}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-task",
		Method:      http.MethodPut,
		Path:        "/tasks/{id}",
		Summary:     "Update task fields",
		Tags:        []string{"Tasks"},
	}, func(ctx context.Context, input *UpdateTaskInput) (*UpdateTaskOutput, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		task, err := svc.UpdateTask(ctx, actor, input.ID, board.UpdateTaskInput{
			Title:       input.Body.Title,
			Description: input.Body.Description,
			AssigneeID:  input.Body.AssigneeID,
			Priority:    input.Body.Priority,
			DueDate:     input.Body.DueDate,
		})
		if err != nil {
			return nil, serviceError(err, "task")
		}

		return &UpdateTaskOutput{Body: task}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "move-task",
		Method:      http.MethodPut,
		Path:        "/tasks/{id}/move",
		Summary:     "Move a task within or across columns",
		Tags:        []string{"Tasks"},
	}, func(ctx context.Context, input *MoveTaskInput) (*struct{}, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		if err := svc.MoveTask(ctx, actor, input.ID, input.Body.NewColumnID, input.Body.NewPosition); err != nil {
			return nil, serviceError(err, "task")
		}

		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-task",
		Method:      http.MethodDelete,
		Path:        "/tasks/{id}",
		Summary:     "Delete a task",
		Tags:        []string{"Tasks"},
	}, func(ctx context.Context, input *DeleteTaskInput) (*struct{}, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		if err := svc.DeleteTask(ctx, actor, input.ID); err != nil {
			return nil, serviceError(err, "task")
		}

		return nil, nil
	})
}
