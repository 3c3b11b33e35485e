package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/devgrid/boardhub/internal/board"
	"github.com/devgrid/boardhub/internal/domain"
)

type CreateProjectInput struct {
	Body struct {
		Name        string `json:"name" minLength:"1" maxLength:"255" doc:"Project name"`
		Description string `json:"description,omitempty" maxLength:"2000" doc:"Project description"`
	}
}

type CreateProjectOutput struct {
	Body *domain.Project
}

type ListProjectsOutput struct {
	Body []*domain.Project
}

type GetProjectInput struct {
	ID uuid.UUID `path:"id" doc:"Project ID"`
}

type GetProjectOutput struct {
	Body *domain.Project
}

type UpdateProjectInput struct {
	ID   uuid.UUID `path:"id" doc:"Project ID"`
	Body struct {
		Name        *string `json:"name,omitempty" maxLength:"255" doc:"Project name"`
		Description *string `json:"description,omitempty" maxLength:"2000" doc:"Project description"`
	}
}

type UpdateProjectOutput struct {
	Body *domain.Project
}

type DeleteProjectInput struct {
	ID uuid.UUID `path:"id" doc:"Project ID"`
}

type GetBoardInput struct {
	ID uuid.UUID `path:"id" doc:"Project ID"`
}

type GetBoardOutput struct {
	Body []*board.BoardColumn
}

func RegisterProjectRoutes(api huma.API, svc BoardService) {
	huma.Register(api, huma.Operation{
		OperationID: "create-project",
		Method:      http.MethodPost,
		Path:        "/projects",
		Summary:     "Create a new project",
		Tags:        []string{"Projects"},
	}, func(ctx context.Context, input *CreateProjectInput) (*CreateProjectOutput, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		project, err := svc.CreateProject(ctx, actor, input.Body.Name, input.Body.Description)
		if err != nil {
			return nil, serviceError(err, "project")
		}

		return &CreateProjectOutput{Body: project}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-projects",
		Method:      http.MethodGet,
		Path:        "/projects",
		Summary:     "List projects visible to the caller",
		Tags:        []string{"Projects"},
	}, func(ctx context.Context, _ *struct{}) (*ListProjectsOutput, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		projects, err := svc.ListProjects(ctx, actor)
		if err != nil {
			return nil, serviceError(err, "project")
		}

		return &ListProjectsOutput{Body: projects}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-project",
		Method:      http.MethodGet,
		Path:        "/projects/{id}",
		Summary:     "Get a project by ID",
		Tags:        []string{"Projects"},
	}, func(ctx context.Context, input *GetProjectInput) (*GetProjectOutput, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		project, err := svc.GetProject(ctx, actor, input.ID)
		if err != nil {
			return nil, serviceError(err, "project")
		}

		return &GetProjectOutput{Body: project}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-project",
		Method:      http.MethodPut,
		Path:        "/projects/{id}",
		Summary:     "Update a project",
		Tags:        []string{"Projects"},
	}, func(ctx context.Context, input *UpdateProjectInput) (*UpdateProjectOutput, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		project, err := svc.UpdateProject(ctx, actor, input.ID, board.UpdateProjectInput{
			Name:        input.Body.Name,
			Description: input.Body.Description,
		})
		if err != nil {
			return nil, serviceError(err, "project")
		}

		return &UpdateProjectOutput{Body: project}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-project",
		Method:      http.MethodDelete,
		Path:        "/projects/{id}",
		Summary:     "Delete a project",
		Tags:        []string{"Projects"},
	}, func(ctx context.Context, input *DeleteProjectInput) (*struct{}, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		if err := svc.DeleteProject(ctx, actor, input.ID); err != nil {
			return nil, serviceError(err, "project")
		}

		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-board",
		Method:      http.MethodGet,
		Path:        "/projects/{id}/board",
		Summary:     "Get the project's board: columns with tasks in position order",
		Tags:        []string{"Projects"},
	}, func(ctx context.Context, input *GetBoardInput) (*GetBoardOutput, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		view, err := svc.GetBoard(ctx, actor, input.ID)
		if err != nil {
			return nil, serviceError(err, "project")
		}

		return &GetBoardOutput{Body: view}, nil
	})
}
