package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/devgrid/boardhub/internal/board"
	"github.com/devgrid/boardhub/internal/domain"
)

type CreateColumnInput struct {
	ProjectID uuid.UUID `path:"projectID" doc:"Project ID"`
	Body      struct {
		Name  string `json:"name" minLength:"1" maxLength:"255" doc:"Column name"`
		Color string `json:"color,omitempty" maxLength:"32" doc:"Display color, defaults when empty"`
	}
}

type CreateColumnOutput struct {
	Body *domain.Column
}

type ListColumnsInput struct {
	ProjectID uuid.UUID `path:"projectID" doc:"Project ID"`
}

type ListColumnsOutput struct {
	Body []*domain.Column
}

type UpdateColumnInput struct {
	ID   uuid.UUID `path:"id" doc:"Column ID"`
	Body struct {
		Name  *string `json:"name,omitempty" maxLength:"255" doc:"Column name"`
		Color *string `json:"color,omitempty" maxLength:"32" doc:"Display color"`
	}
}

type UpdateColumnOutput struct {
	Body *domain.Column
}

type DeleteColumnInput struct {
	ID uuid.UUID `path:"id" doc:"Column ID"`
}

type ReorderColumnsInput struct {
	ProjectID uuid.UUID `path:"projectID" doc:"Project ID"`
	Body      struct {
		OrderedColumnIDs []uuid.UUID `json:"ordered_column_ids" minItems:"1" doc:"Column IDs in their new order; may be a subset"`
	}
}

func RegisterColumnRoutes(api huma.API, svc BoardService) {
	huma.Register(api, huma.Operation{
		OperationID: "create-column",
		Method:      http.MethodPost,
		Path:        "/projects/{projectID}/columns",
		Summary:     "Create a column at the end of the board",
		Tags:        []string{"Columns"},
	}, func(ctx context.Context, input *CreateColumnInput) (*CreateColumnOutput, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		column, err := svc.CreateColumn(ctx, actor, input.ProjectID, board.CreateColumnInput{
			Name:  input.Body.Name,
			Color: input.Body.Color,
		})
		if err != nil {
			return nil, serviceError(err, "project")
		}

		return &CreateColumnOutput{Body: column}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-columns",
		Method:      http.MethodGet,
		Path:        "/projects/{projectID}/columns",
		Summary:     "List a project's columns in position order",
		Tags:        []string{"Columns"},
	}, func(ctx context.Context, input *ListColumnsInput) (*ListColumnsOutput, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		columns, err := svc.ListColumns(ctx, actor, input.ProjectID)
		if err != nil {
			return nil, serviceError(err, "project")
		}

		return &ListColumnsOutput{Body: columns}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-column",
		Method:      http.MethodPut,
		Path:        "/columns/{id}",
		Summary:     "Rename or recolor a column",
		Tags:        []string{"Columns"},
	}, func(ctx context.Context, input *UpdateColumnInput) (*UpdateColumnOutput, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		column, err := svc.UpdateColumn(ctx, actor, input.ID, board.UpdateColumnInput{
			Name:  input.Body.Name,
			Color: input.Body.Color,
		})
		if err != nil {
			return nil, serviceError(err, "column")
		}

		return &UpdateColumnOutput{Body: column}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-column",
		Method:      http.MethodDelete,
		Path:        "/columns/{id}",
		Summary:     "Delete a column and its tasks",
		Tags:        []string{"Columns"},
	}, func(ctx context.Context, input *DeleteColumnInput) (*struct{}, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		if err := svc.DeleteColumn(ctx, actor, input.ID); err != nil {
			return nil, serviceError(err, "column")
		}

		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "reorder-columns",
		Method:      http.MethodPut,
		Path:        "/projects/{projectID}/columns/reorder",
		Summary:     "Reorder a project's columns",
		Tags:        []string{"Columns"},
	}, func(ctx context.Context, input *ReorderColumnsInput) (*struct{}, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		if err := svc.ReorderColumns(ctx, actor, input.ProjectID, input.Body.OrderedColumnIDs); err != nil {
			return nil, serviceError(err, "project")
		}

		return nil, nil
	})
}
