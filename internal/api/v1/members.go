package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/devgrid/boardhub/internal/domain"
)

type AddMemberInput struct {
	ProjectID uuid.UUID `path:"projectID" doc:"Project ID"`
	Body      struct {
		UserID uuid.UUID         `json:"user_id" doc:"User to add"`
		Role   domain.MemberRole `json:"role" enum:"editor,viewer" doc:"Membership role"`
	}
}

type AddMemberOutput struct {
	Body *domain.ProjectMember
}

type ListMembersInput struct {
	ProjectID uuid.UUID `path:"projectID" doc:"Project ID"`
}

type ListMembersOutput struct {
	Body []*domain.ProjectMember
}

type UpdateMemberRoleInput struct {
	ProjectID uuid.UUID `path:"projectID" doc:"Project ID"`
	UserID    uuid.UUID `path:"userID" doc:"Member's user ID"`
	Body      struct {
		Role domain.MemberRole `json:"role" enum:"editor,viewer" doc:"New role"`
	}
}

type RemoveMemberInput struct {
	ProjectID uuid.UUID `path:"projectID" doc:"Project ID"`
	UserID    uuid.UUID `path:"userID" doc:"Member's user ID"`
}

func RegisterMemberRoutes(api huma.API, svc BoardService) {
	huma.Register(api, huma.Operation{
		OperationID: "add-member",
		Method:      http.MethodPost,
		Path:        "/projects/{projectID}/members",
		Summary:     "Add a user to a project",
		Tags:        []string{"Members"},
	}, func(ctx context.Context, input *AddMemberInput) (*AddMemberOutput, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		member, err := svc.AddMember(ctx, actor, input.ProjectID, input.Body.UserID, input.Body.Role)
		if err != nil {
			return nil, serviceError(err, "project")
		}

		return &AddMemberOutput{Body: member}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-members",
		Method:      http.MethodGet,
		Path:        "/projects/{projectID}/members",
		Summary:     "List a project's members",
		Tags:        []string{"Members"},
	}, func(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		members, err := svc.ListMembers(ctx, actor, input.ProjectID)
		if err != nil {
			return nil, serviceError(err, "project")
		}

		return &ListMembersOutput{Body: members}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-member-role",
		Method:      http.MethodPut,
		Path:        "/projects/{projectID}/members/{userID}/role",
		Summary:     "Change a member's role",
		Tags:        []string{"Members"},
	}, func(ctx context.Context, input *UpdateMemberRoleInput) (*struct{}, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		if err := svc.UpdateMemberRole(ctx, actor, input.ProjectID, input.UserID, input.Body.Role); err != nil {
			return nil, serviceError(err, "member")
		}

		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "remove-member",
		Method:      http.MethodDelete,
		Path:        "/projects/{projectID}/members/{userID}",
		Summary:     "Remove a member from a project",
		Tags:        []string{"Members"},
	}, func(ctx context.Context, input *RemoveMemberInput) (*struct{}, error) {
		actor, err := actorID(ctx)
		if err != nil {
			return nil, err
		}

		if err := svc.RemoveMember(ctx, actor, input.ProjectID, input.UserID); err != nil {
			return nil, serviceError(err, "member")
		}

		return nil, nil
	})
}
