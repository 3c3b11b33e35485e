package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type MemberRole string

const (
	MemberRoleOwner  MemberRole = "owner"
	MemberRoleEditor MemberRole = "editor"
	MemberRoleViewer MemberRole = "viewer"
)

// Valid reports whether the role is one of the known member roles.
func (r MemberRole) Valid() bool {
	switch r {
	case MemberRoleOwner, MemberRoleEditor, MemberRoleViewer:
		return true
	default:
		return false
	}
}

type ProjectMember struct {
	ProjectID uuid.UUID  `json:"project_id"`
	UserID    uuid.UUID  `json:"user_id"`
	Role      MemberRole `json:"role"`
	JoinedAt  time.Time  `json:"joined_at"`
}

type MemberRepository interface {
	Add(ctx context.Context, m *ProjectMember) error
	Get(ctx context.Context, projectID, userID uuid.UUID) (*ProjectMember, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*ProjectMember, error)
	UpdateRole(ctx context.Context, projectID, userID uuid.UUID, role MemberRole) error
	Remove(ctx context.Context, projectID, userID uuid.UUID) error
}
