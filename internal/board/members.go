package board

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/devgrid/boardhub/internal/domain"
)

// AddMember enrolls a user in a project. Only the project owner may add
// members, and the owner's own row cannot be duplicated.
func (s *Service) AddMember(ctx context.Context, actorID, projectID, userID uuid.UUID, role domain.MemberRole) (*domain.ProjectMember, error) {
	if !role.Valid() || role == domain.MemberRoleOwner {
		return nil, fmt.Errorf("board.Service.AddMember: role %q: %w", role, domain.ErrValidation)
	}

	project, err := s.store.Projects().GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.AddMember: %w", err)
	}
	if project.OwnerID != actorID {
		return nil, fmt.Errorf("board.Service.AddMember: not the owner: %w", domain.ErrForbidden)
	}
	if userID == project.OwnerID {
		return nil, fmt.Errorf("board.Service.AddMember: user already owns the project: %w", domain.ErrValidation)
	}

	if _, err := s.store.Users().GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("board.Service.AddMember: user: %w", err)
	}

	member := &domain.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
		JoinedAt:  time.Now(),
	}

	if err := s.store.Members().Add(ctx, member); err != nil {
		return nil, fmt.Errorf("board.Service.AddMember: %w", err)
	}

	s.publish(ctx, projectID, EventMemberJoined, MemberPayload{ProjectID: projectID, UserID: userID, Role: role})

	s.dispatcher.Notify(ctx, actorID, userID,
		"Project Invitation",
		"You have been added to project: "+project.Name,
		domain.NotificationTypeInfo, projectID, "Project")

	return member, nil
}

// ListMembers returns the project's member roster. Any member may read it.
func (s *Service) ListMembers(ctx context.Context, actorID, projectID uuid.UUID) ([]*domain.ProjectMember, error) {
	if err := s.requireMember(ctx, projectID, actorID, nil); err != nil {
		return nil, fmt.Errorf("board.Service.ListMembers: %w", err)
	}

	members, err := s.store.Members().ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.ListMembers: %w", err)
	}

	return members, nil
}

// UpdateMemberRole changes a member's role. Owner only; the owner's own
// role is fixed.
func (s *Service) UpdateMemberRole(ctx context.Context, actorID, projectID, userID uuid.UUID, role domain.MemberRole) error {
	if !role.Valid() || role == domain.MemberRoleOwner {
		return fmt.Errorf("board.Service.UpdateMemberRole: role %q: %w", role, domain.ErrValidation)
	}

	project, err := s.store.Projects().GetByID(ctx, projectID)
	if err != nil {
		return fmt.Errorf("board.Service.UpdateMemberRole: %w", err)
	}
	if project.OwnerID != actorID {
		return fmt.Errorf("board.Service.UpdateMemberRole: not the owner: %w", domain.ErrForbidden)
	}
	if userID == project.OwnerID {
		return fmt.Errorf("board.Service.UpdateMemberRole: owner role is fixed: %w", domain.ErrValidation)
	}

	if err := s.store.Members().UpdateRole(ctx, projectID, userID, role); err != nil {
		return fmt.Errorf("board.Service.UpdateMemberRole: %w", err)
	}

	s.publish(ctx, projectID, EventMemberRoleUpdated, MemberPayload{ProjectID: projectID, UserID: userID, Role: role})

	return nil
}

// RemoveMember takes a user off a project. The owner may remove anyone;
// a member may remove only themselves (leaving the project).
func (s *Service) RemoveMember(ctx context.Context, actorID, projectID, userID uuid.UUID) error {
	project, err := s.store.Projects().GetByID(ctx, projectID)
	if err != nil {
		return fmt.Errorf("board.Service.RemoveMember: %w", err)
	}
	if actorID != project.OwnerID && actorID != userID {
		return fmt.Errorf("board.Service.RemoveMember: %w", domain.ErrForbidden)
	}
	if userID == project.OwnerID {
		return fmt.Errorf("board.Service.RemoveMember: owner cannot leave: %w", domain.ErrValidation)
	}

	if err := s.store.Members().Remove(ctx, projectID, userID); err != nil {
		return fmt.Errorf("board.Service.RemoveMember: %w", err)
	}

	s.publish(ctx, projectID, EventMemberRemoved, MemberPayload{ProjectID: projectID, UserID: userID})

	return nil
}
