package board

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/devgrid/boardhub/internal/domain"
)

type UpdateProjectInput struct {
	Name        *string
	Description *string
}

// CreateProject creates a project owned by the actor and enrolls the
// actor as its first member.
func (s *Service) CreateProject(ctx context.Context, actorID uuid.UUID, name, description string) (*domain.Project, error) {
	project, err := domain.NewProject(actorID, name, description)
	if err != nil {
		return nil, fmt.Errorf("board.Service.CreateProject: %w", err)
	}

	if err := s.store.Projects().Create(ctx, project); err != nil {
		return nil, fmt.Errorf("board.Service.CreateProject: %w", err)
	}

	member := &domain.ProjectMember{
		ProjectID: project.ID,
		UserID:    actorID,
		Role:      domain.MemberRoleOwner,
		JoinedAt:  time.Now(),
	}
	if err := s.store.Members().Add(ctx, member); err != nil {
		// The project row exists; the owner can still reach it through
		// the ownership column, so log rather than unwind.
		log.Error().Err(err).Stringer("project_id", project.ID).Msg("board: owner membership insert failed")
	}

	return project, nil
}

// GetProject returns a project visible to the actor. Non-members get
// ErrNotFound rather than ErrForbidden so project ids are not probeable.
func (s *Service) GetProject(ctx context.Context, actorID, projectID uuid.UUID) (*domain.Project, error) {
	project, err := s.store.Projects().GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.GetProject: %w", err)
	}

	if err := s.requireMember(ctx, projectID, actorID, project); err != nil {
		return nil, fmt.Errorf("board.Service.GetProject: %w", err)
	}

	return project, nil
}

// ListProjects returns every project the actor owns or is a member of.
func (s *Service) ListProjects(ctx context.Context, actorID uuid.UUID) ([]*domain.Project, error) {
	projects, err := s.store.Projects().ListByMember(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.ListProjects: %w", err)
	}

	return projects, nil
}

// UpdateProject renames or re-describes a project. Owner only.
func (s *Service) UpdateProject(ctx context.Context, actorID, projectID uuid.UUID, in UpdateProjectInput) (*domain.Project, error) {
	project, err := s.store.Projects().GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("board.Service.UpdateProject: %w", err)
	}
	if project.OwnerID != actorID {
		return nil, fmt.Errorf("board.Service.UpdateProject: not the owner: %w", domain.ErrForbidden)
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, fmt.Errorf("board.Service.UpdateProject: name: %w", domain.ErrValidation)
		}
		project.Name = *in.Name
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	project.UpdatedAt = time.Now()

	if err := s.store.Projects().Update(ctx, project); err != nil {
		return nil, fmt.Errorf("board.Service.UpdateProject: %w", err)
	}

	return project, nil
}

// DeleteProject removes a project and everything under it. Owner only.
func (s *Service) DeleteProject(ctx context.Context, actorID, projectID uuid.UUID) error {
	project, err := s.store.Projects().GetByID(ctx, projectID)
	if err != nil {
		return fmt.Errorf("board.Service.DeleteProject: %w", err)
	}
	if project.OwnerID != actorID {
		return fmt.Errorf("board.Service.DeleteProject: not the owner: %w", domain.ErrForbidden)
	}

	if err := s.store.Projects().Delete(ctx, projectID); err != nil {
		return fmt.Errorf("board.Service.DeleteProject: %w", err)
	}

	return nil
}

// requireMember checks that the actor owns the project or appears in its
// member list. The project may be passed in when already loaded.
func (s *Service) requireMember(ctx context.Context, projectID, actorID uuid.UUID, project *domain.Project) error {
	if project == nil {
		var err error
		project, err = s.store.Projects().GetByID(ctx, projectID)
		if err != nil {
			return err
		}
	}
	if project.OwnerID == actorID {
		return nil
	}

	_, err := s.store.Members().Get(ctx, projectID, actorID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrNotFound
	}

	return err
}

// requireEditor checks that the actor may mutate the project's board:
// the owner and editor members may, viewers may not, and non-members see
// ErrNotFound.
func (s *Service) requireEditor(ctx context.Context, projectID, actorID uuid.UUID) error {
	project, err := s.store.Projects().GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.OwnerID == actorID {
		return nil
	}

	member, err := s.store.Members().Get(ctx, projectID, actorID)
	if err != nil {
		return err
	}
	if member.Role == domain.MemberRoleViewer {
		return domain.ErrForbidden
	}

	return nil
}
