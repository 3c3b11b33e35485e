package v1

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/devgrid/boardhub/internal/domain"
	"github.com/devgrid/boardhub/internal/server/middleware"
)

// actorID extracts the authenticated user from the request context.
func actorID(ctx context.Context) (uuid.UUID, error) {
	id, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, huma.Error401Unauthorized("missing user context")
	}
	return id, nil
}

// serviceError maps domain sentinels onto HTTP problem responses. noun
// names the resource for the not-found message.
func serviceError(err error, noun string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return huma.Error404NotFound(noun + " not found")
	case errors.Is(err, domain.ErrValidation):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return huma.Error403Forbidden("forbidden")
	default:
		return huma.Error500InternalServerError("operation failed", err)
	}
}
