package interfaces

import (
	"context"

	"ringbuilder/internal/domain/entities"
)

// IBuilderSessionRepository abstracts DynamoDB persistence for BuilderSession.
//
// Lookups return a zero-value session (empty ID) when nothing is stored;
// "not found" is a domain decision made by the use case, not a repository
// error.

type IBuilderSessionRepository interface {
	Create(ctx context.Context, s entities.BuilderSession) (entities.BuilderSession, error)
	GetByID(ctx context.Context, id string) (entities.BuilderSession, error)
	Save(ctx context.Context, s entities.BuilderSession) (entities.BuilderSession, error)

	// MarkSubmitted flips an active session to submitted atomically. It
	// returns a zero-value session when the session is missing or already
	// submitted.
	MarkSubmitted(ctx context.Context, id string) (entities.BuilderSession, error)

	// Reactivate undoes MarkSubmitted after a failed cart hand-off.
	Reactivate(ctx context.Context, id string) (entities.BuilderSession, error)
}
