package i

import (
	"context"

	"github.com/beka-birhanu/maze-ball/game"
	"github.com/google/uuid"
)

// SessionStore defines the interface for keeping live maze sessions.
// Sessions expire after the store's TTL; nothing outlives a session.
type SessionStore interface {
	// Save inserts or replaces a session.
	Save(ctx context.Context, s *game.Session) error

	// ByID retrieves a session by its ID.
	// Returns ErrSessionNotFound if the session is unknown or expired.
	ByID(ctx context.Context, id uuid.UUID) (*game.Session, error)

	// Update applies fn to the stored session and saves the result.
	// Concurrent updates of the same session are serialised.
	Update(ctx context.Context, id uuid.UUID, fn func(*game.Session) error) (*game.Session, error)

	// Delete removes a session. Deleting an unknown session is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
