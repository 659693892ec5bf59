package i

import (
	"context"

	"github.com/beka-birhanu/maze-ball/game"
	"github.com/beka-birhanu/maze-ball/geometry"
	"github.com/google/uuid"
)

// GameSessionManager creates maze sessions and applies collision reports to them.
type GameSessionManager interface {
	// NewSession generates a maze for layout and returns the new session.
	NewSession(ctx context.Context, layout geometry.Layout) (*game.Session, error)

	// Session returns a live session.
	Session(ctx context.Context, id uuid.UUID) (*game.Session, error)

	// ReportCollision applies a collision between two bodies of a session.
	ReportCollision(ctx context.Context, id uuid.UUID, a, b geometry.Kind) (game.WinState, error)

	// End discards a session.
	End(ctx context.Context, id uuid.UUID) error
}
