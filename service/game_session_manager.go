package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/maze-ball/game"
	"github.com/beka-birhanu/maze-ball/geometry"
	"github.com/beka-birhanu/maze-ball/maze"
	"github.com/beka-birhanu/maze-ball/service/i"
	"github.com/google/uuid"
)

var (
	ErrMissingDependency = errors.New("missing session manager dependency")
)

var _ i.GameSessionManager = &GameSessionManager{}

// GameSessionManager generates maze sessions and tracks their win state.
type GameSessionManager struct {
	store     i.SessionStore
	newSource func() maze.Source
	logger    i.Logger
}

// Config holds the dependencies of a GameSessionManager.
type Config struct {
	Store     i.SessionStore
	NewSource func() maze.Source // one fresh random source per session
	Logger    i.Logger
}

// NewGameSessionManager validates c and returns a ready manager.
// A nil NewSource falls back to time-seeded sources.
func NewGameSessionManager(c *Config) (*GameSessionManager, error) {
	if c == nil || c.Store == nil || c.Logger == nil {
		return nil, ErrMissingDependency
	}

	newSource := c.NewSource
	if newSource == nil {
		newSource = func() maze.Source { return maze.NewSource(0) }
	}

	return &GameSessionManager{
		store:     c.Store,
		newSource: newSource,
		logger:    c.Logger,
	}, nil
}

// NewSession resolves layout, carves a maze, maps it to placements and
// stores the resulting session.
func (g *GameSessionManager) NewSession(ctx context.Context, layout geometry.Layout) (*game.Session, error) {
	resolved, err := layout.Resolve()
	if err != nil {
		return nil, err
	}

	grid, err := maze.New(resolved.Rows, resolved.Cols)
	if err != nil {
		return nil, err
	}
	start := maze.NewGenerator(g.newSource()).Generate(grid)

	placements, err := geometry.Map(grid, resolved.Dimensions())
	if err != nil {
		return nil, err
	}

	session, err := game.NewSession(uuid.New(), resolved, start, placements)
	if err != nil {
		return nil, err
	}

	if err := g.store.Save(ctx, session); err != nil {
		g.logger.Error(fmt.Sprintf("saving session %s: %v", session.ID, err))
		return nil, err
	}

	g.logger.Info(fmt.Sprintf("started session %s: %dx%d maze from (%d,%d), placements %v",
		session.ID, resolved.Rows, resolved.Cols, start.Row, start.Col, geometry.Summary(placements)))
	return session, nil
}

// Session returns a live session.
func (g *GameSessionManager) Session(ctx context.Context, id uuid.UUID) (*game.Session, error) {
	return g.store.ByID(ctx, id)
}

// ReportCollision applies a collision between bodies a and b of session id.
func (g *GameSessionManager) ReportCollision(ctx context.Context, id uuid.UUID, a, b geometry.Kind) (game.WinState, error) {
	var (
		state   game.WinState
		changed bool
	)
	_, err := g.store.Update(ctx, id, func(s *game.Session) error {
		state, changed = s.Collide(a, b)
		return nil
	})
	if err != nil {
		if !errors.Is(err, i.ErrSessionNotFound) {
			g.logger.Error(fmt.Sprintf("applying collision to session %s: %v", id, err))
		}
		return game.WinState{}, err
	}

	if changed {
		g.logger.Info(fmt.Sprintf("session %s won, released %d walls", id, state.Released))
	}
	return state, nil
}

// End discards a session.
func (g *GameSessionManager) End(ctx context.Context, id uuid.UUID) error {
	if err := g.store.Delete(ctx, id); err != nil {
		g.logger.Error(fmt.Sprintf("ending session %s: %v", id, err))
		return err
	}
	g.logger.Info(fmt.Sprintf("ended session %s", id))
	return nil
}
