// Package game holds the state of one single-player maze session as seen by
// the physics collaborator: the placements it instantiated, the world gravity,
// and whether the ball has reached the goal.
package game

import (
	"errors"
	"strings"
	"time"

	"github.com/beka-birhanu/maze-ball/geometry"
	"github.com/beka-birhanu/maze-ball/maze"
	"github.com/google/uuid"
)

// Session-related errors.
var (
	ErrNoPlacements = errors.New("session has no placements")
)

const (
	winGravityY   = 1 // world gravity applied once the goal is reached
	impulseLength = 5 // velocity change per key press
)

// Vector is a 2D world-space quantity.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// WinState is what the collaborator must apply after a ball–goal collision.
type WinState struct {
	Won      bool   `json:"won"`
	Gravity  Vector `json:"gravity"`
	Released int    `json:"released"` // maze walls switched from static to dynamic
}

// Session is one generated maze and its win state.
type Session struct {
	ID         uuid.UUID            `json:"id"`
	Layout     geometry.Layout      `json:"layout"`
	Start      maze.CellPosition    `json:"start"` // cell the generator started from
	Placements []geometry.Placement `json:"placements"`
	Gravity    Vector               `json:"gravity"`
	Won        bool                 `json:"won"`
	CreatedAt  time.Time            `json:"created_at"`
}

// NewSession wraps freshly mapped placements. Gravity starts switched off.
func NewSession(id uuid.UUID, layout geometry.Layout, start maze.CellPosition, placements []geometry.Placement) (*Session, error) {
	if len(placements) == 0 {
		return nil, ErrNoPlacements
	}

	return &Session{
		ID:         id,
		Layout:     layout,
		Start:      start,
		Placements: placements,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// Collide handles a collision reported between two bodies. A ball–goal pair,
// in either order, switches gravity on and releases every maze wall; the
// borders stay static. It reports whether the session state changed, which
// happens at most once.
func (s *Session) Collide(a, b geometry.Kind) (WinState, bool) {
	if !isBallGoal(a, b) || s.Won {
		return s.WinState(), false
	}

	s.Won = true
	s.Gravity = Vector{Y: winGravityY}
	for i := range s.Placements {
		p := &s.Placements[i]
		if p.Kind == geometry.KindWall && !p.Border {
			p.Static = false
		}
	}

	return s.WinState(), true
}

// WinState reports the current win state of the session.
func (s *Session) WinState() WinState {
	released := 0
	for _, p := range s.Placements {
		if p.Kind == geometry.KindWall && !p.Border && !p.Static {
			released++
		}
	}
	return WinState{Won: s.Won, Gravity: s.Gravity, Released: released}
}

func isBallGoal(a, b geometry.Kind) bool {
	return (a == geometry.KindBall && b == geometry.KindGoal) ||
		(a == geometry.KindGoal && b == geometry.KindBall)
}

// Impulse maps a key to the velocity change applied to the ball:
// w up, s down, a left, d right, case-insensitive.
func Impulse(key string) (Vector, bool) {
	switch strings.ToLower(key) {
	case "w":
		return Vector{Y: -impulseLength}, true
	case "s":
		return Vector{Y: impulseLength}, true
	case "a":
		return Vector{X: -impulseLength}, true
	case "d":
		return Vector{X: impulseLength}, true
	default:
		return Vector{}, false
	}
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	c := *s
	c.Placements = append([]geometry.Placement(nil), s.Placements...)
	return &c
}
