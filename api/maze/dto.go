// Package mazeapi exposes maze sessions to the browser game over HTTP.
package mazeapi

import (
	"github.com/beka-birhanu/maze-ball/game"
	"github.com/beka-birhanu/maze-ball/geometry"
	"github.com/google/uuid"
)

// NewMazeRequest represents a request to generate a maze for a playfield.
type NewMazeRequest struct {
	Width       float64 `json:"width" binding:"required,gt=0"`
	Height      float64 `json:"height" binding:"required,gt=0"`
	Rows        int     `json:"rows" binding:"gte=0"`
	Cols        int     `json:"cols" binding:"gte=0"`
	CellSize    float64 `json:"cell_size" binding:"gte=0"`
	BorderWidth float64 `json:"border_width" binding:"gte=0"`
}

// Layout converts the request into a playfield layout.
func (r NewMazeRequest) Layout() geometry.Layout {
	return geometry.Layout{
		Width:       r.Width,
		Height:      r.Height,
		Rows:        r.Rows,
		Cols:        r.Cols,
		CellSize:    r.CellSize,
		BorderWidth: r.BorderWidth,
	}
}

// CollisionRequest reports a collision between two labelled bodies.
type CollisionRequest struct {
	BodyA geometry.Kind `json:"body_a" binding:"required,oneof=wall goal ball"`
	BodyB geometry.Kind `json:"body_b" binding:"required,oneof=wall goal ball"`
}

// SessionResponse is the placement handoff for the physics engine.
type SessionResponse struct {
	ID         uuid.UUID              `json:"id"`
	Rows       int                    `json:"rows"`
	Cols       int                    `json:"cols"`
	Placements []geometry.Placement   `json:"placements"`
	Gravity    game.Vector            `json:"gravity"`
	Won        bool                   `json:"won"`
	Controls   map[string]game.Vector `json:"controls"`
}

// controlKeys are the movement keys advertised to the client.
var controlKeys = []string{"w", "a", "s", "d"}

func controls() map[string]game.Vector {
	m := make(map[string]game.Vector, len(controlKeys))
	for _, k := range controlKeys {
		if v, ok := game.Impulse(k); ok {
			m[k] = v
		}
	}
	return m
}

func sessionResponse(s *game.Session) *SessionResponse {
	return &SessionResponse{
		ID:         s.ID,
		Rows:       s.Layout.Rows,
		Cols:       s.Layout.Cols,
		Placements: s.Placements,
		Gravity:    s.Gravity,
		Won:        s.Won,
		Controls:   controls(),
	}
}
