// Package geometry translates a generated maze into the placements of the
// static walls, the goal and the ball that a physics engine instantiates.
package geometry

import (
	"errors"
	"fmt"
	"math"
)

// goalInset shrinks the goal so it does not touch the surrounding walls.
const goalInset = 5

var (
	ErrInvalidDimensions = errors.New("invalid playfield dimensions")
)

// Kind tags a placement with the body label the physics engine uses.
type Kind string

const (
	KindWall Kind = "wall"
	KindGoal Kind = "goal"
	KindBall Kind = "ball"
)

// Dimensions is the world size of the playfield and the wall thickness.
type Dimensions struct {
	Width       float64
	Height      float64
	BorderWidth float64
}

// Placement describes one body to instantiate. X and Y are the body center.
// Rectangles use Width and Height, the ball uses Radius.
type Placement struct {
	Kind   Kind    `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	Static bool    `json:"static"`
	Border bool    `json:"border,omitempty"` // one of the four playfield borders
}

// Openings is the read-only view of a finished maze grid.
type Openings interface {
	Rows() int
	Cols() int
	VerticalOpen(row, col int) bool
	HorizontalOpen(row, col int) bool
}

// Map emits the placements for grid in a fixed order: the four borders
// (bottom, top, left, right), one wall per closed horizontal opening, one
// wall per closed vertical opening, the goal, then the ball.
func Map(grid Openings, d Dimensions) ([]Placement, error) {
	if d.Width <= 0 || d.Height <= 0 || d.BorderWidth <= 0 {
		return nil, fmt.Errorf("%w: %vx%v border %v", ErrInvalidDimensions, d.Width, d.Height, d.BorderWidth)
	}

	rows, cols := grid.Rows(), grid.Cols()
	unitX := d.Width / float64(cols)
	unitY := d.Height / float64(rows)
	b := d.BorderWidth

	placements := make([]Placement, 0, 4+2*rows*cols+2)
	placements = append(placements, borders(d)...)

	for row := 0; row < rows-1; row++ {
		for col := 0; col < cols; col++ {
			if grid.HorizontalOpen(row, col) {
				continue
			}
			placements = append(placements, Placement{
				Kind:   KindWall,
				X:      float64(col)*unitX + unitX/2,
				Y:      float64(row)*unitY + unitY,
				Width:  unitX,
				Height: b,
				Static: true,
			})
		}
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols-1; col++ {
			if grid.VerticalOpen(row, col) {
				continue
			}
			placements = append(placements, Placement{
				Kind:   KindWall,
				X:      float64(col)*unitX + unitX,
				Y:      float64(row)*unitY + unitY/2,
				Width:  b,
				Height: unitY,
				Static: true,
			})
		}
	}

	placements = append(placements,
		Placement{
			Kind:   KindGoal,
			X:      d.Width - unitX/2,
			Y:      d.Height - unitY/2,
			Width:  unitX - goalInset,
			Height: unitY - goalInset,
			Static: true,
		},
		Placement{
			Kind:   KindBall,
			X:      unitX / 2,
			Y:      unitY / 2,
			Radius: math.Min(unitX, unitY) / 3 * 0.9,
		},
	)

	return placements, nil
}

// borders returns the four static walls bounding the playfield, each
// centered half a border width outside its edge.
func borders(d Dimensions) []Placement {
	w, h, b := d.Width, d.Height, d.BorderWidth
	return []Placement{
		{Kind: KindWall, X: w / 2, Y: h + b/2, Width: w, Height: b, Static: true, Border: true},
		{Kind: KindWall, X: w / 2, Y: -b / 2, Width: w, Height: b, Static: true, Border: true},
		{Kind: KindWall, X: -b / 2, Y: h / 2, Width: b, Height: h, Static: true, Border: true},
		{Kind: KindWall, X: w + b/2, Y: h / 2, Width: b, Height: h, Static: true, Border: true},
	}
}

// Summary counts placements per kind; border walls are counted under
// "border" rather than "wall".
func Summary(placements []Placement) map[string]int {
	counts := make(map[string]int)
	for _, p := range placements {
		if p.Border {
			counts["border"]++
			continue
		}
		counts[string(p.Kind)]++
	}
	return counts
}
