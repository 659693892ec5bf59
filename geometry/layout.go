package geometry

import (
	"fmt"
	"math"
)

const (
	DefaultCellSize    = 40
	DefaultBorderWidth = 4
)

// Layout describes the playfield of one session. When Rows or Cols is zero
// the grid size is derived from CellSize.
type Layout struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Rows        int     `json:"rows,omitempty"`
	Cols        int     `json:"cols,omitempty"`
	CellSize    float64 `json:"cell_size,omitempty"`
	BorderWidth float64 `json:"border_width,omitempty"`
}

// Resolve fills defaults and derives missing rows and cols. The derived
// count is floor(min(Width, Height) / CellSize) and is used on both axes.
func (l Layout) Resolve() (Layout, error) {
	if l.Width <= 0 || l.Height <= 0 {
		return l, fmt.Errorf("%w: playfield %vx%v", ErrInvalidDimensions, l.Width, l.Height)
	}
	if l.BorderWidth == 0 {
		l.BorderWidth = DefaultBorderWidth
	}
	if l.BorderWidth < 0 {
		return l, fmt.Errorf("%w: border width %v", ErrInvalidDimensions, l.BorderWidth)
	}
	if l.CellSize < 0 {
		return l, fmt.Errorf("%w: cell size %v", ErrInvalidDimensions, l.CellSize)
	}
	if l.Rows < 0 || l.Cols < 0 {
		return l, fmt.Errorf("%w: %dx%d cells", ErrInvalidDimensions, l.Rows, l.Cols)
	}

	if l.Rows == 0 || l.Cols == 0 {
		if l.CellSize == 0 {
			l.CellSize = DefaultCellSize
		}
		cells := int(math.Floor(math.Min(l.Width, l.Height) / l.CellSize))
		if cells < 1 {
			return l, fmt.Errorf("%w: cell size %v does not fit %vx%v", ErrInvalidDimensions, l.CellSize, l.Width, l.Height)
		}
		if l.Rows == 0 {
			l.Rows = cells
		}
		if l.Cols == 0 {
			l.Cols = cells
		}
	}

	return l, nil
}

// Dimensions returns the world size handed to Map.
func (l Layout) Dimensions() Dimensions {
	return Dimensions{Width: l.Width, Height: l.Height, BorderWidth: l.BorderWidth}
}
