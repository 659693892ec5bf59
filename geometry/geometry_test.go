package geometry_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beka-birhanu/maze-ball/geometry"
	"github.com/beka-birhanu/maze-ball/maze"
)

type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

func generated(t *testing.T, rows, cols int, src maze.Source) *maze.Grid {
	t.Helper()
	g, err := maze.New(rows, cols)
	require.NoError(t, err)
	maze.NewGenerator(src).Generate(g)
	return g
}

func byKind(placements []geometry.Placement, kind geometry.Kind, border bool) []geometry.Placement {
	var out []geometry.Placement
	for _, p := range placements {
		if p.Kind == kind && p.Border == border {
			out = append(out, p)
		}
	}
	return out
}

func TestMapBorders(t *testing.T) {
	g := generated(t, 3, 3, rand.New(rand.NewSource(1)))
	placements, err := geometry.Map(g, geometry.Dimensions{Width: 300, Height: 150, BorderWidth: 4})
	require.NoError(t, err)

	want := []geometry.Placement{
		{Kind: geometry.KindWall, X: 150, Y: 152, Width: 300, Height: 4, Static: true, Border: true},
		{Kind: geometry.KindWall, X: 150, Y: -2, Width: 300, Height: 4, Static: true, Border: true},
		{Kind: geometry.KindWall, X: -2, Y: 75, Width: 4, Height: 150, Static: true, Border: true},
		{Kind: geometry.KindWall, X: 302, Y: 75, Width: 4, Height: 150, Static: true, Border: true},
	}
	assert.Equal(t, want, placements[:4])
}

func TestMapAlwaysFirstIndex(t *testing.T) {
	g := generated(t, 2, 2, zeroSource{})
	placements, err := geometry.Map(g, geometry.Dimensions{Width: 200, Height: 100, BorderWidth: 4})
	require.NoError(t, err)

	require.Len(t, placements, 4+1+2)

	// Only the wall below cell (0,0) remains.
	assert.Equal(t, geometry.Placement{
		Kind: geometry.KindWall, X: 50, Y: 50, Width: 100, Height: 4, Static: true,
	}, placements[4])

	assert.Equal(t, geometry.Placement{
		Kind: geometry.KindGoal, X: 150, Y: 75, Width: 95, Height: 45, Static: true,
	}, placements[5])

	ball := placements[6]
	assert.Equal(t, geometry.KindBall, ball.Kind)
	assert.False(t, ball.Static)
	assert.Equal(t, 50.0, ball.X)
	assert.Equal(t, 25.0, ball.Y)
	assert.InDelta(t, 15.0, ball.Radius, 1e-9)
}

func TestMapCompleteness(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {1, 6}, {6, 1}, {4, 7}, {15, 15}} {
		rows, cols := dims[0], dims[1]
		g := generated(t, rows, cols, rand.New(rand.NewSource(99)))

		placements, err := geometry.Map(g, geometry.Dimensions{Width: 640, Height: 480, BorderWidth: 4})
		require.NoError(t, err)

		closed := (rows-1)*cols + rows*(cols-1) - g.OpeningCount()
		assert.Len(t, byKind(placements, geometry.KindWall, true), 4)
		assert.Len(t, byKind(placements, geometry.KindWall, false), closed, "walls for %v", dims)
		assert.Len(t, byKind(placements, geometry.KindGoal, false), 1)
		assert.Len(t, byKind(placements, geometry.KindBall, false), 1)

		seen := map[geometry.Placement]bool{}
		for _, p := range placements {
			assert.False(t, seen[p], "duplicate placement %+v", p)
			seen[p] = true
		}

		for _, p := range byKind(placements, geometry.KindWall, false) {
			assert.True(t, p.Static)
		}
	}
}

func TestMapSingleCell(t *testing.T) {
	g := generated(t, 1, 1, rand.New(rand.NewSource(5)))
	placements, err := geometry.Map(g, geometry.Dimensions{Width: 100, Height: 100, BorderWidth: 4})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"border": 4, "goal": 1, "ball": 1}, geometry.Summary(placements))

	goal := byKind(placements, geometry.KindGoal, false)[0]
	ball := byKind(placements, geometry.KindBall, false)[0]
	// Start and goal are the same cell: the ball spawns inside the goal.
	assert.Equal(t, goal.X, ball.X)
	assert.Equal(t, goal.Y, ball.Y)
	assert.Less(t, ball.Radius, goal.Width/2)
}

func TestMapInvalidDimensions(t *testing.T) {
	g := generated(t, 2, 2, zeroSource{})
	for _, d := range []geometry.Dimensions{
		{Width: 0, Height: 10, BorderWidth: 1},
		{Width: 10, Height: -1, BorderWidth: 1},
		{Width: 10, Height: 10, BorderWidth: 0},
	} {
		_, err := geometry.Map(g, d)
		assert.ErrorIs(t, err, geometry.ErrInvalidDimensions)
	}
}

func TestLayoutResolve(t *testing.T) {
	tests := []struct {
		name    string
		in      geometry.Layout
		want    geometry.Layout
		wantErr bool
	}{
		{
			name: "defaults derive square cell count",
			in:   geometry.Layout{Width: 400, Height: 300},
			want: geometry.Layout{Width: 400, Height: 300, Rows: 7, Cols: 7, CellSize: 40, BorderWidth: 4},
		},
		{
			name: "explicit rows and cols",
			in:   geometry.Layout{Width: 400, Height: 300, Rows: 3, Cols: 5, BorderWidth: 2},
			want: geometry.Layout{Width: 400, Height: 300, Rows: 3, Cols: 5, BorderWidth: 2},
		},
		{
			name: "missing cols derived from cell size",
			in:   geometry.Layout{Width: 100, Height: 100, Rows: 3, CellSize: 30},
			want: geometry.Layout{Width: 100, Height: 100, Rows: 3, Cols: 3, CellSize: 30, BorderWidth: 4},
		},
		{name: "zero width", in: geometry.Layout{Height: 100}, wantErr: true},
		{name: "negative border", in: geometry.Layout{Width: 100, Height: 100, BorderWidth: -1}, wantErr: true},
		{name: "cell larger than playfield", in: geometry.Layout{Width: 100, Height: 30, CellSize: 40}, wantErr: true},
		{name: "negative cell size with explicit counts", in: geometry.Layout{Width: 100, Height: 100, Rows: 2, Cols: 2, CellSize: -1}, wantErr: true},
		{name: "negative rows", in: geometry.Layout{Width: 100, Height: 100, Rows: -2}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Resolve()
			if tt.wantErr {
				assert.ErrorIs(t, err, geometry.ErrInvalidDimensions)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
