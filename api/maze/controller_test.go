package mazeapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beka-birhanu/maze-ball/api"
	apii "github.com/beka-birhanu/maze-ball/api/i"
	mazeapi "github.com/beka-birhanu/maze-ball/api/maze"
	"github.com/beka-birhanu/maze-ball/game"
	"github.com/beka-birhanu/maze-ball/geometry"
	"github.com/beka-birhanu/maze-ball/infrastruture/sessionstore"
	"github.com/beka-birhanu/maze-ball/maze"
	"github.com/beka-birhanu/maze-ball/service"
	"github.com/beka-birhanu/maze-ball/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

func newHandler(t *testing.T, gsm i.GameSessionManager) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if gsm == nil {
		store, err := sessionstore.NewMemorySessionStore(time.Minute)
		require.NoError(t, err)
		gsm, err = service.NewGameSessionManager(&service.Config{
			Store:     store,
			NewSource: func() maze.Source { return rand.New(rand.NewSource(1)) },
			Logger:    nopLogger{},
		})
		require.NoError(t, err)
	}

	controller, err := mazeapi.NewMazeController(gsm)
	require.NoError(t, err)
	return api.NewRouter(api.Config{
		BaseURL:     "/api",
		Controllers: []apii.Controller{controller},
	}).Handler()
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestMazeLifecycle(t *testing.T) {
	h := newHandler(t, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/mazes", gin.H{"width": 300, "height": 200, "rows": 4, "cols": 6})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created mazeapi.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 4, created.Rows)
	assert.Equal(t, 6, created.Cols)
	assert.False(t, created.Won)
	assert.Equal(t, 1, geometry.Summary(created.Placements)["ball"])
	assert.Equal(t, map[string]game.Vector{
		"w": {Y: -5},
		"a": {X: -5},
		"s": {Y: 5},
		"d": {X: 5},
	}, created.Controls)

	path := "/api/v1/mazes/" + created.ID.String()

	rec = do(t, h, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched mazeapi.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.Controls, fetched.Controls)

	rec = do(t, h, http.MethodPost, path+"/collisions", gin.H{"body_a": "ball", "body_b": "goal"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var state game.WinState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.True(t, state.Won)
	assert.Equal(t, game.Vector{Y: 1}, state.Gravity)
	assert.Equal(t, geometry.Summary(created.Placements)["wall"], state.Released)

	rec = do(t, h, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMazeBadRequests(t *testing.T) {
	h := newHandler(t, nil)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"missing width", http.MethodPost, "/api/v1/mazes", gin.H{"height": 100}, http.StatusBadRequest},
		{"cell too large", http.MethodPost, "/api/v1/mazes", gin.H{"width": 30, "height": 30, "cell_size": 40}, http.StatusBadRequest},
		{"too many rows", http.MethodPost, "/api/v1/mazes", gin.H{"width": 30, "height": 30, "rows": maze.MaxDimension + 1, "cols": 1}, http.StatusBadRequest},
		{"bad id", http.MethodGet, "/api/v1/mazes/not-a-uuid", nil, http.StatusBadRequest},
		{"unknown session", http.MethodGet, "/api/v1/mazes/" + uuid.NewString(), nil, http.StatusNotFound},
		{"unknown body", http.MethodPost, "/api/v1/mazes/" + uuid.NewString() + "/collisions", gin.H{"body_a": "ball", "body_b": "floor"}, http.StatusBadRequest},
		{"collision on unknown session", http.MethodPost, "/api/v1/mazes/" + uuid.NewString() + "/collisions", gin.H{"body_a": "ball", "body_b": "goal"}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

type failingManager struct{}

func (failingManager) NewSession(context.Context, geometry.Layout) (*game.Session, error) {
	return nil, errors.New("store down")
}

func (failingManager) Session(context.Context, uuid.UUID) (*game.Session, error) {
	return nil, errors.New("store down")
}

func (failingManager) ReportCollision(context.Context, uuid.UUID, geometry.Kind, geometry.Kind) (game.WinState, error) {
	return game.WinState{}, errors.New("store down")
}

func (failingManager) End(context.Context, uuid.UUID) error {
	return errors.New("store down")
}

func TestMazeStoreFailure(t *testing.T) {
	h := newHandler(t, failingManager{})

	rec := do(t, h, http.MethodPost, "/api/v1/mazes", gin.H{"width": 100, "height": 100})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/mazes/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestNewMazeControllerNil(t *testing.T) {
	_, err := mazeapi.NewMazeController(nil)
	assert.Error(t, err)
}
