package mazeapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/beka-birhanu/maze-ball/geometry"
	"github.com/beka-birhanu/maze-ball/maze"
	"github.com/beka-birhanu/maze-ball/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const storeTimeout = 2 * time.Second

// MazeController manages maze session routes.
type MazeController struct {
	gameSessionManager i.GameSessionManager
}

// NewMazeController initializes a MazeController.
func NewMazeController(gsm i.GameSessionManager) (*MazeController, error) {
	if gsm == nil {
		return nil, errors.New("nil game session manager")
	}
	return &MazeController{gameSessionManager: gsm}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("/:ID", mc.session)
		mazes.POST("/:ID/collisions", mc.collision)
		mazes.DELETE("/:ID", mc.end)
	}
}

// create generates a maze session.
func (mc *MazeController) create(ctx *gin.Context) {
	var request NewMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	session, err := mc.gameSessionManager.NewSession(timeoutCtx, request.Layout())
	if err != nil {
		if errors.Is(err, geometry.ErrInvalidDimensions) || errors.Is(err, maze.ErrInvalidDimensions) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while creating maze"})
		return
	}

	ctx.JSON(http.StatusCreated, sessionResponse(session))
}

// session returns a live session.
func (mc *MazeController) session(ctx *gin.Context) {
	ID, ok := sessionID(ctx)
	if !ok {
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	session, err := mc.gameSessionManager.Session(timeoutCtx, ID)
	if err != nil {
		abortWithStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, sessionResponse(session))
}

// collision applies a collision reported by the physics engine.
func (mc *MazeController) collision(ctx *gin.Context) {
	ID, ok := sessionID(ctx)
	if !ok {
		return
	}

	var request CollisionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	state, err := mc.gameSessionManager.ReportCollision(timeoutCtx, ID, request.BodyA, request.BodyB)
	if err != nil {
		abortWithStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, state)
}

// end discards a session.
func (mc *MazeController) end(ctx *gin.Context) {
	ID, ok := sessionID(ctx)
	if !ok {
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	if err := mc.gameSessionManager.End(timeoutCtx, ID); err != nil {
		abortWithStoreError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return uuid.Nil, false
	}
	return ID, true
}

func abortWithStoreError(ctx *gin.Context, err error) {
	if errors.Is(err, i.ErrSessionNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No Session"})
		return
	}
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "session store unavailable"})
}
