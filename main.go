package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/maze-ball/api"
	api_i "github.com/beka-birhanu/maze-ball/api/i"
	mazeapi "github.com/beka-birhanu/maze-ball/api/maze"
	"github.com/beka-birhanu/maze-ball/config"
	logger "github.com/beka-birhanu/maze-ball/infrastruture/log"
	"github.com/beka-birhanu/maze-ball/infrastruture/sessionstore"
	"github.com/beka-birhanu/maze-ball/service"
	"github.com/beka-birhanu/maze-ball/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Global variables for dependencies
var (
	redisClient        *redis.Client
	sessionStore       i.SessionStore
	gameSessionManager i.GameSessionManager
	mazeController     api_i.Controller
	router             *api.Router
	appLogger          i.Logger
)

func initSessionStore(ctx context.Context) {
	ttl := time.Duration(config.Envs.SessionTTLSeconds) * time.Second

	if config.Envs.RedisAddr == "" {
		store, err := sessionstore.NewMemorySessionStore(ttl)
		if err != nil {
			appLogger.Error(fmt.Sprintf("Creating memory session store: %v", err))
			os.Exit(1)
		}
		sessionStore = store
		appLogger.Info("Memory session store initialized")
		return
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
		DB:       config.Envs.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}

	store, err := sessionstore.NewRedisSessionStore(redisClient, config.Envs.SessionKeyPrefix, ttl)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating redis session store: %v", err))
		os.Exit(1)
	}
	sessionStore = store
	appLogger.Info("Redis session store initialized")
}

func initSessionManager() {
	sessionLogger, err := logger.New("SESSION-MANAGER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session manager logger: %v", err))
		os.Exit(1)
	}

	gameSessionManager, err = service.NewGameSessionManager(&service.Config{
		Store:  sessionStore,
		Logger: sessionLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session manager: %v", err))
		os.Exit(1)
	}

	appLogger.Info("Session manager initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(gameSessionManager)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating app logger: %v\n", err)
		os.Exit(1)
	}

	initSessionStore(ctx)
	if redisClient != nil {
		defer redisClient.Close()
	}

	initSessionManager()
	initMazeController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
