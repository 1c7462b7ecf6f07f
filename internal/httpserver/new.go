package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	folderHTTP "smart-task-intake/internal/folder/delivery/http"
	"smart-task-intake/internal/middleware"
	taskHTTP "smart-task-intake/internal/task/delivery/http"
	"smart-task-intake/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw            middleware.Middleware
	taskHandler   taskHTTP.Handler
	folderHandler folderHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware    middleware.Middleware
	TaskHandler   taskHTTP.Handler
	FolderHandler folderHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             cfg.Logger,
		gin:           gin.Default(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		mw:            cfg.Middleware,
		taskHandler:   cfg.TaskHandler,
		folderHandler: cfg.FolderHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	if srv.folderHandler == nil {
		return errors.New("folder handler is required")
	}
	return nil
}

// Run starts serving. Blocks until the listener fails.
func (srv *HTTPServer) Run() error {
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
