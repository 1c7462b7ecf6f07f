package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-intake/internal/task"
	pkgLog "smart-task-intake/pkg/log"
)

// Handler exposes the task domain over HTTP.
type Handler interface {
	ProcessIntent(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Breakdown(c *gin.Context)
	ToggleSubtask(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc task.UseCase
}

// New creates a new task HTTP handler.
func New(l pkgLog.Logger, uc task.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
