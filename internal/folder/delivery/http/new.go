package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-intake/internal/folder"
	pkgLog "smart-task-intake/pkg/log"
)

// Handler exposes the folder domain over HTTP.
type Handler interface {
	List(c *gin.Context)
	Ensure(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc folder.UseCase
}

// New creates a new folder HTTP handler.
func New(l pkgLog.Logger, uc folder.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
