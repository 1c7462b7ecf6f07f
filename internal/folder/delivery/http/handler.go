package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"smart-task-intake/internal/middleware"
	"smart-task-intake/internal/model"
	pkgResponse "smart-task-intake/pkg/response"
)

type folderItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	IsSystem  bool      `json:"is_system"`
	CreatedAt time.Time `json:"created_at"`
}

func toFolderItems(folders []model.Folder) []folderItem {
	items := make([]folderItem, len(folders))
	for i, f := range folders {
		items[i] = folderItem{
			ID:        f.ID,
			Name:      f.Name,
			Icon:      f.Icon,
			Color:     f.Color,
			IsSystem:  f.IsSystem,
			CreatedAt: f.CreatedAt,
		}
	}
	return items
}

// List returns the caller's folders.
// @Summary  List folders
// @Tags     Folders
// @Produce  json
// @Success  200 {object} pkgResponse.Resp
// @Router   /api/v1/folders [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	folders, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "folder handler: list failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}
	pkgResponse.OK(c, toFolderItems(folders))
}

// Ensure seeds the caller's purpose-configured folders. Idempotent.
// @Summary  Ensure system folders exist
// @Tags     Folders
// @Produce  json
// @Success  200 {object} pkgResponse.Resp
// @Router   /api/v1/folders/ensure [post]
func (h *handler) Ensure(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	folders, err := h.uc.EnsureFolders(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "folder handler: ensure failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}
	pkgResponse.OK(c, toFolderItems(folders))
}
