package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-task-intake/internal/middleware"
	"smart-task-intake/internal/model"
	"smart-task-intake/internal/task"
	pkgResponse "smart-task-intake/pkg/response"
)

// ProcessIntent captures raw text and turns it into a classified task.
// @Summary  Process a natural-language task intent
// @Tags     Tasks
// @Accept   json
// @Produce  json
// @Param    body body processIntentReq true "Raw text and capture metadata"
// @Success  200 {object} pkgResponse.Resp
// @Router   /api/v1/tasks/intents [post]
func (h *handler) ProcessIntent(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	var req processIntentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "task handler: invalid intent payload: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	out, err := h.uc.ProcessIntent(ctx, sc, task.ProcessIntentInput{
		Text:               req.Text,
		SourceType:         model.SourceType(req.SourceType),
		IsRecurring:        req.IsRecurring,
		RecurrenceInterval: model.RecurrenceInterval(req.RecurrenceInterval),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	pkgResponse.OK(c, processIntentResp{
		Task:          toTaskItem(out.Task),
		Folders:       out.FolderNames,
		Clarification: out.Clarification,
		CalendarLink:  out.CalendarLink,
	})
}

// List returns the caller's tasks for a scope.
// @Summary  List tasks
// @Tags     Tasks
// @Produce  json
// @Param    scope query string false "today | overdue | upcoming"
// @Success  200 {object} pkgResponse.Resp
// @Router   /api/v1/tasks [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	tasks, err := h.uc.List(ctx, sc, task.ListInput{Scope: c.Query("scope")})
	if err != nil {
		h.respondError(c, err)
		return
	}

	items := make([]taskItem, len(tasks))
	for i, t := range tasks {
		items[i] = toTaskItem(t)
	}
	pkgResponse.OK(c, items)
}

// Update patches a task; completing a recurring task spawns its successor.
// @Summary  Update a task
// @Tags     Tasks
// @Accept   json
// @Produce  json
// @Param    id   path string        true "Task ID"
// @Param    body body updateTaskReq true "Fields to change"
// @Success  200 {object} pkgResponse.Resp
// @Router   /api/v1/tasks/{id} [patch]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	var req updateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	input := task.UpdateInput{
		Title:       req.Title,
		DueAt:       req.DueAt,
		IsRecurring: req.IsRecurring,
	}
	if req.Status != nil {
		status := model.TaskStatus(*req.Status)
		input.Status = &status
	}
	if req.RecurrenceInterval != nil {
		interval := model.RecurrenceInterval(*req.RecurrenceInterval)
		input.RecurrenceInterval = &interval
	}

	updated, err := h.uc.Update(ctx, sc, c.Param("id"), input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pkgResponse.OK(c, toTaskItem(updated))
}

// Delete removes a task together with its subtasks.
// @Summary  Delete a task
// @Tags     Tasks
// @Produce  json
// @Param    id path string true "Task ID"
// @Success  200 {object} pkgResponse.Resp
// @Router   /api/v1/tasks/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	pkgResponse.OK(c, gin.H{"deleted": true})
}

// Breakdown generates subtasks for a task.
// @Summary  Break a task into subtasks
// @Tags     Tasks
// @Produce  json
// @Param    id path string true "Task ID"
// @Success  200 {object} pkgResponse.Resp
// @Router   /api/v1/tasks/{id}/breakdown [post]
func (h *handler) Breakdown(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	out, err := h.uc.Breakdown(ctx, sc, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	pkgResponse.OK(c, breakdownResp{
		Subtasks: toSubtaskItems(out.Subtasks),
		Stats:    out.Stats,
	})
}

// ToggleSubtask flips the done flag of one subtask.
// @Summary  Toggle a subtask
// @Tags     Tasks
// @Accept   json
// @Produce  json
// @Param    id   path string           true "Subtask ID"
// @Param    body body toggleSubtaskReq true "New done state"
// @Success  200 {object} pkgResponse.Resp
// @Router   /api/v1/subtasks/{id} [patch]
func (h *handler) ToggleSubtask(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromContext(c)

	var req toggleSubtaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		pkgResponse.Error(c, err, nil)
		return
	}

	st, err := h.uc.ToggleSubtask(ctx, sc, c.Param("id"), req.Done)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pkgResponse.OK(c, subtaskItem{
		ID:         st.ID,
		TaskID:     st.TaskID,
		Label:      st.Label,
		OrderIndex: st.OrderIndex,
		Done:       st.Done,
	})
}

func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrNotFound):
		pkgResponse.NotFound(c)
	case errors.Is(err, task.ErrNotOwner):
		pkgResponse.Forbidden(c)
	case errors.Is(err, task.ErrEmptyInput),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidInterval),
		errors.Is(err, task.ErrInvalidScope):
		pkgResponse.Error(c, err, nil)
	default:
		h.l.Errorf(c.Request.Context(), "task handler: %v", err)
		pkgResponse.InternalError(c, err)
	}
}
