package http

import (
	"time"

	"smart-task-intake/internal/model"
)

type processIntentReq struct {
	Text               string `json:"text" binding:"required"`
	SourceType         string `json:"source_type"`
	IsRecurring        bool   `json:"is_recurring"`
	RecurrenceInterval string `json:"recurrence_interval"`
}

type updateTaskReq struct {
	Title              *string    `json:"title"`
	Status             *string    `json:"status"`
	DueAt              *time.Time `json:"due_at"`
	IsRecurring        *bool      `json:"is_recurring"`
	RecurrenceInterval *string    `json:"recurrence_interval"`
}

type toggleSubtaskReq struct {
	Done bool `json:"done"`
}

type taskItem struct {
	ID                    string     `json:"id"`
	Title                 string     `json:"title"`
	Description           string     `json:"description"`
	Category              string     `json:"category"`
	SourceType            string     `json:"source_type"`
	Status                string     `json:"status"`
	DueAt                 *time.Time `json:"due_at,omitempty"`
	IsRecurring           bool       `json:"is_recurring"`
	RecurrenceInterval    string     `json:"recurrence_interval,omitempty"`
	RecurrenceSeriesID    string     `json:"recurrence_series_id,omitempty"`
	RequiresClarification bool       `json:"requires_clarification"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

type processIntentResp struct {
	Task          taskItem `json:"task"`
	Folders       []string `json:"folders"`
	Clarification string   `json:"clarification,omitempty"`
	CalendarLink  string   `json:"calendar_link,omitempty"`
}

type subtaskItem struct {
	ID         string `json:"id"`
	TaskID     string `json:"task_id"`
	Label      string `json:"label"`
	OrderIndex int    `json:"order_index"`
	Done       bool   `json:"done"`
}

type breakdownResp struct {
	Subtasks []subtaskItem      `json:"subtasks"`
	Stats    model.SubtaskStats `json:"stats"`
}

func toTaskItem(t model.Task) taskItem {
	return taskItem{
		ID:                    t.ID,
		Title:                 t.Title,
		Description:           t.Description,
		Category:              t.Category,
		SourceType:            string(t.SourceType),
		Status:                string(t.Status),
		DueAt:                 t.DueAt,
		IsRecurring:           t.IsRecurring,
		RecurrenceInterval:    string(t.RecurrenceInterval),
		RecurrenceSeriesID:    t.RecurrenceSeriesID,
		RequiresClarification: t.RequiresClarification,
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             t.UpdatedAt,
	}
}

func toSubtaskItems(subtasks []model.Subtask) []subtaskItem {
	items := make([]subtaskItem, len(subtasks))
	for i, st := range subtasks {
		items[i] = subtaskItem{
			ID:         st.ID,
			TaskID:     st.TaskID,
			Label:      st.Label,
			OrderIndex: st.OrderIndex,
			Done:       st.Done,
		}
	}
	return items
}
