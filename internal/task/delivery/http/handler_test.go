package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-task-intake/internal/model"
	"smart-task-intake/internal/task"
	taskHTTP "smart-task-intake/internal/task/delivery/http"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockUseCase lets each test pin the behavior of one operation.
type mockUseCase struct {
	processOut task.ProcessIntentOutput
	processErr error
	listOut    []model.Task
	listErr    error
	updateOut  model.Task
	updateErr  error
	deleteErr  error
}

func (m *mockUseCase) ProcessIntent(_ context.Context, _ model.Scope, _ task.ProcessIntentInput) (task.ProcessIntentOutput, error) {
	return m.processOut, m.processErr
}

func (m *mockUseCase) List(_ context.Context, _ model.Scope, _ task.ListInput) ([]model.Task, error) {
	return m.listOut, m.listErr
}

func (m *mockUseCase) Update(_ context.Context, _ model.Scope, _ string, _ task.UpdateInput) (model.Task, error) {
	return m.updateOut, m.updateErr
}

func (m *mockUseCase) Delete(_ context.Context, _ model.Scope, _ string) error {
	return m.deleteErr
}

func (m *mockUseCase) Breakdown(_ context.Context, _ model.Scope, _ string) (task.BreakdownOutput, error) {
	return task.BreakdownOutput{}, nil
}

func (m *mockUseCase) ToggleSubtask(_ context.Context, _ model.Scope, _ string, done bool) (model.Subtask, error) {
	return model.Subtask{ID: "s1", Done: done}, nil
}

func newRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := taskHTTP.New(nopLogger{}, uc)
	r := gin.New()
	r.POST("/tasks/intents", h.ProcessIntent)
	r.GET("/tasks", h.List)
	r.PATCH("/tasks/:id", h.Update)
	r.DELETE("/tasks/:id", h.Delete)
	r.PATCH("/subtasks/:id", h.ToggleSubtask)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestProcessIntent_HTTP(t *testing.T) {
	uc := &mockUseCase{
		processOut: task.ProcessIntentOutput{
			Task:        model.Task{ID: "t1", Title: "pay rent today", Category: "housing"},
			FolderNames: []string{"Housing"},
		},
	}
	r := newRouter(uc)

	t.Run("ok", func(t *testing.T) {
		w := do(r, http.MethodPost, "/tasks/intents", `{"text":"pay rent today"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		if body := w.Body.String(); !strings.Contains(body, `"Housing"`) {
			t.Errorf("body missing folder name: %s", body)
		}
	})

	t.Run("missing text is a binding error", func(t *testing.T) {
		w := do(r, http.MethodPost, "/tasks/intents", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("empty input maps to 400", func(t *testing.T) {
		r := newRouter(&mockUseCase{processErr: task.ErrEmptyInput})
		w := do(r, http.MethodPost, "/tasks/intents", `{"text":"   "}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestErrorMapping_HTTP(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", task.ErrNotFound, http.StatusNotFound},
		{"not owner", task.ErrNotOwner, http.StatusForbidden},
		{"invalid status", task.ErrInvalidStatus, http.StatusBadRequest},
		{"unexpected", errors.New("database is on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(&mockUseCase{updateErr: tt.err})
			w := do(r, http.MethodPatch, "/tasks/t1", `{"title":"x"}`)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestList_HTTP(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		r := newRouter(&mockUseCase{listOut: []model.Task{{ID: "t1"}, {ID: "t2"}}})
		w := do(r, http.MethodGet, "/tasks?scope=today", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})

	t.Run("bad scope", func(t *testing.T) {
		r := newRouter(&mockUseCase{listErr: task.ErrInvalidScope})
		w := do(r, http.MethodGet, "/tasks?scope=someday", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestToggleSubtask_HTTP(t *testing.T) {
	r := newRouter(&mockUseCase{})
	w := do(r, http.MethodPatch, "/subtasks/s1", `{"done":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, `"done":true`) {
		t.Errorf("body = %s, want done true", body)
	}
}
