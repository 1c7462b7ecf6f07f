package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"smart-task-intake/internal/folder"
	"smart-task-intake/internal/model"
	"smart-task-intake/internal/task"
	"smart-task-intake/internal/task/repository"
	"smart-task-intake/internal/task/usecase"
	"smart-task-intake/pkg/clock"
	"smart-task-intake/pkg/gcalendar"
)

// Monday, June 2 2025, 10:00.
var testNow = time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)

var testScope = model.Scope{UserID: "user-1", AccountPurpose: model.PurposeLegal}

// ---- fakes ----

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

// memRepo is an in-memory repository.Repository. Filtering mirrors the
// storage contract: due windows are [from, to), OrNoDue widens the window
// to include tasks without a due date.
type memRepo struct {
	mu       sync.Mutex
	tasks    map[string]model.Task
	subtasks map[string]model.Subtask
}

func newMemRepo() *memRepo {
	return &memRepo{
		tasks:    make(map[string]model.Task),
		subtasks: make(map[string]model.Subtask),
	}
}

func (r *memRepo) CreateTask(_ context.Context, t model.Task) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[t.ID] = t
	return t, nil
}

func (r *memRepo) GetTask(_ context.Context, id string) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (r *memRepo) FindTasks(_ context.Context, f repository.TaskFilter) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Task
	for _, t := range r.tasks {
		if f.UserID != "" && t.UserID != f.UserID {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.SeriesID != "" && t.RecurrenceSeriesID != f.SeriesID {
			continue
		}
		if f.DueFrom != nil || f.DueTo != nil {
			if t.DueAt == nil {
				if !f.OrNoDue {
					continue
				}
			} else {
				if f.DueFrom != nil && t.DueAt.Before(*f.DueFrom) {
					continue
				}
				if f.DueTo != nil && !t.DueAt.Before(*f.DueTo) {
					continue
				}
			}
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *memRepo) UpdateTask(_ context.Context, id string, u repository.TaskUpdate) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.DueAt != nil {
		t.DueAt = u.DueAt
	}
	if u.IsRecurring != nil {
		t.IsRecurring = *u.IsRecurring
	}
	if u.RecurrenceInterval != nil {
		t.RecurrenceInterval = *u.RecurrenceInterval
	}
	if u.RecurrenceSeriesID != nil {
		t.RecurrenceSeriesID = *u.RecurrenceSeriesID
	}
	r.tasks[id] = t
	return t, nil
}

func (r *memRepo) DeleteTask(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *memRepo) UpsertFolder(_ context.Context, f model.Folder) (model.Folder, error) {
	return f, nil
}

func (r *memRepo) FindFolders(_ context.Context, _ repository.FolderFilter) ([]model.Folder, error) {
	return nil, nil
}

func (r *memRepo) UpsertTaskFolderLink(_ context.Context, _ model.TaskFolder) error {
	return nil
}

func (r *memRepo) ListTaskFolders(_ context.Context, _ string) ([]model.TaskFolder, error) {
	return nil, nil
}

func (r *memRepo) ReplaceSubtasks(_ context.Context, taskID string, subtasks []model.Subtask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, st := range r.subtasks {
		if st.TaskID == taskID {
			delete(r.subtasks, id)
		}
	}
	for _, st := range subtasks {
		r.subtasks[st.ID] = st
	}
	return nil
}

func (r *memRepo) UpdateSubtask(_ context.Context, id string, done bool) (model.Subtask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.subtasks[id]
	if !ok {
		return model.Subtask{}, repository.ErrNotFound
	}
	st.Done = done
	r.subtasks[id] = st
	return st, nil
}

func (r *memRepo) ListSubtasks(_ context.Context, taskID string) ([]model.Subtask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Subtask
	for _, st := range r.subtasks {
		if st.TaskID == taskID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (r *memRepo) taskCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}

type fakeFolderUC struct {
	matches []folder.Match
	err     error
}

func (f *fakeFolderUC) EnsureFolders(_ context.Context, _ model.Scope) ([]model.Folder, error) {
	return nil, f.err
}

func (f *fakeFolderUC) AssignTask(_ context.Context, _ model.Scope, _, _ string) ([]folder.Match, error) {
	return f.matches, f.err
}

func (f *fakeFolderUC) List(_ context.Context, _ model.Scope) ([]model.Folder, error) {
	return nil, nil
}

type fakeGenerator struct {
	labels []string
	err    error
	calls  int
}

func (g *fakeGenerator) GenerateSubtasks(_ context.Context, _ string) ([]string, error) {
	g.calls++
	return g.labels, g.err
}

type fakeCalendar struct {
	requests []gcalendar.CreateEventRequest
	err      error
}

func (c *fakeCalendar) CreateEvent(_ context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	c.requests = append(c.requests, req)
	if c.err != nil {
		return nil, c.err
	}
	return &gcalendar.Event{ID: "ev-1", HtmlLink: "https://calendar.google.com/event-1"}, nil
}

func newUC(repo *memRepo, opts ...func(*deps)) task.UseCase {
	d := &deps{folderUC: &fakeFolderUC{}}
	for _, opt := range opts {
		opt(d)
	}
	return usecase.New(nopLogger{}, repo, d.folderUC, d.generator, d.calendar, clock.Fixed{T: testNow}, "UTC", 24*time.Hour)
}

type deps struct {
	folderUC  folder.UseCase
	generator task.SubtaskGenerator
	calendar  usecase.CalendarClient
}

func withFolderUC(f folder.UseCase) func(*deps)         { return func(d *deps) { d.folderUC = f } }
func withGenerator(g task.SubtaskGenerator) func(*deps) { return func(d *deps) { d.generator = g } }
func withCalendar(c usecase.CalendarClient) func(*deps) { return func(d *deps) { d.calendar = c } }

func seedTask(repo *memRepo, t model.Task) model.Task {
	if t.Status == "" {
		t.Status = model.StatusPending
	}
	stored, _ := repo.CreateTask(context.Background(), t)
	return stored
}

func ptr[T any](v T) *T { return &v }

// ---- ProcessIntent ----

func TestProcessIntent(t *testing.T) {
	repo := newMemRepo()
	folderUC := &fakeFolderUC{matches: []folder.Match{
		{Name: "Probation", Confidence: 0.67},
	}}
	cal := &fakeCalendar{}
	uc := newUC(repo, withFolderUC(folderUC), withCalendar(cal))

	out, err := uc.ProcessIntent(context.Background(), testScope, task.ProcessIntentInput{
		Text: "Call my PO tomorrow at 7pm",
	})
	if err != nil {
		t.Fatalf("ProcessIntent: %v", err)
	}

	if out.Task.Category != "probation" {
		t.Errorf("Category = %q, want probation", out.Task.Category)
	}
	wantDue := time.Date(2025, time.June, 3, 19, 0, 0, 0, time.UTC)
	if out.Task.DueAt == nil || !out.Task.DueAt.Equal(wantDue) {
		t.Errorf("DueAt = %v, want %v", out.Task.DueAt, wantDue)
	}
	if out.Task.SourceType != model.SourceText {
		t.Errorf("SourceType = %q, want default text", out.Task.SourceType)
	}
	if out.Task.Status != model.StatusPending {
		t.Errorf("Status = %q, want pending", out.Task.Status)
	}
	if len(out.FolderNames) != 1 || out.FolderNames[0] != "Probation" {
		t.Errorf("FolderNames = %v, want [Probation]", out.FolderNames)
	}
	if out.Clarification != "" {
		t.Errorf("unexpected clarification: %q", out.Clarification)
	}
	if out.CalendarLink != "https://calendar.google.com/event-1" {
		t.Errorf("CalendarLink = %q", out.CalendarLink)
	}
	if len(cal.requests) != 1 {
		t.Fatalf("calendar calls = %d, want 1", len(cal.requests))
	}
	if got := cal.requests[0].EndTime.Sub(cal.requests[0].StartTime); got != time.Hour {
		t.Errorf("event length = %v, want 1h", got)
	}

	// persisted
	stored, err := repo.GetTask(context.Background(), out.Task.ID)
	if err != nil {
		t.Fatalf("task not persisted: %v", err)
	}
	if stored.UserID != testScope.UserID {
		t.Errorf("UserID = %q, want %q", stored.UserID, testScope.UserID)
	}
}

func TestProcessIntent_EmptyInput(t *testing.T) {
	uc := newUC(newMemRepo())
	_, err := uc.ProcessIntent(context.Background(), testScope, task.ProcessIntentInput{Text: "   "})
	if !errors.Is(err, task.ErrEmptyInput) {
		t.Errorf("err = %v, want ErrEmptyInput", err)
	}
}

func TestProcessIntent_InvalidInterval(t *testing.T) {
	uc := newUC(newMemRepo())
	_, err := uc.ProcessIntent(context.Background(), testScope, task.ProcessIntentInput{
		Text:               "water the plants",
		IsRecurring:        true,
		RecurrenceInterval: "hourly",
	})
	if !errors.Is(err, task.ErrInvalidInterval) {
		t.Errorf("err = %v, want ErrInvalidInterval", err)
	}
}

func TestProcessIntent_AmbiguousInputStillCreates(t *testing.T) {
	repo := newMemRepo()
	uc := newUC(repo)

	out, err := uc.ProcessIntent(context.Background(), testScope, task.ProcessIntentInput{Text: "book"})
	if err != nil {
		t.Fatalf("ProcessIntent: %v", err)
	}
	if out.Clarification == "" {
		t.Error("expected a clarification prompt for bare 'book'")
	}
	if !out.Task.RequiresClarification {
		t.Error("expected RequiresClarification on the stored task")
	}
	if repo.taskCount() != 1 {
		t.Errorf("task count = %d, want 1", repo.taskCount())
	}
}

func TestProcessIntent_FolderFailureIsNonFatal(t *testing.T) {
	repo := newMemRepo()
	uc := newUC(repo, withFolderUC(&fakeFolderUC{err: folder.ErrEnsureFailed}))

	out, err := uc.ProcessIntent(context.Background(), testScope, task.ProcessIntentInput{Text: "pay rent today"})
	if err != nil {
		t.Fatalf("ProcessIntent should survive folder failure: %v", err)
	}
	if len(out.FolderNames) != 0 {
		t.Errorf("FolderNames = %v, want none", out.FolderNames)
	}
}

func TestProcessIntent_CalendarFailureIsNonFatal(t *testing.T) {
	repo := newMemRepo()
	cal := &fakeCalendar{err: errors.New("api down")}
	uc := newUC(repo, withCalendar(cal))

	out, err := uc.ProcessIntent(context.Background(), testScope, task.ProcessIntentInput{Text: "doctor appointment tomorrow"})
	if err != nil {
		t.Fatalf("ProcessIntent should survive calendar failure: %v", err)
	}
	if out.CalendarLink != "" {
		t.Errorf("CalendarLink = %q, want empty", out.CalendarLink)
	}
}

// ---- Update / recurrence ----

func TestUpdate_CompletingRecurringTaskCreatesNextOccurrence(t *testing.T) {
	repo := newMemRepo()
	uc := newUC(repo)

	due := time.Date(2025, time.June, 6, 9, 0, 0, 0, time.UTC)
	root := seedTask(repo, model.Task{
		ID:                 "root-1",
		UserID:             testScope.UserID,
		Title:              "PO check-in",
		Category:           "probation",
		DueAt:              &due,
		IsRecurring:        true,
		RecurrenceInterval: model.RecurWeekly,
	})

	_, err := uc.Update(context.Background(), testScope, root.ID, task.UpdateInput{
		Status: ptr(model.StatusCompleted),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	// The root adopts its own id as the series id.
	stored, _ := repo.GetTask(context.Background(), root.ID)
	if stored.RecurrenceSeriesID != root.ID {
		t.Errorf("root series id = %q, want %q", stored.RecurrenceSeriesID, root.ID)
	}

	siblings, _ := repo.FindTasks(context.Background(), repository.TaskFilter{
		SeriesID: root.ID,
		Status:   model.StatusPending,
	})
	if len(siblings) != 1 {
		t.Fatalf("pending siblings = %d, want 1", len(siblings))
	}
	next := siblings[0]
	wantDue := due.AddDate(0, 0, 7)
	if next.DueAt == nil || !next.DueAt.Equal(wantDue) {
		t.Errorf("next due = %v, want %v", next.DueAt, wantDue)
	}
	if next.Title != root.Title || !next.IsRecurring || next.RecurrenceInterval != model.RecurWeekly {
		t.Errorf("next occurrence does not carry task fields: %+v", next)
	}
	if next.RequiresClarification {
		t.Error("next occurrence must not inherit the clarification flag")
	}
}

func TestUpdate_PendingSiblingSuppressesExpansion(t *testing.T) {
	repo := newMemRepo()
	uc := newUC(repo)

	due := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
	nextDue := due.AddDate(0, 0, 1)
	seedTask(repo, model.Task{
		ID:                 "a",
		UserID:             testScope.UserID,
		Title:              "take medication",
		DueAt:              &due,
		IsRecurring:        true,
		RecurrenceInterval: model.RecurDaily,
		RecurrenceSeriesID: "series-1",
	})
	seedTask(repo, model.Task{
		ID:                 "b",
		UserID:             testScope.UserID,
		Title:              "take medication",
		DueAt:              &nextDue,
		IsRecurring:        true,
		RecurrenceInterval: model.RecurDaily,
		RecurrenceSeriesID: "series-1",
	})

	_, err := uc.Update(context.Background(), testScope, "a", task.UpdateInput{
		Status: ptr(model.StatusCompleted),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if got := repo.taskCount(); got != 2 {
		t.Errorf("task count = %d, want 2 (no duplicate occurrence)", got)
	}
}

func TestUpdate_CompletingTwiceExpandsOnce(t *testing.T) {
	repo := newMemRepo()
	uc := newUC(repo)

	due := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
	seedTask(repo, model.Task{
		ID:                 "root-2",
		UserID:             testScope.UserID,
		Title:              "therapy session",
		DueAt:              &due,
		IsRecurring:        true,
		RecurrenceInterval: model.RecurWeekly,
	})

	for i := 0; i < 2; i++ {
		if _, err := uc.Update(context.Background(), testScope, "root-2", task.UpdateInput{
			Status: ptr(model.StatusCompleted),
		}); err != nil {
			t.Fatalf("Update #%d: %v", i+1, err)
		}
	}

	if got := repo.taskCount(); got != 2 {
		t.Errorf("task count = %d, want 2 (one root, one next occurrence)", got)
	}
}

func TestUpdate_NonRecurringCompletionDoesNotExpand(t *testing.T) {
	repo := newMemRepo()
	uc := newUC(repo)
	seedTask(repo, model.Task{ID: "t1", UserID: testScope.UserID, Title: "one-off"})

	if _, err := uc.Update(context.Background(), testScope, "t1", task.UpdateInput{
		Status: ptr(model.StatusCompleted),
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := repo.taskCount(); got != 1 {
		t.Errorf("task count = %d, want 1", got)
	}
}

func TestUpdate_Validation(t *testing.T) {
	repo := newMemRepo()
	uc := newUC(repo)
	seedTask(repo, model.Task{ID: "t1", UserID: testScope.UserID, Title: "x"})

	if _, err := uc.Update(context.Background(), testScope, "t1", task.UpdateInput{
		Status: ptr(model.TaskStatus("archived")),
	}); !errors.Is(err, task.ErrInvalidStatus) {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}

	if _, err := uc.Update(context.Background(), testScope, "t1", task.UpdateInput{
		RecurrenceInterval: ptr(model.RecurrenceInterval("hourly")),
	}); !errors.Is(err, task.ErrInvalidInterval) {
		t.Errorf("err = %v, want ErrInvalidInterval", err)
	}
}

func TestUpdate_Ownership(t *testing.T) {
	repo := newMemRepo()
	uc := newUC(repo)
	seedTask(repo, model.Task{ID: "t1", UserID: "someone-else", Title: "not yours"})

	if _, err := uc.Update(context.Background(), testScope, "t1", task.UpdateInput{
		Title: ptr("hijacked"),
	}); !errors.Is(err, task.ErrNotOwner) {
		t.Errorf("err = %v, want ErrNotOwner", err)
	}

	if _, err := uc.Update(context.Background(), testScope, "missing", task.UpdateInput{
		Title: ptr("x"),
	}); !errors.Is(err, task.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

// ---- List ----

func TestList_Scopes(t *testing.T) {
	repo := newMemRepo()
	uc := newUC(repo)

	noDue := seedTask(repo, model.Task{ID: "no-due", UserID: testScope.UserID, Title: "someday"})
	todayDue := testNow.Add(3 * time.Hour)
	today := seedTask(repo, model.Task{ID: "today", UserID: testScope.UserID, Title: "today", DueAt: &todayDue})
	yesterdayDue := testNow.AddDate(0, 0, -1)
	overdue := seedTask(repo, model.Task{ID: "overdue", UserID: testScope.UserID, Title: "late", DueAt: &yesterdayDue})
	seedTask(repo, model.Task{ID: "done-late", UserID: testScope.UserID, Title: "done", DueAt: &yesterdayDue, Status: model.StatusCompleted})
	nextWeekDue := testNow.AddDate(0, 0, 7)
	upcoming := seedTask(repo, model.Task{ID: "next-week", UserID: testScope.UserID, Title: "soon", DueAt: &nextWeekDue})
	seedTask(repo, model.Task{ID: "foreign", UserID: "someone-else", Title: "theirs", DueAt: &todayDue})

	assertIDs := func(t *testing.T, got []model.Task, want ...string) {
		t.Helper()
		ids := make(map[string]bool, len(got))
		for _, tk := range got {
			ids[tk.ID] = true
		}
		if len(got) != len(want) {
			t.Fatalf("got %d tasks %v, want %v", len(got), ids, want)
		}
		for _, id := range want {
			if !ids[id] {
				t.Errorf("missing task %q in %v", id, ids)
			}
		}
	}

	t.Run("today includes undated tasks", func(t *testing.T) {
		got, err := uc.List(context.Background(), testScope, task.ListInput{Scope: task.ScopeToday})
		if err != nil {
			t.Fatal(err)
		}
		assertIDs(t, got, noDue.ID, today.ID)
	})

	t.Run("overdue shows only pending", func(t *testing.T) {
		got, err := uc.List(context.Background(), testScope, task.ListInput{Scope: task.ScopeOverdue})
		if err != nil {
			t.Fatal(err)
		}
		assertIDs(t, got, overdue.ID)
	})

	t.Run("upcoming starts after today", func(t *testing.T) {
		got, err := uc.List(context.Background(), testScope, task.ListInput{Scope: task.ScopeUpcoming})
		if err != nil {
			t.Fatal(err)
		}
		assertIDs(t, got, upcoming.ID)
	})

	t.Run("empty scope returns everything owned", func(t *testing.T) {
		got, err := uc.List(context.Background(), testScope, task.ListInput{})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 5 {
			t.Errorf("got %d tasks, want 5", len(got))
		}
	})

	t.Run("unknown scope rejected", func(t *testing.T) {
		if _, err := uc.List(context.Background(), testScope, task.ListInput{Scope: "someday"}); !errors.Is(err, task.ErrInvalidScope) {
			t.Errorf("err = %v, want ErrInvalidScope", err)
		}
	})
}

// ---- Breakdown ----

func TestBreakdown_Templates(t *testing.T) {
	tests := []struct {
		title     string
		wantFirst string
		wantCount int
	}{
		{"Renew SNAP benefits", "Gather necessary documents (ID, proof of income, residency)", 5},
		{"housing application", "Check credit score and rental history", 5},
		{"court hearing prep", "Confirm court date, time, and location", 5},
		{"probation meeting", "Confirm meeting time with PO", 5},
		{"organize garage", "Define the first small step", 4},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			repo := newMemRepo()
			uc := newUC(repo)
			seedTask(repo, model.Task{ID: "t1", UserID: testScope.UserID, Title: tt.title})

			out, err := uc.Breakdown(context.Background(), testScope, "t1")
			if err != nil {
				t.Fatalf("Breakdown: %v", err)
			}
			if len(out.Subtasks) != tt.wantCount {
				t.Fatalf("subtasks = %d, want %d", len(out.Subtasks), tt.wantCount)
			}
			if out.Subtasks[0].Label != tt.wantFirst {
				t.Errorf("first step = %q, want %q", out.Subtasks[0].Label, tt.wantFirst)
			}
			if out.Subtasks[0].OrderIndex != 0 || out.Subtasks[1].OrderIndex != 1 {
				t.Error("subtasks not ordered")
			}
			if out.Stats.Total != tt.wantCount || out.Stats.Completed != 0 || out.Stats.Progress != 0 {
				t.Errorf("stats = %+v", out.Stats)
			}
		})
	}
}

func TestBreakdown_GeneratorWins(t *testing.T) {
	repo := newMemRepo()
	gen := &fakeGenerator{labels: []string{"step one", "step two", "step three"}}
	uc := newUC(repo, withGenerator(gen))
	seedTask(repo, model.Task{ID: "t1", UserID: testScope.UserID, Title: "court hearing prep"})

	out, err := uc.Breakdown(context.Background(), testScope, "t1")
	if err != nil {
		t.Fatalf("Breakdown: %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
	if len(out.Subtasks) != 3 || out.Subtasks[0].Label != "step one" {
		t.Errorf("expected generator labels, got %+v", out.Subtasks)
	}
}

func TestBreakdown_GeneratorFailureFallsBack(t *testing.T) {
	repo := newMemRepo()
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	uc := newUC(repo, withGenerator(gen))
	seedTask(repo, model.Task{ID: "t1", UserID: testScope.UserID, Title: "probation meeting"})

	out, err := uc.Breakdown(context.Background(), testScope, "t1")
	if err != nil {
		t.Fatalf("Breakdown must fall back on generator failure: %v", err)
	}
	if len(out.Subtasks) != 5 || out.Subtasks[0].Label != "Confirm meeting time with PO" {
		t.Errorf("expected template fallback, got %+v", out.Subtasks)
	}
}

func TestBreakdown_RerunReplaces(t *testing.T) {
	repo := newMemRepo()
	uc := newUC(repo)
	seedTask(repo, model.Task{ID: "t1", UserID: testScope.UserID, Title: "housing application"})

	for i := 0; i < 2; i++ {
		if _, err := uc.Breakdown(context.Background(), testScope, "t1"); err != nil {
			t.Fatalf("Breakdown #%d: %v", i+1, err)
		}
	}

	stored, _ := repo.ListSubtasks(context.Background(), "t1")
	if len(stored) != 5 {
		t.Errorf("stored subtasks = %d, want 5 after rerun", len(stored))
	}
}

func TestToggleSubtask(t *testing.T) {
	repo := newMemRepo()
	uc := newUC(repo)
	seedTask(repo, model.Task{ID: "t1", UserID: testScope.UserID, Title: "housing application"})

	out, err := uc.Breakdown(context.Background(), testScope, "t1")
	if err != nil {
		t.Fatal(err)
	}

	st, err := uc.ToggleSubtask(context.Background(), testScope, out.Subtasks[0].ID, true)
	if err != nil {
		t.Fatalf("ToggleSubtask: %v", err)
	}
	if !st.Done {
		t.Error("subtask not marked done")
	}

	if _, err := uc.ToggleSubtask(context.Background(), testScope, "missing", true); !errors.Is(err, task.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

// ---- Delete ----

func TestDelete(t *testing.T) {
	repo := newMemRepo()
	uc := newUC(repo)
	seedTask(repo, model.Task{ID: "t1", UserID: testScope.UserID, Title: "x"})
	seedTask(repo, model.Task{ID: "t2", UserID: "someone-else", Title: "y"})

	if err := uc.Delete(context.Background(), testScope, "t1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetTask(context.Background(), "t1"); !errors.Is(err, repository.ErrNotFound) {
		t.Error("task still present after delete")
	}

	if err := uc.Delete(context.Background(), testScope, "t2"); !errors.Is(err, task.ErrNotOwner) {
		t.Errorf("err = %v, want ErrNotOwner", err)
	}
	if err := uc.Delete(context.Background(), testScope, "missing"); !errors.Is(err, task.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
