package folder

import "smart-task-intake/internal/model"

// Definition is a static folder configuration entry. Sets are selected per
// account purpose, loaded once, and passed explicitly into the scorer.
type Definition struct {
	Name     string
	Icon     string
	Color    string
	Keywords []string
}

// Tag is a default tag seeded for a new account.
type Tag struct {
	Name  string
	Color string
}

// Preset groups everything an account purpose configures: folder set,
// category bias for classification, and default tags.
type Preset struct {
	Folders     []Definition
	Categories  []string
	DefaultTags []Tag
}

var presetsByPurpose = map[model.AccountPurpose]Preset{
	model.PurposeLegal: {
		Folders: []Definition{
			{Name: "Probation", Icon: "⚖️", Color: "#6366f1", Keywords: []string{"po", "probation", "parole", "officer", "check-in", "supervision"}},
			{Name: "Court", Icon: "🏛️", Color: "#ef4444", Keywords: []string{"court", "judge", "hearing", "trial", "attorney", "lawyer"}},
			{Name: "Benefits", Icon: "📋", Color: "#22c55e", Keywords: []string{"benefits", "snap", "ebt", "medicaid", "ssi", "unemployment"}},
			{Name: "Housing", Icon: "🏠", Color: "#f59e0b", Keywords: []string{"housing", "rent", "lease", "apartment", "shelter", "section 8"}},
			{Name: "Programs", Icon: "📚", Color: "#8b5cf6", Keywords: []string{"class", "program", "training", "course", "workshop"}},
			{Name: "Health", Icon: "❤️", Color: "#ec4899", Keywords: []string{"doctor", "medication", "therapy", "counseling", "clinic"}},
			{Name: "Personal", Icon: "🌟", Color: "#64748b", Keywords: []string{"family", "personal", "home", "errands"}},
		},
		Categories: []string{"legal", "court", "appointment", "document", "program"},
		DefaultTags: []Tag{
			{Name: "Court Date", Color: "#EF4444"},
			{Name: "PO Meeting", Color: "#F59E0B"},
			{Name: "Program/Class", Color: "#8B5CF6"},
			{Name: "Document Due", Color: "#3B82F6"},
			{Name: "Lawyer", Color: "#6366F1"},
			{Name: "Transportation", Color: "#10B981"},
		},
	},
	model.PurposeSchool: {
		Folders: []Definition{
			{Name: "Classes", Icon: "📚", Color: "#3b82f6", Keywords: []string{"class", "lecture", "professor", "teacher", "attendance"}},
			{Name: "Assignments", Icon: "📝", Color: "#ef4444", Keywords: []string{"homework", "assignment", "essay", "paper", "due", "submit"}},
			{Name: "Exams", Icon: "✏️", Color: "#f59e0b", Keywords: []string{"exam", "test", "quiz", "midterm", "final", "study"}},
			{Name: "Projects", Icon: "🎯", Color: "#8b5cf6", Keywords: []string{"project", "presentation", "group", "research"}},
			{Name: "Activities", Icon: "⚽", Color: "#22c55e", Keywords: []string{"club", "sport", "practice", "meeting", "event"}},
			{Name: "Personal", Icon: "🌟", Color: "#64748b", Keywords: []string{"personal", "home", "family", "errands"}},
		},
		Categories: []string{"assignment", "exam", "project", "reading", "class"},
		DefaultTags: []Tag{
			{Name: "Homework", Color: "#3B82F6"},
			{Name: "Exam", Color: "#EF4444"},
			{Name: "Project", Color: "#8B5CF6"},
			{Name: "Reading", Color: "#10B981"},
			{Name: "Study Group", Color: "#F59E0B"},
		},
	},
	model.PurposeWork: {
		Folders: []Definition{
			{Name: "Meetings", Icon: "👥", Color: "#3b82f6", Keywords: []string{"meeting", "call", "standup", "sync", "1:1", "team"}},
			{Name: "Deadlines", Icon: "⏰", Color: "#ef4444", Keywords: []string{"deadline", "due", "deliver", "ship", "launch"}},
			{Name: "Projects", Icon: "🎯", Color: "#8b5cf6", Keywords: []string{"project", "feature", "milestone", "sprint"}},
			{Name: "Admin", Icon: "📋", Color: "#f59e0b", Keywords: []string{"expense", "timesheet", "review", "report", "hr"}},
			{Name: "Learning", Icon: "📚", Color: "#22c55e", Keywords: []string{"training", "course", "certification", "learn"}},
			{Name: "Personal", Icon: "🌟", Color: "#64748b", Keywords: []string{"personal", "home", "family", "errands"}},
		},
		Categories: []string{"meeting", "deadline", "follow_up", "review", "presentation"},
		DefaultTags: []Tag{
			{Name: "Meeting", Color: "#3B82F6"},
			{Name: "Deadline", Color: "#EF4444"},
			{Name: "Follow-up", Color: "#F59E0B"},
			{Name: "Review", Color: "#8B5CF6"},
			{Name: "Client", Color: "#10B981"},
		},
	},
	model.PurposeCustom: {
		Folders: []Definition{
			{Name: "Tasks", Icon: "✅", Color: "#3b82f6", Keywords: []string{"task", "todo", "do"}},
			{Name: "Events", Icon: "📅", Color: "#8b5cf6", Keywords: []string{"event", "appointment", "meeting"}},
			{Name: "Ideas", Icon: "💡", Color: "#f59e0b", Keywords: []string{"idea", "thought", "note"}},
			{Name: "Personal", Icon: "🌟", Color: "#64748b", Keywords: []string{"personal", "home", "family", "errands"}},
		},
		Categories: []string{"personal", "health", "finance", "other"},
	},
}

// PresetForPurpose returns the configuration for a purpose, falling back to
// the custom preset for unknown or empty values.
func PresetForPurpose(purpose model.AccountPurpose) Preset {
	if p, ok := presetsByPurpose[purpose]; ok {
		return p
	}
	return presetsByPurpose[model.PurposeCustom]
}

// DefinitionsForPurpose returns the folder set configured for a purpose.
func DefinitionsForPurpose(purpose model.AccountPurpose) []Definition {
	return PresetForPurpose(purpose).Folders
}
