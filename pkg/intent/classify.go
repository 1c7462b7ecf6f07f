package intent

import (
	"strings"
	"unicode/utf8"
)

const (
	// PromptAmbiguousBook is asked when the input is just "book": it can mean
	// reading one or booking a slot.
	PromptAmbiguousBook = "Is this a task (read a book) or an appointment (book a slot)?"

	// PromptTooShort is asked when the input carries too little content to act on.
	PromptTooShort = "Could you be more specific?"

	// minContentRunes is the minimal-content threshold for ambiguity flagging.
	minContentRunes = 4
)

// DetectAmbiguity flags inputs that need a follow-up question before they can
// become a useful task. Independent of category detection; both always run.
func DetectAmbiguity(text string) (bool, string) {
	lower := strings.ToLower(text)
	trimmed := strings.TrimSpace(lower)

	if trimmed == "book" || (strings.Contains(lower, "book") && len(strings.Fields(lower)) < 3) {
		return true, PromptAmbiguousBook
	}

	if utf8.RuneCountInString(trimmed) < minContentRunes {
		return true, PromptTooShort
	}

	return false, ""
}
