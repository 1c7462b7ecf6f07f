// Package intent converts free-form natural-language text (typed, voice
// transcripts, OCR output) into a structured task intent: category, optional
// due timestamp, and an ambiguity flag. It is a fixed rule engine: no
// timezone disambiguation, no learning, no full calendar grammar.
package intent

import "time"

// Parse runs the full pipeline: lexical signals, then date resolution and
// the two classifications. Pure; now is the injected reference instant.
func Parse(text string, now time.Time) ParsedIntent {
	sig := ExtractSignals(text)
	clarify, prompt := DetectAmbiguity(text)

	return ParsedIntent{
		Title:                 text,
		Description:           text,
		Category:              sig.Category,
		DueAt:                 ResolveDue(sig, now),
		RequiresClarification: clarify,
		ClarificationPrompt:   prompt,
	}
}
