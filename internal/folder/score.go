package folder

import (
	"sort"
	"strings"
)

// Fallback and bound constants for match confidence.
const (
	minConfidence      = 0.3
	maxConfidence      = 1.0
	fallbackConfidence = 0.5
	fallbackFolderName = "Personal"
)

// Match is one qualifying folder for a piece of text.
type Match struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Icon       string  `json:"icon"`
	Color      string  `json:"color"`
}

// Score ranks the given folder set against the text. Folders with no keyword
// hit are dropped; confidence is hits over the keyword count capped at 3,
// floored at 0.3 and clamped to 1.0. Ties keep definition order (stable
// sort). An empty result falls back to the Personal folder (or the first
// definition) at 0.5.
func Score(text string, defs []Definition) []Match {
	lower := strings.ToLower(text)
	matches := make([]Match, 0, len(defs))

	for _, def := range defs {
		hits := 0
		for _, kw := range def.Keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}

		denom := len(def.Keywords)
		if denom > 3 {
			denom = 3
		}
		confidence := float64(hits) / float64(denom)
		if confidence < minConfidence {
			confidence = minConfidence
		}
		if confidence > maxConfidence {
			confidence = maxConfidence
		}

		matches = append(matches, Match{
			Name:       def.Name,
			Confidence: confidence,
			Icon:       def.Icon,
			Color:      def.Color,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})

	if len(matches) == 0 && len(defs) > 0 {
		fb := defs[0]
		for _, def := range defs {
			if def.Name == fallbackFolderName {
				fb = def
				break
			}
		}
		matches = append(matches, Match{
			Name:       fb.Name,
			Confidence: fallbackConfidence,
			Icon:       fb.Icon,
			Color:      fb.Color,
		})
	}

	return matches
}
