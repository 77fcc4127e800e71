// Package heuristics holds the deterministic content classifier. All
// functions are pure and total: any input text, including empty, yields a
// value from the closed enums.
package heuristics

import (
	"strings"

	"prism-brain-be/internal/constant"
	"prism-brain-be/internal/entity"
)

// Classification pairs a predicted note type with the cascade's confidence.
type Classification struct {
	PredictedType entity.NoteType
	Confidence    float64
}

// Classify runs the ordered rule cascade. First match wins; the order of
// the rules is the contract.
func Classify(text string) Classification {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(text, "?"):
		return Classification{entity.TypeQuestion, 0.8}
	case strings.Contains(text, `"`):
		return Classification{entity.TypeQuote, 0.7}
	case containsAny(lower, constant.PainPointKeywords):
		return Classification{entity.TypePainPoint, 0.75}
	case containsAny(lower, constant.PositiveKeywords):
		return Classification{entity.TypePositive, 0.7}
	case containsAny(lower, constant.IdeaKeywords):
		return Classification{entity.TypeIdea, 0.7}
	default:
		return Classification{entity.TypeNeutral, 0.6}
	}
}

// DetectSentiment counts lexicon hits on both sides; ties favor neutral.
func DetectSentiment(text string) entity.Sentiment {
	lower := strings.ToLower(text)

	pos := countHits(lower, constant.SentimentPositiveLexicon)
	neg := countHits(lower, constant.SentimentNegativeLexicon)

	switch {
	case pos > neg:
		return entity.SentimentPositive
	case neg > pos:
		return entity.SentimentNegative
	default:
		return entity.SentimentNeutral
	}
}

// CalcPriority derives priority from the classification and urgency
// keywords. The pain_point and urgent checks run before the neutral
// fallback; reordering them changes results.
func CalcPriority(text string, c Classification) entity.Priority {
	if c.PredictedType == entity.TypePainPoint {
		return entity.PriorityHigh
	}
	if containsAny(strings.ToLower(text), constant.UrgentKeywords) {
		return entity.PriorityHigh
	}
	if c.PredictedType == entity.TypeNeutral {
		return entity.PriorityLow
	}
	return entity.PriorityMedium
}

// ExtractTags walks the fixed vocabulary in order and stops after
// MaxTagsPerNote matches, so vocabulary order is the tie-break.
func ExtractTags(text string) []string {
	lower := strings.ToLower(text)

	var tags []string
	for _, rule := range constant.TagVocabulary {
		if containsAny(lower, rule.Keywords) {
			tags = append(tags, rule.Tag)
			if len(tags) == constant.MaxTagsPerNote {
				break
			}
		}
	}
	return tags
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func countHits(lower string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	return hits
}
