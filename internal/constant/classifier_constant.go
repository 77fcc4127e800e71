package constant

// Keyword tables driving the heuristic classifier. Slice order is the
// contract: cascades and tag extraction evaluate these in order, first
// match wins.

var (
	PainPointKeywords = []string{"problem", "issue", "error", "broken"}
	PositiveKeywords  = []string{"love", "great", "awesome", "excellent"}
	IdeaKeywords      = []string{"could", "should", "what if", "idea"}
	UrgentKeywords    = []string{"critical", "urgent", "blocker"}

	SentimentPositiveLexicon = []string{"love", "great", "good", "excellent"}
	SentimentNegativeLexicon = []string{"hate", "bad", "terrible", "broken"}
)

// TagRule maps one tag to the keywords that trigger it.
type TagRule struct {
	Tag      string
	Keywords []string
}

// TagVocabulary is ordered: when more than MaxTagsPerNote tags would match,
// the earliest entries win.
var TagVocabulary = []TagRule{
	{Tag: "navigation", Keywords: []string{"navigation", "nav", "menu"}},
	{Tag: "mobile", Keywords: []string{"mobile", "phone"}},
	{Tag: "performance", Keywords: []string{"slow", "fast", "loading"}},
	{Tag: "accessibility", Keywords: []string{"accessibility", "a11y"}},
	{Tag: "search", Keywords: []string{"search", "find"}},
	{Tag: "error", Keywords: []string{"error", "bug", "broken"}},
}

const MaxTagsPerNote = 3

// Speech insight labeling keywords (normalizer, first match wins).
var (
	SpeechPainKeywords     = []string{"problem", "issue", "difficult"}
	SpeechDecisionKeywords = []string{"decided", "agreed", "will"}
)

const (
	// Normalizer thresholds.
	DisplayContentLimit   = 200
	TimelinePreviewLimit  = 100
	MinSegmentLength      = 10
	MinParagraphLength    = 50
	MinSlideTextLength    = 20
	MaxThemes             = 10
	MaxActionItems        = 20
)
