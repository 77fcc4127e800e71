package entity

import "time"

type SourceKind string

const (
	SourceFigmaBoard    SourceKind = "figma-board"
	SourceAudio         SourceKind = "audio"
	SourcePDF           SourceKind = "pdf"
	SourceSlideDeck     SourceKind = "slide-deck"
	SourcePlainDocument SourceKind = "plain-document"
)

type NoteType string

const (
	TypeQuestion  NoteType = "question"
	TypeQuote     NoteType = "quote"
	TypePainPoint NoteType = "pain_point"
	TypePositive  NoteType = "positive"
	TypeIdea      NoteType = "idea"
	TypeNeutral   NoteType = "neutral"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// StickyColor is the discrete palette board fills are mapped onto.
type StickyColor string

const (
	ColorRed    StickyColor = "RED"
	ColorOrange StickyColor = "ORANGE"
	ColorYellow StickyColor = "YELLOW"
	ColorGreen  StickyColor = "GREEN"
	ColorBlue   StickyColor = "BLUE"
	ColorPurple StickyColor = "PURPLE"
	ColorPink   StickyColor = "PINK"
	ColorGray   StickyColor = "GRAY"
)

type AudioTone string

const (
	ToneEmphatic    AudioTone = "emphatic"
	ToneQuestioning AudioTone = "questioning"
	ToneNeutral     AudioTone = "neutral"
)

type Position struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Note is the canonical, immutable record for one classified unit of
// content, regardless of which connector produced it.
type Note struct {
	Id            string     `json:"id"`
	Source        SourceKind `json:"source"`
	SourceName    string     `json:"source_name"`
	Content       string     `json:"content"`
	FullText      string     `json:"full_text,omitempty"`
	PredictedType NoteType   `json:"predicted_type"`
	Confidence    float64    `json:"confidence"`
	Contributor   string     `json:"contributor"`
	CreatedAt     time.Time  `json:"created_at"`
	Sentiment     Sentiment  `json:"sentiment"`
	Priority      Priority   `json:"priority"`
	Tags          []string   `json:"tags"`

	// Source-specific extras. Zero values mean "not applicable".
	Color       StickyColor `json:"color,omitempty"`
	Position    *Position   `json:"position,omitempty"`
	Group       string      `json:"group,omitempty"`
	Timestamp   string      `json:"timestamp,omitempty"` // audio offset, e.g. "12.3s"
	AudioTone   AudioTone   `json:"audio_tone,omitempty"`
	FullSegment string      `json:"full_segment,omitempty"`
	PageNumber  int         `json:"page_number,omitempty"`
	SlideNumber int         `json:"slide_number,omitempty"`
}
