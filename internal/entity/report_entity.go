package entity

import "time"

// Report is the derived synthesis of a project's current notes. It is
// recomputed wholesale, never incrementally.
type Report struct {
	ProjectName   string                        `json:"project_name"`
	LastUpdated   time.Time                     `json:"last_updated"`
	TotalNotes    int                           `json:"total_notes"`
	TotalSources  int                           `json:"total_sources"`
	Contributors  int                           `json:"contributors"`
	ByType        map[NoteType][]Note           `json:"by_type"`
	ByPriority    map[Priority][]Note           `json:"by_priority"`
	ByContributor map[string]*ContributorRecord `json:"by_contributor"`
	Timeline      []TimelineEntry               `json:"timeline"`
	Themes        []Theme                       `json:"themes"`
	ActionItems   []ActionItem                  `json:"action_items"`
	Stats         ReportStats                   `json:"stats"`
}

// Theme is a tag ranked by frequency across the project's notes.
type Theme struct {
	Name       string  `json:"name"`
	Frequency  int     `json:"frequency"`
	Percentage float64 `json:"percentage"`
}

// ActionItem is a high-priority note surfaced in the report.
type ActionItem struct {
	Content     string   `json:"content"`
	Type        NoteType `json:"type"`
	Contributor string   `json:"contributor"`
	Source      string   `json:"source"`
}

type ReportStats struct {
	SentimentDistribution map[Sentiment]int `json:"sentiment_distribution"`
	AvgConfidence         float64           `json:"avg_confidence"`
}
