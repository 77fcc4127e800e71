package entity

import (
	"time"

	"github.com/google/uuid"
)

// Project is the unit of mutation for all ingestion calls. Everything is
// append-only within a process lifetime, except Insights and LastUpdated
// which are overwritten wholesale.
type Project struct {
	Id           uuid.UUID                     `json:"id"`
	Name         string                        `json:"name"`
	CreatedAt    time.Time                     `json:"created_at"`
	Sources      []SourceRecord                `json:"sources"`
	Notes        []Note                        `json:"notes"`
	Connections  []Connection                  `json:"connections"`
	Diagrams     []Shape                       `json:"diagrams"`
	Timeline     []TimelineEntry               `json:"timeline"`
	Contributors map[string]*ContributorRecord `json:"contributors"`
	Insights     *Report                       `json:"insights,omitempty"`
	LastUpdated  time.Time                     `json:"last_updated"`
}

func NewProject(name string) *Project {
	now := time.Now()
	return &Project{
		Id:           uuid.New(),
		Name:         name,
		CreatedAt:    now,
		Contributors: make(map[string]*ContributorRecord),
		LastUpdated:  now,
	}
}

// SourceRecord summarizes one ingestion call.
type SourceRecord struct {
	Type            SourceKind `json:"type"`
	Name            string     `json:"name"`
	URL             string     `json:"url,omitempty"`
	AddedAt         time.Time  `json:"added_at"`
	NoteCount       int        `json:"note_count"`
	ConnectionCount int        `json:"connection_count,omitempty"`
	DiagramCount    int        `json:"diagram_count,omitempty"`
	Pages           int        `json:"pages,omitempty"`
	Slides          int        `json:"slides,omitempty"`
	Duration        float64    `json:"duration,omitempty"` // seconds
}

// Connection is an arrow edge between two board notes.
type Connection struct {
	FromNote     string     `json:"from_note"`
	ToNote       string     `json:"to_note"`
	Relationship string     `json:"relationship"`
	Source       SourceKind `json:"source"`
}

type Shape struct {
	Id       string    `json:"id"`
	Kind     string    `json:"kind"` // rectangle | ellipse | text
	Content  string    `json:"content,omitempty"`
	Position *Position `json:"position,omitempty"`
}

// TimelineEntry timestamps are RFC3339 strings so chronological order is
// plain string order.
type TimelineEntry struct {
	Timestamp      string     `json:"timestamp"`
	Contributor    string     `json:"contributor"`
	ContentPreview string     `json:"content_preview"`
	NoteId         string     `json:"note_id"`
	Source         SourceKind `json:"source"`
}

type ContributorRecord struct {
	TotalContributions int              `json:"total_contributions"`
	NoteTypes          map[NoteType]int `json:"note_types"`
}
