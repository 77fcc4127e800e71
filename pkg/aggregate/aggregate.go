// Package aggregate maintains the per-project timeline and contributor
// ledger. Both operations append incrementally; nothing here ever removes
// or rewrites existing entries.
package aggregate

import (
	"sort"
	"time"

	"prism-brain-be/internal/constant"
	"prism-brain-be/internal/entity"
	"prism-brain-be/pkg/utils"
)

// AppendTimeline adds one entry per note, keeping the timeline ascending
// by its RFC3339 timestamp string. Entries are placed by binary insertion
// at the upper bound of equal timestamps, so insertion order is preserved
// for ties and no full re-sort is needed per batch.
func AppendTimeline(project *entity.Project, notes []entity.Note) {
	for _, note := range notes {
		entry := entity.TimelineEntry{
			Timestamp:      note.CreatedAt.UTC().Format(time.RFC3339),
			Contributor:    note.Contributor,
			ContentPreview: utils.Truncate(note.Content, constant.TimelinePreviewLimit),
			NoteId:         note.Id,
			Source:         note.Source,
		}

		idx := sort.Search(len(project.Timeline), func(i int) bool {
			return project.Timeline[i].Timestamp > entry.Timestamp
		})
		project.Timeline = append(project.Timeline, entity.TimelineEntry{})
		copy(project.Timeline[idx+1:], project.Timeline[idx:])
		project.Timeline[idx] = entry
	}
}

// AppendContributors bumps each note contributor's totals, creating the
// record on first sight.
func AppendContributors(project *entity.Project, notes []entity.Note) {
	if project.Contributors == nil {
		project.Contributors = make(map[string]*entity.ContributorRecord)
	}
	for _, note := range notes {
		record, ok := project.Contributors[note.Contributor]
		if !ok {
			record = &entity.ContributorRecord{NoteTypes: make(map[entity.NoteType]int)}
			project.Contributors[note.Contributor] = record
		}
		record.TotalContributions++
		record.NoteTypes[note.PredictedType]++
	}
}
