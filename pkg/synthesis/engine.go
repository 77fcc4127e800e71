// Package synthesis derives the project report. Synthesize is a function
// of the project's current notes, sources, contributors and timeline only;
// it carries no state between invocations and recomputes everything
// wholesale each time.
package synthesis

import (
	"sort"

	"prism-brain-be/internal/constant"
	"prism-brain-be/internal/entity"
)

// Synthesize computes the report, stores it as the project's Insights and
// returns it. Re-invoking overwrites the previous report.
func Synthesize(project *entity.Project) *entity.Report {
	notes := project.Notes

	byType := make(map[entity.NoteType][]entity.Note)
	byPriority := make(map[entity.Priority][]entity.Note)
	sentiments := make(map[entity.Sentiment]int)
	confidenceSum := 0.0

	for _, note := range notes {
		byType[note.PredictedType] = append(byType[note.PredictedType], note)
		byPriority[note.Priority] = append(byPriority[note.Priority], note)
		sentiments[note.Sentiment]++
		confidenceSum += note.Confidence
	}

	avgConfidence := 0.0
	if len(notes) > 0 {
		avgConfidence = confidenceSum / float64(len(notes))
	}

	report := &entity.Report{
		ProjectName:   project.Name,
		LastUpdated:   project.LastUpdated,
		TotalNotes:    len(notes),
		TotalSources:  len(project.Sources),
		Contributors:  len(project.Contributors),
		ByType:        byType,
		ByPriority:    byPriority,
		ByContributor: project.Contributors,
		Timeline:      project.Timeline,
		Themes:        topThemes(notes),
		ActionItems:   actionItems(byPriority[entity.PriorityHigh]),
		Stats: entity.ReportStats{
			SentimentDistribution: sentiments,
			AvgConfidence:         avgConfidence,
		},
	}

	project.Insights = report
	return report
}

// Refresh re-runs synthesis; it exists so callers can express intent.
func Refresh(project *entity.Project) *entity.Report {
	return Synthesize(project)
}

// topThemes ranks the flattened tags by frequency, ties broken by
// first-seen order, capped at MaxThemes. Percentage is relative to the
// note count, not the tag count.
func topThemes(notes []entity.Note) []entity.Theme {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string

	pos := 0
	for _, note := range notes {
		for _, tag := range note.Tags {
			if _, ok := counts[tag]; !ok {
				firstSeen[tag] = pos
				order = append(order, tag)
			}
			counts[tag]++
			pos++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})
	if len(order) > constant.MaxThemes {
		order = order[:constant.MaxThemes]
	}

	themes := make([]entity.Theme, 0, len(order))
	for _, tag := range order {
		themes = append(themes, entity.Theme{
			Name:       tag,
			Frequency:  counts[tag],
			Percentage: float64(counts[tag]) / float64(len(notes)) * 100,
		})
	}
	return themes
}

// actionItems projects the high-priority notes, in original note order,
// truncated to MaxActionItems.
func actionItems(highPriority []entity.Note) []entity.ActionItem {
	if len(highPriority) > constant.MaxActionItems {
		highPriority = highPriority[:constant.MaxActionItems]
	}
	items := make([]entity.ActionItem, 0, len(highPriority))
	for _, note := range highPriority {
		items = append(items, entity.ActionItem{
			Content:     note.Content,
			Type:        note.PredictedType,
			Contributor: note.Contributor,
			Source:      note.SourceName,
		})
	}
	return items
}
