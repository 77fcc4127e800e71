package synthesis

import (
	"fmt"
	"testing"
	"time"

	"prism-brain-be/internal/entity"
)

func sampleNote(id string, typ entity.NoteType, prio entity.Priority, tags []string, confidence float64) entity.Note {
	return entity.Note{
		Id:            id,
		Source:        entity.SourcePlainDocument,
		SourceName:    "notes.txt",
		Content:       "content " + id,
		Contributor:   "Dana",
		PredictedType: typ,
		Priority:      prio,
		Sentiment:     entity.SentimentNeutral,
		Confidence:    confidence,
		Tags:          tags,
		CreatedAt:     time.Now(),
	}
}

func TestSynthesizeEmptyProject(t *testing.T) {
	project := entity.NewProject("empty")

	report := Synthesize(project)

	if report.TotalNotes != 0 {
		t.Errorf("TotalNotes = %d", report.TotalNotes)
	}
	if report.Themes == nil || len(report.Themes) != 0 {
		t.Errorf("Themes = %v, want empty slice", report.Themes)
	}
	if report.ActionItems == nil || len(report.ActionItems) != 0 {
		t.Errorf("ActionItems = %v, want empty slice", report.ActionItems)
	}
	if report.Stats.AvgConfidence != 0 {
		t.Errorf("AvgConfidence = %v, want 0", report.Stats.AvgConfidence)
	}
	if project.Insights != report {
		t.Error("report not stored on project")
	}
}

func TestSynthesizeGroupsAndStats(t *testing.T) {
	project := entity.NewProject("study")
	project.Notes = []entity.Note{
		sampleNote("1", entity.TypeQuestion, entity.PriorityMedium, []string{"navigation"}, 0.8),
		sampleNote("2", entity.TypePainPoint, entity.PriorityHigh, []string{"error", "navigation"}, 0.75),
		sampleNote("3", entity.TypeQuestion, entity.PriorityMedium, []string{"mobile"}, 0.8),
	}
	project.Notes[0].Sentiment = entity.SentimentNegative

	report := Synthesize(project)

	if report.TotalNotes != 3 {
		t.Errorf("TotalNotes = %d", report.TotalNotes)
	}
	if got := report.ByType[entity.TypeQuestion]; len(got) != 2 || got[0].Id != "1" || got[1].Id != "3" {
		t.Errorf("ByType[question] order broken: %+v", got)
	}
	if len(report.ByPriority[entity.PriorityHigh]) != 1 {
		t.Errorf("ByPriority[high] = %d entries", len(report.ByPriority[entity.PriorityHigh]))
	}
	if report.Stats.SentimentDistribution[entity.SentimentNegative] != 1 ||
		report.Stats.SentimentDistribution[entity.SentimentNeutral] != 2 {
		t.Errorf("sentiment distribution = %v", report.Stats.SentimentDistribution)
	}
	want := (0.8 + 0.75 + 0.8) / 3
	if diff := report.Stats.AvgConfidence - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("AvgConfidence = %v, want %v", report.Stats.AvgConfidence, want)
	}
}

func TestThemesRankingAndTieBreak(t *testing.T) {
	project := entity.NewProject("themes")
	project.Notes = []entity.Note{
		sampleNote("1", entity.TypeNeutral, entity.PriorityLow, []string{"search", "mobile"}, 0.6),
		sampleNote("2", entity.TypeNeutral, entity.PriorityLow, []string{"mobile"}, 0.6),
		sampleNote("3", entity.TypeNeutral, entity.PriorityLow, []string{"error"}, 0.6),
	}

	report := Synthesize(project)

	if len(report.Themes) != 3 {
		t.Fatalf("themes = %+v", report.Themes)
	}
	// mobile: 2 hits; search and error tie at 1, search was seen first.
	if report.Themes[0].Name != "mobile" || report.Themes[0].Frequency != 2 {
		t.Errorf("top theme = %+v", report.Themes[0])
	}
	if report.Themes[1].Name != "search" || report.Themes[2].Name != "error" {
		t.Errorf("tie-break order = %s, %s", report.Themes[1].Name, report.Themes[2].Name)
	}
	wantPct := float64(2) / 3 * 100
	if diff := report.Themes[0].Percentage - wantPct; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("percentage = %v, want %v", report.Themes[0].Percentage, wantPct)
	}
}

func TestActionItemsCappedAndHighOnly(t *testing.T) {
	project := entity.NewProject("actions")
	for i := 0; i < 25; i++ {
		project.Notes = append(project.Notes,
			sampleNote(fmt.Sprintf("high-%d", i), entity.TypePainPoint, entity.PriorityHigh, nil, 0.75))
	}
	project.Notes = append(project.Notes,
		sampleNote("low", entity.TypeNeutral, entity.PriorityLow, nil, 0.6))

	report := Synthesize(project)

	if len(report.ActionItems) != 20 {
		t.Fatalf("action items = %d, want 20", len(report.ActionItems))
	}
	if report.ActionItems[0].Content != "content high-0" {
		t.Errorf("action items must keep original order, got %q first", report.ActionItems[0].Content)
	}
	for _, item := range report.ActionItems {
		if item.Type != entity.TypePainPoint {
			t.Errorf("unexpected action item type %q", item.Type)
		}
	}
}

func TestSynthesizeIdempotent(t *testing.T) {
	project := entity.NewProject("repeat")
	project.Notes = []entity.Note{
		sampleNote("1", entity.TypeIdea, entity.PriorityMedium, []string{"search"}, 0.7),
	}

	first := Synthesize(project)
	second := Refresh(project)

	if first.TotalNotes != second.TotalNotes || len(first.Themes) != len(second.Themes) {
		t.Errorf("repeated synthesis diverged: %+v vs %+v", first, second)
	}
	if project.Insights != second {
		t.Error("latest report must replace Insights")
	}
}
