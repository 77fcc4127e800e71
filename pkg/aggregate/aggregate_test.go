package aggregate

import (
	"strings"
	"testing"
	"time"

	"prism-brain-be/internal/entity"
)

func noteAt(id string, contributor string, ts time.Time) entity.Note {
	return entity.Note{
		Id:            id,
		Source:        entity.SourcePlainDocument,
		Content:       "note " + id,
		Contributor:   contributor,
		PredictedType: entity.TypeNeutral,
		CreatedAt:     ts,
	}
}

func TestAppendTimelineOrdering(t *testing.T) {
	project := entity.NewProject("test")
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	// Second batch is older than the first; insertion must interleave.
	AppendTimeline(project, []entity.Note{
		noteAt("b1", "Dana", base.Add(2*time.Minute)),
		noteAt("b2", "Dana", base.Add(4*time.Minute)),
	})
	AppendTimeline(project, []entity.Note{
		noteAt("a1", "Avery", base.Add(1*time.Minute)),
		noteAt("a2", "Avery", base.Add(3*time.Minute)),
	})

	if len(project.Timeline) != 4 {
		t.Fatalf("timeline length = %d, want 4", len(project.Timeline))
	}
	wantOrder := []string{"a1", "b1", "a2", "b2"}
	for i, want := range wantOrder {
		if project.Timeline[i].NoteId != want {
			t.Errorf("timeline[%d] = %s, want %s", i, project.Timeline[i].NoteId, want)
		}
	}
	for i := 1; i < len(project.Timeline); i++ {
		if project.Timeline[i-1].Timestamp > project.Timeline[i].Timestamp {
			t.Errorf("timeline not non-decreasing at %d", i)
		}
	}
}

func TestAppendTimelineStableForEqualTimestamps(t *testing.T) {
	project := entity.NewProject("test")
	ts := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	AppendTimeline(project, []entity.Note{
		noteAt("first", "Dana", ts),
		noteAt("second", "Dana", ts),
		noteAt("third", "Dana", ts),
	})

	for i, want := range []string{"first", "second", "third"} {
		if project.Timeline[i].NoteId != want {
			t.Errorf("timeline[%d] = %s, want %s (insertion order for ties)", i, project.Timeline[i].NoteId, want)
		}
	}
}

func TestAppendTimelinePreviewCap(t *testing.T) {
	project := entity.NewProject("test")
	note := noteAt("long", "Dana", time.Now())
	note.Content = strings.Repeat("x", 250)

	AppendTimeline(project, []entity.Note{note})

	if got := len(project.Timeline[0].ContentPreview); got != 100 {
		t.Errorf("preview length = %d, want 100", got)
	}
}

func TestAppendContributors(t *testing.T) {
	project := entity.NewProject("test")
	now := time.Now()

	n1 := noteAt("1", "Dana", now)
	n1.PredictedType = entity.TypeQuestion
	n2 := noteAt("2", "Dana", now)
	n2.PredictedType = entity.TypeQuestion
	n3 := noteAt("3", "Avery", now)
	n3.PredictedType = entity.TypePainPoint

	AppendContributors(project, []entity.Note{n1, n2})
	AppendContributors(project, []entity.Note{n3})

	dana := project.Contributors["Dana"]
	if dana == nil || dana.TotalContributions != 2 || dana.NoteTypes[entity.TypeQuestion] != 2 {
		t.Errorf("Dana record = %+v", dana)
	}
	avery := project.Contributors["Avery"]
	if avery == nil || avery.TotalContributions != 1 || avery.NoteTypes[entity.TypePainPoint] != 1 {
		t.Errorf("Avery record = %+v", avery)
	}
}
