package normalize

import (
	"strings"
	"testing"
	"time"

	"prism-brain-be/internal/entity"
	"prism-brain-be/pkg/connector"
)

func testNormalizer() *Normalizer {
	fixed := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return NewWithClock(func() time.Time { return fixed })
}

func TestDetectTone(t *testing.T) {
	tests := []struct {
		text string
		want entity.AudioTone
	}{
		{"This is completely unacceptable!", entity.ToneEmphatic},
		{"WE NEED TO SHIP THIS", entity.ToneEmphatic},
		{"Should we revisit the roadmap?", entity.ToneQuestioning},
		{"We talked about the onboarding flow", entity.ToneNeutral},
	}
	for _, tt := range tests {
		if got := DetectTone(tt.text); got != tt.want {
			t.Errorf("DetectTone(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestLabelInsight(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantPrefix string
	}{
		{"pain beats question", "The problem is, where do we even start?", "Pain point: "},
		{"question", "Where do we even start?", "Question: "},
		{"decision", "We agreed to ship on Friday", "Decision: "},
		{"quote", `He said "this saves me an hour a day"`, "Quote: "},
		{"unlabeled passthrough", "General discussion about roadmap", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LabelInsight(tt.text)
			if tt.wantPrefix == "" {
				if got != tt.text {
					t.Errorf("LabelInsight(%q) = %q, want passthrough", tt.text, got)
				}
				return
			}
			if got != tt.wantPrefix+tt.text {
				t.Errorf("LabelInsight(%q) = %q, want prefix %q", tt.text, got, tt.wantPrefix)
			}
		})
	}
}

func TestSegments(t *testing.T) {
	n := testNormalizer()
	segments := []connector.Segment{
		{Start: 0.0, Text: "  hi  "}, // under 10 chars after trim, dropped
		{Start: 4.25, Text: "The export problem keeps coming back"},
		{Start: 11.0, Text: "We agreed to ship on Friday"},
	}

	notes := n.Segments("standup.wav", segments)
	if len(notes) != 2 {
		t.Fatalf("got %d notes, want 2", len(notes))
	}

	first := notes[0]
	if first.Id != "audio_standup.wav_1_0" {
		t.Errorf("id = %q", first.Id)
	}
	if first.Source != entity.SourceAudio || first.Contributor != "Speaker" {
		t.Errorf("source/contributor = %q/%q", first.Source, first.Contributor)
	}
	if first.Timestamp != "4.2s" {
		t.Errorf("timestamp = %q, want 4.2s", first.Timestamp)
	}
	if !strings.HasPrefix(first.Content, "Pain point: ") {
		t.Errorf("content = %q, want Pain point label", first.Content)
	}
	if first.FullSegment != "The export problem keeps coming back" {
		t.Errorf("full segment = %q", first.FullSegment)
	}
	if notes[1].Id != "audio_standup.wav_2_1" {
		t.Errorf("second id = %q", notes[1].Id)
	}
}

func TestLengthFiltersCountRunes(t *testing.T) {
	n := testNormalizer()

	// 10 two-byte runes: meets the segment minimum by character count,
	// which a byte count would also pass at 5 characters.
	segments := []connector.Segment{
		{Start: 0.0, Text: "Почини это"},
		{Start: 2.0, Text: "Почини эт"}, // 9 runes, dropped
	}
	if got := n.Segments("intervju.wav", segments); len(got) != 1 {
		t.Fatalf("segments: got %d notes, want 1", len(got))
	}

	slides := []string{
		strings.Repeat("ф", 21), // over the slide minimum
		strings.Repeat("ф", 20), // at the minimum, dropped
	}
	if got := n.Slides("plan.pptx", slides); len(got) != 1 {
		t.Fatalf("slides: got %d notes, want 1", len(got))
	}
}

func TestPDFPages(t *testing.T) {
	n := testNormalizer()
	long1 := "A critical error in the login flow keeps users locked out of the app."
	long2 := "What if we added a search shortcut to the navigation header for power users?"
	pages := []string{
		long1 + "\n\nshort para",
		"", // extraction failure placeholder keeps page numbers aligned
		long2,
	}

	notes := n.PDFPages("research.pdf", pages)
	if len(notes) != 2 {
		t.Fatalf("got %d notes, want 2", len(notes))
	}
	if notes[0].Id != "pdf_research.pdf_p1_0" || notes[0].PageNumber != 1 {
		t.Errorf("first note id/page = %q/%d", notes[0].Id, notes[0].PageNumber)
	}
	if notes[1].Id != "pdf_research.pdf_p3_1" || notes[1].PageNumber != 3 {
		t.Errorf("second note id/page = %q/%d", notes[1].Id, notes[1].PageNumber)
	}
	if notes[0].FullText != long1 {
		t.Errorf("full text not retained")
	}
}

func TestSlides(t *testing.T) {
	n := testNormalizer()
	slides := []string{
		"Roadmap",
		"Q3 priorities: fix the broken export and improve loading time",
	}

	notes := n.Slides("kickoff.pptx", slides)
	if len(notes) != 1 {
		t.Fatalf("got %d notes, want 1", len(notes))
	}
	if notes[0].Id != "ppt_kickoff.pptx_s2" || notes[0].SlideNumber != 2 {
		t.Errorf("id/slide = %q/%d", notes[0].Id, notes[0].SlideNumber)
	}
	if notes[0].Contributor != "Presenter" || notes[0].Source != entity.SourceSlideDeck {
		t.Errorf("contributor/source = %q/%q", notes[0].Contributor, notes[0].Source)
	}
}

func TestPlainTextTruncation(t *testing.T) {
	n := testNormalizer()
	long := strings.Repeat("broken checkout flow frustrates users badly. ", 10) // ~450 chars

	notes := n.PlainText("feedback.txt", long)
	if len(notes) != 1 {
		t.Fatalf("got %d notes, want 1", len(notes))
	}
	if len([]rune(notes[0].Content)) != 200 {
		t.Errorf("content length = %d, want 200", len([]rune(notes[0].Content)))
	}
	if notes[0].FullText != strings.TrimSpace(long) {
		t.Errorf("full text should keep the untruncated paragraph")
	}
}

func TestNoteInvariants(t *testing.T) {
	n := testNormalizer()

	types := map[entity.NoteType]bool{
		entity.TypeQuestion: true, entity.TypeQuote: true, entity.TypePainPoint: true,
		entity.TypePositive: true, entity.TypeIdea: true, entity.TypeNeutral: true,
	}
	sentiments := map[entity.Sentiment]bool{
		entity.SentimentPositive: true, entity.SentimentNegative: true, entity.SentimentNeutral: true,
	}
	priorities := map[entity.Priority]bool{
		entity.PriorityHigh: true, entity.PriorityMedium: true, entity.PriorityLow: true,
	}

	var notes []entity.Note
	notes = append(notes, n.PlainText("a.txt", strings.Repeat("love great nav mobile slow search broken bug a11y! ", 3))...)
	notes = append(notes, n.Segments("b.wav", []connector.Segment{{Start: 1, Text: "why is this so difficult to use?"}})...)
	notes = append(notes, n.Slides("c.pptx", []string{"excellent quarter, great team, all targets hit"})...)

	if len(notes) == 0 {
		t.Fatal("expected notes")
	}
	for _, note := range notes {
		if !types[note.PredictedType] {
			t.Errorf("note %s: type %q outside enum", note.Id, note.PredictedType)
		}
		if !sentiments[note.Sentiment] {
			t.Errorf("note %s: sentiment %q outside enum", note.Id, note.Sentiment)
		}
		if !priorities[note.Priority] {
			t.Errorf("note %s: priority %q outside enum", note.Id, note.Priority)
		}
		if note.Confidence < 0 || note.Confidence > 1 {
			t.Errorf("note %s: confidence %v out of range", note.Id, note.Confidence)
		}
		if len(note.Tags) > 3 {
			t.Errorf("note %s: %d tags", note.Id, len(note.Tags))
		}
		if note.CreatedAt.IsZero() {
			t.Errorf("note %s: zero CreatedAt", note.Id)
		}
	}
}
