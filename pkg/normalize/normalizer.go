// Package normalize converts connector-supplied raw items into canonical
// Notes. It owns all per-source specialization: board traversal and color
// mapping, speech tone and insight labeling, paragraph and slide filters.
package normalize

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"prism-brain-be/internal/constant"
	"prism-brain-be/internal/entity"
	"prism-brain-be/pkg/connector"
	"prism-brain-be/pkg/heuristics"
	"prism-brain-be/pkg/utils"
)

type Normalizer struct {
	now func() time.Time
}

func New() *Normalizer {
	return &Normalizer{now: time.Now}
}

// NewWithClock pins ingestion timestamps, for tests.
func NewWithClock(now func() time.Time) *Normalizer {
	return &Normalizer{now: now}
}

// build fills the classifier-derived fields shared by every source kind.
// Content is capped for display; callers keep long-form text in FullText.
func (n *Normalizer) build(id string, source entity.SourceKind, sourceName, content, contributor string) entity.Note {
	c := heuristics.Classify(content)
	return entity.Note{
		Id:            id,
		Source:        source,
		SourceName:    sourceName,
		Content:       utils.Truncate(content, constant.DisplayContentLimit),
		PredictedType: c.PredictedType,
		Confidence:    c.Confidence,
		Contributor:   contributor,
		CreatedAt:     n.now(),
		Sentiment:     heuristics.DetectSentiment(content),
		Priority:      heuristics.CalcPriority(content, c),
		Tags:          heuristics.ExtractTags(content),
	}
}

// Segments turns transcription segments into notes. Segments under the
// minimum trimmed length are discarded; each surviving segment yields one
// labeled insight note.
func (n *Normalizer) Segments(fileName string, segments []connector.Segment) []entity.Note {
	var notes []entity.Note
	for i, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if utf8.RuneCountInString(text) < constant.MinSegmentLength {
			continue
		}

		point := LabelInsight(text)
		note := n.build(
			fmt.Sprintf("audio_%s_%d_%d", fileName, i, len(notes)),
			entity.SourceAudio, fileName, point, "Speaker",
		)
		note.FullSegment = text
		note.Timestamp = fmt.Sprintf("%.1fs", seg.Start)
		note.AudioTone = DetectTone(text)
		notes = append(notes, note)
	}
	return notes
}

// DetectTone gives a coarse read of how a segment was spoken.
func DetectTone(text string) entity.AudioTone {
	if strings.Contains(text, "!") || isAllUpper(text) {
		return entity.ToneEmphatic
	}
	if strings.Contains(text, "?") {
		return entity.ToneQuestioning
	}
	return entity.ToneNeutral
}

func isAllUpper(text string) bool {
	return strings.ToUpper(text) == text && strings.ToLower(text) != text
}

// LabelInsight prefixes a segment with its insight label. Rules run in
// priority order; first match wins.
func LabelInsight(text string) string {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, constant.SpeechPainKeywords):
		return "Pain point: " + text
	case strings.Contains(text, "?"):
		return "Question: " + text
	case containsAny(lower, constant.SpeechDecisionKeywords):
		return "Decision: " + text
	case strings.Contains(text, `"`):
		return "Quote: " + text
	default:
		return text
	}
}

// PDFPages converts per-page extracted text into notes, one per paragraph
// that clears the length filter. The trailing id component is a running
// index across the whole document.
func (n *Normalizer) PDFPages(fileName string, pages []string) []entity.Note {
	var notes []entity.Note
	for pageIdx, pageText := range pages {
		pageNum := pageIdx + 1
		for _, para := range utils.SplitParagraphs(pageText, constant.MinParagraphLength) {
			note := n.build(
				fmt.Sprintf("pdf_%s_p%d_%d", fileName, pageNum, len(notes)),
				entity.SourcePDF, fileName, para, "Author",
			)
			note.FullText = para
			note.PageNumber = pageNum
			notes = append(notes, note)
		}
	}
	return notes
}

// Slides converts per-slide concatenated text into notes, keeping only
// slides with enough combined text to classify.
func (n *Normalizer) Slides(fileName string, slides []string) []entity.Note {
	var notes []entity.Note
	for slideIdx, text := range slides {
		slideNum := slideIdx + 1
		if utf8.RuneCountInString(text) <= constant.MinSlideTextLength {
			continue
		}
		note := n.build(
			fmt.Sprintf("ppt_%s_s%d", fileName, slideNum),
			entity.SourceSlideDeck, fileName, text, "Presenter",
		)
		note.FullText = text
		note.SlideNumber = slideNum
		notes = append(notes, note)
	}
	return notes
}

// PlainText splits a whole document on blank lines and keeps substantial
// paragraphs.
func (n *Normalizer) PlainText(fileName, text string) []entity.Note {
	var notes []entity.Note
	for i, para := range utils.SplitParagraphs(text, constant.MinParagraphLength) {
		note := n.build(
			fmt.Sprintf("txt_%s_%d", fileName, i),
			entity.SourcePlainDocument, fileName, para, "Author",
		)
		note.FullText = para
		notes = append(notes, note)
	}
	return notes
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
