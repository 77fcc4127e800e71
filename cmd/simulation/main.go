package main

import (
	"fmt"

	"github.com/fatih/color"

	"prism-brain-be/internal/entity"
	"prism-brain-be/pkg/aggregate"
	"prism-brain-be/pkg/connector"
	"prism-brain-be/pkg/normalize"
	"prism-brain-be/pkg/synthesis"
)

// Offline end-to-end walkthrough of the pipeline: no server, no external
// connectors, just the core packages against canned inputs.
func main() {
	color.Cyan("🚀 Prism Brain Pipeline Simulation\n")

	project := entity.NewProject("Mobile App Research")
	n := normalize.New()

	// 1. A plain-text research summary
	color.Yellow("\n[1] Ingesting plain-text document")
	text := "Users reported that the checkout flow is a serious problem and they find the error messages confusing.\n\n" +
		"Should we explore a simplified navigation structure for the mobile app in the next quarter?"
	textNotes := n.PlainText("findings.txt", text)
	commit(project, textNotes, entity.SourceRecord{
		Type: entity.SourcePlainDocument,
		Name: "findings.txt",
	})
	printNotes(textNotes)

	// 2. An interview transcript
	color.Yellow("\n[2] Ingesting interview transcript")
	segments := []connector.Segment{
		{Start: 12.4, End: 19.0, Text: "I think the search results are great, I love how fast they load"},
		{Start: 31.2, End: 44.8, Text: "We decided the accessibility audit will happen before the redesign"},
	}
	audioNotes := n.Segments("interview.wav", segments)
	commit(project, audioNotes, entity.SourceRecord{
		Type:     entity.SourceAudio,
		Name:     "interview.wav",
		Duration: 44.8,
	})
	printNotes(audioNotes)

	// 3. Synthesize
	color.Yellow("\n[3] Synthesizing report")
	report := synthesis.Synthesize(project)

	color.Green("Project: %s", report.ProjectName)
	color.Green("Notes: %d across %d sources, %d contributors",
		report.TotalNotes, report.TotalSources, report.Contributors)

	fmt.Println("\nThemes:")
	for _, theme := range report.Themes {
		fmt.Printf("  %-15s %d (%.1f%%)\n", theme.Name, theme.Frequency, theme.Percentage)
	}

	fmt.Println("\nAction items:")
	if len(report.ActionItems) == 0 {
		fmt.Println("  (none)")
	}
	for _, item := range report.ActionItems {
		color.Red("  [%s] %s", item.Type, item.Content)
	}

	fmt.Println("\nTimeline:")
	for _, entry := range report.Timeline {
		fmt.Printf("  %s  %-10s %s\n", entry.Timestamp, entry.Contributor, entry.ContentPreview)
	}

	color.Cyan("\n✅ Simulation complete")
}

func commit(project *entity.Project, notes []entity.Note, record entity.SourceRecord) {
	record.NoteCount = len(notes)
	project.Sources = append(project.Sources, record)
	project.Notes = append(project.Notes, notes...)
	aggregate.AppendTimeline(project, notes)
	aggregate.AppendContributors(project, notes)
}

func printNotes(notes []entity.Note) {
	for _, note := range notes {
		fmt.Printf("  %-10s %-6s conf=%.2f tags=%v  %q\n",
			note.PredictedType, note.Priority, note.Confidence, note.Tags, note.Content)
	}
}
