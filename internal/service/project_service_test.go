package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"prism-brain-be/internal/dto"
	"prism-brain-be/internal/entity"
)

func TestCreateAndShowProject(t *testing.T) {
	stack := newTestStack(t)

	created, err := stack.projectService.Create(context.Background(), &dto.CreateProjectRequest{
		Name: "Usability Study",
	})
	assert.NoError(t, err)

	overview, err := stack.projectService.Show(context.Background(), created.Id)
	assert.NoError(t, err)
	assert.Equal(t, "Usability Study", overview.Name)
	assert.Equal(t, 0, overview.TotalNotes)
	assert.False(t, overview.HasInsights)
}

func TestListProjectsNewestFirst(t *testing.T) {
	stack := newTestStack(t)

	first := stack.newProject("First")
	second := entity.NewProject("Second")
	second.CreatedAt = first.CreatedAt.Add(time.Minute)
	stack.projects.Save(second)

	overviews, err := stack.projectService.List(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, overviews, 2) {
		assert.Equal(t, "Second", overviews[0].Name)
		assert.Equal(t, "First", overviews[1].Name)
	}
}

func TestShowUnknownProject(t *testing.T) {
	stack := newTestStack(t)

	_, err := stack.projectService.Show(context.Background(), entity.NewProject("ghost").Id)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestSynthesizeEndToEnd(t *testing.T) {
	stack := newTestStack(t)
	project := stack.newProject("Mobile Research")

	path := writeDoc(t, "findings.txt",
		"The checkout flow is broken and users think it is a serious problem for the team.\n\n"+
			"Should we consider redesigning the navigation menu for first time mobile users?")

	res, err := stack.ingestService.IngestDocument(context.Background(), &dto.IngestFileRequest{
		ProjectId: project.Id,
		Path:      path,
	})
	assert.NoError(t, err)
	assert.True(t, res.Success)

	report, err := stack.projectService.Synthesize(context.Background(), project.Id)
	assert.NoError(t, err)

	assert.Equal(t, "Mobile Research", report.ProjectName)
	assert.Equal(t, 2, report.TotalNotes)
	assert.Equal(t, 1, report.TotalSources)

	// The pain point is the only high-priority note, so it is the only
	// action item; the question stays medium and out of the list.
	assert.Len(t, report.ActionItems, 1)
	assert.Equal(t, entity.TypePainPoint, report.ActionItems[0].Type)
	assert.Contains(t, report.ActionItems[0].Content, "checkout flow")

	assert.Len(t, report.ByType[entity.TypeQuestion], 1)
	assert.Len(t, report.ByType[entity.TypePainPoint], 1)
	assert.Len(t, report.ByPriority[entity.PriorityHigh], 1)
	assert.Len(t, report.ByPriority[entity.PriorityMedium], 1)

	assert.InDelta(t, 0.775, report.Stats.AvgConfidence, 0.001)

	// Synthesis stores the report on the project.
	overview, err := stack.projectService.Show(context.Background(), project.Id)
	assert.NoError(t, err)
	assert.True(t, overview.HasInsights)
}

func TestSynthesizeUnknownProject(t *testing.T) {
	stack := newTestStack(t)

	_, err := stack.projectService.Synthesize(context.Background(), entity.NewProject("ghost").Id)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestShareWithoutSMTP(t *testing.T) {
	stack := newTestStack(t)
	project := stack.newProject("Shared Study")

	err := stack.projectService.Share(context.Background(), project.Id, &dto.ShareReportRequest{
		Email: "pm@example.com",
	})
	assert.ErrorIs(t, err, ErrSharingDisabled)
}

func TestConsumerRefreshesProject(t *testing.T) {
	stack := newTestStack(t)
	project := stack.newProject("Background Refresh")

	consumer := NewConsumerService(stack.pubSub, stack.topic, stack.projectService)
	assert.NoError(t, consumer.Consume(context.Background()))

	path := writeDoc(t, "findings.txt",
		"The onboarding flow is confusing and new users say it is a real problem to finish signup.")

	res, err := stack.ingestService.IngestDocument(context.Background(), &dto.IngestFileRequest{
		ProjectId: project.Id,
		Path:      path,
	})
	assert.NoError(t, err)
	assert.True(t, res.Success)

	// Ingestion queues a refresh; the consumer synthesizes in the background.
	assert.Eventually(t, func() bool {
		stored, found := stack.projects.Get(project.Id)
		return found && stored.Insights != nil && stored.Insights.TotalNotes == 1
	}, 2*time.Second, 20*time.Millisecond)
}
