package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamuelLeutner/student-risk-dashboard/services"
)

func TestPipelineLoad(t *testing.T) {
	source := &fakeSource{records: rawRecords("Ana", "Bruno", "Caio", "Dora", "Edu", "Fabi", "Gil")}
	page := loadPage(t, source)
	doc := page.Document()

	assert.Equal(t, 1, source.calls)
	assert.Equal(t, 7, page.Students())
	assert.Equal(t, "7", doc.Find(".metric-card.blue .metric-number").Text())
	assert.Equal(t, "3", doc.Find(".metric-card.red .metric-number").Text())
	assert.Equal(t, 7, doc.Find(ManagementListSelector+" .student-item").Length())
	assert.Equal(t, 2, doc.Find(SummaryListSelector+" .student-item").Length())
	assert.Empty(t, page.Outbox().Drain())

	assert.Equal(t, 14, page.Bound(doc.Find(ManagementListSelector+" .intervention-action")))
	assert.Equal(t, 4, page.Bound(doc.Find(SummaryListSelector+" button")))
	assert.Equal(t, 3, page.Bound(doc.Find(SolutionCardSelector)))
}

func TestPipelineLoadFetchFailure(t *testing.T) {
	source := &fakeSource{err: &services.FetchError{URL: "http://records", StatusCode: 503, Err: errors.New("down")}}
	page := loadPage(t, source)
	doc := page.Document()

	assert.Equal(t, []string{FetchFailureMessage}, page.Outbox().Drain())
	assert.Zero(t, page.Students())
	assert.Zero(t, doc.Find(".student-item").Length())
	assert.Equal(t, "0", doc.Find(".metric-card.blue .metric-number").Text())

	assert.Zero(t, page.Bound(doc.Find(SolutionCardSelector)))
	assert.Equal(t, 3, page.Bound(doc.Find(".program-action")))
	assert.Equal(t, 5, page.Bound(doc.Find(".report-action, .report-action-small")))
}

func TestPipelineLoadEmptyList(t *testing.T) {
	page := loadPage(t, &fakeSource{records: rawRecords()})

	assert.Zero(t, page.Students())
	assert.Zero(t, page.Document().Find(".student-item").Length())
	assert.Empty(t, page.Outbox().Drain())
}

func TestPipelineReloadBuildsIndependentPages(t *testing.T) {
	source := &fakeSource{records: rawRecords("Ana", "Bruno")}
	pipeline := NewPipeline(source, testEngine(t), DefaultShell, 2)

	first, err := pipeline.Load(context.Background())
	require.NoError(t, err)
	source.records = rawRecords("Caio")
	second, err := pipeline.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, first.Document().Find(ManagementListSelector+" .student-item").Length())
	assert.Equal(t, 1, second.Document().Find(ManagementListSelector+" .student-item").Length())
	assert.Equal(t, "Caio", second.Document().Find(ManagementListSelector+" strong").First().Text())
}

func TestPipelineRenderSkipsMissingContainers(t *testing.T) {
	page := pageFromHTML(t, `<div id="student-management-list"></div>`)
	pipeline := NewPipeline(&fakeSource{}, testEngine(t), DefaultShell, 2)

	n, err := pipeline.render(page, students("Ana", "Bruno"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, page.Document().Find(".student-item").Length())
}

func TestPipelineReloadBindsEveryRenderedControl(t *testing.T) {
	source := &fakeSource{records: rawRecords("Ana", "Bruno")}
	pipeline := NewPipeline(source, testEngine(t), DefaultShell, 2)

	_, err := pipeline.Load(context.Background())
	require.NoError(t, err)
	source.records = rawRecords("Caio", "Dora", "Edu")
	page, err := pipeline.Load(context.Background())
	require.NoError(t, err)
	page.Outbox().Drain()

	buttons := page.Document().Find(ManagementListSelector + " .intervention-action")
	require.Equal(t, 6, buttons.Length())
	assert.Equal(t, 6, page.Bound(buttons))

	require.NoError(t, page.ClickSelector(ManagementListSelector+` [data-action="detalhes"]`, 2))
	assert.Equal(t, []string{"[API] Visualizando detalhes de Edu (API ID: 3)."}, page.Outbox().Drain())
}
