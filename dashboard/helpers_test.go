package dashboard

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/require"

	"github.com/SamuelLeutner/student-risk-dashboard/models"
	"github.com/SamuelLeutner/student-risk-dashboard/services"
	"github.com/SamuelLeutner/student-risk-dashboard/views"
)

type fakeSource struct {
	records []models.RawRecord
	err     error
	calls   int
}

func (f *fakeSource) FetchStudents(ctx context.Context) ([]models.RawRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

func rawRecords(names ...string) []models.RawRecord {
	records := make([]models.RawRecord, len(names))
	for i, name := range names {
		id := i + 1
		n := name
		records[i] = models.RawRecord{ID: &id, Name: &n}
	}
	return records
}

func students(names ...string) []models.StudentViewModel {
	return services.Enrich(rawRecords(names...))
}

func testEngine(t *testing.T) *html.Engine {
	t.Helper()
	engine, err := views.New()
	require.NoError(t, err)
	return engine
}

func loadPage(t *testing.T, source StudentSource) *Page {
	t.Helper()
	pipeline := NewPipeline(source, testEngine(t), DefaultShell, 2)
	page, err := pipeline.Load(context.Background())
	require.NoError(t, err)
	return page
}

func pageFromHTML(t *testing.T, markup string) *Page {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return NewPage(doc)
}

type recorder struct {
	messages []string
}

func (r *recorder) Notify(message string) {
	r.messages = append(r.messages, message)
}
