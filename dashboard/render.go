package dashboard

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/template/html/v2"

	"github.com/SamuelLeutner/student-risk-dashboard/models"
	"github.com/SamuelLeutner/student-risk-dashboard/views"
)

// Renderer projects view-models into list containers. Both render methods
// clear the container first, so calling them again replaces the list.
type Renderer struct {
	engine *html.Engine
}

func NewRenderer(engine *html.Engine) *Renderer {
	return &Renderer{engine: engine}
}

// RenderDetailedList fills the management container with one addressable
// item per student, in input order.
func (r *Renderer) RenderDetailedList(container *goquery.Selection, students []models.StudentViewModel) error {
	return r.renderList(container, views.DetailedItem, students)
}

// RenderSummaryList fills the dashboard container. Callers filter the list
// first; see HighRisk.
func (r *Renderer) RenderSummaryList(container *goquery.Selection, students []models.StudentViewModel) error {
	return r.renderList(container, views.SummaryItem, students)
}

func (r *Renderer) renderList(container *goquery.Selection, fragment string, students []models.StudentViewModel) error {
	container.Empty()

	var buf bytes.Buffer
	for i, student := range students {
		buf.Reset()
		if err := r.engine.Render(&buf, fragment, student); err != nil {
			return fmt.Errorf("failed to render %s for student %d: %w", fragment, i, err)
		}
		container.AppendHtml(buf.String())
	}
	return nil
}

// HighRisk keeps at most limit students whose risk is "Alto", in order.
func HighRisk(students []models.StudentViewModel, limit int) []models.StudentViewModel {
	if limit < 0 {
		limit = 0
	}
	selected := make([]models.StudentViewModel, 0, limit)
	for _, s := range students {
		if len(selected) >= limit {
			break
		}
		if s.IsHighRisk() {
			selected = append(selected, s)
		}
	}
	return selected
}
