package dashboard

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/template/html/v2"

	"github.com/SamuelLeutner/student-risk-dashboard/models"
	"github.com/SamuelLeutner/student-risk-dashboard/services"
	"github.com/SamuelLeutner/student-risk-dashboard/views"
)

const FetchFailureMessage = "Falha ao carregar dados da API."

const (
	totalMetricSelector    = ".metric-card.blue .metric-number"
	highRiskMetricSelector = ".metric-card.red .metric-number"
)

// StudentSource supplies the raw records. *services.StudentsClient is the
// production implementation.
type StudentSource interface {
	FetchStudents(ctx context.Context) ([]models.RawRecord, error)
}

type ReportEntry struct {
	Name   string
	Action string
	Label  string
}

// ShellData is the static content of the page shell.
type ShellData struct {
	Title    string
	Bars     []string
	Programs []string
	Reports  []ReportEntry
	History  []ReportEntry
}

var DefaultShell = ShellData{
	Title:    "Painel de Risco de Evasão",
	Bars:     []string{"40%", "65%", "30%", "80%", "55%"},
	Programs: []string{"Mentoria Acadêmica", "Apoio Financeiro", "Acolhimento Psicopedagógico"},
	Reports: []ReportEntry{
		{Name: "Relatório de Evasão Semestral", Action: ActionDownload, Label: "Baixar"},
		{Name: "Análise Preditiva Premium", Action: ActionPreview, Label: "Visualizar"},
		{Name: "Mapa de Risco por Curso", Action: ActionGenerate, Label: "Gerar"},
	},
	History: []ReportEntry{
		{Name: "Evasão 2024.1", Action: ActionDownload, Label: "Baixar"},
		{Name: "Evasão 2023.2", Action: ActionPreview, Label: "Ver"},
	},
}

type Pipeline struct {
	source        StudentSource
	engine        *html.Engine
	renderer      *Renderer
	shell         ShellData
	highRiskLimit int
}

func NewPipeline(source StudentSource, engine *html.Engine, shell ShellData, highRiskLimit int) *Pipeline {
	return &Pipeline{
		source:        source,
		engine:        engine,
		renderer:      NewRenderer(engine),
		shell:         shell,
		highRiskLimit: highRiskLimit,
	}
}

// Load builds a fresh page view. The fetch is awaited first; the lists are
// rendered and bound only when it succeeds. A failed fetch is reported
// through the page outbox and does not make Load fail.
func (p *Pipeline) Load(ctx context.Context) (*Page, error) {
	page, err := p.newPage()
	if err != nil {
		return nil, err
	}

	notifier := Notifiers{page.Outbox(), LogNotifier{}}
	binder := NewBinder(notifier)

	records, err := p.source.FetchStudents(ctx)
	if err != nil {
		log.Printf("Falha ao buscar dados: %v", err)
		notifier.Notify(FetchFailureMessage)
		binder.BindStatic(page)
		return page, nil
	}

	if _, err := p.render(page, services.Enrich(records)); err != nil {
		return nil, err
	}
	binder.Bind(page)
	return page, nil
}

// render writes the metrics and both lists into page and returns the
// number of students rendered. A missing container skips that view. It runs
// once per page, before any handler is bound.
func (p *Pipeline) render(page *Page, students []models.StudentViewModel) (int, error) {
	doc := page.Document()

	highRisk := 0
	for _, s := range students {
		if s.IsHighRisk() {
			highRisk++
		}
	}
	doc.Find(totalMetricSelector).SetText(strconv.Itoa(len(students)))
	doc.Find(highRiskMetricSelector).SetText(strconv.Itoa(highRisk))

	if container := doc.Find(ManagementListSelector); container.Length() > 0 {
		if err := p.renderer.RenderDetailedList(container, students); err != nil {
			return 0, err
		}
	}

	if container := doc.Find(SummaryListSelector); container.Length() > 0 {
		if err := p.renderer.RenderSummaryList(container, HighRisk(students, p.highRiskLimit)); err != nil {
			return 0, err
		}
	}

	page.students = len(students)
	return len(students), nil
}

func (p *Pipeline) newPage() (*Page, error) {
	var buf bytes.Buffer
	if err := p.engine.Render(&buf, views.Shell, p.shell); err != nil {
		return nil, fmt.Errorf("failed to render page shell: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page shell: %w", err)
	}
	return NewPage(doc), nil
}
