package dashboard

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	ActionIntervene  = "intervir"
	ActionDetails    = "detalhes"
	ActionDownload   = "download"
	ActionPreview    = "visualizar"
	ActionGenerate   = "gerar"
	defaultReportTag = "Relatório"
)

const (
	ManagementListSelector = "#student-management-list"
	SummaryListSelector    = "#dashboard-student-list"
	SolutionCardSelector   = ".solution-card"
	ProgramsSelector       = "#intervention-programs"
	ReportsSelector        = "#predictive-reports"
)

// Binder attaches the click handlers of the dashboard. Every handler only
// notifies, except the solution cards, which toggle their active class.
type Binder struct {
	notifier Notifier
}

func NewBinder(notifier Notifier) *Binder {
	return &Binder{notifier: notifier}
}

// Bind wires the rendered lists and the static regions of page.
func (b *Binder) Bind(page *Page) {
	doc := page.Document()
	b.BindDetailed(page, doc.Find(ManagementListSelector))
	b.BindSummary(page, doc.Find(SummaryListSelector))
	b.BindSolutionCards(page, doc.Find(SolutionCardSelector))
	b.BindStatic(page)
}

// BindStatic wires the program and report triggers, which exist whether or
// not the student lists were rendered.
func (b *Binder) BindStatic(page *Page) {
	doc := page.Document()
	if programs := doc.Find(ProgramsSelector); programs.Length() > 0 {
		page.On(programs.Find(".program-action"), b.handleProgram)
	}
	if doc.Find(ReportsSelector).Length() > 0 {
		page.On(doc.Find(".report-action, .report-action-small"), b.handleReport)
	}
}

func (b *Binder) BindDetailed(page *Page, container *goquery.Selection) {
	page.On(container.Find(".intervention-action"), b.handleIntervention)
}

func (b *Binder) BindSummary(page *Page, container *goquery.Selection) {
	page.On(container.Find(".student-action-btns button"), b.handleSummaryAction)
}

// BindSolutionCards makes cards a single-select group: the last clicked
// card is the only one marked active.
func (b *Binder) BindSolutionCards(page *Page, cards *goquery.Selection) {
	page.On(cards, func(card *goquery.Selection) error {
		cards.RemoveClass("active")
		card.AddClass("active")
		cards.Each(func(_ int, c *goquery.Selection) {
			c.SetAttr("class", strings.Join(strings.Fields(c.AttrOr("class", "")), " "))
		})
		return nil
	})
}

func (b *Binder) handleIntervention(button *goquery.Selection) error {
	item := button.Closest(".student-item")
	name, err := itemName(item)
	if err != nil {
		return err
	}

	switch button.AttrOr("data-action", "") {
	case ActionIntervene:
		b.notifier.Notify(fmt.Sprintf("[API] Ação de Intervenção para %s registrada. Encaminhando para Soluções.", name))
	case ActionDetails:
		b.notifier.Notify(fmt.Sprintf("[API] Visualizando detalhes de %s (API ID: %s).", name, item.AttrOr("data-id", "")))
	}
	return nil
}

func (b *Binder) handleSummaryAction(button *goquery.Selection) error {
	name, err := itemName(button.Closest(".student-item"))
	if err != nil {
		return err
	}

	message := ""
	switch {
	case button.HasClass("btn-contact"):
		message = fmt.Sprintf("[DASHBOARD - API] Ação: Iniciando contato proativo com %s.", name)
	case button.HasClass("btn-view"):
		message = fmt.Sprintf("[DASHBOARD - API] Ação: Carregando Perfil Detalhado de %s.", name)
	}
	b.notifier.Notify(message)
	return nil
}

func (b *Binder) handleProgram(button *goquery.Selection) error {
	heading := button.Closest(SolutionCardSelector).Find("h3").First()
	if heading.Length() == 0 {
		return fmt.Errorf("%w: program trigger has no enclosing card heading", ErrMalformedFragment)
	}
	b.notifier.Notify(fmt.Sprintf("[SOLUÇÕES] Abrindo painel de gestão para: \"%s\".", heading.Text()))
	return nil
}

// handleReport notifies an empty message for unknown data-action values.
func (b *Binder) handleReport(button *goquery.Selection) error {
	label := reportLabel(button)

	message := ""
	switch button.AttrOr("data-action", "") {
	case ActionDownload:
		message = fmt.Sprintf("[RELATÓRIOS] Iniciando download do: \"%s\".", label)
	case ActionPreview:
		message = fmt.Sprintf("[RELATÓRIOS] Abrindo dashboard premium para: \"%s\".", label)
	case ActionGenerate:
		message = fmt.Sprintf("[RELATÓRIOS] Processo de geração de: \"%s\" iniciado.", label)
	}
	b.notifier.Notify(message)
	return nil
}

func itemName(item *goquery.Selection) (string, error) {
	if item.Length() == 0 {
		return "", fmt.Errorf("%w: action control outside a student item", ErrMalformedFragment)
	}
	strong := item.Find("strong").First()
	if strong.Length() == 0 {
		return "", fmt.Errorf("%w: student item has no name element", ErrMalformedFragment)
	}
	return strong.Text(), nil
}

func reportLabel(button *goquery.Selection) string {
	label := button.Closest(".report-card, tr").Find("h3, td").First().Text()
	if label == "" {
		return defaultReportTag
	}
	return label
}
