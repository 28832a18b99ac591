package dashboard

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	// ErrNoSuchElement is returned when a click targets nothing.
	ErrNoSuchElement = errors.New("no element matches the click target")

	// ErrMalformedFragment is returned by a handler that cannot find the
	// inner element it reads its label or identity from.
	ErrMalformedFragment = errors.New("malformed fragment")
)

// Handler runs for a click on the element it was bound to. el is that
// element, not necessarily the innermost node that was clicked.
type Handler func(el *goquery.Selection) error

// Page is one live dashboard view. All reads and writes of its document go
// through the page lock, so a page behaves like a single-threaded UI.
type Page struct {
	mu        sync.Mutex
	doc       *goquery.Document
	handlers  map[*html.Node][]Handler
	outbox    *Outbox
	createdAt time.Time
	students  int
}

func NewPage(doc *goquery.Document) *Page {
	return &Page{
		doc:       doc,
		handlers:  make(map[*html.Node][]Handler),
		outbox:    &Outbox{},
		createdAt: time.Now(),
	}
}

func (p *Page) Document() *goquery.Document {
	return p.doc
}

func (p *Page) Outbox() *Outbox {
	return p.outbox
}

func (p *Page) CreatedAt() time.Time {
	return p.createdAt
}

// Students is the number of students rendered into the page, zero when the
// fetch failed.
func (p *Page) Students() int {
	return p.students
}

// On binds h to every element in sel.
func (p *Page) On(sel *goquery.Selection, h Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, n := range sel.Nodes {
		p.handlers[n] = append(p.handlers[n], h)
	}
}

// Click dispatches a click on the first element of target, then on each
// ancestor in turn. A failing handler does not stop the others; their
// errors are joined.
func (p *Page) Click(target *goquery.Selection) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dispatch(target)
}

// ClickSelector clicks the index-th element matching selector.
func (p *Page) ClickSelector(selector string, index int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.clickSelector(selector, index)
}

// ClickAndDrain clicks like ClickSelector and returns the messages queued in
// the outbox, under one lock so concurrent clicks never see each other's
// notifications.
func (p *Page) ClickAndDrain(selector string, index int) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	err := p.clickSelector(selector, index)
	return p.outbox.Drain(), err
}

func (p *Page) clickSelector(selector string, index int) error {
	matches := p.doc.Find(selector)
	if index < 0 || index >= matches.Length() {
		return fmt.Errorf("%w: %q[%d] (%d matches)", ErrNoSuchElement, selector, index, matches.Length())
	}
	return p.dispatch(matches.Eq(index))
}

func (p *Page) dispatch(target *goquery.Selection) error {
	if target == nil || target.Length() == 0 {
		return ErrNoSuchElement
	}

	var errs []error
	for n := target.Get(0); n != nil; n = n.Parent {
		handlers := p.handlers[n]
		if len(handlers) == 0 {
			continue
		}
		el := p.doc.FindNodes(n)
		for _, h := range handlers {
			if err := h(el); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (p *Page) HTML() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.doc.Html()
}

// Bound reports how many handlers are attached to the elements in sel.
func (p *Page) Bound(sel *goquery.Selection) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	count := 0
	for _, n := range sel.Nodes {
		count += len(p.handlers[n])
	}
	return count
}
