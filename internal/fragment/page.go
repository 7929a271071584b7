// Package fragment loads server-rendered HTML fragments into a page.
//
// A Page is a parsed HTML document addressed by element id. A Loader
// issues the two one-shot POST requests of the vocabulary page and writes
// each successful response verbatim into its container. Failures leave
// the page untouched.
package fragment

import (
	"io"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"portuguese101/internal/errors"
)

// ErrElementNotFound is returned when no element carries the requested id.
var ErrElementNotFound = errors.New(errors.CodeNotFound, "element not found")

// Page is an HTML document whose containers can be replaced by fragments.
// It is safe for concurrent use.
type Page struct {
	mu  sync.Mutex
	doc *goquery.Document

	// markup last written into each container, returned verbatim by InnerHTML
	written map[*html.Node]string

	ready    bool
	handlers []func()
}

// ParsePage parses an HTML document.
func ParsePage(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, errors.Wrap(err, "failed to parse page"))
	}
	return &Page{
		doc:     doc,
		written: make(map[*html.Node]string),
	}, nil
}

// OnReady registers fn to run once the document is marked ready and
// reports whether it was registered. Handlers offered after that point
// never run.
func (p *Page) OnReady(fn func()) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return false
	}
	p.handlers = append(p.handlers, fn)
	return true
}

// MarkReady fires the ready event. Only the first call runs handlers.
func (p *Page) MarkReady() {
	p.mu.Lock()
	if p.ready {
		p.mu.Unlock()
		return
	}
	p.ready = true
	handlers := p.handlers
	p.handlers = nil
	p.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
}

// Value returns the value property of an element as text.
//
// A select yields its selected option, falling back to the first enabled
// option, or "" when it has none. An option without a value attribute
// yields its collapsed text. Inputs without a value attribute yield "",
// except checkboxes and radios which yield "on". Elements that have no
// value property yield "undefined".
func (p *Page) Value(id string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	sel, err := p.find(id)
	if err != nil {
		return "", err
	}

	switch goquery.NodeName(sel) {
	case "select":
		return selectValue(sel), nil
	case "option":
		return optionValue(sel), nil
	case "input":
		if v, ok := sel.Attr("value"); ok {
			return v, nil
		}
		switch strings.ToLower(sel.AttrOr("type", "")) {
		case "checkbox", "radio":
			return "on", nil
		}
		return "", nil
	case "button", "data", "param":
		return sel.AttrOr("value", ""), nil
	case "textarea", "output":
		return sel.Text(), nil
	default:
		return "undefined", nil
	}
}

// SetValue models a user selection: it selects the matching option of a
// select, or sets the value of an input or textarea.
func (p *Page) SetValue(id, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	sel, err := p.find(id)
	if err != nil {
		return err
	}

	switch goquery.NodeName(sel) {
	case "select":
		options := sel.Find("option")
		match := options.FilterFunction(func(_ int, o *goquery.Selection) bool {
			return optionValue(o) == value
		}).First()
		if match.Length() == 0 {
			return errors.InvalidInput("no option " + value + " in #" + id)
		}
		options.RemoveAttr("selected")
		match.SetAttr("selected", "selected")
	case "input":
		sel.SetAttr("value", value)
	case "textarea":
		sel.SetText(value)
	default:
		return errors.InvalidInput("#" + id + " is not a form element")
	}
	return nil
}

// SetInnerHTML replaces the children of the element with the parsed
// markup. Elements inside the fragment become addressable by id.
func (p *Page) SetInnerHTML(id, markup string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	sel, err := p.find(id)
	if err != nil {
		return err
	}

	sel.SetHtml(markup)
	target := sel.Get(0)
	p.written[target] = markup

	// enclosing containers no longer hold the markup written into them
	for n := target.Parent; n != nil; n = n.Parent {
		delete(p.written, n)
	}
	for n := range p.written {
		if !p.attached(n) {
			delete(p.written, n)
		}
	}
	return nil
}

// InnerHTML returns the markup last written into the element, or its
// serialized children if nothing was written.
func (p *Page) InnerHTML(id string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	sel, err := p.find(id)
	if err != nil {
		return "", err
	}
	if markup, ok := p.written[sel.Get(0)]; ok {
		return markup, nil
	}
	return sel.Html()
}

// HTML serializes the whole document.
func (p *Page) HTML() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return goquery.OuterHtml(p.doc.Selection)
}

// find returns the first element in document order whose id equals id.
func (p *Page) find(id string) (*goquery.Selection, error) {
	sel := p.doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("id")
		return v == id
	}).First()
	if sel.Length() == 0 {
		return nil, errors.Wrap(ErrElementNotFound, "#"+id)
	}
	return sel, nil
}

func (p *Page) attached(n *html.Node) bool {
	root := p.doc.Get(0)
	for ; n != nil; n = n.Parent {
		if n == root {
			return true
		}
	}
	return false
}

func selectValue(sel *goquery.Selection) string {
	options := sel.Find("option")

	selected := options.Filter("[selected]")
	if selected.Length() > 0 {
		if _, multiple := sel.Attr("multiple"); multiple {
			return optionValue(selected.First())
		}
		return optionValue(selected.Last())
	}

	// list boxes have no implicit selection
	if _, multiple := sel.Attr("multiple"); multiple {
		return ""
	}
	if size, ok := sel.Attr("size"); ok && size != "" && size != "0" && size != "1" {
		return ""
	}

	first := options.FilterFunction(func(_ int, o *goquery.Selection) bool {
		_, disabled := o.Attr("disabled")
		return !disabled
	}).First()
	if first.Length() == 0 {
		return ""
	}
	return optionValue(first)
}

func optionValue(o *goquery.Selection) string {
	if v, ok := o.Attr("value"); ok {
		return v
	}
	return strings.Join(strings.Fields(o.Text()), " ")
}
