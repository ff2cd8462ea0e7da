package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
)

//go:embed templates/*.html
var files embed.FS

// pageNames lists every page template; each is parsed together with the
// shared layout.
var pageNames = []string{
	"dashboard",
	"category_list",
	"category_detail",
	"category_form",
	"item_list",
	"item_detail",
	"item_form",
	"error",
}

// Renderer holds the parsed template set for all pages.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the embedded templates and returns a ready renderer.
func New() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").
			Funcs(funcMap()).
			ParseFS(files, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render executes the named page into w.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page template: %s", page)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"money": Money,
		"price": Price,
		"pct":   Pct,
		"group": Group,
	}
}

// Money formats integer cents as a grouped decimal amount, e.g. 123456789
// renders as "1,234,567.89".
func Money(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%s.%02d", sign, Group(cents/100), cents%100)
}

// Price formats a unit price with two decimal places.
func Price(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Group formats an integer with thousands separators.
func Group(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	b.WriteString(sign)
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteString(",")
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteString(",")
		}
	}
	return b.String()
}

// Pct scales value against max into a 0-100 integer for chart bar widths.
func Pct(value, max int64) int {
	if max <= 0 || value <= 0 {
		return 0
	}
	p := value * 100 / max
	if p > 100 {
		p = 100
	}
	return int(p)
}
