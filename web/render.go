package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/lakefield/risknav"
	"github.com/lakefield/risknav/theme"
)

// renderer holds pre-compiled page templates. Each page template is the
// layout combined with that page's specific template, so "title" and
// "content" blocks are resolved per-page without collision.
type renderer struct {
	pages map[string]*template.Template
}

// newRenderer parses the layout template once, then clones it for each
// page template, producing a separate compiled template per page.
func newRenderer() (*renderer, error) {
	// Template functions available in all templates.
	funcMap := template.FuncMap{
		"abbrev": func(m risknav.Money) string {
			return m.Abbrev(1)
		},
		"signedAbbrev": func(m risknav.Money) string {
			return m.SignedAbbrev(1)
		},
		"money": func(v float64) string {
			return risknav.Abbreviate(v, "$", "", 1)
		},
		"delta": func(v float64) string {
			return risknav.FormatDelta(v, "$", "", 1)
		},
		"pct": func(ratio float64) string {
			return risknav.FormatPercent(ratio, 1)
		},
		"pct2": func(ratio float64) string {
			return risknav.FormatPercent(ratio, 2)
		},
		"years": func(v float64) string {
			return fmt.Sprintf("%.1fy", v)
		},
		"pp": func(delta float64) string {
			return fmt.Sprintf("%+.1fpp", delta*100)
		},
		"assetColor": theme.AssetColor,
		"chartColor": theme.ChartColor,
		"statusColor": func(s risknav.Status) string {
			return theme.StatusColor(s)
		},
		"badgeClass": func(s risknav.Status) string {
			switch s {
			case risknav.StatusBreach:
				return "breach"
			case risknav.StatusWarn:
				return "warn"
			default:
				return "ok"
			}
		},
	}

	// Parse the layout first.
	layout, err := template.New("layout.html").Funcs(funcMap).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	// Discover page templates (everything except layout.html).
	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("read template dir: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "layout.html" {
			continue
		}

		// Clone the layout and overlay the page template on top.
		clone, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := clone.ParseFS(templateFS, "templates/"+name); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = clone
	}

	return &renderer{pages: pages}, nil
}

// render executes the named page template with the given data. The page
// parameter is the template filename (e.g. "health.html").
func (rn *renderer) render(w http.ResponseWriter, page string, data any) {
	tmpl, ok := rn.pages[page]
	if !ok {
		http.Error(w, "template not found: "+page, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
