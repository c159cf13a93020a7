package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"trical/internal/calendar"
	"trical/internal/model"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

type htmlPage struct {
	Title string
	View  model.View
	Cards []card
	Info  *calendar.DayInfo
}

// HTML writes a standalone page. The root element carries
// data-ready="true" so a headless browser can wait for it.
func HTML(w io.Writer, p Page) error {
	cards := buildCards(&p.Month, p.View)
	page := htmlPage{
		Title: cards[0].Title,
		View:  p.View,
		Cards: cards,
	}
	if p.Info.DayOfYear > 0 {
		page.Info = &p.Info
	}
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
