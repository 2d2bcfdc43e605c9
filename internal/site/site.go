// Package site serves the portfolio's three pages.
package site

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/projects/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type View string

const (
	ViewHome     View = "home"
	ViewProjects View = "projects"
	ViewContact  View = "contact"
)

// Route maps a path to the view rendered there
type Route struct {
	Path  string
	View  View
	Title string
}

// Routes is the navigation table.
var Routes = []Route{
	{Path: "/", View: ViewHome, Title: "Home"},
	{Path: "/projects", View: ViewProjects, Title: "Projects"},
	{Path: "/contact", View: ViewContact, Title: "Contact"},
}

// Lookup returns the route registered for path.
func Lookup(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// ProjectSource is the read side of the project store the pages use
type ProjectSource interface {
	Count() int
	CompletedCount() int
	GroupedByTech() []domain.TechGroup
}

type pageStats struct {
	Count     int
	Completed int
}

type pageData struct {
	Title  string
	View   View
	Nav    []Route
	Stats  pageStats
	Groups []domain.TechGroup
}

type Pages struct {
	source ProjectSource
	tmpl   *template.Template
}

func NewPages(source ProjectSource) (*Pages, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	return &Pages{source: source, tmpl: tmpl}, nil
}

// Register installs the templates on r and one GET handler per route.
func (p *Pages) Register(r *gin.Engine) {
	r.SetHTMLTemplate(p.tmpl)
	for _, route := range Routes {
		r.GET(route.Path, p.render)
	}
}

func (p *Pages) render(c *gin.Context) {
	route, ok := Lookup(c.FullPath())
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	data := pageData{
		Title: route.Title,
		View:  route.View,
		Nav:   Routes,
	}
	switch route.View {
	case ViewHome:
		data.Stats = pageStats{
			Count:     p.source.Count(),
			Completed: p.source.CompletedCount(),
		}
	case ViewProjects:
		data.Groups = p.source.GroupedByTech()
	}
	c.HTML(http.StatusOK, string(route.View), data)
}
