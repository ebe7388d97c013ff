// Package web is the view layer: gin routes, sessions and templates.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mcosta-dev/portfolio/internal/analytics"
	"github.com/mcosta-dev/portfolio/internal/contact"
	"github.com/mcosta-dev/portfolio/internal/content"
	"github.com/mcosta-dev/portfolio/internal/detail"
	"github.com/mcosta-dev/portfolio/internal/i18n"
	"github.com/mcosta-dev/portfolio/internal/locale"
	"github.com/mcosta-dev/portfolio/internal/markdown"
	"github.com/mcosta-dev/portfolio/internal/observability"
	"github.com/mcosta-dev/portfolio/internal/panel"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Deps are the collaborators the server renders from. Analytics and Mailer
// are optional.
type Deps struct {
	Store     *content.Store
	Bundle    *i18n.Bundle
	Panels    *panel.Registry
	Analytics *analytics.Store
	Mailer    contact.Mailer
	Logger    *zap.Logger

	StaticDir     string
	AdminUsername string
	AdminPassword string
}

// Server wires content, projections and panel controllers to HTTP.
type Server struct {
	store     *content.Store
	bundle    *i18n.Bundle
	projector *detail.Projector
	panels    *panel.Registry
	analytics *analytics.Store
	mailer    contact.Mailer
	log       *zap.Logger
	tmpl      *template.Template
	md        *markdown.Renderer
	admin     *adminAuth
	staticDir string
}

// New validates deps and parses the templates.
func New(d Deps) (*Server, error) {
	if d.Store == nil || d.Bundle == nil || d.Panels == nil {
		return nil, errors.New("web: store, bundle and panels are required")
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	s := &Server{
		store:     d.Store,
		bundle:    d.Bundle,
		projector: detail.NewProjector(d.Store, d.Bundle),
		panels:    d.Panels,
		analytics: d.Analytics,
		mailer:    d.Mailer,
		log:       d.Logger,
		md:        markdown.New(),
		staticDir: d.StaticDir,
	}
	s.admin = newAdminAuth(d.AdminUsername, d.AdminPassword, d.Logger)
	tmpl, err := s.parseTemplates()
	if err != nil {
		return nil, err
	}
	s.tmpl = tmpl
	return s, nil
}

func (s *Server) parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"t":        s.bundle.T,
		"markdown": s.md.Render,
		"year":     func() int { return time.Now().Year() },
		"ms":       func(d time.Duration) int64 { return d.Milliseconds() },
		"card":     func(l locale.Locale, item any) cardView { return cardView{Lang: l, Item: item} },
	}
	tmpl, err := template.New("_root").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}
	return tmpl, nil
}

// Routes builds the gin engine.
func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(Session())
	r.Use(observability.RequestLogger(s.log, SessionID))
	r.Use(Locale())
	r.Use(analytics.VisitorTracking(s.analytics))
	r.SetHTMLTemplate(s.tmpl)

	if s.staticDir != "" {
		r.Static("/static", s.staticDir)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.GET("/", s.home)
	r.GET("/projects", s.projects)

	r.GET("/detail", s.currentDetail)
	r.GET("/detail/:kind/:id", s.openDetail)
	r.POST("/detail/close", s.closeDetail)

	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.submitContact)

	s.setupAdminRoutes(r)
	return r
}
