package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mcosta-dev/portfolio/internal/content"
	"github.com/mcosta-dev/portfolio/internal/detail"
	"github.com/mcosta-dev/portfolio/internal/locale"
	"github.com/mcosta-dev/portfolio/internal/panel"
)

type languageOption struct {
	Code   locale.Locale
	Label  string
	Active bool
}

// cardView pairs a listing item with the page locale for partials.
type cardView struct {
	Lang locale.Locale
	Item any
}

// panelView is the detail panel as the templates see it.
type panelView struct {
	Lang         locale.Locale
	IsOpen       bool
	Closing      bool
	Phase        string
	ScrollLocked bool
	CloseDelay   time.Duration
	Record       *detail.Record
}

type pageView struct {
	Lang      locale.Locale
	Languages []languageOption
	Path      string
	Content   content.Partition
	Panel     panelView
}

type projectsView struct {
	pageView
	Filter     content.ProjectFilter
	Categories []string
	AllTech    []string
	Featured   []content.FeaturedProject
	OpenSource []content.OpenSourceProject
}

// newPanelView snapshots ctrl. The close delay comes from the controller so
// the CSS transition and the deferred clear stay in step.
func (s *Server) newPanelView(l locale.Locale, ctrl *panel.Controller) panelView {
	st := ctrl.State()
	return panelView{
		Lang:         l,
		IsOpen:       st.IsOpen,
		Closing:      st.Phase == panel.Closing,
		Phase:        st.Phase.String(),
		ScrollLocked: st.ScrollLocked,
		CloseDelay:   ctrl.CloseDelay(),
		Record:       st.Current,
	}
}

func (s *Server) newPageView(c *gin.Context) pageView {
	l := CurrentLocale(c)
	langs := make([]languageOption, 0, len(locale.Supported()))
	for _, code := range locale.Supported() {
		key := "nav.english"
		if code == locale.Portuguese {
			key = "nav.portuguese"
		}
		langs = append(langs, languageOption{Code: code, Label: s.bundle.T(l, key), Active: code == l})
	}
	return pageView{
		Lang:      l,
		Languages: langs,
		Path:      c.Request.URL.Path,
		Content:   s.store.Partition(l),
		Panel:     s.newPanelView(l, s.panels.Get(SessionID(c))),
	}
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// back sends non-HTMX clients to where they came from so the full page
// renders with the current panel state.
func back(c *gin.Context) {
	target := "/"
	if ref := c.Request.Referer(); ref != "" {
		target = ref
	}
	c.Redirect(http.StatusSeeOther, target)
}
