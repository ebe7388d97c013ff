package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mcosta-dev/portfolio/internal/detail"
	"github.com/mcosta-dev/portfolio/internal/locale"
	"github.com/mcosta-dev/portfolio/internal/observability"
)

// Route kinds accepted by GET /detail/:kind/:id.
const (
	routeProject    = "project"
	routeOpenSource = "opensource"
	routeExperience = "experience"
	routeEducation  = "education"
	routeCV         = "cv"
)

// project maps a route kind onto its projection. Unknown kinds and ids
// that resolve to nothing report false.
func (s *Server) project(kind, id string, l locale.Locale) (detail.Record, bool) {
	code := l.String()
	switch kind {
	case routeProject:
		return s.projector.Project(id, code)
	case routeOpenSource:
		return s.projector.OpenSource(id, code)
	case routeExperience:
		return s.projector.Experience(id, code)
	case routeEducation:
		return s.projector.Education(id, code)
	case routeCV:
		if id != detail.CVID {
			return detail.Record{}, false
		}
		return s.projector.CV(code)
	}
	return detail.Record{}, false
}

// openDetail projects the requested entity and opens it in the session's
// panel. Absent projections leave the panel untouched.
func (s *Server) openDetail(c *gin.Context) {
	l := CurrentLocale(c)
	kind, id := c.Param("kind"), c.Param("id")
	rec, ok := s.project(kind, id, l)
	if !ok {
		observability.Logger(c).Debug("no detail for entity", zap.String("kind", kind), zap.String("id", id))
		c.Status(http.StatusNoContent)
		return
	}

	ctrl := s.panels.Get(SessionID(c))
	ctrl.Open(rec)
	s.recordDetailView(c, kind, id, l)

	if !isHTMX(c) {
		back(c)
		return
	}
	c.HTML(http.StatusOK, "panel.html", s.newPanelView(l, ctrl))
}

func (s *Server) closeDetail(c *gin.Context) {
	ctrl := s.panels.Get(SessionID(c))
	ctrl.Close()
	if !isHTMX(c) {
		back(c)
		return
	}
	c.HTML(http.StatusOK, "panel.html", s.newPanelView(CurrentLocale(c), ctrl))
}

// currentDetail renders the panel as it is now. The closing fragment polls
// this once the close delay has passed.
func (s *Server) currentDetail(c *gin.Context) {
	ctrl := s.panels.Get(SessionID(c))
	c.HTML(http.StatusOK, "panel.html", s.newPanelView(CurrentLocale(c), ctrl))
}

func (s *Server) recordDetailView(c *gin.Context, kind, id string, l locale.Locale) {
	if s.analytics == nil || c.GetHeader("DNT") == "1" {
		return
	}
	log := observability.Logger(c)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.analytics.RecordDetailView(ctx, kind, id, l.String()); err != nil {
			log.Warn("error recording detail view", zap.Error(err))
		}
	}()
}
