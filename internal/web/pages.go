package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcosta-dev/portfolio/internal/content"
)

func (s *Server) home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.newPageView(c))
}

func (s *Server) projects(c *gin.Context) {
	page := s.newPageView(c)
	f := content.ProjectFilter{
		Tech:     c.Query("tech"),
		Category: c.DefaultQuery("category", content.CategoryAll),
		Query:    c.Query("q"),
	}
	featured, openSource := page.Content.FilterProjects(f)
	view := projectsView{
		pageView:   page,
		Filter:     f,
		Categories: []string{content.CategoryAll, content.CategoryOpenSource, content.CategoryCommercial},
		AllTech:    page.Content.AllTech(),
		Featured:   featured,
		OpenSource: openSource,
	}
	if isHTMX(c) {
		c.HTML(http.StatusOK, "project-list.html", view)
		return
	}
	c.HTML(http.StatusOK, "projects.html", view)
}

func (s *Server) privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", s.newPageView(c))
}
