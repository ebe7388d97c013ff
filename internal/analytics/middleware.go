package analytics

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var untrackedPrefixes = []string{"/static/", "/admin", "/favicon", "/privacy", "/healthz", "/detail"}

// Tracked reports whether a request path counts as a page view.
func Tracked(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// VisitorTracking records page views in the background. Requests carrying
// DNT: 1 are never recorded.
func VisitorTracking(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if s == nil || !Tracked(path) || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}
		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.RecordVisit(ctx, ip, ua, path); err != nil {
				s.log.Warn("error recording visitor", zap.Error(err))
			}
		}()
		c.Next()
	}
}
