package web

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mcosta-dev/portfolio/internal/analytics"
)

const adminCookie = "admin_token"

// adminAuth holds the credentials and the per-process session token.
type adminAuth struct {
	username string
	password string
	token    string
	log      *zap.Logger
}

func newAdminAuth(username, password string, log *zap.Logger) *adminAuth {
	a := &adminAuth{username: username, password: password, token: generateToken(), log: log}
	if a.username == "" || a.password == "" {
		if gin.Mode() == gin.DebugMode {
			log.Warn("using default admin credentials; set ADMIN_USERNAME and ADMIN_PASSWORD")
			if a.username == "" {
				a.username = "admin"
			}
			if a.password == "" {
				a.password = "admin123"
			}
		} else {
			log.Warn("admin login disabled: ADMIN_USERNAME or ADMIN_PASSWORD not set")
		}
	}
	return a
}

func generateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("admin: reading random bytes: " + err.Error())
	}
	return hex.EncodeToString(b)
}

func (a *adminAuth) enabled() bool { return a.username != "" && a.password != "" }

func (a *adminAuth) check(username, password string) bool {
	if !a.enabled() {
		return false
	}
	u := subtle.ConstantTimeCompare([]byte(username), []byte(a.username))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(a.password))
	return u&p == 1
}

// middleware redirects requests without a valid admin cookie to the login page.
func (a *adminAuth) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

type adminView struct {
	Error string
	Stats *analytics.Stats
}

func (s *Server) hashedClient(c *gin.Context) string {
	if s.analytics == nil {
		return ""
	}
	return s.analytics.HashIP(c.ClientIP())
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/privacy", s.privacy)

	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", adminView{})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if s.admin.check(c.PostForm("username"), c.PostForm("password")) {
			c.SetCookie(adminCookie, s.admin.token, int((24 * time.Hour).Seconds()), "/admin", "", c.Request.TLS != nil, true)
			s.log.Info("admin login", zap.String("client", s.hashedClient(c)))
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}
		s.log.Warn("failed admin login", zap.String("client", s.hashedClient(c)))
		c.HTML(http.StatusUnauthorized, "admin-login.html", adminView{Error: "Invalid credentials"})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", c.Request.TLS != nil, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.admin.middleware())

	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := s.adminStats(c)
		if err != nil {
			s.log.Error("error loading admin stats", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-error.html", adminView{Error: "Failed to load statistics"})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", adminView{Stats: stats})
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.adminStats(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		if s.analytics == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analytics disabled"})
			return
		}
		n, err := s.analytics.Cleanup(c.Request.Context())
		if err != nil {
			s.log.Error("privacy cleanup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": n})
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.adminStats(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		s.log.Info("admin stats exported", zap.String("client", s.hashedClient(c)))
		c.JSON(http.StatusOK, stats)
	})
}

// adminStats returns empty stats when analytics is disabled.
func (s *Server) adminStats(c *gin.Context) (*analytics.Stats, error) {
	if s.analytics == nil {
		return &analytics.Stats{}, nil
	}
	return s.analytics.Stats(c.Request.Context())
}
