package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mcosta-dev/portfolio/internal/locale"
)

const (
	// SessionCookie keys the per-visitor panel controller.
	SessionCookie = "portfolio_session"
	// LangCookie remembers an explicit language choice.
	LangCookie = "lang"

	sessionKey = "web.session"
	localeKey  = "web.locale"

	cookieMaxAge = 365 * 24 * 60 * 60
)

// Session makes sure every request carries a session id, issuing a cookie
// when the request has none or an unparseable one.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || !validSession(id) {
			id = uuid.NewString()
			setCookie(c, SessionCookie, id, 0)
		}
		c.Set(sessionKey, id)
		c.Next()
	}
}

// SessionID returns the session id set by Session.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

// Locale resolves the request language. An explicit ?lang= wins and is
// remembered; then the cookie; then Accept-Language.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		l := requestLocale(c)
		c.Set(localeKey, l)
		c.Header("Content-Language", l.String())
		c.Header("Vary", "Accept-Language, Cookie")
		c.Next()
	}
}

func requestLocale(c *gin.Context) locale.Locale {
	if q := c.Query("lang"); q != "" {
		if l, ok := locale.Parse(q); ok {
			setCookie(c, LangCookie, l.String(), cookieMaxAge)
			return l
		}
	}
	if v, err := c.Cookie(LangCookie); err == nil {
		if l, ok := locale.Parse(v); ok {
			return l
		}
	}
	return locale.Match(c.GetHeader("Accept-Language"))
}

// CurrentLocale returns the locale chosen by Locale, or the default.
func CurrentLocale(c *gin.Context) locale.Locale {
	if v, ok := c.Get(localeKey); ok {
		if l, ok := v.(locale.Locale); ok {
			return l
		}
	}
	return locale.Default
}

func setCookie(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.Request.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

func validSession(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
