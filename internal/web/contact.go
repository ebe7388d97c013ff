package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mcosta-dev/portfolio/internal/contact"
	"github.com/mcosta-dev/portfolio/internal/locale"
	"github.com/mcosta-dev/portfolio/internal/observability"
)

type contactView struct {
	Lang    locale.Locale
	Message string
}

// contactForm returns just the form fragment for HTMX.
func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form.html", contactView{Lang: CurrentLocale(c)})
}

// submitContact always answers 200 so htmx swaps the result fragment.
func (s *Server) submitContact(c *gin.Context) {
	l := CurrentLocale(c)
	msg := contact.Message{
		Name:   c.PostForm("fullName"),
		Email:  c.PostForm("email"),
		Body:   c.PostForm("message"),
		Locale: l.String(),
	}
	if err := msg.Validate(); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", contactView{Lang: l, Message: s.bundle.T(l, "contact.invalid")})
		return
	}

	var err error
	if s.mailer == nil {
		err = contact.ErrNotConfigured
	} else {
		err = s.mailer.Send(c.Request.Context(), msg)
	}
	if err != nil {
		log := observability.Logger(c)
		if errors.Is(err, contact.ErrNotConfigured) {
			log.Warn("contact form submitted without SMTP configured")
		} else {
			log.Error("error sending contact email", zap.Error(err))
		}
		c.HTML(http.StatusOK, "contact-error.html", contactView{Lang: l, Message: s.bundle.T(l, "contact.error")})
		return
	}
	c.HTML(http.StatusOK, "contact-success.html", contactView{Lang: l, Message: s.bundle.T(l, "contact.success")})
}
