package web

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Kavindu379/portfolio/internal/contact"
	"github.com/Kavindu379/portfolio/internal/content"
	"github.com/Kavindu379/portfolio/internal/particles"
	"github.com/Kavindu379/portfolio/internal/ui"
	"github.com/Kavindu379/portfolio/internal/views"
)

func (s *Server) defaultTheme() ui.Theme {
	return ui.ParseTheme(s.cfg.DefaultTheme, ui.DefaultTheme)
}

// theme resolves the visitor's theme: stored preference, then cookie,
// then the configured default. Malformed values fall through.
func (s *Server) theme(c *gin.Context) ui.Theme {
	fallback := s.defaultTheme()
	if v, err := c.Cookie(themeCookie); err == nil {
		fallback = ui.ParseTheme(v, fallback)
	}
	stored, err := s.store.Theme(c.Request.Context(), visitor(c))
	if err != nil {
		log.Printf("web: %v", err)
	}
	return ui.ParseTheme(stored, fallback)
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Render(http.StatusOK, views.Renderer{Node: views.Page(views.PageData{
		Catalog:       s.content.Catalog(),
		Theme:         s.theme(c),
		LoadingWindow: s.cfg.LoadingWindow,
	})})
}

func (s *Server) handleProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Render(http.StatusNotFound, views.Renderer{Node: views.NotFound("Project")})
		return
	}
	p, err := s.content.Catalog().Project(id)
	if errors.Is(err, content.ErrNotFound) {
		c.Render(http.StatusNotFound, views.Renderer{Node: views.NotFound("Project")})
		return
	}
	c.Render(http.StatusOK, views.Renderer{Node: views.ProjectModal(p)})
}

func (s *Server) handleService(c *gin.Context) {
	svc, err := s.content.Catalog().Service(c.Param("slug"))
	if errors.Is(err, content.ErrNotFound) {
		c.Render(http.StatusNotFound, views.Renderer{Node: views.NotFound("Service")})
		return
	}
	c.Render(http.StatusOK, views.Renderer{Node: views.ServiceModal(svc)})
}

const (
	msgInvalidForm = "Please enter your name, a valid email address and a message."
	msgSendFailed  = "Sorry, there was an error sending your message. Please try again later."
)

// handleContact answers with a fragment that replaces the contact panel.
// Failures keep the form populated.
func (s *Server) handleContact(c *gin.Context) {
	owner := s.content.Catalog().Profile.ShortName

	var sub contact.Submission
	if err := c.ShouldBind(&sub); err != nil {
		values := views.FormValues{Name: c.PostForm("name"), Email: c.PostForm("email"), Message: c.PostForm("message")}
		c.Render(http.StatusOK, views.Renderer{Node: views.ContactError(values, owner, msgInvalidForm)})
		return
	}

	if err := s.contact.Submit(c.Request.Context(), sub); err != nil {
		values := views.FormValues{Name: sub.Name, Email: sub.Email, Message: sub.Message}
		c.Render(http.StatusOK, views.Renderer{Node: views.ContactError(values, owner, msgSendFailed)})
		return
	}
	c.Render(http.StatusOK, views.Renderer{Node: views.ContactSuccess(owner)})
}

// themeRequest carries the theme the page now shows. The live session owns
// the toggle; this endpoint only records its outcome.
type themeRequest struct {
	Theme string `form:"theme" json:"theme" binding:"required,oneof=light dark"`
}

// handleTheme persists an explicit theme for the visitor and mirrors it in
// a cookie.
func (s *Server) handleTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "theme must be light or dark"})
		return
	}
	t := ui.Theme(req.Theme)
	if err := s.store.SetTheme(c.Request.Context(), visitor(c), string(t)); err != nil {
		log.Printf("web: %v", err)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(themeCookie, string(t), yearSeconds, "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"theme": t})
}

// handleReset sends the browser back to the top of a clean URL.
func (s *Server) handleReset(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleParticles(c *gin.Context) {
	t := s.theme(c)
	if q := c.Query("theme"); q != "" {
		t = ui.ParseTheme(q, t)
	}
	c.JSON(http.StatusOK, particles.ForTheme(t))
}
