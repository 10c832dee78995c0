// Package web serves the portfolio over HTTP: the page, its fragments, the
// contact endpoint, the live presentation session and the admin dashboard.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"

	"github.com/Kavindu379/portfolio/internal/config"
	"github.com/Kavindu379/portfolio/internal/contact"
	"github.com/Kavindu379/portfolio/internal/content"
	"github.com/Kavindu379/portfolio/internal/store"
)

//go:embed static templates
var embedded embed.FS

// Deps are the collaborators a Server needs.
type Deps struct {
	Config  *config.Config
	Store   *store.Store
	Content *content.Source
	Contact *contact.Service
}

// Server is the site's HTTP server.
type Server struct {
	cfg     *config.Config
	store   *store.Store
	content *content.Source
	contact *contact.Service

	engine     *gin.Engine
	handler    http.Handler
	adminToken string

	bg sync.WaitGroup
}

// New builds the server and its routes.
func New(d Deps) (*Server, error) {
	if d.Config == nil || d.Store == nil || d.Content == nil || d.Contact == nil {
		return nil, errors.New("web: missing dependency")
	}
	s := &Server{
		cfg:        d.Config,
		store:      d.Store,
		content:    d.Content,
		contact:    d.Contact,
		adminToken: randomToken(),
	}
	if err := s.buildEngine(); err != nil {
		return nil, err
	}
	s.handler = cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "HX-Request", "HX-Target", "HX-Current-URL"},
		AllowCredentials: true,
		MaxAge:           300,
	})(s.engine)
	return s, nil
}

func (s *Server) buildEngine() error {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"fmtTime": func(t time.Time) string { return t.Format("2006-01-02 15:04") },
	}).ParseFS(embedded, "templates/*.html")
	if err != nil {
		return fmt.Errorf("parsing templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(embedded, "static")
	if err != nil {
		return fmt.Errorf("static assets: %w", err)
	}
	r.StaticFS("/static", http.FS(static))

	r.Use(s.visitorID(), s.trackVisits())

	r.GET("/", s.handleIndex)
	r.GET("/projects/:id", s.handleProject)
	r.GET("/services/:slug", s.handleService)
	r.POST("/contact", s.handleContact)
	r.POST("/theme", s.handleTheme)
	r.GET("/reset", s.handleReset)
	r.GET("/particles.json", s.handleParticles)
	r.GET("/ws", s.handleLive)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.setupAdminRoutes(r)

	// Everything else is looked up in the asset directory (résumé, photo).
	assets := gin.Dir(s.cfg.AssetDir, false)
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}
		c.FileFromFS(c.Request.URL.Path, assets)
	})

	s.engine = r
	return nil
}

// Handler returns the root handler, CORS included.
func (s *Server) Handler() http.Handler { return s.handler }

// Wait blocks until background work started by requests has finished.
func (s *Server) Wait() { s.bg.Wait() }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr(),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go s.cleanupLoop(ctx)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("portfolio listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Printf("portfolio shutting down")
	err := srv.Shutdown(shutdownCtx)
	s.Wait()
	return err
}

// cleanupLoop purges old visit records at startup and once a day.
func (s *Server) cleanupLoop(ctx context.Context) {
	tick := time.NewTicker(24 * time.Hour)
	defer tick.Stop()
	for {
		s.cleanupVisits(ctx)
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
		}
	}
}

func (s *Server) cleanupVisits(ctx context.Context) {
	n, err := s.store.Cleanup(ctx)
	if err != nil {
		log.Printf("privacy cleanup: %v", err)
		return
	}
	if n > 0 {
		log.Printf("privacy cleanup: removed %d visitor records older than 12 months", n)
	}
}
