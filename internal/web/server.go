// Package web serves the portfolio page, the HTMX contact form endpoints,
// the live navigation channel and the admin dashboard.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"

	"github.com/Zachkp/devfolio/internal/config"
	"github.com/Zachkp/devfolio/internal/contact"
	"github.com/Zachkp/devfolio/internal/content"
	"github.com/Zachkp/devfolio/internal/nav"
	"github.com/Zachkp/devfolio/internal/store"
)

//go:embed templates/*.html
var templatesFS embed.FS

const sessionCookie = "devfolio_session"

// Server wires the site's routes to its collaborators.
type Server struct {
	cfg       *config.Config
	portfolio *content.Portfolio
	store     *store.Store
	sessions  *contact.Registry
	live      *nav.Live
	admin     *adminAuth

	engine *gin.Engine
}

// New builds the server. st may be nil, in which case visitor tracking and
// the admin dashboard are disabled.
func New(cfg *config.Config, portfolio *content.Portfolio, st *store.Store, sender contact.Sender) (*Server, error) {
	gin.SetMode(cfg.Server.Mode)

	if st != nil && cfg.Contact.Record {
		sender = contact.NewRecordingSender(sender, st)
	}

	admin, err := newAdminAuth(cfg.Admin)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:       cfg,
		portfolio: portfolio,
		store:     st,
		sessions:  contact.NewRegistry(sender, cfg.Contact.SessionTTL, cfg.Contact.MaxSessions),
		live:      nav.NewLive(cfg.Nav.ActivationOffset),
		admin:     admin,
	}

	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	if st != nil && cfg.Server.TrackVisitors {
		r.Use(s.visitorTracking())
	}

	if cfg.Server.StaticDir != "" {
		r.Static("/static", cfg.Server.StaticDir)
	}
	if cfg.Server.ImagesDir != "" {
		r.Static("/images", cfg.Server.ImagesDir)
	}

	r.GET("/healthz", s.handleHealth)
	r.GET("/", s.handleHome)
	r.GET("/contact-form", s.handleContactForm)
	r.POST("/contact", s.handleContactSubmit)
	r.POST("/contact/field", s.handleContactField)
	r.GET("/api/contact", s.handleAPISnapshot)
	r.POST("/api/contact", s.handleAPISubmit)
	r.GET("/ws/nav", gin.WrapH(s.live))

	s.setupAdminRoutes(r)

	s.engine = r
	return s, nil
}

// Handler returns the root handler with CORS applied.
func (s *Server) Handler() http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "HX-Request", "HX-Trigger", "HX-Target", "HX-Current-URL"},
		AllowCredentials: true,
		MaxAge:           300,
	})(s.engine)
}

// Run serves until ctx is cancelled, sweeping idle form sessions and old
// visitor rows in the background.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Server.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.housekeeping(ctx)

	errc := make(chan error, 1)
	go func() {
		log.Printf("Portfolio listening on :%s", s.cfg.Server.Port)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) housekeeping(ctx context.Context) {
	s.cleanupVisitors(ctx)

	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sessions.Sweep(); n > 0 {
				log.Printf("Expired %d idle contact sessions", n)
			}
			s.cleanupVisitors(ctx)
		}
	}
}

// cleanupVisitors drops visits past the retention window.
func (s *Server) cleanupVisitors(ctx context.Context) {
	if s.store == nil || s.cfg.Server.VisitorRetention <= 0 {
		return
	}
	n, err := s.store.CleanupVisitors(ctx, s.cfg.Server.VisitorRetention)
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Privacy cleanup: removed %d visitor records", n)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	if s.store != nil {
		if err := s.store.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleHome(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"portfolio": s.portfolio,
		"skills":    s.portfolio.SkillsByCategory(),
		"featured":  s.portfolio.FeaturedProjects(),
		"navItems":  nav.Items,
		"active":    nav.Sections[0],
		"form":      formView(s.snapshot(c)),
	})
}

// snapshot reads the visitor's form state. Pages that only display the form
// do not create a session; the first edit or submit does.
func (s *Server) snapshot(c *gin.Context) contact.Snapshot {
	cookie, _ := c.Cookie(sessionCookie)
	return s.sessions.Snapshot(cookie)
}

// session returns the visitor's contact session, setting the cookie when a
// new one is issued.
func (s *Server) session(c *gin.Context) (string, *contact.Session) {
	cookie, _ := c.Cookie(sessionCookie)
	id, sess := s.sessions.Get(cookie)
	if id != cookie {
		secure := c.Request.TLS != nil || strings.EqualFold(c.GetHeader("X-Forwarded-Proto"), "https")
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, id, int(s.cfg.Contact.SessionTTL.Seconds()), "/", "", secure, true)
	}
	return id, sess
}

var templateFuncs = template.FuncMap{
	"join": strings.Join,
}
