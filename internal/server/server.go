// Package server renders the portfolio page and serves its assets.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tinexu/portfolio/internal/config"
	"github.com/tinexu/portfolio/internal/content"
	"github.com/tinexu/portfolio/internal/interaction"
)

//go:embed web/templates/*.html web/static/*
var webFS embed.FS

const shutdownTimeout = 5 * time.Second

// navItem is one entry of the navigation bar.
type navItem struct {
	ID    string
	Label string
}

var sectionLabels = map[string]string{
	"home":       "Home",
	"about":      "About",
	"experience": "Experience",
	"projects":   "Projects",
	"contact":    "Contact",
}

type Server struct {
	cfg    config.Config
	store  *content.Store
	log    *zap.Logger
	engine *gin.Engine
}

// New builds the gin engine. Call gin.SetMode before New to pick the mode.
func New(cfg config.Config, store *content.Store, log *zap.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(webFS, "web/templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	static, err := fs.Sub(webFS, "web/static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	salt := cfg.HashSalt
	if salt == "" {
		if salt, err = newSalt(); err != nil {
			return nil, fmt.Errorf("generate client hash salt: %w", err)
		}
	}

	s := &Server{cfg: cfg, store: store, log: log}

	r := gin.New()
	r.Use(recovery(log), requestLogger(log, salt))
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/static", http.FS(static))
	r.Static("/assets", cfg.AssetsDir)

	r.GET("/", s.index)
	r.GET("/api/content", s.contentJSON)
	r.GET("/api/interaction-config", s.interactionJSON)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.engine = r
	return s, nil
}

// Handler returns the HTTP handler for tests and embedding.
func (s *Server) Handler() http.Handler { return s.engine }

// clientConfig merges the controller settings with the content the browser
// side needs.
func (s *Server) clientConfig(p *content.Portfolio) interaction.ClientConfig {
	ctrl := s.cfg.Interaction
	if msg := p.Profile.Contact.Confirmation; msg != "" {
		ctrl.ContactConfirmation = msg
	}
	return interaction.NewClientConfig(ctrl, p.Profile.Roles)
}

func (s *Server) nav() []navItem {
	items := make([]navItem, 0, len(s.cfg.Interaction.Sections))
	for _, id := range s.cfg.Interaction.Sections {
		label, ok := sectionLabels[id]
		if !ok {
			label = id
		}
		items = append(items, navItem{ID: id, Label: label})
	}
	return items
}

func (s *Server) index(c *gin.Context) {
	p := s.store.Get()
	c.HTML(http.StatusOK, "index.html", gin.H{
		"profile":    p.Profile,
		"experience": p.Experience,
		"projects":   p.Projects,
		"skills":     p.Skills,
		"nav":        s.nav(),
		"config":     s.clientConfig(p),
	})
}

func (s *Server) contentJSON(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Get())
}

func (s *Server) interactionJSON(c *gin.Context) {
	c.JSON(http.StatusOK, s.clientConfig(s.store.Get()))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("portfolio listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
