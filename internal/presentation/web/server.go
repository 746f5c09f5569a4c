package web

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tesso57/akita-homepage/internal/application/usecase"
	"github.com/tesso57/akita-homepage/internal/domain/homepage"
	"go.uber.org/zap"
)

// Server wires handlers, templates, and the homepage service together.
type Server struct {
	svc      usecase.HomepageService
	renderer *Renderer
	logger   *zap.Logger
	content  atomic.Pointer[homepage.Content]
	loadedAt atomic.Pointer[time.Time]
	mux      *http.ServeMux
	now      func() time.Time
}

// NewServer constructs an HTTP handler and loads content once.
func NewServer(ctx context.Context, svc usecase.HomepageService, logger *zap.Logger) (*Server, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := &Server{
		svc:      svc,
		renderer: renderer,
		logger:   logger,
		mux:      http.NewServeMux(),
		now:      time.Now,
	}
	if err := srv.Reload(ctx); err != nil {
		return nil, err
	}

	srv.mux.HandleFunc("GET /{$}", srv.handleIndex)
	srv.mux.HandleFunc("GET /publications/{id}", srv.handleGroupRedirect)
	srv.mux.HandleFunc("GET /publications/{id}/{$}", srv.handleGroup)
	srv.mux.HandleFunc("GET /feed.xml", srv.handleFeed)
	srv.mux.HandleFunc("GET /healthz", srv.handleHealth)
	srv.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(Static())))

	return srv, nil
}

// Reload loads content again. On failure the previous content keeps serving.
func (s *Server) Reload(ctx context.Context) error {
	c, report, err := s.svc.Load(ctx)
	if err != nil {
		s.logger.Error("load content", zap.Error(err))
		return err
	}
	if report.EventsErr != nil {
		s.logger.Warn("upcoming events unavailable", zap.Error(report.EventsErr))
	}
	now := s.now()
	s.content.Store(&c)
	s.loadedAt.Store(&now)
	s.logger.Info("content loaded",
		zap.Int("paper_groups", len(c.PaperGroups)),
		zap.Int("publications", len(c.Publications())),
		zap.Int("upcoming_events", report.UpcomingEvents))
	return nil
}

// ServeHTTP satisfies http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	s.logger.Info("request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", rec.status),
		zap.Duration("duration", time.Since(start)))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := s.svc.Mount(*s.current())
	if err != nil {
		s.mountFailed(w, r, err)
		return
	}
	s.renderPage(w, r, page)
}

func (s *Server) handleGroupRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, ExpandedPath(r.PathValue("id")), http.StatusMovedPermanently)
}

func (s *Server) handleGroup(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	page, err := s.svc.Mount(*s.current(), id)
	if err != nil {
		s.mountFailed(w, r, err)
		return
	}
	if l, _ := page.List(id); !l.ShowToggle() {
		// Nothing to expand.
		http.Redirect(w, r, "/#pub-"+id, http.StatusFound)
		return
	}
	s.renderPage(w, r, page)
}

func (s *Server) mountFailed(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, usecase.ErrUnknownGroup) {
		http.NotFound(w, r)
		return
	}
	s.logger.Error("mount page", zap.Error(err))
	http.Error(w, "failed to render page", http.StatusInternalServerError)
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, page *usecase.Page) {
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, page); err != nil {
		s.logger.Error("render page", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleFeed(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer
	if err := WriteAtom(&buf, s.svc.Site, *s.current(), *s.loadedAt.Load()); err != nil {
		s.logger.Error("render feed", zap.Error(err))
		http.Error(w, "failed to render feed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/atom+xml; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) current() *homepage.Content {
	return s.content.Load()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
