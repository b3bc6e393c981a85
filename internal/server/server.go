package server

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/jgoulah/energycalc/internal/calculation"
	"github.com/jgoulah/energycalc/internal/estimator"
	"github.com/jgoulah/energycalc/internal/form"
	"github.com/jgoulah/energycalc/internal/report"
	"github.com/jgoulah/energycalc/pkg/log"
	"github.com/jgoulah/energycalc/pkg/models"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
	readHeaderTimeout       = 10 * time.Second
	maxFormBytes            = 64 << 10
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

// Server serves the household form and renders results in the same page
type Server struct {
	svc      *calculation.Service
	defaults form.Input
	renderer report.Renderer
	logger   *zap.Logger
}

// New creates a form server. defaults pre-fill the empty form.
func New(svc *calculation.Service, defaults form.Input, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		svc:      svc,
		defaults: defaults,
		renderer: report.NewHTMLRenderer(),
		logger:   logger.Named("form_server"),
	}
}

// Routes returns the HTTP handler
func (s *Server) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(
		chiMiddleware.RequestID,
		log.Logger(s.logger, "http"),
		chiMiddleware.Recoverer,
	)

	router.Get("/", s.handleForm)
	router.Post("/", s.handleSubmit)
	router.Get("/health", s.handleHealth)

	return router
}

// Run serves on the listener until ctx is cancelled
func (s *Server) Run(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.Routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info("Shutdown signal received")
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()
		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
	}()

	s.logger.Info("Form server listening", zap.String("address", listener.Addr().String()))
	if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving form: %w", err)
	}
	return nil
}

type pageData struct {
	Form       form.Input
	ACCount    int
	Houses     []models.HouseType
	Rooms      []models.RoomType
	Days       []models.Day
	Error      string
	Results    template.HTML
	Disclaimer string
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, http.StatusOK, s.newPage(s.defaults))
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		page := s.newPage(s.defaults)
		page.Error = "Could not read the submitted form."
		s.writePage(w, http.StatusBadRequest, page)
		return
	}

	in, err := form.Decode(r.PostForm)
	if err != nil {
		page := s.newPage(s.defaults)
		page.Error = form.UserMessage(err)
		s.writePage(w, http.StatusBadRequest, page)
		return
	}

	page := s.newPage(in)
	outcome, err := s.svc.Calculate(in)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, form.ErrMissingRequiredField), errors.Is(err, form.ErrInvalidField):
			status = http.StatusBadRequest
			page.Error = form.UserMessage(err)
		case errors.Is(err, estimator.ErrInvalidRoomType):
			status = http.StatusUnprocessableEntity
			page.Error = "Invalid room type selected"
		default:
			s.logger.Error("calculation failed", zap.Error(err))
			page.Error = "Calculation failed."
		}
		s.writePage(w, status, page)
		return
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, outcome.View()); err != nil {
		s.logger.Error("rendering results", zap.Error(err))
		http.Error(w, "failed to render results", http.StatusInternalServerError)
		return
	}
	// The renderer output is produced by html/template and already escaped
	page.Results = template.HTML(buf.String())
	s.writePage(w, http.StatusOK, page)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) newPage(in form.Input) pageData {
	acCount := in.ACCount
	if acCount < form.MinACCount {
		acCount = form.MinACCount
	}
	return pageData{
		Form:       in,
		ACCount:    acCount,
		Houses:     models.HouseTypes,
		Rooms:      models.RoomTypes,
		Days:       models.Week,
		Disclaimer: report.Disclaimer,
	}
}

func (s *Server) writePage(w http.ResponseWriter, status int, page pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		s.logger.Error("rendering page", zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
