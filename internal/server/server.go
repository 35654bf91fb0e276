package server

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"bess-board/internal/annotate"
	"bess-board/internal/config"
	"bess-board/internal/dataset"
	"bess-board/internal/logger"
)

// Server is the local single-session viewer: one page, three row
// commands and an image route. The canonical table comes from the
// dataset store, so the workbook is read once per process; everything
// else is recomputed per render.
type Server struct {
	cfg       *config.Config
	store     *dataset.Store
	annotator *annotate.Annotator
	session   *Session
	tmpl      *template.Template
	httpSrv   *http.Server
}

// New creates a viewer for the configured workbook. The session starts
// with every row collapsed.
func New(cfg *config.Config, store *dataset.Store, annotator *annotate.Annotator) *Server {
	return &Server{
		cfg:       cfg,
		store:     store,
		annotator: annotator,
		session:   NewSession(),
		tmpl:      template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// Session exposes the expanded-row state, mainly so tests can assert
// command effects directly
func (s *Server) Session() *Session {
	return s.session
}

// Handler returns the routed handler with access logging attached
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/rows/toggle", s.handleToggle)
	mux.HandleFunc("/rows/expand-all", s.handleExpandAll)
	mux.HandleFunc("/rows/collapse-all", s.handleCollapseAll)
	mux.HandleFunc("/images/", s.handleImage)
	return withAccessLog(mux)
}

// Start listens on the configured address and serves until Shutdown is
// called or the listener fails. The resolved URL is logged so the user
// knows where to point the browser, ":0"-style auto-assigned ports
// included.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Server.Addr, err)
	}

	addr := listener.Addr().String()
	url := "http://" + addr
	if strings.HasPrefix(addr, ":") || strings.HasPrefix(addr, "0.0.0.0:") || strings.HasPrefix(addr, "[::]:") {
		url = "http://localhost:" + addr[strings.LastIndex(addr, ":")+1:]
	}
	logger.Info("Viewer listening on %s", url)

	s.httpSrv = &http.Server{Handler: s.Handler()}
	if err := s.httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server, letting in-flight renders finish
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

// handleIndex renders the full page for GET /
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	table, err := s.store.Get(s.cfg.Source.File)
	if err != nil {
		// Fatal per render: a missing or unreadable workbook aborts the
		// page, there is nothing sensible to show instead.
		logger.Error("Failed to load workbook: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page := buildPage(
		s.cfg.Server.Title,
		s.cfg.Source.File,
		s.cfg.Source.ImageDir,
		s.annotator.Annotate(table),
		s.session,
	)

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, page); err != nil {
		logger.Error("Template render failed: %v", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// handleToggle flips one row's expanded state and reloads the page
func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	row, err := strconv.Atoi(r.FormValue("row"))
	if err != nil || row < 0 {
		http.Error(w, "invalid row", http.StatusBadRequest)
		return
	}
	s.session.Toggle(row)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleExpandAll opens every row of the current table
func (s *Server) handleExpandAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	table, err := s.store.Get(s.cfg.Source.File)
	if err != nil {
		logger.Error("Failed to load workbook: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.session.ExpandAll(table.Len())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleCollapseAll closes every row
func (s *Server) handleCollapseAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.session.CollapseAll()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleImage serves one project image from the configured image
// directory. Only the base name is honored, and a missing file is a
// plain 404; the page itself never links an image it has not probed.
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	name := filepath.Base(strings.TrimPrefix(r.URL.Path, "/images/"))
	if name == "." || name == "/" {
		http.NotFound(w, r)
		return
	}
	path := s.cfg.ImagePath(name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}

// statusRecorder captures the response status for the access log
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// withAccessLog records one line per request in the log file (console
// too when verbose)
func withAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Access(r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
