// Package dashboard provides the web UI over the derived report.
package dashboard

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/rmarchan/tablero/pkg/application"
)

//go:embed templates/*
var templatesFS embed.FS

// DataProvider provides the derived report for the dashboard.
type DataProvider interface {
	BuildReport() (*application.DashboardReport, error)
}

// Server is the dashboard HTTP server.
type Server struct {
	addr     string
	provider DataProvider
	server   *http.Server
	tmpl     *template.Template
}

// NewServer creates a new dashboard server.
func NewServer(addr string, provider DataProvider) (*Server, error) {
	funcMap := template.FuncMap{
		"severity":   severityClass,
		"formatDate": formatDate,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Server{
		addr:     addr,
		provider: provider,
		tmpl:     tmpl,
	}, nil
}

// Start starts the dashboard server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /", s.handleIndex)
	mux.HandleFunc("GET /api/report", s.handleAPIReport)

	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Printf("Dashboard server starting on %s", s.addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// PageData holds data for template rendering.
type PageData struct {
	Title  string
	Report *application.DashboardReport
	Error  string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := PageData{Title: "Tablero"}

	report, err := s.provider.BuildReport()
	if err != nil {
		data.Error = err.Error()
	} else {
		data.Report = report
	}

	s.render(w, "index.html", data)
}

func (s *Server) handleAPIReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.provider.BuildReport()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Template error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Template helper functions
func severityClass(severity string) string {
	switch severity {
	case "green":
		return "sem-green"
	case "red":
		return "sem-red"
	case "blue":
		return "sem-blue"
	case "yellow":
		return "sem-yellow"
	default:
		return "sem-unknown"
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
