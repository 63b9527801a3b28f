// Package server exposes the configured source page's player over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/framecast/framecast/config"
	"github.com/framecast/framecast/log"
	"github.com/gorilla/mux"
)

// ErrNoSource is reported by the index page when no source page is configured.
var ErrNoSource = errors.New("no source url configured")

// Locator resolves a source page to its embedded player.
type Locator interface {
	Get(ctx context.Context, source string) (string, error)
}

// Sources reads and updates the configured source page.
type Sources interface {
	SourceURL() string
	SetSourceURL(url string) error
}

// Server routes requests to the locator and the source configuration.
type Server struct {
	locator Locator
	sources Sources
	router  *mux.Router
}

// New returns a server using locator and sources.
func New(locator Locator, sources Sources) *Server {
	s := &Server{
		locator: locator,
		sources: sources,
		router:  mux.NewRouter(),
	}

	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet, http.MethodOptions)
	s.router.HandleFunc("/current-url", s.handleCurrent).Methods(http.MethodGet, http.MethodOptions)
	s.router.HandleFunc("/update-url", s.handleUpdate).Methods(http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	s.router.Use(mux.CORSMethodMiddleware(s.router))
	s.router.Use(preflight)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	w.Header().Set("Access-Control-Allow-Origin", "*")
	s.router.ServeHTTP(rec, r)

	log.WithFields(log.Fields{
		"method":   r.Method,
		"path":     r.URL.Path,
		"status":   rec.status,
		"duration": time.Since(started).String(),
	}).Info("request")
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	source := s.sources.SourceURL()
	if source == "" {
		s.renderError(w, ErrNoSource)
		return
	}

	player, err := s.locator.Get(r.Context(), source)
	if err != nil {
		s.renderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := playerTemplate.Execute(w, playerPage{Player: player, Source: source}); err != nil {
		log.Errorf("render player page: %v", err)
	}
}

func (s *Server) renderError(w http.ResponseWriter, err error) {
	log.Error(err)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_ = errorTemplate.Execute(w, err.Error())
}

func (s *Server) handleCurrent(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"url": s.sources.SourceURL()})
}

type updateRequest struct {
	NewURL string `json:"newUrl"`
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := s.sources.SetSourceURL(req.NewURL); err != nil {
		if errors.Is(err, config.ErrInvalidSource) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid url format"})
			return
		}
		log.Errorf("update source url: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	log.Infof("source url updated to %s", req.NewURL)
	writeJSON(w, http.StatusOK, map[string]string{"message": "URL updated", "url": req.NewURL})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("OK"))
}

// preflight answers OPTIONS requests once CORSMethodMiddleware has listed the allowed methods.
func preflight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// ListenAndServe serves handler on addr until ctx is cancelled, then shuts down gracefully.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
