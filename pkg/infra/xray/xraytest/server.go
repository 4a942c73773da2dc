// Package xraytest provides an in-process fake of the Xray endpoints used by xray-sync.
package xraytest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultToken is the token issued when WithToken is not given
const DefaultToken = "test-token"

// config holds the canned behavior of the fake service
type config struct {
	token        string
	authStatus   int
	exportStatus int
	archive      []byte
	importStatus int
	importBody   string
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithToken sets the token issued by /authenticate
func WithToken(token string) Option {
	return func(c *config) {
		c.token = token
	}
}

// WithAuthStatus makes /authenticate answer with status
func WithAuthStatus(status int) Option {
	return func(c *config) {
		c.authStatus = status
	}
}

// WithArchive sets the zip body served by /export/cucumber
func WithArchive(archive []byte) Option {
	return func(c *config) {
		c.archive = archive
	}
}

// WithExportStatus makes /export/cucumber answer with status
func WithExportStatus(status int) Option {
	return func(c *config) {
		c.exportStatus = status
	}
}

// WithImportResponse sets the JSON body served by /import/feature
func WithImportResponse(body string) Option {
	return func(c *config) {
		c.importBody = body
	}
}

// WithImportStatus makes /import/feature answer with status
func WithImportStatus(status int) Option {
	return func(c *config) {
		c.importStatus = status
	}
}

// UploadedFile is the file part received by /import/feature
type UploadedFile struct {
	FieldName   string
	FileName    string
	ContentType string
	Content     []byte
}

// Request is a recorded call to the fake service
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
	File   *UploadedFile
}

// Server is a running fake Xray service
type Server struct {
	*httptest.Server

	cfg      *config
	mu       sync.Mutex
	requests []Request
}

// NewServer starts a fake Xray service that is closed when the test ends
func NewServer(t testing.TB, opts ...Option) *Server {
	t.Helper()

	cfg := &config{
		token:        DefaultToken,
		authStatus:   http.StatusOK,
		exportStatus: http.StatusOK,
		importStatus: http.StatusOK,
		importBody:   `{"updatedOrCreatedTests":[]}`,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Server{cfg: cfg}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.recordMiddleware)

	router.Post("/authenticate", s.handleAuthenticate)
	router.Get("/export/cucumber", s.handleExport)
	router.Post("/import/feature", s.handleImport)

	s.Server = httptest.NewServer(router)
	t.Cleanup(s.Close)

	return s
}

// Requests returns every request received so far
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// RequestsTo returns the requests received on path
func (s *Server) RequestsTo(path string) []Request {
	var out []Request
	for _, req := range s.Requests() {
		if req.Path == path {
			out = append(out, req)
		}
	}
	return out
}

func (s *Server) recordMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// attachFile stores the uploaded part on the most recent recorded request
func (s *Server) attachFile(file *UploadedFile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.requests) > 0 {
		s.requests[len(s.requests)-1].File = file
	}
}

func (s *Server) authorized(r *http.Request) bool {
	return r.Header.Get("Authorization") == "Bearer "+s.cfg.token
}

func (s *Server) handleAuthenticate(w http.ResponseWriter, r *http.Request) {
	if s.cfg.authStatus != http.StatusOK {
		writeError(w, "authentication failed", s.cfg.authStatus)
		return
	}

	var creds struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, "invalid body", http.StatusBadRequest)
		return
	}
	if creds.ClientID == "" || creds.ClientSecret == "" {
		writeError(w, "missing credentials", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(s.cfg.token)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if s.cfg.exportStatus != http.StatusOK {
		writeError(w, "export failed", s.cfg.exportStatus)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(s.cfg.archive)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, "invalid multipart body", http.StatusBadRequest)
		return
	}
	for field, headers := range r.MultipartForm.File {
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				writeError(w, err.Error(), http.StatusBadRequest)
				return
			}
			content, err := io.ReadAll(f)
			_ = f.Close()
			if err != nil {
				writeError(w, err.Error(), http.StatusBadRequest)
				return
			}
			s.attachFile(&UploadedFile{
				FieldName:   field,
				FileName:    fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Content:     content,
			})
		}
	}

	if s.cfg.importStatus != http.StatusOK {
		writeError(w, "import failed", s.cfg.importStatus)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, s.cfg.importBody)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": msg,
	})
}
