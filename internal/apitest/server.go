// Package apitest runs an in-memory fake of the stock-analysis backend for tests.
// It serves the same paths and shapes as the real API under /api/v1, records every
// request it receives, and can be told to answer specific requests with canned
// failures.
package apitest

import (
	"bytes"
	"io"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

// Prefix is the path every API route lives under
const Prefix = "/api/v1"

// Server is a running fake backend
type Server struct {
	*httptest.Server
	Store *Store
	rec   *recorder
}

// NewServer starts a fake backend seeded with DefaultCompanies. Callers must Close it.
func NewServer() *Server {
	gin.SetMode(gin.TestMode)

	store := NewStore()
	for _, c := range DefaultCompanies() {
		store.AddCompany(c)
	}

	rec := &recorder{overrides: make(map[string]Override)}
	router := gin.New()
	router.Use(recordRequests(rec, Prefix))
	registerRoutes(router.Group(Prefix), &handler{store: store})

	return &Server{
		Server: httptest.NewServer(router),
		Store:  store,
		rec:    rec,
	}
}

// BaseURL is the URL to hand to api.NewClient
func (s *Server) BaseURL() string {
	return s.URL + Prefix
}

// Requests returns a copy of every request received so far
func (s *Server) Requests() []Request {
	s.rec.mu.Lock()
	defer s.rec.mu.Unlock()

	out := make([]Request, len(s.rec.requests))
	copy(out, s.rec.requests)
	return out
}

// LastRequest returns the most recent request, if any
func (s *Server) LastRequest() (Request, bool) {
	reqs := s.Requests()
	if len(reqs) == 0 {
		return Request{}, false
	}
	return reqs[len(reqs)-1], true
}

// ResetRequests forgets recorded requests
func (s *Server) ResetRequests() {
	s.rec.mu.Lock()
	defer s.rec.mu.Unlock()

	s.rec.requests = nil
}

// Override makes every request for method and path (below Prefix) answer with
// status and body instead of reaching the route
func (s *Server) Override(method, path string, status int, body string) {
	s.rec.mu.Lock()
	defer s.rec.mu.Unlock()

	s.rec.overrides[overrideKey(method, path)] = Override{Status: status, Body: body}
}

// ClearOverrides removes every override
func (s *Server) ClearOverrides() {
	s.rec.mu.Lock()
	defer s.rec.mu.Unlock()

	s.rec.overrides = make(map[string]Override)
}

func newBody(b []byte) io.ReadCloser {
	return io.NopCloser(bytes.NewReader(b))
}
