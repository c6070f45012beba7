package apitest

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// Request is one request the fake backend received
type Request struct {
	Method      string
	Path        string // path below the API prefix, e.g. "/companies/AAPL"
	RawQuery    string
	ContentType string
	Body        []byte
}

// Override replaces the response of every request matching Method and Path
type Override struct {
	Status int
	Body   string
}

type recorder struct {
	mu        sync.Mutex
	requests  []Request
	overrides map[string]Override
}

func overrideKey(method, path string) string {
	return method + " " + path
}

// recordRequests logs every request (routed or not) and serves any registered
// override before the route handler runs
func recordRequests(rec *recorder, prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := strings.TrimPrefix(c.Request.URL.Path, prefix)

		var body []byte
		if c.Request.Body != nil {
			body, _ = c.GetRawData()
			c.Request.Body = newBody(body)
		}

		rec.mu.Lock()
		rec.requests = append(rec.requests, Request{
			Method:      c.Request.Method,
			Path:        path,
			RawQuery:    c.Request.URL.RawQuery,
			ContentType: c.GetHeader("Content-Type"),
			Body:        body,
		})
		override, exists := rec.overrides[overrideKey(c.Request.Method, path)]
		rec.mu.Unlock()

		if exists {
			c.Data(override.Status, "application/json", []byte(override.Body))
			c.Abort()
			return
		}
		c.Next()
	}
}
