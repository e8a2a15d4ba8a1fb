package testsupport

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// CompletionServer is an httptest server standing in for a chat completion
// endpoint. It records every request it receives.
type CompletionServer struct {
	*httptest.Server

	mu      sync.Mutex
	calls   int
	body    []byte
	header  http.Header
	handler http.HandlerFunc
}

// NewCompletionServer starts a stub endpoint backed by handler and closes it
// when the test finishes.
func NewCompletionServer(t testing.TB, handler http.HandlerFunc) *CompletionServer {
	t.Helper()

	s := &CompletionServer{handler: handler}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// NewContentServer starts a stub endpoint that always answers with content
// as the assistant message.
func NewContentServer(t testing.TB, content string) *CompletionServer {
	t.Helper()
	return NewCompletionServer(t, ContentHandler(content))
}

func (s *CompletionServer) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	s.mu.Lock()
	s.calls++
	s.body = body
	s.header = r.Header.Clone()
	s.mu.Unlock()
	s.handler(w, r)
}

// BaseURL returns the API root to configure clients with.
func (s *CompletionServer) BaseURL() string {
	return s.URL + "/v1"
}

// Calls reports how many requests reached the server.
func (s *CompletionServer) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// LastHeader returns the headers of the most recent request.
func (s *CompletionServer) LastHeader() http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.header
}

// LastRequest decodes the most recent request body.
func (s *CompletionServer) LastRequest(t testing.TB) map[string]any {
	t.Helper()

	s.mu.Lock()
	body := s.body
	s.mu.Unlock()
	if body == nil {
		t.Fatal("expected a request to have been recorded")
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode request body %q: %v", body, err)
	}
	return payload
}

// ContentHandler answers with a successful completion whose message content is content.
func ContentHandler(content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model": "stub-model",
			"choices": []map[string]any{{
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": "stop",
			}},
		})
	}
}

// StatusHandler answers every request with status and a raw body.
func StatusHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}
