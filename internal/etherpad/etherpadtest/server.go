// Package etherpadtest provides an in-memory fake of the editing service
// HTTP API for tests.
package etherpadtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// Session records a session opened on the fake service.
type Session struct {
	GroupID    string
	AuthorID   string
	ValidUntil int64
}

// Server is a fake editing service backed by in-memory maps. The zero
// maps are initialized by New.
type Server struct {
	*httptest.Server

	mu sync.Mutex

	// Groups maps group mappers to group ids.
	Groups map[string]string
	// Pads maps pad ids to their HTML content.
	Pads map[string]string
	// Authors maps author mappers to author ids.
	Authors map[string]string
	// Sessions lists every session created, in order.
	Sessions []Session
	// Calls lists every API function called, in order.
	Calls []string

	// FailFunction makes the named API function respond with FailCode.
	FailFunction string
	// FailCode is the envelope code returned for FailFunction (default 2).
	FailCode int

	sessionSeq int
}

// New starts a fake editing service.
func New() *Server {
	s := &Server{
		Groups:  make(map[string]string),
		Pads:    make(map[string]string),
		Authors: make(map[string]string),
	}

	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))

	return s
}

// CallCount returns how often the given API function was called.
func (s *Server) CallCount(function string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	for _, call := range s.Calls {
		if call == function {
			n++
		}
	}

	return n
}

// SeedPad registers a pad with the given content.
func (s *Server) SeedPad(padID, html string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Pads[padID] = html
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	function := parts[len(parts)-1]

	s.mu.Lock()
	defer s.mu.Unlock()

	s.Calls = append(s.Calls, function)

	if r.URL.Query().Get("apikey") == "" {
		respond(w, 4, "no or wrong API Key", nil)
		return
	}

	if s.FailFunction == function {
		code := s.FailCode
		if code == 0 {
			code = 2
		}

		respond(w, code, "internal error", nil)

		return
	}

	q := r.URL.Query()

	switch function {
	case "createGroupIfNotExistsFor":
		mapper := q.Get("groupMapper")
		if _, ok := s.Groups[mapper]; !ok {
			s.Groups[mapper] = "g." + mapper
		}

		respond(w, 0, "ok", map[string]string{"groupID": s.Groups[mapper]})

	case "createGroupPad":
		padID := q.Get("groupID") + "$" + q.Get("padName")
		s.Pads[padID] = ""
		respond(w, 0, "ok", map[string]string{"padID": padID})

	case "getHTML":
		html, ok := s.Pads[q.Get("padID")]
		if !ok {
			respond(w, 1, "padID does not exist", nil)
			return
		}

		respond(w, 0, "ok", map[string]string{"html": html})

	case "setHTML":
		if _, ok := s.Pads[q.Get("padID")]; !ok {
			respond(w, 1, "padID does not exist", nil)
			return
		}

		s.Pads[q.Get("padID")] = q.Get("html")
		respond(w, 0, "ok", nil)

	case "createAuthorIfNotExistsFor":
		mapper := q.Get("authorMapper")
		if _, ok := s.Authors[mapper]; !ok {
			s.Authors[mapper] = "a." + mapper
		}

		respond(w, 0, "ok", map[string]string{"authorID": s.Authors[mapper]})

	case "createSession":
		s.sessionSeq++
		sessionID := fmt.Sprintf("s.%04d", s.sessionSeq)

		var validUntil int64
		_, _ = fmt.Sscanf(q.Get("validUntil"), "%d", &validUntil)

		s.Sessions = append(s.Sessions, Session{
			GroupID:    q.Get("groupID"),
			AuthorID:   q.Get("authorID"),
			ValidUntil: validUntil,
		})

		respond(w, 0, "ok", map[string]string{"sessionID": sessionID})

	case "listAllPads":
		padIDs := make([]string, 0, len(s.Pads))
		for padID := range s.Pads {
			padIDs = append(padIDs, padID)
		}

		respond(w, 0, "ok", map[string][]string{"padIDs": padIDs})

	case "deletePad":
		if _, ok := s.Pads[q.Get("padID")]; !ok {
			respond(w, 1, "padID does not exist", nil)
			return
		}

		delete(s.Pads, q.Get("padID"))
		respond(w, 0, "ok", nil)

	default:
		respond(w, 3, "no such function", nil)
	}
}

func respond(w http.ResponseWriter, code int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    code,
		"message": message,
		"data":    data,
	})
}
