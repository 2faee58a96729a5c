// Package server provides an HTTP REST frontend to the lox expression
// pipeline. Clients create evaluation sessions and submit source text to
// them; each submission runs the full scan/parse/evaluate pipeline and
// returns either the resulting value or the diagnostics that stopped it.
//
// Sessions and their evaluation history live in memory only; there is no
// persistence layer and no authentication. A session id is the only
// capability needed to use a session.
package server

import (
	"fmt"
	"log"
	"net/http"
)

// server:
//  - POST   /api/v1/sessions         - create a new evaluation session
//  - GET    /api/v1/sessions/{id}    - get info on a session
//  - POST   /api/v1/sessions/{id}/eval - evaluate source text in a session
//  - GET    /api/v1/info             - get version info on the server
//

// Server is an HTTP REST server that evaluates lox expressions. The
// zero-value of a Server should not be used directly; call New() to get one
// ready for use.
type Server struct {
	router   http.Handler
	sessions *sessionStore
}

// New creates a new Server with an empty in-memory session store.
func New() *Server {
	s := &Server{
		sessions: newSessionStore(),
	}
	s.router = newRouter(s)

	return s
}

// ServeHTTP dispatches the request to the server's router.
func (s *Server) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	s.router.ServeHTTP(w, req)
}

// ServeForever begins listening on the given address and port for HTTP REST
// client requests. If address is kept as "", it will default to "localhost".
// If port is less than 1, it will default to 8080.
func (s *Server) ServeForever(address string, port int) {
	if address == "" {
		address = "localhost"
	}
	if port < 1 {
		port = 8080
	}

	listenAddress := fmt.Sprintf("%s:%d", address, port)
	log.Printf("INFO  Listening on %s", listenAddress)
	log.Fatalf("FATAL %v", http.ListenAndServe(listenAddress, s.router))
}
