package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	// APIPathPrefix is the prefix of all paths in the API.
	APIPathPrefix = "/api/v1"

	uuidPattern = "[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}"
)

func newRouter(s *Server) chi.Router {
	r := chi.NewRouter()

	r.Mount(APIPathPrefix, newAPIRouter(s))

	return r
}

func newAPIRouter(s *Server) chi.Router {
	r := chi.NewRouter()

	r.Post("/sessions", s.handlePathRoot(s.epSessionsPOST))
	r.Get("/sessions/{id:"+uuidPattern+"}", s.handlePathID(s.epSessionGET))
	r.Post("/sessions/{id:"+uuidPattern+"}/eval", s.handlePathID(s.epSessionEvalPOST))
	r.Get("/info", s.handlePathRoot(s.epInfoGET))

	return r
}

// handlePathRoot wraps an endpoint that takes no URI parameters into an
// http.HandlerFunc that writes its result.
func (s *Server) handlePathRoot(ep func(req *http.Request) endpointResult) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		res := ep(req)
		res.writeResponse(w, req)
	}
}

// handlePathID wraps an endpoint on a uuid-identified entity into an
// http.HandlerFunc that parses the id parameter and writes the endpoint's
// result.
func (s *Server) handlePathID(ep func(req *http.Request, id uuid.UUID) endpointResult) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		idStr := chi.URLParam(req, "id")
		id, err := uuid.Parse(idStr)

		var res endpointResult
		if err != nil {
			res = jsonBadRequest("id is not a valid UUID", "invalid id %q in path", idStr)
		} else {
			res = ep(req, id)
		}

		res.writeResponse(w, req)
	}
}
