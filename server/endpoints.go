package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dekarrin/lox/internal/diag"
	"github.com/dekarrin/lox/internal/syntax"
	"github.com/dekarrin/lox/internal/version"
	"github.com/google/uuid"
)

// SessionModel is the API representation of an evaluation session.
type SessionModel struct {
	ID      string    `json:"id"`
	Created time.Time `json:"created"`
	Evals   int       `json:"evals"`
}

// EvalRequest is the request body for evaluating source text.
type EvalRequest struct {
	Source string `json:"source"`
}

// EvalResponse is the response body for a successful evaluation.
type EvalResponse struct {
	// Result is the display form of the produced value.
	Result string `json:"result"`

	// Type is the runtime type of the produced value.
	Type string `json:"type"`

	// Tree is the parsed expression in parenthesized prefix form.
	Tree string `json:"tree"`
}

// DiagnosticModel is the API representation of one reported diagnostic.
type DiagnosticModel struct {
	Line     int    `json:"line"`
	Location string `json:"location,omitempty"`
	Message  string `json:"message"`

	// Display is the diagnostic in "[line N] Error <location>: <message>"
	// form.
	Display string `json:"display"`
}

// DiagnosticsResponse is the response body for an evaluation stopped by one
// or more diagnostics.
type DiagnosticsResponse struct {
	// Phase is the pipeline phase that failed, "syntax" or "runtime".
	Phase string `json:"phase"`

	Diagnostics []DiagnosticModel `json:"diagnostics"`
}

// InfoModel is the API representation of server version info.
type InfoModel struct {
	Version       string `json:"version"`
	InterpVersion string `json:"interpreter_version"`
}

// POST /sessions: create a new evaluation session
func (s *Server) epSessionsPOST(req *http.Request) endpointResult {
	sess, err := s.sessions.Create()
	if err != nil {
		return jsonInternalServerError("could not create session: %v", err)
	}

	resp := SessionModel{
		ID:      sess.ID.String(),
		Created: sess.Created,
	}
	return jsonCreated(resp, "session %s created", sess.ID)
}

// GET /sessions/{id}: get info on a session
func (s *Server) epSessionGET(req *http.Request, id uuid.UUID) endpointResult {
	sess, err := s.sessions.Get(id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return jsonNotFound("session %s does not exist", id)
		}
		return jsonInternalServerError("could not get session: %v", err)
	}

	evals, err := s.sessions.EvalCount(id)
	if err != nil {
		return jsonInternalServerError("could not count evals: %v", err)
	}

	resp := SessionModel{
		ID:      sess.ID.String(),
		Created: sess.Created,
		Evals:   evals,
	}
	return jsonOK(resp, "session %s retrieved", id)
}

// POST /sessions/{id}/eval: run source text through the pipeline
func (s *Server) epSessionEvalPOST(req *http.Request, id uuid.UUID) endpointResult {
	if _, err := s.sessions.Get(id); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return jsonNotFound("session %s does not exist", id)
		}
		return jsonInternalServerError("could not get session: %v", err)
	}

	evalData := EvalRequest{}
	if err := parseJSON(req, &evalData); err != nil {
		return jsonBadRequest(err.Error(), "%v", err)
	}
	if evalData.Source == "" {
		return jsonBadRequest("source: property is empty or missing from request", "empty source")
	}

	rep := &diag.Collector{}

	sc := syntax.NewScanner(evalData.Source, rep)
	tokens := sc.ScanTokens()

	p := syntax.NewParser(tokens, rep)
	expr, parseErr := p.Parse()
	if parseErr != nil || rep.HadError() {
		resp := DiagnosticsResponse{
			Phase:       "syntax",
			Diagnostics: diagModels(rep.Entries),
		}
		return jsonUnprocessable(resp, "source failed to parse: %d diagnostic(s)", len(rep.Entries))
	}

	val, err := syntax.Evaluate(expr)
	if err != nil {
		var rtErr *syntax.RuntimeError
		if errors.As(err, &rtErr) {
			rep.Report(rtErr.Line(), "", rtErr.Message())
			resp := DiagnosticsResponse{
				Phase:       "runtime",
				Diagnostics: diagModels(rep.Entries),
			}
			return jsonConflict(resp, "evaluation failed: %v", rtErr)
		}
		return jsonInternalServerError("evaluation failed: %v", err)
	}

	rec := evalRecord{
		Source: evalData.Source,
		Result: val.String(),
		Tree:   expr,
	}
	if err := s.sessions.AddRecord(id, rec); err != nil {
		return jsonInternalServerError("could not record eval: %v", err)
	}

	resp := EvalResponse{
		Result: val.String(),
		Type:   val.Type().String(),
		Tree:   expr.String(),
	}
	return jsonOK(resp, "session %s evaluated %q", id, evalData.Source)
}

// GET /info: get version info on the server
func (s *Server) epInfoGET(req *http.Request) endpointResult {
	resp := InfoModel{
		Version:       version.ServerCurrent,
		InterpVersion: version.Current,
	}
	return jsonOK(resp, "version info retrieved")
}

func diagModels(entries []diag.Entry) []DiagnosticModel {
	models := make([]DiagnosticModel, len(entries))
	for i := range entries {
		models[i] = DiagnosticModel{
			Line:     entries[i].Line,
			Location: entries[i].Location,
			Message:  entries[i].Message,
			Display:  entries[i].String(),
		}
	}
	return models
}

// parseJSON parses the request body as JSON into the given value.
func parseJSON(req *http.Request, v interface{}) error {
	bodyData, err := io.ReadAll(req.Body)
	if err != nil {
		return fmt.Errorf("could not read request body: %w", err)
	}
	defer req.Body.Close()

	if err := json.Unmarshal(bodyData, v); err != nil {
		return fmt.Errorf("malformed data in request: %w", err)
	}

	return nil
}
