package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// doJSON sends a request to the server and decodes the JSON response body
// into v, which may be nil to discard the body.
func doJSON(t *testing.T, s *Server, method, path, body string, v interface{}) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	if v != nil {
		if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
			t.Fatalf("decoding %s %s response: %v\nbody: %s", method, path, err, w.Body.String())
		}
	}

	return w
}

// createSession makes a session via the API and returns its id.
func createSession(t *testing.T, s *Server) string {
	t.Helper()

	var sess SessionModel
	w := doJSON(t, s, http.MethodPost, "/api/v1/sessions", "", &sess)
	if w.Code != http.StatusCreated {
		t.Fatalf("creating session: got status %d, body: %s", w.Code, w.Body.String())
	}

	return sess.ID
}

func Test_SessionsPOST_createsSession(t *testing.T) {
	assert := assert.New(t)
	s := New()

	var sess SessionModel
	w := doJSON(t, s, http.MethodPost, "/api/v1/sessions", "", &sess)

	assert.Equal(http.StatusCreated, w.Code)
	assert.False(sess.Created.IsZero())
	assert.Zero(sess.Evals)

	_, err := uuid.Parse(sess.ID)
	assert.NoError(err, "session id should be a well-formed UUID")
}

func Test_SessionGET(t *testing.T) {
	assert := assert.New(t)
	s := New()
	id := createSession(t, s)

	var sess SessionModel
	w := doJSON(t, s, http.MethodGet, "/api/v1/sessions/"+id, "", &sess)

	assert.Equal(http.StatusOK, w.Code)
	assert.Equal(id, sess.ID)
	assert.Zero(sess.Evals)
}

func Test_SessionGET_unknownSession(t *testing.T) {
	assert := assert.New(t)
	s := New()

	var errResp ErrorResponse
	w := doJSON(t, s, http.MethodGet, "/api/v1/sessions/"+uuid.NewString(), "", &errResp)

	assert.Equal(http.StatusNotFound, w.Code)
	assert.Equal(http.StatusNotFound, errResp.Status)
}

func Test_SessionEvalPOST_evaluates(t *testing.T) {
	assert := assert.New(t)
	s := New()
	id := createSession(t, s)

	var resp EvalResponse
	w := doJSON(t, s, http.MethodPost, "/api/v1/sessions/"+id+"/eval", `{"source": "1 + 2"}`, &resp)

	assert.Equal(http.StatusOK, w.Code)
	assert.Equal("3", resp.Result)
	assert.Equal("number", resp.Type)
	assert.Equal("(+ 1 2)", resp.Tree)
}

func Test_SessionEvalPOST_countsEvals(t *testing.T) {
	assert := assert.New(t)
	s := New()
	id := createSession(t, s)

	doJSON(t, s, http.MethodPost, "/api/v1/sessions/"+id+"/eval", `{"source": "1 + 2"}`, nil)
	doJSON(t, s, http.MethodPost, "/api/v1/sessions/"+id+"/eval", `{"source": "!nil"}`, nil)

	var sess SessionModel
	w := doJSON(t, s, http.MethodGet, "/api/v1/sessions/"+id, "", &sess)

	assert.Equal(http.StatusOK, w.Code)
	assert.Equal(2, sess.Evals)
}

func Test_SessionEvalPOST_syntaxError(t *testing.T) {
	assert := assert.New(t)
	s := New()
	id := createSession(t, s)

	var resp DiagnosticsResponse
	w := doJSON(t, s, http.MethodPost, "/api/v1/sessions/"+id+"/eval", `{"source": "(1 + 2"}`, &resp)

	assert.Equal(http.StatusUnprocessableEntity, w.Code)
	assert.Equal("syntax", resp.Phase)
	if !assert.Len(resp.Diagnostics, 1) {
		return
	}
	assert.Equal(1, resp.Diagnostics[0].Line)
	assert.Equal(" at end", resp.Diagnostics[0].Location)
	assert.Equal("Expect ')' after expression.", resp.Diagnostics[0].Message)
	assert.Equal("[line 1] Error  at end: Expect ')' after expression.", resp.Diagnostics[0].Display)
}

func Test_SessionEvalPOST_runtimeError(t *testing.T) {
	assert := assert.New(t)
	s := New()
	id := createSession(t, s)

	var resp DiagnosticsResponse
	w := doJSON(t, s, http.MethodPost, "/api/v1/sessions/"+id+"/eval", `{"source": "1 + \"cheese\""}`, &resp)

	assert.Equal(http.StatusConflict, w.Code)
	assert.Equal("runtime", resp.Phase)
	if !assert.Len(resp.Diagnostics, 1) {
		return
	}
	assert.Equal("Operands must be two numbers or two strings.", resp.Diagnostics[0].Message)
}

func Test_SessionEvalPOST_emptySource(t *testing.T) {
	assert := assert.New(t)
	s := New()
	id := createSession(t, s)

	var errResp ErrorResponse
	w := doJSON(t, s, http.MethodPost, "/api/v1/sessions/"+id+"/eval", `{}`, &errResp)

	assert.Equal(http.StatusBadRequest, w.Code)
}

func Test_SessionEvalPOST_unknownSession(t *testing.T) {
	assert := assert.New(t)
	s := New()

	var errResp ErrorResponse
	w := doJSON(t, s, http.MethodPost, "/api/v1/sessions/"+uuid.NewString()+"/eval", `{"source": "1"}`, &errResp)

	assert.Equal(http.StatusNotFound, w.Code)
}

func Test_SessionEvalPOST_malformedID(t *testing.T) {
	assert := assert.New(t)
	s := New()

	w := doJSON(t, s, http.MethodGet, "/api/v1/sessions/not-a-uuid", "", nil)

	assert.Equal(http.StatusNotFound, w.Code)
}

func Test_InfoGET(t *testing.T) {
	assert := assert.New(t)
	s := New()

	var info InfoModel
	w := doJSON(t, s, http.MethodGet, "/api/v1/info", "", &info)

	assert.Equal(http.StatusOK, w.Code)
	assert.NotEmpty(info.Version)
	assert.NotEmpty(info.InterpVersion)
}
