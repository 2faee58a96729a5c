package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
)

// ErrorResponse is the body of every error response from the API.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// endpointResult is the outcome of one endpoint call, ready to be written
// out as an HTTP response. The internal message is logged, never sent to the
// client.
type endpointResult struct {
	isErr       bool
	status      int
	internalMsg string
	resp        interface{}
}

// jsonOK returns an endpointResult containing an HTTP-200 along with a more
// detailed message that is logged but not displayed to the user.
func jsonOK(respObj interface{}, internalMsg string, v ...interface{}) endpointResult {
	return jsonResponse(http.StatusOK, respObj, internalMsg, v...)
}

// jsonCreated returns an endpointResult containing an HTTP-201 along with a
// more detailed message that is logged but not displayed to the user.
func jsonCreated(respObj interface{}, internalMsg string, v ...interface{}) endpointResult {
	return jsonResponse(http.StatusCreated, respObj, internalMsg, v...)
}

// jsonBadRequest returns an endpointResult containing an HTTP-400.
func jsonBadRequest(userMsg string, internalMsg string, v ...interface{}) endpointResult {
	return jsonErr(http.StatusBadRequest, userMsg, internalMsg, v...)
}

// jsonNotFound returns an endpointResult containing an HTTP-404.
func jsonNotFound(internalMsg string, v ...interface{}) endpointResult {
	return jsonErr(http.StatusNotFound, "The requested resource was not found", internalMsg, v...)
}

// jsonConflict returns an endpointResult containing an HTTP-409.
func jsonConflict(respObj interface{}, internalMsg string, v ...interface{}) endpointResult {
	res := jsonResponse(http.StatusConflict, respObj, internalMsg, v...)
	res.isErr = true
	return res
}

// jsonUnprocessable returns an endpointResult containing an HTTP-422 with
// the given body, used for source text that failed to scan or parse.
func jsonUnprocessable(respObj interface{}, internalMsg string, v ...interface{}) endpointResult {
	res := jsonResponse(http.StatusUnprocessableEntity, respObj, internalMsg, v...)
	res.isErr = true
	return res
}

// jsonInternalServerError returns an endpointResult containing an HTTP-500.
func jsonInternalServerError(internalMsg string, v ...interface{}) endpointResult {
	return jsonErr(http.StatusInternalServerError, "An internal server error occurred", internalMsg, v...)
}

// If additional values are provided they are given to internalMsg as a
// format string.
func jsonResponse(status int, respObj interface{}, internalMsg string, v ...interface{}) endpointResult {
	return endpointResult{
		status:      status,
		internalMsg: fmt.Sprintf(internalMsg, v...),
		resp:        respObj,
	}
}

// If additional values are provided they are given to internalMsg as a
// format string.
func jsonErr(status int, userMsg, internalMsg string, v ...interface{}) endpointResult {
	return endpointResult{
		isErr:       true,
		status:      status,
		internalMsg: fmt.Sprintf(internalMsg, v...),
		resp: ErrorResponse{
			Error:  userMsg,
			Status: status,
		},
	}
}

func (r endpointResult) writeResponse(w http.ResponseWriter, req *http.Request) {
	// if this hasn't been properly created, output error directly and do
	// not try to read properties
	if r.status == 0 {
		logHTTPResponse("ERROR", req, http.StatusInternalServerError, "endpoint result was never populated")
		http.Error(w, "An internal server error occurred", http.StatusInternalServerError)
		return
	}

	respJSON, err := json.Marshal(r.resp)
	if err != nil {
		res := jsonInternalServerError("could not marshal JSON response: " + err.Error())
		res.writeResponse(w, req)
		return
	}

	if r.isErr {
		logHTTPResponse("ERROR", req, r.status, r.internalMsg)
	} else {
		logHTTPResponse("INFO", req, r.status, r.internalMsg)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(r.status)
	w.Write(respJSON)
}

func logHTTPResponse(level string, req *http.Request, respStatus int, msg string) {
	if len(level) > 5 {
		level = level[0:5]
	}
	for len(level) < 5 {
		level += " "
	}

	// we don't really care about the ephemeral port from the client end
	remoteAddrParts := strings.SplitN(req.RemoteAddr, ":", 2)
	remoteIP := remoteAddrParts[0]

	log.Printf("%s %s %s %s: HTTP-%d %s", level, remoteIP, req.Method, req.URL.Path, respStatus, msg)
}
