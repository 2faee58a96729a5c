package server

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dekarrin/lox/internal/syntax"
	"github.com/dekarrin/rezi"
	"github.com/google/uuid"
)

var (
	// ErrSessionNotFound is returned when a session id does not refer to a
	// live session.
	ErrSessionNotFound = errors.New("no session with that ID exists")
)

// Session is one evaluation session. History holds the encoded record of
// every successful evaluation performed in the session, oldest first.
type Session struct {
	// ID uniquely identifies the session and is the only capability needed
	// to evaluate in it.
	ID uuid.UUID

	// Created is the time the session was created.
	Created time.Time

	// history entries are rezi-encoded evalRecord blobs.
	history [][]byte
}

// evalRecord is one successful evaluation: the raw source, the tree it
// parsed to, and the display form of the value it produced.
type evalRecord struct {
	Source string
	Result string
	Tree   syntax.Expr
}

// MarshalBinary converts rec into a slice of bytes that can be decoded with
// UnmarshalBinary.
func (rec evalRecord) MarshalBinary() ([]byte, error) {
	data := rezi.EncString(rec.Source)
	data = append(data, rezi.EncString(rec.Result)...)

	treeData, err := syntax.MarshalExpr(rec.Tree)
	if err != nil {
		return nil, fmt.Errorf("encoding expression tree: %w", err)
	}
	data = append(data, rezi.EncInt(len(treeData))...)
	data = append(data, treeData...)

	return data, nil
}

// UnmarshalBinary decodes a slice of bytes created by MarshalBinary into
// rec. All of rec's fields will be replaced by the fields decoded from data.
func (rec *evalRecord) UnmarshalBinary(data []byte) error {
	var err error
	var bytesRead int

	rec.Source, bytesRead, err = rezi.DecString(data)
	if err != nil {
		return fmt.Errorf("decoding source: %w", err)
	}
	data = data[bytesRead:]

	rec.Result, bytesRead, err = rezi.DecString(data)
	if err != nil {
		return fmt.Errorf("decoding result: %w", err)
	}
	data = data[bytesRead:]

	var treeLen int
	treeLen, bytesRead, err = rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("decoding tree length: %w", err)
	}
	data = data[bytesRead:]

	if treeLen < 0 || len(data) < treeLen {
		return fmt.Errorf("unexpected end of data in expression tree")
	}

	rec.Tree, _, err = syntax.UnmarshalExpr(data[:treeLen])
	if err != nil {
		return fmt.Errorf("decoding expression tree: %w", err)
	}

	return nil
}

// sessionStore is an in-memory store of live sessions, safe for concurrent
// use by server handlers.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create makes a new empty session and returns a copy of it.
func (st *sessionStore) Create() (Session, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return Session{}, fmt.Errorf("could not generate ID: %w", err)
	}

	s := &Session{
		ID:      newUUID,
		Created: time.Now(),
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s

	return *s, nil
}

// Get returns a copy of the session with the given id.
func (st *sessionStore) Get(id uuid.UUID) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}

	return *s, nil
}

// EvalCount returns the number of evaluations recorded in the session.
func (st *sessionStore) EvalCount(id uuid.UUID) (int, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return 0, ErrSessionNotFound
	}

	return len(s.history), nil
}

// AddRecord encodes the record and appends it to the session's history.
func (st *sessionStore) AddRecord(id uuid.UUID, rec evalRecord) error {
	blob := rezi.EncBinary(rec)

	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	s.history = append(s.history, blob)
	return nil
}

// Records decodes and returns the session's full history, oldest first.
func (st *sessionStore) Records(id uuid.UUID) ([]evalRecord, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	recs := make([]evalRecord, len(s.history))
	for i := range s.history {
		if _, err := rezi.DecBinary(s.history[i], &recs[i]); err != nil {
			return nil, fmt.Errorf("decoding history entry %d: %w", i, err)
		}
	}

	return recs, nil
}
