package store

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
)

// Memory is a process-local backend. It keeps saved bytes so Reload
// behaves like a durable backend within one process.
type Memory struct {
	mu    sync.Mutex
	saved map[string]map[string]json.RawMessage
}

// NewMemory creates an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{saved: map[string]map[string]json.RawMessage{}}
}

// Load returns a copy of the last saved namespace.
func (m *Memory) Load(_ context.Context, namespace string) (map[string]json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneRaw(m.saved[namespace]), nil
}

// Save stores a copy of docs.
func (m *Memory) Save(_ context.Context, namespace string, docs map[string]json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved[namespace] = cloneRaw(docs)
	return nil
}

func cloneRaw(in map[string]json.RawMessage) map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(in))
	for k, v := range in {
		out[k] = bytes.Clone(v)
	}
	return out
}
