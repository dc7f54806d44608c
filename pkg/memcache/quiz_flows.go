// pkg/memcache/quiz_flows.go
package mem

import (
	"sync"
	"time"
)

// FlowStore keeps active quiz flows in process memory. Flow state is
// deliberately not durable: leaving a quiz discards it, matching the
// lifecycle of the in-browser run it replaces. Reads refresh the deadline
// so a flow only expires after a period of inactivity.
type FlowStore struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]flowEntry
}

type flowEntry struct {
	value     any
	expiresAt time.Time
}

func NewFlowStore(ttl time.Duration) *FlowStore {
	return &FlowStore{
		ttl:  ttl,
		data: make(map[string]flowEntry),
	}
}

func (s *FlowStore) Put(id string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = flowEntry{value: v, expiresAt: time.Now().Add(s.ttl)}
}

// Get returns the stored flow and extends its deadline. Returns false for
// missing or expired ids; expired entries are removed on access.
func (s *FlowStore) Get(id string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, id)
		return nil, false
	}
	e.expiresAt = time.Now().Add(s.ttl)
	s.data[id] = e
	return e.value, true
}

func (s *FlowStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}
