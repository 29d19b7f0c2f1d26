package store

import (
	"sync"

	"github.com/defense-analyst/research-chatbot/internal/model"
)

// MemoryStore keeps conversation entries in a process-lifetime map. No
// eviction, no size bound, no persistence; entries are lost on restart.
// Concurrent writes to the same id are last-write-wins.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]model.ConversationEntry
}

// NewMemoryStore creates an empty in-memory conversation store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]model.ConversationEntry),
	}
}

// Get returns the entry for a conversation id, if present.
func (s *MemoryStore) Get(conversationID string) (model.ConversationEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[conversationID]
	return entry, ok
}

// Put creates or overwrites the entry for a conversation id.
func (s *MemoryStore) Put(conversationID string, entry model.ConversationEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[conversationID] = entry
}

// Len returns the number of stored conversations.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}
