package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defense-analyst/research-chatbot/internal/model"
)

func TestMemoryStorePutGet(t *testing.T) {
	s := NewMemoryStore()

	_, ok := s.Get("missing")
	assert.False(t, ok)

	entry := model.ConversationEntry{
		LastPrompt:   "What is the defense budget?",
		LastResponse: "The budget is...",
		Timestamp:    time.Now(),
	}
	s.Put("conv-1", entry)

	got, ok := s.Get("conv-1")
	require.True(t, ok)
	assert.Equal(t, entry, got)
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStoreOverwrite(t *testing.T) {
	s := NewMemoryStore()

	s.Put("conv-1", model.ConversationEntry{LastPrompt: "first"})
	s.Put("conv-1", model.ConversationEntry{LastPrompt: "second"})

	got, ok := s.Get("conv-1")
	require.True(t, ok)
	assert.Equal(t, "second", got.LastPrompt)
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("conv-%d", i%10)
			s.Put(id, model.ConversationEntry{LastPrompt: "prompt"})
			s.Get(id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, s.Len())
}
