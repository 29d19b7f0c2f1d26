// Package store provides conversation storage.
package store

import (
	"github.com/defense-analyst/research-chatbot/internal/model"
)

// ConversationStore records the last exchange per conversation id. The
// in-memory implementation is the reference behavior; the interface exists
// so a persistent store can be swapped in without touching the service
// layer.
type ConversationStore interface {
	// Get returns the entry for a conversation id, if present.
	Get(conversationID string) (model.ConversationEntry, bool)

	// Put creates or overwrites the entry for a conversation id.
	Put(conversationID string, entry model.ConversationEntry)

	// Len returns the number of stored conversations.
	Len() int
}
