package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/portfolio/messaging/internal/model"
)

// MemoryConversationRepository keeps the conversation for the lifetime of the
// process. Nothing is written to disk.
type MemoryConversationRepository struct {
	mu   sync.RWMutex
	msgs []model.ChatMessage
	ids  map[string]struct{}
}

// NewMemoryConversationRepository creates an empty log.
func NewMemoryConversationRepository() *MemoryConversationRepository {
	return &MemoryConversationRepository{ids: make(map[string]struct{})}
}

// Ensure MemoryConversationRepository implements ConversationRepository at compile time.
var _ ConversationRepository = (*MemoryConversationRepository)(nil)

// Append stores a copy of msg, so later changes by the caller do not leak into the log.
func (r *MemoryConversationRepository) Append(ctx context.Context, msg *model.ChatMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ids[msg.ID]; ok {
		return fmt.Errorf("append %s: %w", msg.ID, ErrDuplicateID)
	}
	r.ids[msg.ID] = struct{}{}
	r.msgs = append(r.msgs, *msg)
	return nil
}

func (r *MemoryConversationRepository) List(ctx context.Context) ([]model.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.ChatMessage, len(r.msgs))
	copy(out, r.msgs)
	return out, nil
}

func (r *MemoryConversationRepository) Len(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.msgs), nil
}
