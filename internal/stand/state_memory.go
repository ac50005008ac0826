package stand

import (
	"context"
	"errors"
	"sync"
)

// StateRepository holds the single run a session plays. Get returns a deep
// copy and Set swaps in a new snapshot, which is what makes a day atomic:
// a failed attempt never touches the stored state.
type StateRepository interface {
	Get(ctx context.Context) (*State, error)
	Set(ctx context.Context, s *State) error
}

type MemoryStateRepo struct {
	mu    sync.RWMutex
	state *State
}

func NewMemoryStateRepo() *MemoryStateRepo {
	return &MemoryStateRepo{}
}

func (r *MemoryStateRepo) Get(ctx context.Context) (*State, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.state == nil {
		return nil, errors.New("game state not initialized")
	}
	return r.state.Clone(), nil
}

func (r *MemoryStateRepo) Set(ctx context.Context, s *State) error {
	_ = ctx
	if s == nil {
		return errors.New("state cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = s.Clone()
	return nil
}

var _ StateRepository = (*MemoryStateRepo)(nil)
