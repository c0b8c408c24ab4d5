package moderation

import (
	"sync"

	"github.com/pinspot/pinspot_api/internal/model"
)

// targetLocks serializes the read-modify-write sequences per target.
// Cross-target operations proceed in parallel. The map grows with the number
// of distinct targets touched by this process; entries are a bare mutex each.
type targetLocks struct {
	mu    sync.Mutex
	locks map[model.TargetRef]*sync.Mutex
}

func (t *targetLocks) lock(ref model.TargetRef) func() {
	t.mu.Lock()
	if t.locks == nil {
		t.locks = make(map[model.TargetRef]*sync.Mutex)
	}
	l, ok := t.locks[ref]
	if !ok {
		l = &sync.Mutex{}
		t.locks[ref] = l
	}
	t.mu.Unlock()

	l.Lock()
	return l.Unlock
}
