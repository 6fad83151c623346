package scheduler

import "sync"

// pathLocks serializes executions that mutate the same target.
type pathLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newPathLocks() *pathLocks {
	return &pathLocks{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the lock for target and returns its release func.
// An empty target is never locked.
func (p *pathLocks) lock(target string) func() {
	if target == "" {
		return func() {}
	}
	p.mu.Lock()
	l, ok := p.locks[target]
	if !ok {
		l = &sync.Mutex{}
		p.locks[target] = l
	}
	p.mu.Unlock()

	l.Lock()
	return l.Unlock
}
