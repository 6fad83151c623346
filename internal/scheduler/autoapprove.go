package scheduler

import (
	"sort"
	"sync"
)

// autoApproveSet holds tool names that skip confirmation for one session.
type autoApproveSet struct {
	mu    sync.RWMutex
	names map[string]bool
}

func newAutoApproveSet(initial []string) *autoApproveSet {
	s := &autoApproveSet{names: make(map[string]bool)}
	for _, n := range initial {
		s.names[n] = true
	}
	return s
}

func (s *autoApproveSet) contains(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.names[name]
}

func (s *autoApproveSet) add(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names[name] = true
}

func (s *autoApproveSet) list() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.names))
	for n := range s.names {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
