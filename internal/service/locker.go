package service

import (
	"sync"

	"github.com/google/uuid"
)

// ProjectLocker serializes mutations per project. Ingestion and synthesis
// rewrite the shared ledgers, so each project gets a single writer at a
// time while unrelated projects proceed in parallel.
type ProjectLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewProjectLocker() *ProjectLocker {
	return &ProjectLocker{locks: make(map[uuid.UUID]*sync.Mutex)}
}

// Lock acquires the project's mutex and returns its release func.
func (l *ProjectLocker) Lock(id uuid.UUID) func() {
	l.mu.Lock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
