package Ledger

import "sync"

// Balance mutations are read-modify-write against shared rows; two handlers
// hitting the same project concurrently would otherwise clobber each other's
// totals. Every handler that mutates balances takes the project lock first.
var projectLocks = struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}{locks: make(map[uint]*sync.Mutex)}

// LockProject serializes balance mutations for one project. It returns the
// unlock function, intended to be deferred at the call site.
func LockProject(projectID uint) func() {
	projectLocks.mu.Lock()
	lock, ok := projectLocks.locks[projectID]
	if !ok {
		lock = &sync.Mutex{}
		projectLocks.locks[projectID] = lock
	}
	projectLocks.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
