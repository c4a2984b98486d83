// Package sync provides thin wrappers around the standard library's
// mutexes, so callers embed a local type rather than sync directly.
package sync

import "sync"

// A Mutex is a mutual exclusion lock.
type Mutex struct {
	sync.Mutex
}

// An RWMutex is a reader/writer mutual exclusion lock.
type RWMutex struct {
	sync.RWMutex
}
