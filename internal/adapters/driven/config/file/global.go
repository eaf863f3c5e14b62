package file

import (
	"sync"
	"sync/atomic"
)

var (
	initMu  sync.Mutex
	current atomic.Pointer[Loaded]
)

// Init loads the process-wide configuration once. Later calls return the
// configuration published by the first.
func Init(opts Options) *Loaded {
	initMu.Lock()
	defer initMu.Unlock()

	if l := current.Load(); l != nil {
		return l
	}
	l := Load(opts)
	current.Store(l)
	return l
}

// Get returns the process-wide configuration, loading it with default
// options if Init has not run.
func Get() *Loaded {
	if l := current.Load(); l != nil {
		return l
	}
	return Init(Options{})
}

// reset clears the published configuration. Tests only.
func reset() {
	initMu.Lock()
	defer initMu.Unlock()
	current.Store(nil)
}
