package host

import (
	"sync"
)

// Interner deduplicates strings into shared Str handles, keyed by content.
// Lookups take a read lock so concurrent readers proceed in parallel;
// insertion takes the write lock and re-checks for a racing insert.
//
// A nil *Interner is valid and simply allocates a fresh Str per call. Cells
// materialized outside any parsing session use that path.
type Interner struct {
	mu    sync.RWMutex
	cache map[string]*Str
}

// NewInterner creates an empty session interner.
func NewInterner() *Interner {
	return &Interner{cache: make(map[string]*Str)}
}

// Intern returns the shared handle for key, creating it on first use.
func (in *Interner) Intern(key string) *Str {
	if in == nil {
		return NewStr(key)
	}

	in.mu.RLock()
	s, ok := in.cache[key]
	in.mu.RUnlock()
	if ok {
		return s
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	if s, ok := in.cache[key]; ok {
		return s
	}
	s = NewStr(key)
	in.cache[key] = s
	return s
}

// Len returns the number of distinct interned strings.
func (in *Interner) Len() int {
	if in == nil {
		return 0
	}
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.cache)
}
