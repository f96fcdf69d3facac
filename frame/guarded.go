package frame

import "sync"

// Guarded serializes access to a DataFrame with one coarse lock. Row and
// column deletes shift whole slices, so finer locking is not offered.
type Guarded struct {
	lock sync.RWMutex
	df   *DataFrame
}

func NewGuarded(df *DataFrame) *Guarded {
	if df == nil {
		df = New()
	}
	return &Guarded{df: df}
}

// Read runs fn under the shared lock. fn must not mutate the frame or
// keep references to it.
func (g *Guarded) Read(fn func(df *DataFrame)) {
	g.lock.RLock()
	defer g.lock.RUnlock()

	fn(g.df)
}

// Write runs fn under the exclusive lock and returns its error.
func (g *Guarded) Write(fn func(df *DataFrame) error) error {
	g.lock.Lock()
	defer g.lock.Unlock()

	return fn(g.df)
}
