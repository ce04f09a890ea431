package memory

// Pool is a typed, bounded freelist.
type Pool[T any] struct {
	ctor  func() *T
	free  []*T
	limit int
	stats Stats
}

// Stats counts pool traffic since creation.
type Stats struct {
	Allocated uint64 // objects built by the constructor
	Reused    uint64 // objects served from the freelist
	Released  uint64 // objects accepted by Put
	Dropped   uint64 // objects refused by Put because the freelist was full
}

// NewPool creates a pool that keeps at most limit released objects.
// A limit of zero or less makes Put drop everything.
func NewPool[T any](ctor func() *T, limit int) *Pool[T] {
	if ctor == nil {
		ctor = func() *T { return new(T) }
	}
	if limit < 0 {
		limit = 0
	}
	return &Pool[T]{ctor: ctor, limit: limit}
}

// Get returns a released object if one is available, otherwise a new one.
// Callers must reset recycled objects before use.
func (p *Pool[T]) Get() *T {
	if n := len(p.free); n > 0 {
		v := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		p.stats.Reused++
		return v
	}
	p.stats.Allocated++
	return p.ctor()
}

// Put hands v back to the pool. It reports false when v was dropped.
func (p *Pool[T]) Put(v *T) bool {
	if v == nil {
		return false
	}
	if len(p.free) >= p.limit {
		p.stats.Dropped++
		return false
	}
	p.free = append(p.free, v)
	p.stats.Released++
	return true
}

// Len is the number of objects waiting on the freelist.
func (p *Pool[T]) Len() int { return len(p.free) }

func (p *Pool[T]) Stats() Stats { return p.stats }

// Reset empties the freelist without touching the counters.
func (p *Pool[T]) Reset() {
	clear(p.free)
	p.free = p.free[:0]
}
