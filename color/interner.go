package color

import (
	"sync"
)

// shardCount controls contention under concurrent Intern calls. It need not
// be large: the interner's total key space is bounded by |V| × 3 (spec.md
// §5, "Resource policy"), so a handful of shards is enough to remove lock
// contention between sibling subtrees processed in parallel.
const shardCount = 16

// shard is one lock-protected partition of the interning table.
type shard struct {
	mu    sync.RWMutex
	pairs map[key]*ColorPair
}

type key struct {
	vertex int
	color  Color
}

// Interner canonicalizes (vertex, color) pairs. The zero value is not
// usable; construct with NewInterner. Safe for concurrent use by multiple
// goroutines, per spec.md §5's concurrency model for the color-pair
// interner.
type Interner struct {
	shards [shardCount]*shard
}

// NewInterner returns a ready-to-use Interner.
func NewInterner() *Interner {
	in := &Interner{}
	for i := range in.shards {
		in.shards[i] = &shard{pairs: make(map[key]*ColorPair)}
	}
	return in
}

// Intern returns the canonical ColorPair for (vertex, color). The first
// call for a given pair allocates and stores it; subsequent calls for the
// same pair return the identical pointer (spec.md P5: interning
// idempotence).
func (in *Interner) Intern(vertex int, c Color) *ColorPair {
	k := key{vertex: vertex, color: c}
	s := in.shards[shardFor(vertex)]

	s.mu.RLock()
	if p, ok := s.pairs[k]; ok {
		s.mu.RUnlock()
		return p
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	// Re-check: another goroutine may have inserted while we waited for Lock.
	if p, ok := s.pairs[k]; ok {
		return p
	}
	p := &ColorPair{Vertex: vertex, Color: c}
	s.pairs[k] = p
	return p
}

// Len returns the total number of distinct pairs interned so far. Intended
// for diagnostics and tests, not for hot-path use.
func (in *Interner) Len() int {
	total := 0
	for _, s := range in.shards {
		s.mu.RLock()
		total += len(s.pairs)
		s.mu.RUnlock()
	}
	return total
}

func shardFor(vertex int) int {
	// vertex ids are small non-negative integers in practice; a cheap
	// multiplicative mix keeps nearby ids from piling into one shard.
	u := uint(vertex)
	return int((u * 2654435761) % shardCount)
}
