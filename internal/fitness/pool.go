package fitness

import (
	"sort"

	"github.com/vovakirdan/litetux-lab/internal/metrics"
)

// Entry is a scored level.
type Entry struct {
	Name    string
	Fitness float64
	Report  metrics.Report
}

// Pool keeps the fittest entries seen so far, best first. Among equal
// scores the entry added earlier ranks higher.
type Pool struct {
	size    int
	entries []Entry
}

// NewPool returns a pool holding at most size entries.
func NewPool(size int) *Pool {
	if size < 0 {
		size = 0
	}
	return &Pool{size: size, entries: make([]Entry, 0, size)}
}

// Add offers an entry to the pool and reports whether it was kept.
func (p *Pool) Add(e Entry) bool {
	i := sort.Search(len(p.entries), func(i int) bool {
		return p.entries[i].Fitness < e.Fitness
	})
	if i >= p.size {
		return false
	}
	if len(p.entries) < p.size {
		p.entries = append(p.entries, Entry{})
	}
	copy(p.entries[i+1:], p.entries[i:])
	p.entries[i] = e
	return true
}

// Entries returns the pool contents, best first.
func (p *Pool) Entries() []Entry {
	return append([]Entry(nil), p.entries...)
}

func (p *Pool) Len() int { return len(p.entries) }

func (p *Pool) Cap() int { return p.size }

func (p *Pool) Full() bool { return len(p.entries) == p.size }

// Best returns the top entry.
func (p *Pool) Best() (Entry, bool) {
	if len(p.entries) == 0 {
		return Entry{}, false
	}
	return p.entries[0], true
}
