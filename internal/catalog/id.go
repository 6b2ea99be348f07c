package catalog

import (
	"strconv"
	"sync"
	"time"
)

// idGenerator derives record ids from the creation time in milliseconds.
// Two ids requested within the same millisecond (or after the clock steps
// back) get last+1, so ids stay unique and increasing.
type idGenerator struct {
	mu   sync.Mutex
	last int64
}

func (g *idGenerator) next(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := now.UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}
