// Package stats counts the elements that were processed.
package stats

import (
	"fmt"
	"sync/atomic"
	"time"
)

type Counter struct {
	start     time.Time
	elements  int64
	changed   int64
	unchanged int64
	skipped   int64
}

func NewCounter() *Counter {
	return &Counter{start: time.Now()}
}

// AddElements counts elements that were read.
func (c *Counter) AddElements(n int) { atomic.AddInt64(&c.elements, int64(n)) }

// AddChanged counts elements with modified tags.
func (c *Counter) AddChanged(n int) { atomic.AddInt64(&c.changed, int64(n)) }

// AddUnchanged counts elements that were processed but kept their tags.
func (c *Counter) AddUnchanged(n int) { atomic.AddInt64(&c.unchanged, int64(n)) }

// AddSkipped counts elements that were not processed.
func (c *Counter) AddSkipped(n int) { atomic.AddInt64(&c.skipped, int64(n)) }

type Count struct {
	Elements  int64
	Changed   int64
	Unchanged int64
	Skipped   int64
	Duration  time.Duration
}

func (c *Counter) Count() Count {
	return Count{
		Elements:  atomic.LoadInt64(&c.elements),
		Changed:   atomic.LoadInt64(&c.changed),
		Unchanged: atomic.LoadInt64(&c.unchanged),
		Skipped:   atomic.LoadInt64(&c.skipped),
		Duration:  time.Since(c.start),
	}
}

func (c Count) String() string {
	return fmt.Sprintf("Elements: %d Changed: %d Unchanged: %d Skipped: %d (%s)",
		c.Elements, c.Changed, c.Unchanged, c.Skipped,
		c.Duration.Truncate(time.Millisecond))
}
