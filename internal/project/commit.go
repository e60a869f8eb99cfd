package project

import (
	"sync"
	"time"
)

// defaultCommitInterval is the quiet period before a session mirror fires.
const defaultCommitInterval = 500 * time.Millisecond

// committer coalesces rapid session changes into a single durable write,
// decoupling persistence from the synchronous edit path.
type committer struct {
	interval time.Duration
	flush    func()

	mu    sync.Mutex
	timer *time.Timer
}

func newCommitter(interval time.Duration, flush func()) *committer {
	return &committer{interval: interval, flush: flush}
}

// Schedule arms (or re-arms) the commit timer. Changes arriving within the
// interval of each other result in one write.
func (c *committer) Schedule() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.interval, c.flush)
}

// Flush cancels any pending timer and runs the commit immediately.
func (c *committer) Flush() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
	c.flush()
}
