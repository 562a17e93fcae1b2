package progress

import "sync"

// Channel is an unbounded FIFO of progress lines. Push never blocks.
type Channel struct {
	mu     sync.Mutex
	lines  []string
	notify chan struct{}
}

// NewChannel creates an empty progress channel
func NewChannel() *Channel {
	return &Channel{
		lines:  make([]string, 0),
		notify: make(chan struct{}, 1),
	}
}

// Push appends a line and wakes a subscriber if one is waiting
func (c *Channel) Push(line string) {
	c.mu.Lock()
	c.lines = append(c.lines, line)
	c.mu.Unlock()

	select {
	case c.notify <- struct{}{}:
	default:
	}
}

// TryPop returns the oldest line, or false if the channel is empty
func (c *Channel) TryPop() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.lines) == 0 {
		return "", false
	}
	line := c.lines[0]
	c.lines[0] = ""
	c.lines = c.lines[1:]
	return line, true
}

// Drain pops every pending line in order
func (c *Channel) Drain() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.lines) == 0 {
		return nil
	}
	lines := c.lines
	c.lines = make([]string, 0)
	return lines
}

// Len returns the number of pending lines
func (c *Channel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Notify returns a signal that fires after one or more pushes. Signals are
// coalesced, so a receiver must Drain rather than pop a single line.
func (c *Channel) Notify() <-chan struct{} {
	return c.notify
}
