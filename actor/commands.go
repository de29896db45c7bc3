package actor

// Commands buffers structural changes requested while a frame is running.
// They are applied by the World during the cleanup phase, after collisions are resolved.
type Commands struct {
	removes []ActorId
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Remove queues an actor removal
func (c *Commands) Remove(id ActorId) {
	c.removes = append(c.removes, id)
}

// Defer queues a function to run after queued removals are applied
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued operations
func (c *Commands) Len() int {
	return len(c.removes) + len(c.defers)
}

// Flush applies all queued operations to w and resets the buffer.
// Removals and deferred functions may queue more work; Flush runs until both are drained.
func (c *Commands) Flush(w *World) {
	removed := make(map[ActorId]bool, len(c.removes))
	for len(c.removes) > 0 || len(c.defers) > 0 {
		for len(c.removes) > 0 {
			removes := c.removes
			c.removes = nil
			for _, id := range removes {
				if removed[id] {
					continue
				}
				w.removeNow(id)
				removed[id] = true
			}
		}

		defers := c.defers
		c.defers = nil
		for _, fn := range defers {
			fn()
		}
	}
}
