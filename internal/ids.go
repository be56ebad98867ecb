package internal

// Ids for transient entities that a UI keeps replacing in place: the cursor
// dot and the line being dragged out. They are negative so they can never
// collide with a counter id.
const (
	MouseID    = -5
	TempLineID = -6
)

// Hands out entity ids. Ids must never repeat for the lifetime of the stores
// that share the source.
type IDSource interface {
	NextID() int
}

// Monotonic id counter starting at 0. Share one Counter between stores to get
// process-wide unique ids.
type Counter struct {
	next int
}

func (c *Counter) NextID() int {
	id := c.next
	c.next++
	return id
}

// The id the next call to NextID will return
func (c *Counter) Peek() int {
	return c.next
}

// Returns a pointer to id, for pinning a fixed id through Extra
func FixedID(id int) *int {
	return &id
}
