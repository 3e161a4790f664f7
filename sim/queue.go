// Implements the WaitingArea, the bounded FIFO holding arrivals that found
// every server busy. Arrivals that find it full balk.

package sim

import (
	"fmt"
	"strings"
)

// WaitingArea is a FIFO of arrivals not yet assigned to a server.
// Its size never exceeds its capacity unless it was built unbounded.
type WaitingArea struct {
	queue     []Arrival
	capacity  int
	unbounded bool
}

// NewWaitingArea returns an empty waiting area holding at most capacity arrivals.
// A capacity of 0 means every arrival that cannot be seated immediately balks.
func NewWaitingArea(capacity int) *WaitingArea {
	if capacity < 0 {
		panic(fmt.Sprintf("NewWaitingArea: capacity must be non-negative, got %d", capacity))
	}
	return &WaitingArea{capacity: capacity}
}

// NewUnboundedWaitingArea returns a waiting area that admits every arrival.
func NewUnboundedWaitingArea() *WaitingArea {
	return &WaitingArea{unbounded: true}
}

// TryAdmit appends a to the back of the area and returns true if there is room.
// Otherwise a is not stored and the caller records a balk.
func (wa *WaitingArea) TryAdmit(a Arrival) bool {
	if !wa.unbounded && len(wa.queue) >= wa.capacity {
		return false
	}
	wa.queue = append(wa.queue, a)
	return true
}

// Peek returns the arrival at the front without removing it.
func (wa *WaitingArea) Peek() (Arrival, bool) {
	if len(wa.queue) == 0 {
		return Arrival{}, false
	}
	return wa.queue[0], true
}

// Pop removes and returns the front arrival. Popping an empty area is a
// caller bug and returns ErrEmptyQueue.
func (wa *WaitingArea) Pop() (Arrival, error) {
	if len(wa.queue) == 0 {
		return Arrival{}, ErrEmptyQueue
	}
	front := wa.queue[0]
	wa.queue = wa.queue[1:]
	return front, nil
}

// Len returns the number of waiting arrivals.
func (wa *WaitingArea) Len() int {
	return len(wa.queue)
}

// Capacity returns the configured capacity; meaningless when Unbounded.
func (wa *WaitingArea) Capacity() int {
	return wa.capacity
}

// Unbounded reports whether the capacity check is disabled.
func (wa *WaitingArea) Unbounded() bool {
	return wa.unbounded
}

// Items returns a copy of the waiting arrivals, front first.
func (wa *WaitingArea) Items() []Arrival {
	return append([]Arrival(nil), wa.queue...)
}

func (wa *WaitingArea) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, a := range wa.queue {
		sb.WriteString(fmt.Sprint(a.ID))
		if i < len(wa.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
