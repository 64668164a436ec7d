// Package undo provides the bounded delete-recovery buffer. It is process
// local by design: entries do not survive a restart.
package undo

import (
	"sync"

	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/domain"
)

// DefaultCapacity bounds how many deleted surveys can be recovered.
const DefaultCapacity = 50

// Buffer is a fixed-capacity LIFO buffer of deleted surveys. When full, the
// oldest entry is evicted silently. The mutex makes it safe under the
// concurrent HTTP surface.
type Buffer struct {
	mu       sync.Mutex
	entries  []domain.Survey
	capacity int
}

// New returns a buffer holding at most capacity entries. A non-positive
// capacity falls back to DefaultCapacity.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{capacity: capacity}
}

// Push records a deleted survey. If the buffer is at capacity the oldest
// entry is dropped and never resurfaced.
func (b *Buffer) Push(s domain.Survey) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == b.capacity {
		copy(b.entries, b.entries[1:])
		b.entries = b.entries[:len(b.entries)-1]
	}
	b.entries = append(b.entries, s)
}

// Pop removes and returns the most recently pushed survey. The second return
// value is false when the buffer is empty; Pop never blocks.
func (b *Buffer) Pop() (domain.Survey, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == 0 {
		return domain.Survey{}, false
	}
	last := b.entries[len(b.entries)-1]
	b.entries = b.entries[:len(b.entries)-1]
	return last, true
}

// Len reports the number of recoverable deletions.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}
