package undo

import (
	"fmt"
	"testing"

	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/domain"
)

func TestPopEmpty(t *testing.T) {
	b := New(DefaultCapacity)
	if _, ok := b.Pop(); ok {
		t.Fatal("expected Pop on empty buffer to report empty")
	}
}

func TestLIFOOrder(t *testing.T) {
	b := New(3)
	b.Push(domain.Survey{ID: "a"})
	b.Push(domain.Survey{ID: "b"})
	b.Push(domain.Survey{ID: "c"})

	for _, want := range []string{"c", "b", "a"} {
		got, ok := b.Pop()
		if !ok {
			t.Fatalf("buffer empty, wanted %q", want)
		}
		if got.ID != want {
			t.Fatalf("popped %q, want %q", got.ID, want)
		}
	}
	if _, ok := b.Pop(); ok {
		t.Fatal("buffer should be drained")
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	b := New(DefaultCapacity)
	for i := 0; i < DefaultCapacity+1; i++ {
		b.Push(domain.Survey{ID: fmt.Sprintf("s%02d", i)})
	}
	if b.Len() != DefaultCapacity {
		t.Fatalf("len = %d, want %d", b.Len(), DefaultCapacity)
	}

	// The 50 most recent deletions come back in reverse deletion order;
	// s00 was evicted.
	for i := DefaultCapacity; i >= 1; i-- {
		got, ok := b.Pop()
		if !ok {
			t.Fatalf("buffer drained early at %d", i)
		}
		if want := fmt.Sprintf("s%02d", i); got.ID != want {
			t.Fatalf("popped %q, want %q", got.ID, want)
		}
	}
	if _, ok := b.Pop(); ok {
		t.Fatal("evicted entry resurfaced")
	}
}
