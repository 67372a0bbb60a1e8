package ring

import "testing"

func TestPushBackPopFront_FIFO(t *testing.T) {
	b := New[int]()
	for i := 0; i < 5; i++ {
		b.PushBack(i)
	}
	if got, want := b.Len(), 5; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	for i := 0; i < 5; i++ {
		if got := b.PopFront(); got != i {
			t.Fatalf("PopFront() = %d, want %d", got, i)
		}
	}
	if !b.Empty() {
		t.Fatalf("Empty() = false after draining")
	}
}

func TestPushFrontPopBack(t *testing.T) {
	b := New[int]()
	for i := 0; i < 5; i++ {
		b.PushFront(i)
	}
	// front pushes reverse order: 4,3,2,1,0
	for i := 0; i < 5; i++ {
		if got := b.PopBack(); got != i {
			t.Fatalf("PopBack() = %d, want %d", got, i)
		}
	}
}

func TestAt(t *testing.T) {
	b := New[byte]()
	b.PushBackAll([]byte("hello"))
	for i, want := range []byte("hello") {
		if got := b.At(i); got != want {
			t.Fatalf("At(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestPushFrontAll_PreservesOrder(t *testing.T) {
	b := New[byte]()
	b.PushBackAll([]byte("world"))
	b.PushFrontAll([]byte("hello "))
	if got, want := string(b.Slice()), "hello world"; got != want {
		t.Fatalf("Slice() = %q, want %q", got, want)
	}
}

func TestDropFront(t *testing.T) {
	b := New[byte]()
	b.PushBackAll([]byte("abcdef"))
	b.DropFront(3)
	if got, want := string(b.Slice()), "def"; got != want {
		t.Fatalf("Slice() = %q, want %q", got, want)
	}
}

func TestWrapAroundGrowth(t *testing.T) {
	b := New[int]()
	// Push and pop repeatedly to force the head index to wrap around the
	// backing array, then grow past capacity.
	for i := 0; i < 4; i++ {
		b.PushBack(i)
	}
	for i := 0; i < 2; i++ {
		b.PopFront()
	}
	for i := 4; i < 20; i++ {
		b.PushBack(i)
	}
	want := []int{}
	for i := 2; i < 20; i++ {
		want = append(want, i)
	}
	got := b.Slice()
	if len(got) != len(want) {
		t.Fatalf("Slice() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Slice()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFrontBack(t *testing.T) {
	b := New[byte]()
	b.PushBackAll([]byte("abc"))
	if got := b.Front(); got != 'a' {
		t.Fatalf("Front() = %q, want 'a'", got)
	}
	if got := b.Back(); got != 'c' {
		t.Fatalf("Back() = %q, want 'c'", got)
	}
}
