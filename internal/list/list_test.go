package list

import (
	"slices"
	"testing"
)

func TestOrdered_PushPop(t *testing.T) {
	l := New[int]()
	for i := range 5 {
		if !l.PushBack(i) {
			t.Fatalf("PushBack(%d) = false", i)
		}
	}
	if l.PushBack(2) {
		t.Error("PushBack of a duplicate key = true")
	}
	if l.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", l.Len())
	}

	for want := range 5 {
		got, ok := l.PopFront()
		if !ok || got != want {
			t.Fatalf("PopFront() = %d, %v; want %d", got, ok, want)
		}
	}
	if _, ok := l.PopFront(); ok {
		t.Error("PopFront() on empty set = true")
	}
	if l.Len() != 0 {
		t.Errorf("Len() after draining = %d, want 0", l.Len())
	}
}

func TestOrdered_Remove(t *testing.T) {
	tests := []struct {
		name   string
		remove int
		want   []int
	}{
		{"head", 0, []int{1, 2, 3}},
		{"middle", 2, []int{0, 1, 3}},
		{"tail", 3, []int{0, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New[int]()
			for i := range 4 {
				l.PushBack(i)
			}
			if !l.Remove(tt.remove) {
				t.Fatalf("Remove(%d) = false", tt.remove)
			}
			if l.Remove(tt.remove) {
				t.Error("second Remove = true")
			}
			if got := l.Keys(); !slices.Equal(got, tt.want) {
				t.Errorf("Keys() = %v, want %v", got, tt.want)
			}
			if !l.PushBack(tt.remove) {
				t.Error("PushBack after Remove = false")
			}
		})
	}
}

func TestOrdered_Clear(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.Clear()
	if l.Len() != 0 || len(l.Keys()) != 0 {
		t.Error("Clear() left entries behind")
	}
	if !l.PushBack(1) {
		t.Error("PushBack after Clear = false")
	}
}
