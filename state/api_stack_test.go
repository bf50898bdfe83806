package state

import (
	"testing"

	"github.com/fanlia/luaz/binchunk"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	return New(32, &binchunk.Prototype{MaxStackSize: 10})
}

func TestSetTopRoundTrip(t *testing.T) {
	s := newTestState(t)
	s.PushInteger(1)
	s.PushInteger(2)
	s.PushInteger(3)
	top := s.GetTop()
	if err := s.SetTop(top); err != nil {
		t.Fatal(err)
	}
	if s.GetTop() != top {
		t.Errorf("SetTop(getTop()) changed top: got %d, want %d", s.GetTop(), top)
	}
}

func TestRotateRoundTrip(t *testing.T) {
	s := newTestState(t)
	s.PushInteger(1)
	s.PushInteger(2)
	s.PushInteger(3)
	s.PushInteger(4)

	if err := s.Rotate(1, 2); err != nil {
		t.Fatal(err)
	}
	if err := s.Rotate(1, -2); err != nil {
		t.Fatal(err)
	}
	for i, want := range []int64{1, 2, 3, 4} {
		if got := s.ToInteger(i + 1); got != want {
			t.Errorf("after rotate(1,2); rotate(1,-2), slot %d = %d, want %d", i+1, got, want)
		}
	}
}

func TestInsertRemove(t *testing.T) {
	s := newTestState(t)
	s.PushInteger(1)
	s.PushInteger(2)
	s.PushInteger(3)
	s.PushInteger(99)
	if err := s.Insert(1); err != nil {
		t.Fatal(err)
	}
	want := []int64{99, 1, 2, 3}
	for i, w := range want {
		if got := s.ToInteger(i + 1); got != w {
			t.Errorf("after Insert(1), slot %d = %d, want %d", i+1, got, w)
		}
	}
	if err := s.Remove(1); err != nil {
		t.Fatal(err)
	}
	for i, w := range []int64{1, 2, 3} {
		if got := s.ToInteger(i + 1); got != w {
			t.Errorf("after Remove(1), slot %d = %d, want %d", i+1, got, w)
		}
	}
}
