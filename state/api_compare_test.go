package state

import (
	"testing"

	"github.com/fanlia/luaz/api"
	"github.com/fanlia/luaz/binchunk"
)

func TestConcatThreeStrings(t *testing.T) {
	s := New(16, &binchunk.Prototype{MaxStackSize: 10})
	s.PushString("a")
	s.PushString("b")
	s.PushString("c")
	if err := s.Concat(3); err != nil {
		t.Fatal(err)
	}
	if s.GetTop() != 1 {
		t.Fatalf("GetTop() after Concat(3) = %d, want 1", s.GetTop())
	}
	if got := s.ToString(-1); got != "abc" {
		t.Errorf("Concat(3) = %q, want %q", got, "abc")
	}
}

func TestConcatZeroPushesEmptyString(t *testing.T) {
	s := New(16, &binchunk.Prototype{MaxStackSize: 10})
	if err := s.Concat(0); err != nil {
		t.Fatal(err)
	}
	if got := s.ToString(-1); got != "" {
		t.Errorf("Concat(0) = %q, want empty string", got)
	}
}

func TestLenOnStringAndTable(t *testing.T) {
	s := New(16, &binchunk.Prototype{MaxStackSize: 10})
	s.PushString("hello")
	if err := s.Len(-1); err != nil {
		t.Fatal(err)
	}
	if got := s.ToInteger(-1); got != 5 {
		t.Errorf("Len(\"hello\") = %d, want 5", got)
	}

	s.NewTable()
	s.PushInteger(10)
	s.SetI(-2, 1)
	s.PushInteger(20)
	s.SetI(-2, 2)
	if err := s.Len(-1); err != nil {
		t.Fatal(err)
	}
	if got := s.ToInteger(-1); got != 2 {
		t.Errorf("Len(table with 2 array entries) = %d, want 2", got)
	}
}

func TestCompareLtCrossType(t *testing.T) {
	s := New(16, &binchunk.Prototype{MaxStackSize: 10})
	s.PushInteger(2)
	s.PushNumber(2.5)
	lt, err := s.Compare(-2, -1, api.OpLt)
	if err != nil {
		t.Fatal(err)
	}
	if !lt {
		t.Error("Compare(2, 2.5, Lt) should be true")
	}
}
