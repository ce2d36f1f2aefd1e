// SPDX-License-Identifier: Unlicense OR MIT

package state

import (
	"testing"
)

func TestFloatCreatesOnFirstRead(t *testing.T) {
	var s Store
	if got := s.Float(1, "velocity", .5); got != .5 {
		t.Fatalf("first read = %v, want default .5", got)
	}
	if got := s.Float(1, "velocity", 7); got != .5 {
		t.Errorf("second read = %v, want stored .5", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
	if s.Writes() != 1 {
		t.Errorf("Writes = %d, want 1", s.Writes())
	}
}

func TestSetFloat(t *testing.T) {
	var s Store
	s.SetFloat(2, "phase-time", 3)
	if v, ok := s.Lookup(2, "phase-time"); !ok || v != 3 {
		t.Errorf("Lookup = %v, %v", v, ok)
	}
	if _, ok := s.Lookup(2, "velocity"); ok {
		t.Error("Lookup created or found an unset slot")
	}
	if s.Len() != 1 {
		t.Errorf("Lookup must not create slots, Len = %d", s.Len())
	}
}

func TestSlotsAreIndependent(t *testing.T) {
	var s Store
	s.SetFloat(1, "a", 1)
	s.SetFloat(1, "b", 2)
	s.SetFloat(2, "a", 3)
	for _, test := range []struct {
		id   ID
		slot Slot
		want float32
	}{
		{1, "a", 1}, {1, "b", 2}, {2, "a", 3},
	} {
		if got := s.Float(test.id, test.slot, -1); got != test.want {
			t.Errorf("(%d, %s) = %v, want %v", test.id, test.slot, got, test.want)
		}
	}
}

func TestKeysSorted(t *testing.T) {
	var s Store
	s.SetFloat(9, "b", 0)
	s.SetFloat(1, "z", 0)
	s.SetFloat(9, "a", 0)
	want := []Key{{1, "z"}, {9, "a"}, {9, "b"}}
	got := s.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReset(t *testing.T) {
	var s Store
	s.SetFloat(1, "a", 1)
	s.Reset()
	if s.Len() != 0 || s.Writes() != 0 {
		t.Errorf("after Reset: Len = %d, Writes = %d", s.Len(), s.Writes())
	}
	if got := s.Float(1, "a", 4); got != 4 {
		t.Errorf("read after Reset = %v, want default", got)
	}
}

func BenchmarkReadModifyWrite(b *testing.B) {
	var s Store
	for i := 0; i < b.N; i++ {
		v := s.Float(ID(i%64), "velocity", 0)
		s.SetFloat(ID(i%64), "velocity", v+1)
	}
}
