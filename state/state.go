// SPDX-License-Identifier: Unlicense OR MIT

/*
Package state implements the per-instance memory of spinners.

Immediate mode widgets are redrawn from scratch every frame, so a
spinner that needs inertia or a decaying echo keeps its few floats in a
Store, keyed by the spinner's identity and a slot name. A slot comes
into existence the first time it is read and lives as long as the Store.
Slots of spinners that are no longer drawn are simply never read again.

A Store is owned by the render context of one window. It is not safe for
concurrent use; all spinners of a window are drawn from the goroutine
that owns the window.
*/
package state

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ID identifies a widget instance. It is derived from the widget's label
// and enclosing scope by the caller.
type ID uint64

// Slot names one float of a widget's persistent state.
type Slot string

// Key addresses a single slot.
type Key struct {
	ID   ID
	Slot Slot
}

// Store maps slots to their values. The zero value is an empty store
// ready for use.
type Store struct {
	slots  map[Key]float32
	writes int
}

// Float returns the value of the slot. A slot that does not exist yet is
// created with value def.
func (s *Store) Float(id ID, slot Slot, def float32) float32 {
	k := Key{ID: id, Slot: slot}
	if v, ok := s.slots[k]; ok {
		return v
	}
	if s.slots == nil {
		s.slots = make(map[Key]float32)
	}
	s.slots[k] = def
	s.writes++
	return def
}

// SetFloat updates the value of a slot, creating it if necessary.
func (s *Store) SetFloat(id ID, slot Slot, v float32) {
	if s.slots == nil {
		s.slots = make(map[Key]float32)
	}
	s.slots[Key{ID: id, Slot: slot}] = v
	s.writes++
}

// Lookup is like Float but never creates the slot.
func (s *Store) Lookup(id ID, slot Slot) (float32, bool) {
	v, ok := s.slots[Key{ID: id, Slot: slot}]
	return v, ok
}

// Len returns the number of slots.
func (s *Store) Len() int {
	return len(s.slots)
}

// Writes returns the number of slot creations and updates since the
// store was created or reset.
func (s *Store) Writes() int {
	return s.writes
}

// Reset discards every slot.
func (s *Store) Reset() {
	s.slots = nil
	s.writes = 0
}

// Keys returns the keys of all slots, ordered by ID and then by slot
// name.
func (s *Store) Keys() []Key {
	keys := maps.Keys(s.slots)
	slices.SortFunc(keys, func(a, b Key) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		case a.Slot < b.Slot:
			return -1
		case a.Slot > b.Slot:
			return 1
		}
		return 0
	})
	return keys
}
