// Package liststore holds the in-memory list being edited.
//
// A Store owns an ordered sequence of items, a dirty flag that tracks unsaved
// mutations, and the name of the file the list is associated with. Every
// position accepted or reported by a Store is 1-based.
package liststore

import (
	"fmt"
	"slices"
	"strings"
)

// Store is the ordered list of items plus its unsaved-changes state.
// The zero value is an empty, clean list with no file name.
type Store struct {
	items    []string
	dirty    bool
	fileName string
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// Items returns a copy of the items in order.
func (s *Store) Items() []string {
	return slices.Clone(s.items)
}

// Len returns the number of items.
func (s *Store) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the list has no items.
func (s *Store) IsEmpty() bool {
	return len(s.items) == 0
}

// At returns the item at the given position.
func (s *Store) At(position int) (string, error) {
	if err := s.checkPosition(position, len(s.items)); err != nil {
		return "", err
	}
	return s.items[position-1], nil
}

// Dirty reports whether there are mutations since the last load or save.
func (s *Store) Dirty() bool {
	return s.dirty
}

// FileName returns the file name the list is associated with, or "" if none.
func (s *Store) FileName() string {
	return s.fileName
}

// SetFileName associates the list with a file name.
func (s *Store) SetFileName(name string) {
	s.fileName = name
}

// MarkClean clears the dirty flag after a successful save or load.
func (s *Store) MarkClean() {
	s.dirty = false
}

// Replace swaps in a freshly loaded list. The items are taken verbatim,
// the file name is set and the dirty flag is cleared.
func (s *Store) Replace(items []string, fileName string) {
	s.items = slices.Clone(items)
	s.fileName = fileName
	s.dirty = false
}

// Add appends an item to the end of the list.
func (s *Store) Add(item string) error {
	item, err := normalizeItem(item)
	if err != nil {
		return err
	}
	s.items = append(s.items, item)
	s.dirty = true
	return nil
}

// Insert places an item before the given position. Position Len()+1 appends.
func (s *Store) Insert(item string, position int) error {
	item, err := normalizeItem(item)
	if err != nil {
		return err
	}
	if err := s.checkPosition(position, len(s.items)+1); err != nil {
		return err
	}
	s.items = slices.Insert(s.items, position-1, item)
	s.dirty = true
	return nil
}

// Delete removes the item at the given position and returns it.
func (s *Store) Delete(position int) (string, error) {
	if err := s.checkPosition(position, len(s.items)); err != nil {
		return "", err
	}
	removed := s.items[position-1]
	s.items = slices.Delete(s.items, position-1, position)
	s.dirty = true
	return removed, nil
}

// Move relocates the item at from so that it ends up at to.
//
// Both positions refer to the list before the move. The item is removed
// first; when the target lies after the source, the target index is shifted
// down by one before the item is reinserted, so a forward move lands one slot
// before to and never reaches the last slot. On [A B C D], Move(1, 3) yields
// [B A C D], Move(1, 4) yields [B C A D] and Move(3, 1) yields [C A B D].
// A move that leaves the order unchanged does not mark the list dirty.
func (s *Store) Move(from, to int) error {
	if len(s.items) < 2 {
		return ErrInsufficientItems
	}
	if err := s.checkPosition(from, len(s.items)); err != nil {
		return err
	}
	if err := s.checkPosition(to, len(s.items)); err != nil {
		return err
	}
	fromIndex, toIndex := from-1, to-1
	if toIndex > fromIndex {
		toIndex--
	}
	if toIndex == fromIndex {
		return nil
	}

	item := s.items[fromIndex]
	s.items = slices.Delete(s.items, fromIndex, fromIndex+1)
	s.items = slices.Insert(s.items, toIndex, item)
	s.dirty = true
	return nil
}

// Clear empties the list. Clearing an empty list returns ErrAlreadyEmpty and
// leaves the dirty flag alone.
func (s *Store) Clear() error {
	if len(s.items) == 0 {
		return ErrAlreadyEmpty
	}
	s.items = nil
	s.dirty = true
	return nil
}

func (s *Store) checkPosition(position, high int) error {
	if position < 1 || position > high {
		if high == 0 {
			return fmt.Errorf("%w: list is empty", ErrOutOfRange)
		}
		return fmt.Errorf("%w: %d not in [1, %d]", ErrOutOfRange, position, high)
	}
	return nil
}

// normalizeItem trims surrounding whitespace and rejects blank items.
// Line breaks are not allowed because the file format is one item per line.
func normalizeItem(item string) (string, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return "", ErrEmptyItem
	}
	if strings.ContainsAny(item, "\r\n") {
		return "", ErrLineBreak
	}
	return item, nil
}
