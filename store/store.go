// seehuhn.de/go/shapes - rendering of parametric 2D shapes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package store is an in-memory reactive collection of shapes.
//
// Subscribers are notified after every mutation, once per mutation and
// without any lock held, so that they may read the store from within the
// callback. A *Store can be used as the shapes.Source of a binding.
package store

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"seehuhn.de/go/shapes"
)

// ErrNotFound is returned when a shape id is not in the store.
var ErrNotFound = errors.New("store: shape not found")

type subscriber struct {
	id int
	fn func()
}

// Store holds a list of shapes in insertion order.
type Store struct {
	mu      sync.Mutex
	shapes  []shapes.Shape
	nextID  int
	version uint64

	subs    []subscriber
	nextSub int
}

// New returns a store holding one shape for each of props, with ids
// 1, 2, 3, ...
func New(props ...shapes.Props) *Store {
	s := &Store{nextID: 1}
	for _, p := range props {
		s.shapes = append(s.shapes, shapes.Shape{ID: s.nextID, Props: p})
		s.nextID++
	}
	return s
}

// Add appends a new shape and returns it.
func (s *Store) Add(p shapes.Props) shapes.Shape {
	s.mu.Lock()
	sh := shapes.Shape{ID: s.nextID, Props: p}
	s.nextID++
	s.shapes = append(s.shapes, sh)
	s.version++
	s.mu.Unlock()

	s.notify()
	return sh
}

// Update replaces the properties of the shape with the given id.
func (s *Store) Update(id int, p shapes.Props) error {
	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("update %d: %w", id, ErrNotFound)
	}
	s.shapes[i].Props = p
	s.version++
	s.mu.Unlock()

	s.notify()
	return nil
}

// Modify applies fn to the properties of the shape with the given id,
// as a single mutation. fn runs without the store lock held and may read
// the store. If the shape is removed while fn runs, ErrNotFound is
// returned and the result of fn is discarded.
func (s *Store) Modify(id int, fn func(shapes.Props) shapes.Props) error {
	old, ok := s.Shape(id)
	if !ok {
		return fmt.Errorf("modify %d: %w", id, ErrNotFound)
	}
	p := fn(old.Props)

	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("modify %d: %w", id, ErrNotFound)
	}
	s.shapes[i].Props = p
	s.version++
	s.mu.Unlock()

	s.notify()
	return nil
}

// Remove deletes the shape with the given id.
func (s *Store) Remove(id int) error {
	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("remove %d: %w", id, ErrNotFound)
	}
	s.shapes = slices.Delete(s.shapes, i, i+1)
	s.version++
	s.mu.Unlock()

	s.notify()
	return nil
}

// Shape returns the current snapshot of the shape with the given id.
func (s *Store) Shape(id int) (shapes.Shape, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return shapes.Shape{}, false
	}
	return s.shapes[i], true
}

// Shapes returns a copy of all shapes, in insertion order.
func (s *Store) Shapes() []shapes.Shape {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.shapes)
}

// Version returns the number of mutations so far.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Subscribe registers fn to be called after every mutation. The returned
// function removes the subscription; calling it more than once is safe.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool {
				return sub.id == id
			})
		})
	}
}

// notify calls all subscribers, in subscription order.
func (s *Store) notify() {
	s.mu.Lock()
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn()
	}
}

// index returns the position of the shape with the given id, or -1.
// It must be called with s.mu held.
func (s *Store) index(id int) int {
	return slices.IndexFunc(s.shapes, func(sh shapes.Shape) bool {
		return sh.ID == id
	})
}
