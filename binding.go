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

package shapes

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
)

var (
	// ErrClosed is returned by the methods of a closed Binding.
	ErrClosed = errors.New("shapes: binding closed")

	// ErrNoShape is returned by Mount when the source has no shape with
	// the bound id.
	ErrNoShape = errors.New("shapes: no such shape")
)

// Source gives read access to a reactive collection of shapes.
type Source interface {
	// Shape returns the current snapshot of the shape with the given id.
	Shape(id int) (Shape, bool)

	// Subscribe registers fn to be called after every change of the
	// collection. The returned function cancels the subscription.
	Subscribe(fn func()) (cancel func())
}

// Element is the host-visible node showing one shape.
type Element struct {
	Class  string // the variant kind
	ID     string // the shape id, in decimal
	Canvas *Canvas
}

// Binding keeps the canvas of one shape in sync with a Source. Every
// change signal leads to exactly one render of the current snapshot.
//
// The methods of a Binding are safe for concurrent use; renders of one
// binding never overlap.
type Binding struct {
	src  Source
	opts bindOptions

	mu      sync.Mutex
	id      int
	cancel  func()
	elem    *Element
	last    Props
	mounted bool
	closed  bool
	renders int
	lastErr error
}

// Bind creates a binding for the shape with the given id and subscribes
// it to src. Nothing is drawn before Mount.
func Bind(src Source, id int, opts ...BindOption) *Binding {
	b := &Binding{src: src, id: id}
	for _, opt := range opts {
		opt(&b.opts)
	}
	b.cancel = src.Subscribe(b.invalidate)
	return b
}

// Mount performs the first render and returns the element showing the
// shape. Later calls return the same element without rendering.
func (b *Binding) Mount() (*Element, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}
	if b.mounted {
		return b.elem, nil
	}

	s, ok := b.src.Shape(b.id)
	if !ok {
		return nil, fmt.Errorf("shape %d: %w", b.id, ErrNoShape)
	}
	if err := b.render(s); err != nil {
		return nil, err
	}
	b.mounted = true
	return b.elem, nil
}

// SetShape is called by the host when it passes a new snapshot to the
// element. The canvas is redrawn if the id or the properties differ from
// the last render.
func (b *Binding) SetShape(s Shape) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}
	if b.elem != nil && s.ID == b.id && sameProps(s.Props, b.last) {
		return nil
	}
	b.id = s.ID
	if err := b.render(s); err != nil {
		return err
	}
	b.mounted = true
	return nil
}

// invalidate is the change signal handler.
func (b *Binding) invalidate() {
	err := b.refresh()
	if err == nil {
		return
	}
	if b.opts.onError != nil {
		b.opts.onError(err)
		return
	}
	Logger().Error("render failed", "err", err)
}

func (b *Binding) refresh() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || !b.mounted {
		return nil
	}
	s, ok := b.src.Shape(b.id)
	if !ok {
		Logger().Debug("shape gone, keeping last frame", "id", b.id)
		return nil
	}
	return b.render(s)
}

// render must be called with b.mu held.
func (b *Binding) render(s Shape) error {
	if b.elem == nil {
		b.elem = &Element{Canvas: NewCanvas(b.opts.canvas...)}
	}
	b.elem.ID = strconv.Itoa(s.ID)
	b.elem.Class = ""
	if s.Props != nil {
		b.elem.Class = string(s.Props.Kind())
	}

	// Shapes of unknown variants leave the canvas empty.
	b.elem.Canvas.Clear()
	err := Render(s, b.elem.Canvas)
	b.lastErr = err
	if err != nil {
		return err
	}
	b.last = s.Props
	b.renders++
	return nil
}

// Element returns the element of the binding, or nil before the first
// render.
func (b *Binding) Element() *Element {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.elem
}

// Renders returns the number of successful renders so far.
func (b *Binding) Renders() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.renders
}

// Err returns the error of the most recent render, if any.
func (b *Binding) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastErr
}

// Close cancels the subscription and releases the canvas.
// Close is idempotent.
func (b *Binding) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	if b.cancel != nil {
		b.cancel()
	}
	if b.elem != nil {
		b.elem.Canvas.Release()
	}
	return nil
}

// sameProps reports whether a and b are equal properties of one of the
// known variants. Other values never compare equal.
func sameProps(a, b Props) bool {
	switch a := a.(type) {
	case Square:
		b, ok := b.(Square)
		return ok && a == b
	case Star:
		b, ok := b.(Star)
		return ok && a == b
	case Bullseye:
		b, ok := b.(Bullseye)
		return ok && a == b
	case Cat:
		b, ok := b.(Cat)
		return ok && a == b
	}
	return false
}
