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

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	c := shapes.NewCanvas(shapes.WithRecording())
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	flatness float64
	record   bool
}

func defaultCanvasOptions() canvasOptions {
	return canvasOptions{flatness: defaultFlatness}
}

// WithFlatness sets the curve flattening tolerance, in pixels.
// Non-positive values are ignored.
func WithFlatness(f float64) CanvasOption {
	return func(o *canvasOptions) {
		if f > 0 {
			o.flatness = f
		}
	}
}

// WithRecording makes the canvas keep a list of the paint operations of
// the most recent frame, available through [Canvas.Ops].
func WithRecording() CanvasOption {
	return func(o *canvasOptions) {
		o.record = true
	}
}

// BindOption configures a Binding.
type BindOption func(*bindOptions)

type bindOptions struct {
	onError func(error)
	canvas  []CanvasOption
}

// WithErrorHandler sets a function which receives the errors of renders
// triggered by change signals. Without a handler, such errors are logged.
// The handler is called without any locks held.
func WithErrorHandler(fn func(error)) BindOption {
	return func(o *bindOptions) {
		o.onError = fn
	}
}

// WithCanvasOptions sets the options for the canvas a Binding creates.
func WithCanvasOptions(opts ...CanvasOption) BindOption {
	return func(o *bindOptions) {
		o.canvas = append(o.canvas, opts...)
	}
}

const defaultFlatness = 0.25
