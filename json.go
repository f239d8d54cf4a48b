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
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrUnknownVariant is returned when decoding a shape whose type is not
// one of the known variants.
var ErrUnknownVariant = errors.New("shapes: unknown shape variant")

// shapeJSON is the wire form of a Shape:
//
//	{"id": 3, "props": {"type": "star", "hue": 120, "points": 5, "r1": 20, "r2": 40}}
type shapeJSON struct {
	ID    int       `json:"id"`
	Props propsJSON `json:"props"`
}

type propsJSON struct {
	Type   Kind    `json:"type"`
	Hue    float64 `json:"hue"`
	Hue2   float64 `json:"hue2,omitempty"`
	Points int     `json:"points,omitempty"`
	R1     float64 `json:"r1,omitempty"`
	R2     float64 `json:"r2,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	Rings  int     `json:"rings,omitempty"`
	Look   string  `json:"look,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface.
func (s Shape) MarshalJSON() ([]byte, error) {
	var p propsJSON
	switch v := s.Props.(type) {
	case Square:
		p = propsJSON{Type: KindSquare, Hue: v.Hue}
	case Star:
		p = propsJSON{Type: KindStar, Hue: v.Hue, Points: v.Points, R1: v.R1, R2: v.R2}
	case Bullseye:
		p = propsJSON{Type: KindBullseye, Hue: v.Hue, Hue2: v.Hue2, Radius: v.Radius, Rings: v.Rings}
	case Cat:
		p = propsJSON{Type: KindCat, Hue: v.Hue, Look: v.Look.String()}
	default:
		return nil, fmt.Errorf("shape %d: %w", s.ID, ErrUnknownVariant)
	}
	return json.Marshal(shapeJSON{ID: s.ID, Props: p})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *Shape) UnmarshalJSON(data []byte) error {
	var raw shapeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p := raw.Props
	var props Props
	switch p.Type {
	case KindSquare:
		props = Square{Hue: p.Hue}
	case KindStar:
		props = Star{Hue: p.Hue, Points: p.Points, R1: p.R1, R2: p.R2}
	case KindBullseye:
		props = Bullseye{Hue: p.Hue, Hue2: p.Hue2, Radius: p.Radius, Rings: p.Rings}
	case KindCat:
		// a missing or unknown look means the cat looks right
		look, err := ParseLook(p.Look)
		if err != nil {
			look = LookRight
		}
		props = Cat{Hue: p.Hue, Look: look}
	default:
		return fmt.Errorf("shape %d: %w %q", raw.ID, ErrUnknownVariant, p.Type)
	}

	*s = Shape{ID: raw.ID, Props: props}
	return nil
}

// DecodeShapes reads a JSON array of shapes.
func DecodeShapes(r io.Reader) ([]Shape, error) {
	var res []Shape
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return nil, err
	}
	return res, nil
}
