// SPDX-License-Identifier: MIT

package geometry

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Line is a 2D line anchored at a point with a direction.
// The zero value is degenerate (zero direction): every position is Inside.
type Line[T scalar.Number] struct {
	point     vector.Vector2[T]
	direction vector.Vector2[T]
}

// NewLine returns the line through p0 and p1, directed from p0 towards p1.
func NewLine[T scalar.Number](p0, p1 vector.Vector2[T]) Line[T] {
	var l Line[T]
	l.InitWith2Points(p0, p1)

	return l
}

// InitWith2Points re-anchors l at p0 with direction p1 - p0.
func (l *Line[T]) InitWith2Points(p0, p1 vector.Vector2[T]) {
	l.point = p0
	l.direction = p1.Sub(p0)
}

// InitWithPointAndDirection re-anchors l at p with direction d.
func (l *Line[T]) InitWithPointAndDirection(p, d vector.Vector2[T]) {
	l.point = p
	l.direction = d
}

// Point returns the anchor point.
func (l Line[T]) Point() vector.Vector2[T] { return l.point }

// Direction returns the (unnormalized) direction.
func (l Line[T]) Direction() vector.Vector2[T] { return l.direction }

// Normal returns the direction rotated a quarter turn counter-clockwise.
// It has the direction's length; normalize it if a unit normal is needed.
func (l Line[T]) Normal() vector.Vector2[T] {
	return vector.NewVector2(-l.direction.Y, l.direction.X)
}

// Inside reports whether pos is on the line or on the side the normal
// points away from.
func (l Line[T]) Inside(pos vector.Vector2[T]) bool {
	return pos.Sub(l.point).Dot(l.Normal()) <= 0
}
