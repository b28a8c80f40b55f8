// Package geometry builds simple shapes on top of the vector types.
//
// Line is a 2D line through a point with a direction. Its Normal points to
// the left of the direction (counter-clockwise), and Inside classifies a
// position as inside when it lies on the line or on the side opposite the
// normal. With y pointing up, the edges of a convex polygon wound clockwise
// have outward normals, so a point is in the polygon when it is Inside every
// edge line.
package geometry
