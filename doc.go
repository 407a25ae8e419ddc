// Package enneper is a NURBS geometry kernel.
//
// Curves and tensor product surfaces are immutable values holding their
// control points in homogeneous coordinates. They can be evaluated,
// refined by knot insertion without changing their shape, split, merged
// onto a common knot vector, transformed and tessellated.
//
// Constructors for common geometry, among them ruled surfaces and surfaces
// of revolution, live in the make sub-package.
package enneper
