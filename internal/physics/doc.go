// Package physics provides the vector and scalar primitives shared by
// the simulation core.
//
//   - [Vec2]: 2D vector with value-method arithmetic
//   - [Distance]: Euclidean distance between two points
//   - [G]: Newtonian gravitational constant
//
// The fixed integration step [Dt] also lives here so that the stepping
// code and its diagnostics agree on a single value.
package physics
