// Package crossing decides, without floating point, whether two boundary
// chords of a fundamental domain intersect.
//
// Every side is laid end to end along the presentation's perimeter walk.
// A point at ordinal pos of a class holding n points gets the key
//
//	offset(side) + pos          on forward sides
//	offset(side) + (n-1-pos)    on reversed sides
//
// so keys are dense in [0, P) with P = 2 × Σ class sizes. Two chords (a,b)
// and (c,d) cross iff they share no key and exactly one of c, d lies
// strictly inside the counter-clockwise arc from a to b. Fewer than four
// keys never cross.
//
// Keys move with every insertion, so a Perimeter is built from one
// boundary.Index and must be rebuilt for any other.
//
// Complexity: NewPerimeter O(#sides), Key O(1), FirstCrossing O(#edges).
package crossing
