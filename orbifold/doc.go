// Package orbifold holds the fixed tables that describe each supported
// wallpaper orbifold: which boundary arcs ("sides" or half-side "zones")
// exist, how they are glued into identification classes, the order in which
// the perimeter walk visits them, and the reference geometry of the
// fundamental domain.
//
// What:
//
//   - Type: P2, P3, P4.
//   - Side: North, East, South, West for p3/p4; the eight half-side zones
//     North1 … West2 for p2.
//   - Presentation: the per-type lookup tables (classes, partners, walk
//     order, walk reversal, reference geometry).
//
// Identifications:
//
//	p3, p4 : {North, East}, {South, West}; equal directed parameters are glued.
//	p2     : {North1, North2}, {East1, East2}, {South1, South2}, {West1, West2};
//	         zone 1 runs from its corner to the side midpoint, zone 2 runs from
//	         the opposite corner back to the same midpoint.
//
// Perimeter walk (clockwise from the NW corner):
//
//	p3, p4 : North(fwd) East(rev) South(fwd) West(rev)
//	p2     : N1(fwd) N2(rev) E1(fwd) E2(rev) S1(fwd) S2(rev) W1(fwd) W2(rev)
//
// All lookups are array-indexed by Side; a Side outside a Presentation is a
// programming error and panics.
//
// Errors:
//
//   - ErrUnknownType  the Type is not one of P2, P3, P4.
//   - *ParseError     textual input does not name a Type or Side.
package orbifold
