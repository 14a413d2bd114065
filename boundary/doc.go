// Package boundary keeps the ordered boundary points of every
// identification class and derives the addressable gaps ("segments") of a
// side from them.
//
// What:
//
//   - BoundaryPoint: one ordinal inside a class, remembering the physical
//     side that created it. Positions are dense 0..n-1 and never coordinates.
//   - InsertPoint / RemovePoint: pure list edits that renumber following
//     ordinals by ±1.
//   - Index: an immutable, copy-on-write map ClassID → point list. Every
//     edit returns a fresh Index; the receiver stays valid.
//   - Segments: the n+1 gaps of a side whose class holds n points. Both
//     sides of a class expose the same integer gap bounds.
//   - Param / DisplayParam: ordinal → glued parameter, and → perimeter-walk
//     parameter for the given side.
//
// Complexity:
//
//   - InsertPoint, RemovePoint, Index.Insert, Index.Remove: O(n) in the
//     class size, plus O(#classes) for the outer copy.
//   - Segments: O(n).
//
// Errors:
//
//   - An out-of-range index or a side foreign to the presentation is a
//     programming error and panics.
package boundary
