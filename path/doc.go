// Package path implements the build / validate / undo / close state
// machine for a loop drawn on the boundary of an orbifold domain.
//
// What:
//
//   - State: an immutable value holding the boundary.Index, the ordered
//     edge list and a Phase (Empty, Open, Closed). Every transition
//     returns a new *State; the receiver keeps working.
//   - AppendFirst: Empty → Open(1). Creates one point per class touched.
//   - Append: Open(n) → Open(n+1). The new edge starts at the current
//     point (the partner translation of the last end) and ends in a new
//     point inserted into the target segment.
//   - RemoveLast: Open(n) → Open(n-1) or Empty; Closed → Open.
//   - CanClose / CloseLoop: Open(n≥2) → Closed via the closing edge drawn
//     on the first point's own side.
//   - ValidSegments / ValidateAppend: the legal next moves.
//
// Invariants kept by every reachable State:
//
//   - positions in each class are dense and 0-based;
//   - every endpoint exists in its class;
//   - edges chain through partner translation;
//   - no two edges cross under crossing.Cross.
//
// Errors:
//
//   - *ValidationError{Reason, EdgeIndex} for rejected moves; errors.Is
//     matches ErrSelfTouch, ErrCrossing, ErrClassMismatch, ErrNotAdjacent
//     or ErrWrongPhase.
//   - A segment outside the current index is a programming error and
//     panics.
//
// Complexity: Append and CanClose are O(E + S) with E edges and S points;
// ValidSegments is O(S·(E + S)).
package path
