// Package enumerate lists distinct closed loops of an orbifold, lazily and
// in a stable order.
//
// What:
//
//   - Enumerator: iterative deepening on the total edge count D = 3..L
//     (closing edge included). Within one depth the search is depth-first
//     over first edges (walk order of the start side, then of the end
//     side, then FirstOrder) and path.State.ValidSegments order.
//   - Pruning: with one append left before closing, only gaps touching
//     the first point's ordinal in its class can make the loop closable.
//   - Deduplication: loops that are rotations (another start point) or
//     mirrors (reverse traversal) of an earlier loop share its canonical
//     signature and are skipped.
//   - Laziness: Next, Take, All and SetMaxEdges continue the same search;
//     earlier results are cached and never recomputed.
//
// Canonical signature:
//
// The first and last points of a closable path are adjacent ordinals of
// one class and become the same point once closed, so they are merged into
// one rank. Every non-closing edge becomes a token "N00>S01". The
// signature is the lexicographically smaller of the minimal rotations
// (Booth's algorithm) of the forward token sequence and of the reversed
// sequence with every token's ends swapped.
//
// Complexity:
//
//   - Time: exponential in L; each node costs O(S·(E+S)) for ValidSegments.
//   - Memory: O(L) search stack plus the cached loops.
//
// Errors:
//
//   - ErrUnknownType   type without tables
//   - ErrMaxEdges      L below 3
//   - ErrNotClosed     Signature of a state that is not Closed
package enumerate
