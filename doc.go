// Package orbiloops is a combinatorial toolkit for drawing non-self-crossing
// loops on the boundary of a wallpaper-group orbifold (p2, p3, p4), where the
// sides of the fundamental domain are glued together by the group action.
//
// 🚀 What is orbiloops?
//
//	An exact, integer-only path algebra that brings together:
//		• Boundary bookkeeping: one shared point list per identification class
//		• Exact crossing detection: perimeter keys + circle-chord alternation
//		• Path state machine: append, undo, validate and close, all immutable
//		• Symmetry tracking: which copy of the domain the path currently occupies
//		• Loop enumeration: lazy, deterministic, deduplicated search
//
// ✨ Why orbiloops?
//
//   - Exact – no floating point anywhere on the combinatorial side
//   - Immutable – every transition returns a fresh value, undo is free
//   - Checked – table-driven group arithmetic verified against real affine frames
//   - Deterministic – identical inputs always give identical keys and orders
//
// Under the hood, everything is organized in small subpackages:
//
//	orbifold/  — orbifold types, sides/zones, identification classes, reference geometry
//	boundary/  — per-class ordinal lists and the gap (segment) catalog
//	crossing/  — perimeter keys and the chord crossing oracle
//	path/      — the PathState machine and its validation results
//	wallpaper/ — wallpaper index tracking and affine frames
//	enumerate/ — bounded loop enumeration with canonical signatures
//	exchange/  — float boundary-parameter documents ↔ combinatorial paths
//	cmd/orbiloop — command line: enumerate, check and extend loop documents
//	examples/  — a runnable walkthrough of one p3 loop
//
// Quick ASCII example (p3, north ≡ east, south ≡ west):
//
//	   NW ──── N ────▶ NE
//	    │               ▲
//	    W               E
//	    ▼               │
//	   SW ◀──── S ──── SE
//
// A chord leaving through N re-enters through E in the neighbouring copy,
// which is the original domain rotated by −120° about the NE corner.
//
//	go get github.com/katalvlaran/orbiloops
package orbiloops
