// Package wallpaper tracks which copy of the fundamental domain a loop
// occupies as it crosses glued sides.
//
// What:
//
//   - Index {Tx, Ty, Rot}: an element of the wallpaper group, written as a
//     lattice translation (in basis a, b) after a rotation by Rot·θ about
//     the group's rotation centre. Identity is (0,0,0).
//   - Group: per-type tables. Crossing side s applies
//     g_s = T(V_s) ∘ Rot(centre, Turn_s·θ), the isometry that maps the
//     partner of s onto s.
//   - PathIndex / Trace: replay an edge list from identity. Edges that
//     stay on one side, or join partner sides at the same ordinal, do not
//     cross the boundary and leave the index unchanged.
//   - Frame / SideTransform: the same elements as gg.Matrix affine maps,
//     so the discrete tables can be checked against continuous geometry.
//   - Triangle slots (p4): the square cut along its NW–SE diagonal; eight
//     slots, 0..3 the north-east triangle of each rotation copy and 4..7
//     its half-turn image, the south-west triangle.
//
// Tables:
//
//	type  θ     centre      a, b              Steps (V, Turn)
//	p2    180°  (½,½)       (1,0), (0,1)      N (0,1,+1) E (1,0,+1) S (0,-1,+1) W (-1,0,+1), both zones
//	p3    120°  SW corner   (1,0), (-½,√3/2)  N (1,2,-1) E (2,1,+1) S (0,0,-1) W (0,0,+1)
//	p4    90°   SW corner   (1,0), (0,1)      N (0,2,-1) E (2,0,+1) S (0,0,-1) W (0,0,+1)
//
// Apply is T ← T + M^Rot·V, Rot ← (Rot + Turn) mod R, with M the rotation
// written on lattice coordinates.
//
// Errors:
//
//   - ErrUnknownType (wrapping orbifold.ErrUnknownType) from GroupOf.
package wallpaper
