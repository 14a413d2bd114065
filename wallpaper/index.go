package wallpaper

import "fmt"

// Index names one copy of the fundamental domain: lattice translation
// (Tx, Ty) and rotation slot Rot in [0, R).
type Index struct {
	Tx  int `json:"tx" yaml:"tx"`
	Ty  int `json:"ty" yaml:"ty"`
	Rot int `json:"rot" yaml:"rot"`
}

// Identity is the index of the starting copy.
func Identity() Index { return Index{} }

// IsIdentity reports whether i is (0,0,0).
func (i Index) IsIdentity() bool { return i == Index{} }

// String renders i as "(tx,ty,rot)".
func (i Index) String() string {
	return fmt.Sprintf("(%d,%d,%d)", i.Tx, i.Ty, i.Rot)
}

func mod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}

	return r
}
