package enumerate

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/katalvlaran/orbiloops/path"
)

// Reverse returns a new slice containing the elements of s in reverse order.
// Time Complexity: O(n).
func Reverse[T any](s []T) []T {
	out := make([]T, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// Compare lexicographically compares two equal-length slices a and b.
// Returns -1 if a < b, 0 if equal, +1 if a > b.
// Time Complexity: O(n).
func Compare[T cmp.Ordered](a, b []T) int {
	for i := range a {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	return 0
}

// JoinSig concatenates the elements of c with commas, producing a single
// string signature.
func JoinSig(c []string) string {
	return strings.Join(c, ",")
}

// MinimalRotation implements Booth's algorithm to find the lexicographically
// minimal rotation of s. It returns a new slice; s is not modified.
// Time Complexity: O(n).
func MinimalRotation[T cmp.Ordered](s []T) []T {
	n := len(s)
	if n == 0 {
		return nil
	}
	doubled := make([]T, 2*n)
	copy(doubled, s)
	copy(doubled[n:], s)

	f := make([]int, 2*n) // failure links
	for i := range f {
		f[i] = -1
	}
	k := 0 // start of the least rotation found so far
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] { // i == -1
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	return append([]T(nil), doubled[k:k+n]...)
}

// Chord is one loop edge with its ends written as rank labels ("N00").
type Chord struct {
	From string
	To   string
}

// String renders the chord as "From>To".
func (c Chord) String() string { return c.From + ">" + c.To }

// CanonicalSignature returns the signature shared by every rotation of
// chords and by the reversed traversal with swapped ends.
func CanonicalSignature(chords []Chord) string {
	fwd := make([]string, len(chords))
	rev := make([]string, len(chords))
	for i, c := range chords {
		fwd[i] = c.String()
		rev[len(chords)-1-i] = Chord{From: c.To, To: c.From}.String()
	}
	fwd, rev = MinimalRotation(fwd), MinimalRotation(rev)
	if Compare(rev, fwd) < 0 {
		return JoinSig(rev)
	}

	return JoinSig(fwd)
}

// Chords labels the non-closing edges of a Closed state by rank. The first
// and last point-creating ordinals collapse into one rank because the
// closing edge joins them.
func Chords(s *path.State) ([]Chord, error) {
	if s.Phase() != path.Closed {
		return nil, ErrNotClosed
	}
	p := s.Presentation()
	body := s.OpenEdges()
	first := body[0].From
	last := body[len(body)-1].To
	merged := p.ClassOf(first.Side)
	hi := max(first.Pos, last.Pos)

	label := func(e path.Endpoint) string {
		r := e.Pos
		if p.ClassOf(e.Side) == merged && r >= hi {
			r--
		}
		return fmt.Sprintf("%s%02d", e.Side.Short(), r)
	}

	out := make([]Chord, len(body))
	for i, e := range body {
		out[i] = Chord{From: label(e.From), To: label(e.To)}
	}

	return out, nil
}

// Signature returns the canonical signature of a Closed state.
func Signature(s *path.State) (string, error) {
	chords, err := Chords(s)
	if err != nil {
		return "", err
	}

	return CanonicalSignature(chords), nil
}
