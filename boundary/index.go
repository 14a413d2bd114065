package boundary

import (
	"fmt"

	"github.com/katalvlaran/orbiloops/orbifold"
)

// Index holds one ordered point list per identification class of a
// presentation. The zero value is unusable; start from NewIndex.
//
// Index is a value: Insert and Remove return a new Index sharing every
// untouched class list with the receiver. Lists are never mutated in place.
type Index struct {
	pres    *orbifold.Presentation
	classes [][]BoundaryPoint
}

// NewIndex returns an empty Index for p.
func NewIndex(p *orbifold.Presentation) Index {
	return Index{pres: p, classes: make([][]BoundaryPoint, p.NumClasses())}
}

// Presentation returns the tables this Index was built for.
func (x Index) Presentation() *orbifold.Presentation { return x.pres }

// NumClasses returns the number of class lists.
func (x Index) NumClasses() int { return len(x.classes) }

// Size returns the number of points in class c.
func (x Index) Size(c orbifold.ClassID) int {
	x.checkClass(c)
	return len(x.classes[c])
}

// SizeOf returns the number of points in the class of side s.
func (x Index) SizeOf(s orbifold.Side) int {
	return len(x.classes[x.pres.ClassOf(s)])
}

// Total returns the number of points across all classes.
func (x Index) Total() int {
	n := 0
	for _, l := range x.classes {
		n += len(l)
	}

	return n
}

// Point returns the point at ordinal pos of class c; panics when absent.
func (x Index) Point(c orbifold.ClassID, pos int) BoundaryPoint {
	x.checkClass(c)
	l := x.classes[c]
	if pos < 0 || pos >= len(l) {
		panic(fmt.Sprintf("boundary: position %d out of range for class %d of size %d", pos, c, len(l)))
	}

	return l[pos]
}

// Has reports whether ordinal pos exists in the class of side s.
func (x Index) Has(s orbifold.Side, pos int) bool {
	return pos >= 0 && pos < x.SizeOf(s)
}

// Class returns a copy of the list of class c.
func (x Index) Class(c orbifold.ClassID) []BoundaryPoint {
	x.checkClass(c)
	return append([]BoundaryPoint(nil), x.classes[c]...)
}

// Insert places a new point created on side s at ordinal pos of its class.
func (x Index) Insert(s orbifold.Side, pos int) Index {
	c := x.pres.ClassOf(s)
	out := x.withClasses()
	out.classes[c] = InsertPoint(x.classes[c], pos, s)

	return out
}

// Remove deletes ordinal pos from class c.
func (x Index) Remove(c orbifold.ClassID, pos int) Index {
	x.checkClass(c)
	out := x.withClasses()
	out.classes[c] = RemovePoint(x.classes[c], pos)

	return out
}

// Equal reports whether x and y describe the same presentation and the
// same points in every class.
func (x Index) Equal(y Index) bool {
	if x.pres != y.pres || len(x.classes) != len(y.classes) {
		return false
	}
	for c := range x.classes {
		a, b := x.classes[c], y.classes[c]
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
	}

	return true
}

// Validate reports the first class whose positions are not dense 0..n-1 or
// whose origins are foreign to the class.
func (x Index) Validate() error {
	for c, l := range x.classes {
		for i, p := range l {
			if p.Position != i {
				return fmt.Errorf("boundary: class %d holds position %d at index %d", c, p.Position, i)
			}
			if !x.pres.Has(p.Origin) || x.pres.ClassOf(p.Origin) != orbifold.ClassID(c) {
				return fmt.Errorf("boundary: class %d holds a point from side %s", c, p.Origin)
			}
		}
	}

	return nil
}

// withClasses copies the outer slice so one class can be replaced.
func (x Index) withClasses() Index {
	cp := make([][]BoundaryPoint, len(x.classes))
	copy(cp, x.classes)

	return Index{pres: x.pres, classes: cp}
}

func (x Index) checkClass(c orbifold.ClassID) {
	if c < 0 || int(c) >= len(x.classes) {
		panic(fmt.Sprintf("boundary: class %d out of range [0,%d)", c, len(x.classes)))
	}
}
