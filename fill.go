package shapes

// FillRule decides which regions of a self-overlapping path are inside.
type FillRule int

const (
	// NonZero treats a point as inside when the winding number is not 0.
	NonZero FillRule = iota
	// EvenOdd treats a point as inside when the winding number is odd.
	EvenOdd
)

// String returns the rule name.
func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "NonZero"
	case EvenOdd:
		return "EvenOdd"
	default:
		return "Unknown"
	}
}

// inside applies the rule to a winding number.
func (r FillRule) inside(winding int) bool {
	if r == EvenOdd {
		return winding%2 != 0
	}
	return winding != 0
}
