package entity

// Direction represents a cardinal facing direction
type Direction int

const (
	DirNone  Direction = -1
	DirRight Direction = 0
	DirUp    Direction = 1
	DirLeft  Direction = 2
	DirDown  Direction = 3
)

// String returns the lowercase direction name
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// Letter returns the single-letter tag form (u, d, l, r)
func (d Direction) Letter() byte {
	switch d {
	case DirRight:
		return 'r'
	case DirUp:
		return 'u'
	case DirLeft:
		return 'l'
	case DirDown:
		return 'd'
	default:
		return 0
	}
}

// DirectionFromLetter maps a facing letter to a direction (case-insensitive)
func DirectionFromLetter(c byte) (Direction, bool) {
	switch c {
	case 'u', 'U':
		return DirUp, true
	case 'd', 'D':
		return DirDown, true
	case 'l', 'L':
		return DirLeft, true
	case 'r', 'R':
		return DirRight, true
	}
	return DirNone, false
}

// FacingSet is a bit set of allowed facing directions.
// The zero value means "no facing requirement".
type FacingSet uint8

// NewFacingSet builds a set from the given directions
func NewFacingSet(dirs ...Direction) FacingSet {
	var s FacingSet
	for _, d := range dirs {
		s = s.With(d)
	}
	return s
}

// With returns the set with d added
func (s FacingSet) With(d Direction) FacingSet {
	if d < DirRight || d > DirDown {
		return s
	}
	return s | 1<<uint(d)
}

// Has reports whether d is in the set
func (s FacingSet) Has(d Direction) bool {
	if d < DirRight || d > DirDown {
		return false
	}
	return s&(1<<uint(d)) != 0
}

// Empty reports whether the set carries no requirement
func (s FacingSet) Empty() bool {
	return s == 0
}

// Allows reports whether facing d satisfies the set.
// An empty set accepts every direction.
func (s FacingSet) Allows(d Direction) bool {
	return s.Empty() || s.Has(d)
}
