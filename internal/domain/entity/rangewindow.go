package entity

import (
	"regexp"
	"strings"
)

// RangeWindow is an asymmetric interaction rectangle measured in tiles
// from an event's anchor tile. Each extent is a single digit (0-9); the
// compact tag encoding cannot express larger ranges.
type RangeWindow struct {
	Up, Right, Down, Left int
}

// IsZero reports whether the window allows no interaction at all
func (w RangeWindow) IsZero() bool {
	return w.Up == 0 && w.Right == 0 && w.Down == 0 && w.Left == 0
}

// RangeSpec is the parsed form of a range tag value
type RangeSpec struct {
	Window RangeWindow
	Facing FacingSet
}

// Format re-encodes the range as "URDL" digits followed by facing letters
// in u, d, l, r order.
func (r RangeSpec) Format() string {
	var b strings.Builder
	b.Grow(8)
	for _, v := range [4]int{r.Window.Up, r.Window.Right, r.Window.Down, r.Window.Left} {
		b.WriteByte(byte('0' + v))
	}
	for _, d := range [4]Direction{DirUp, DirDown, DirLeft, DirRight} {
		if r.Facing.Has(d) {
			b.WriteByte(d.Letter())
		}
	}
	return b.String()
}

// ParseRange parses "URDL[facing]" such as "2222lu".
// ok is false when the value does not match the pattern.
func ParseRange(value string) (spec RangeSpec, ok bool) {
	value = strings.TrimSpace(value)
	if len(value) < 4 {
		return RangeSpec{}, false
	}

	var digits [4]int
	for i := 0; i < 4; i++ {
		c := value[i]
		if c < '0' || c > '9' {
			return RangeSpec{}, false
		}
		digits[i] = int(c - '0')
	}

	var facing FacingSet
	for i := 4; i < len(value); i++ {
		d, ok := DirectionFromLetter(value[i])
		if !ok {
			return RangeSpec{}, false
		}
		facing = facing.With(d)
	}

	return RangeSpec{
		Window: RangeWindow{Up: digits[0], Right: digits[1], Down: digits[2], Left: digits[3]},
		Facing: facing,
	}, true
}

var (
	rangeTagPattern  = regexp.MustCompile(`(?i)<range:\s*([^>]*)>`)
	noIconTagPattern = regexp.MustCompile(`(?i)<no\s*icon>`)
)

// ParseRangeTag finds a <range:...> tag in note text and parses its value.
// A missing or malformed tag yields ok == false.
func ParseRangeTag(note string) (RangeSpec, bool) {
	m := rangeTagPattern.FindStringSubmatch(note)
	if m == nil {
		return RangeSpec{}, false
	}
	return ParseRange(m[1])
}

// HasRangeTag reports whether note carries a <range:...> tag, valid or not
func HasRangeTag(note string) bool {
	return rangeTagPattern.MatchString(note)
}

// HasNoIconTag reports whether note carries the <noicon> marker
func HasNoIconTag(note string) bool {
	return noIconTagPattern.MatchString(note)
}
