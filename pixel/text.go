package pixel

import "errors"

// ErrNonRectangular indicates text rows of differing lengths.
var ErrNonRectangular = errors.New("pixel: all rows must have the same length")

// Wall and path runes accepted by FromRows.
const (
	WallRune = '#'
	PathRune = '.'
)

// FromRows builds a greyscale Buffer from a textual maze: '#' is a wall,
// any other rune is open. Every row must have the same number of runes.
//
//	b, _ := pixel.FromRows(
//	    "#.###",
//	    "#...#",
//	    "###.#",
//	)
func FromRows(rows ...string) (Buffer, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Buffer{}, ErrEmpty
	}
	w := len([]rune(rows[0]))
	pix := make([]byte, 0, w*len(rows))
	for _, row := range rows {
		rs := []rune(row)
		if len(rs) != w {
			return Buffer{}, ErrNonRectangular
		}
		for _, r := range rs {
			if r == WallRune {
				pix = append(pix, 0)
			} else {
				pix = append(pix, Open)
			}
		}
	}
	return New(pix, w, len(rows), Greyscale)
}

// Rows renders b back to text, the inverse of FromRows.
func (b Buffer) Rows() []string {
	rows := make([]string, b.Height)
	line := make([]byte, b.Width)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.Open(b.Index(x, y)) {
				line[x] = PathRune
			} else {
				line[x] = WallRune
			}
		}
		rows[y] = string(line)
	}
	return rows
}
