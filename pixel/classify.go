package pixel

import "image/color"

// IsOpen reports whether cell i of pix is walkable.
// For Greyscale the cell is pix[i]; for RGB it is pix[3i:3i+3] and all three
// channels must be Open. Indices outside the buffer are a caller error.
func IsOpen(pix []byte, i int, mode Mode) bool {
	if mode == Greyscale {
		return pix[i] == Open
	}
	j := i * 3
	return pix[j] == Open && pix[j+1] == Open && pix[j+2] == Open
}

// Open reports whether the cell with linear index i is walkable.
func (b Buffer) Open(i int) bool {
	return IsOpen(b.Pix, i, b.Mode)
}

// OpenAt reports whether (x,y) is inside the buffer and walkable.
func (b Buffer) OpenAt(x, y int) bool {
	return b.InBounds(x, y) && b.Open(b.Index(x, y))
}

// Index converts (x,y) to a linear index.
func (b Buffer) Index(x, y int) int {
	return y*b.Width + x
}

// Coordinate converts a linear index back to (x,y).
func (b Buffer) Coordinate(i int) (x, y int) {
	return i % b.Width, i / b.Width
}

// InBounds reports whether (x,y) lies within the buffer.
func (b Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// ToRGB returns an RGB copy of b. Greyscale cells map to white when open and
// black otherwise; RGB buffers are copied as-is.
func (b Buffer) ToRGB() Buffer {
	out := Buffer{Width: b.Width, Height: b.Height, Mode: RGB}
	if b.Mode == RGB {
		out.Pix = make([]byte, len(b.Pix))
		copy(out.Pix, b.Pix)
		return out
	}
	out.Pix = make([]byte, 0, len(b.Pix)*3)
	for _, v := range b.Pix {
		if v == Open {
			out.Pix = append(out.Pix, Open, Open, Open)
		} else {
			out.Pix = append(out.Pix, 0, 0, 0)
		}
	}
	return out
}

// Set recolors cell i of an RGB buffer. It is a no-op on greyscale buffers;
// call ToRGB first.
func (b Buffer) Set(i int, c color.RGBA) {
	if b.Mode != RGB {
		return
	}
	j := i * 3
	b.Pix[j], b.Pix[j+1], b.Pix[j+2] = c.R, c.G, c.B
}

// At returns the color of cell i.
func (b Buffer) At(i int) color.RGBA {
	if b.Mode == Greyscale {
		v := b.Pix[i]
		return color.RGBA{R: v, G: v, B: v, A: 0xff}
	}
	j := i * 3
	return color.RGBA{R: b.Pix[j], G: b.Pix[j+1], B: b.Pix[j+2], A: 0xff}
}
