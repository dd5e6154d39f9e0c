package pixel

import (
	"errors"
	"fmt"
)

// Sentinel errors for buffer validation.
var (
	// ErrEmpty indicates a buffer with zero width or height.
	ErrEmpty = errors.New("pixel: buffer must have at least one row and one column")

	// ErrBufferSize indicates that len(Pix) disagrees with the declared shape.
	ErrBufferSize = errors.New("pixel: buffer size does not match width*height*channels")

	// ErrMode indicates an unknown color mode.
	ErrMode = errors.New("pixel: unknown color mode")
)

// Open is the channel value that marks a walkable cell.
const Open = 255

// Mode is the color layout of a Buffer.
type Mode int

const (
	// Greyscale stores one byte per cell.
	Greyscale Mode = iota
	// RGB stores three bytes per cell (red, green, blue).
	RGB
)

// Channels returns the number of bytes per cell.
func (m Mode) Channels() int {
	if m == RGB {
		return 3
	}
	return 1
}

func (m Mode) String() string {
	switch m {
	case Greyscale:
		return "greyscale"
	case RGB:
		return "rgb"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Buffer is a decoded image in row-major order.
// Pix is read-only for every consumer except the overlay painters, which
// always work on a copy.
type Buffer struct {
	Pix    []byte
	Width  int
	Height int
	Mode   Mode
}

// New returns a Buffer after validating its shape.
func New(pix []byte, width, height int, mode Mode) (Buffer, error) {
	b := Buffer{Pix: pix, Width: width, Height: height, Mode: mode}
	if err := b.Validate(); err != nil {
		return Buffer{}, err
	}
	return b, nil
}

// Validate checks dimensions, mode, and buffer length.
func (b Buffer) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return ErrEmpty
	}
	if b.Mode != Greyscale && b.Mode != RGB {
		return fmt.Errorf("%w: %d", ErrMode, int(b.Mode))
	}
	want := b.Width * b.Height * b.Mode.Channels()
	if len(b.Pix) != want {
		return fmt.Errorf("%w: have %d bytes, want %d (%dx%d %s)",
			ErrBufferSize, len(b.Pix), want, b.Width, b.Height, b.Mode)
	}
	return nil
}

// Len returns the number of cells (Width*Height).
func (b Buffer) Len() int { return b.Width * b.Height }
