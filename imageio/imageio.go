package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/katalvlaran/pixmaze/pixel"
)

var (
	// ErrFormat indicates a file extension other than .png or .bmp.
	ErrFormat = errors.New("imageio: unsupported image format")

	// ErrDecode indicates bytes that are not a decodable image.
	ErrDecode = errors.New("imageio: cannot decode image")

	// ErrScale indicates a scale factor below 1.
	ErrScale = errors.New("imageio: scale must be at least 1")
)

// Format is an encoded image format.
type Format int

const (
	PNG Format = iota
	BMP
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext returns the canonical file extension, including the dot.
func (f Format) Ext() string { return "." + f.String() }

// FormatFromPath picks the format from the file extension (case-insensitive).
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".bmp":
		return BMP, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrFormat, path)
}

// Decode reads a PNG or BMP image into a Buffer.
func Decode(r io.Reader) (pixel.Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return pixel.Buffer{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return FromImage(img)
}

// Size reads only the image header and returns the dimensions, so callers
// can refuse oversized images before decoding the pixels.
func Size(r io.Reader) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return cfg.Width, cfg.Height, nil
}

// FromImage flattens img into a row-major Buffer. Color channels are read
// without alpha premultiplication, so a fully transparent white pixel is
// still white.
func FromImage(img image.Image) (pixel.Buffer, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if g, ok := img.(*image.Gray); ok {
		pix := make([]byte, w*h)
		for y := 0; y < h; y++ {
			off := g.PixOffset(b.Min.X, b.Min.Y+y)
			copy(pix[y*w:(y+1)*w], g.Pix[off:off+w])
		}
		return pixel.New(pix, w, h, pixel.Greyscale)
	}

	pix := make([]byte, 0, w*h*3)
	if n, ok := img.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			off := n.PixOffset(b.Min.X, b.Min.Y+y)
			row := n.Pix[off : off+4*w]
			for i := 0; i < len(row); i += 4 {
				pix = append(pix, row[i], row[i+1], row[i+2])
			}
		}
		return pixel.New(pix, w, h, pixel.RGB)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl := straight(img.At(x, y))
			pix = append(pix, r, g, bl)
		}
	}
	return pixel.New(pix, w, h, pixel.RGB)
}

// straight returns the non-premultiplied 8-bit channels of c.
func straight(c color.Color) (r, g, b uint8) {
	switch c := c.(type) {
	case color.NRGBA:
		return c.R, c.G, c.B
	case color.NRGBA64:
		return uint8(c.R >> 8), uint8(c.G >> 8), uint8(c.B >> 8)
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R, n.G, n.B
}

// ToImage wraps buf as an *image.Gray or *image.RGBA.
func ToImage(buf pixel.Buffer) (image.Image, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	r := image.Rect(0, 0, buf.Width, buf.Height)
	if buf.Mode == pixel.Greyscale {
		g := image.NewGray(r)
		copy(g.Pix, buf.Pix)
		return g, nil
	}
	img := image.NewRGBA(r)
	for i, j := 0, 0; j < len(buf.Pix); i, j = i+4, j+3 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = buf.Pix[j], buf.Pix[j+1], buf.Pix[j+2], 0xff
	}
	return img, nil
}

// Encode writes buf in format f, upscaled by scale.
func Encode(w io.Writer, buf pixel.Buffer, f Format, scale int) error {
	if scale < 1 {
		return fmt.Errorf("%w: %d", ErrScale, scale)
	}
	img, err := ToImage(buf)
	if err != nil {
		return err
	}
	if scale > 1 {
		img = upscale(img, scale)
	}
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("%w: %v", ErrFormat, f)
}

func upscale(src image.Image, scale int) image.Image {
	sb := src.Bounds()
	r := image.Rect(0, 0, sb.Dx()*scale, sb.Dy()*scale)
	var dst draw.Image
	if _, ok := src.(*image.Gray); ok {
		dst = image.NewGray(r)
	} else {
		dst = image.NewRGBA(r)
	}
	draw.NearestNeighbor.Scale(dst, r, src, sb, draw.Src, nil)
	return dst
}

// Read decodes the image file at path.
func Read(path string) (pixel.Buffer, error) {
	if _, err := FormatFromPath(path); err != nil {
		return pixel.Buffer{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return pixel.Buffer{}, err
	}
	defer f.Close()

	buf, err := Decode(bufio.NewReader(f))
	if err != nil {
		return pixel.Buffer{}, fmt.Errorf("%s: %w", path, err)
	}
	return buf, nil
}

// Write encodes buf to path in the format named by its extension.
func Write(path string, buf pixel.Buffer, scale int) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err := Encode(bw, buf, format, scale); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return bw.Flush()
}
