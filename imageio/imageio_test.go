package imageio_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixmaze/imageio"
	"github.com/katalvlaran/pixmaze/pixel"
)

func fixture(t *testing.T) pixel.Buffer {
	t.Helper()
	b, err := pixel.FromRows(
		"#.##",
		"#..#",
		"##.#",
	)
	require.NoError(t, err)
	return b
}

func TestFormatFromPath(t *testing.T) {
	cases := []struct {
		path string
		want imageio.Format
		err  bool
	}{
		{"maze.png", imageio.PNG, false},
		{"dir/MAZE.PNG", imageio.PNG, false},
		{"maze.bmp", imageio.BMP, false},
		{"maze.jpg", 0, true},
		{"maze", 0, true},
	}
	for _, tc := range cases {
		got, err := imageio.FormatFromPath(tc.path)
		if tc.err {
			assert.ErrorIs(t, err, imageio.ErrFormat, tc.path)
			continue
		}
		require.NoError(t, err, tc.path)
		assert.Equal(t, tc.want, got, tc.path)
	}
	assert.Equal(t, ".bmp", imageio.BMP.Ext())
}

func TestPNGRoundTrip_Greyscale(t *testing.T) {
	buf := fixture(t)
	var out bytes.Buffer
	require.NoError(t, imageio.Encode(&out, buf, imageio.PNG, 1))

	got, err := imageio.Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, buf, got)
}

func TestPNGRoundTrip_RGB(t *testing.T) {
	buf := fixture(t).ToRGB()
	buf.Set(1, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	var out bytes.Buffer
	require.NoError(t, imageio.Encode(&out, buf, imageio.PNG, 1))

	got, err := imageio.Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, buf, got)
}

// TestBMPRoundTrip: greyscale BMPs decode as paletted images, so the
// result is RGB with the same open cells.
func TestBMPRoundTrip(t *testing.T) {
	for _, buf := range []pixel.Buffer{fixture(t), fixture(t).ToRGB()} {
		var out bytes.Buffer
		require.NoError(t, imageio.Encode(&out, buf, imageio.BMP, 1))

		got, err := imageio.Decode(&out)
		require.NoError(t, err)
		assert.Equal(t, buf.ToRGB(), got.ToRGB(), "mode %s", buf.Mode)
	}
}

func TestEncode_Scale(t *testing.T) {
	buf := fixture(t)
	var out bytes.Buffer
	require.NoError(t, imageio.Encode(&out, buf, imageio.PNG, 3))

	got, err := imageio.Decode(&out)
	require.NoError(t, err)
	require.Equal(t, 12, got.Width)
	require.Equal(t, 9, got.Height)
	for y := 0; y < got.Height; y++ {
		for x := 0; x < got.Width; x++ {
			assert.Equal(t, buf.OpenAt(x/3, y/3), got.OpenAt(x, y), "(%d,%d)", x, y)
		}
	}

	assert.ErrorIs(t, imageio.Encode(&out, buf, imageio.PNG, 0), imageio.ErrScale)
	assert.ErrorIs(t, imageio.Encode(&out, buf, imageio.Format(7), 1), imageio.ErrFormat)
}

func TestDecode_Garbage(t *testing.T) {
	_, err := imageio.Decode(bytes.NewReader([]byte("not an image")))
	assert.ErrorIs(t, err, imageio.ErrDecode)
}

// TestFromImage_SubImage checks that non-zero bounds are honored.
func TestFromImage_SubImage(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 4, 4))
	g.SetGray(2, 2, color.Gray{Y: 255})
	sub := g.SubImage(image.Rect(1, 1, 4, 4))

	buf, err := imageio.FromImage(sub)
	require.NoError(t, err)
	assert.Equal(t, 3, buf.Width)
	assert.Equal(t, pixel.Greyscale, buf.Mode)
	assert.True(t, buf.OpenAt(1, 1))
	assert.False(t, buf.OpenAt(0, 0))
}

// TestFromImage_TransparentWhite checks that a fully transparent white pixel
// keeps its color rather than collapsing to black.
func TestFromImage_TransparentWhite(t *testing.T) {
	clearWhite := color.NRGBA{R: 255, G: 255, B: 255, A: 0}
	black := color.NRGBA{A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	nrgba := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	nrgba.SetNRGBA(0, 0, clearWhite)
	nrgba.SetNRGBA(1, 0, black)
	nrgba.SetNRGBA(2, 0, white)

	pal := image.NewPaletted(image.Rect(0, 0, 3, 1), color.Palette{clearWhite, black, white})
	for x := 0; x < 3; x++ {
		pal.SetColorIndex(x, 0, uint8(x))
	}

	wide := image.NewNRGBA64(image.Rect(0, 0, 3, 1))
	wide.SetNRGBA64(0, 0, color.NRGBA64{R: 0xffff, G: 0xffff, B: 0xffff})
	wide.SetNRGBA64(1, 0, color.NRGBA64{A: 0xffff})
	wide.SetNRGBA64(2, 0, color.NRGBA64{R: 0xffff, G: 0xffff, B: 0xffff, A: 0xffff})

	var enc bytes.Buffer
	require.NoError(t, png.Encode(&enc, nrgba))
	decoded, _, err := image.Decode(bytes.NewReader(enc.Bytes()))
	require.NoError(t, err)

	cases := []struct {
		name string
		img  image.Image
	}{
		{"nrgba", nrgba},
		{"nrgba sub-image", nrgba.SubImage(image.Rect(0, 0, 3, 1))},
		{"paletted", pal},
		{"nrgba64", wide},
		{"png", decoded},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf, err := imageio.FromImage(tc.img)
			require.NoError(t, err)
			assert.True(t, buf.OpenAt(0, 0), "transparent white is open")
			assert.False(t, buf.OpenAt(1, 0))
			assert.True(t, buf.OpenAt(2, 0))
		})
	}

	got, err := imageio.Decode(bytes.NewReader(enc.Bytes()))
	require.NoError(t, err)
	assert.True(t, got.OpenAt(0, 0))
}

func TestSize(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, imageio.Encode(&out, fixture(t), imageio.PNG, 3))

	w, h, err := imageio.Size(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 12, w)
	assert.Equal(t, 9, h)

	_, _, err = imageio.Size(bytes.NewReader([]byte("not an image")))
	assert.ErrorIs(t, err, imageio.ErrDecode)
}

func TestReadWrite(t *testing.T) {
	dir := t.TempDir()
	buf := fixture(t)

	for _, name := range []string{"m.png", "m.bmp"} {
		path := filepath.Join(dir, name)
		require.NoError(t, imageio.Write(path, buf, 2))
		got, err := imageio.Read(path)
		require.NoError(t, err)
		assert.Equal(t, 8, got.Width, name)
		assert.Equal(t, 6, got.Height, name)
	}

	assert.ErrorIs(t, imageio.Write(filepath.Join(dir, "m.gif"), buf, 1), imageio.ErrFormat)
	_, err := imageio.Read(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("junk"), 0o644))
	_, err = imageio.Read(bad)
	assert.ErrorIs(t, err, imageio.ErrDecode)
}
