package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pixmaze/imageio"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input, suffix, want string
	}{
		{"maze.png", "_solved", "maze_solved.png"},
		{"dir/maze.bmp", "_solved", "dir/maze_solved.bmp"},
		{"a.b/maze.PNG", "-out", "a.b/maze-out.PNG"},
		{"maze.v2.png", "_solved", "maze.v2_solved.png"},
	}
	for _, tt := range tests {
		got, err := outputPath(tt.input, tt.suffix)
		if assert.NoError(t, err, tt.input) {
			assert.Equal(t, tt.want, got)
		}
	}

	for _, bad := range []string{"maze.jpg", "maze", "png"} {
		_, err := outputPath(bad, "_solved")
		assert.ErrorIs(t, err, imageio.ErrFormat, bad)
	}
}

func TestWithExt(t *testing.T) {
	assert.Equal(t, "maze.svg", withExt("maze.png", ".svg"))
	assert.Equal(t, "dir/maze", withExt("dir/maze.png", ""))
}
