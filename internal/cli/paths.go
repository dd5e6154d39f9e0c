package cli

import (
	"path/filepath"
	"strings"

	"github.com/katalvlaran/pixmaze/imageio"
)

// outputPath inserts suffix before the extension of input:
// "maze.png" with "_solved" becomes "maze_solved.png".
func outputPath(input, suffix string) (string, error) {
	if _, err := imageio.FormatFromPath(input); err != nil {
		return "", err
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + suffix + ext, nil
}

// withExt replaces the extension of path with ext.
func withExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
