package server_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixmaze/imageio"
	"github.com/katalvlaran/pixmaze/internal/config"
	"github.com/katalvlaran/pixmaze/internal/server"
	"github.com/katalvlaran/pixmaze/overlay"
	"github.com/katalvlaran/pixmaze/pixel"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *httptest.Server {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	ts := httptest.NewServer(server.New(cfg, log.New(io.Discard)).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func pngBody(t *testing.T, rows ...string) []byte {
	t.Helper()
	buf, err := pixel.FromRows(rows...)
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, imageio.Encode(&b, buf, imageio.PNG, 1))
	return b.Bytes()
}

var solvable = []string{
	"#.###",
	"#...#",
	"###.#",
}

func post(t *testing.T, url string, body []byte) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "image/png", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "ok\n", string(body))
}

func TestSolve_ReturnsPNG(t *testing.T) {
	ts := newTestServer(t, nil)
	resp := post(t, ts.URL+"/solve", pngBody(t, solvable...))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, "5", resp.Header.Get(server.HeaderPathLength))
	_, err := uuid.Parse(resp.Header.Get(server.HeaderSolveID))
	assert.NoError(t, err)

	out, err := imageio.Decode(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, pixel.RGB, out.Mode)
	for _, i := range []int{1, 6, 7, 8, 13} {
		assert.Equal(t, overlay.GridPath, out.At(i), "cell %d", i)
	}
}

func TestSolve_StrategyAndScale(t *testing.T) {
	ts := newTestServer(t, nil)
	resp := post(t, ts.URL+"/solve?strategy=graph&scale=2", pngBody(t, solvable...))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	out, err := imageio.Decode(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 10, out.Width)
	assert.Equal(t, 6, out.Height)
	assert.Equal(t, overlay.GraphPath, out.At(out.Index(2, 0)))
}

func TestSolve_Errors(t *testing.T) {
	ts := newTestServer(t, func(c *config.Config) { c.Server.MaxUploadBytes = 1 << 10 })

	cases := []struct {
		name string
		url  string
		body []byte
		want int
	}{
		{"bad strategy", "/solve?strategy=astar", pngBody(t, solvable...), http.StatusBadRequest},
		{"bad scale", "/solve?scale=0", pngBody(t, solvable...), http.StatusBadRequest},
		{"not an image", "/solve", []byte("hello"), http.StatusBadRequest},
		{"too large", "/solve", bytes.Repeat([]byte{0}, 2<<10), http.StatusRequestEntityTooLarge},
		{"no path", "/solve", pngBody(t, "#.###", "#.#.#", "###.#"), http.StatusUnprocessableEntity},
		{"no entrance", "/solve", pngBody(t, "###", "#.#"), http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := post(t, ts.URL+tc.url, tc.body)
			assert.Equal(t, tc.want, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get(server.HeaderSolveID))
		})
	}
}

// TestUpload_PixelLimit checks that a small compressed body describing a
// large bitmap is refused before it is decoded.
func TestUpload_PixelLimit(t *testing.T) {
	const side = 400
	ts := newTestServer(t, func(c *config.Config) {
		c.Server.MaxUploadBytes = 64 << 10
		c.Server.MaxPixels = 10_000
	})

	walls, err := pixel.New(make([]byte, side*side), side, side, pixel.Greyscale)
	require.NoError(t, err)
	var big bytes.Buffer
	require.NoError(t, imageio.Encode(&big, walls, imageio.PNG, 1))
	require.Less(t, big.Len(), 64<<10, "body must fit the upload limit")

	for _, route := range []string{"/solve", "/graph", "/repair"} {
		t.Run(route, func(t *testing.T) {
			resp := post(t, ts.URL+route, big.Bytes())
			assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), "160000 pixels")
		})
	}

	cases := []struct {
		name  string
		limit int64
		want  int
	}{
		{"at limit", 15, http.StatusOK},
		{"one over", 14, http.StatusRequestEntityTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestServer(t, func(c *config.Config) { c.Server.MaxPixels = tc.limit })
			resp := post(t, ts.URL+"/solve", pngBody(t, solvable...))
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestGraph_DOT(t *testing.T) {
	ts := newTestServer(t, nil)
	resp := post(t, ts.URL+"/graph", pngBody(t, solvable...))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/vnd.graphviz"))
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "digraph maze")
	assert.Contains(t, string(body), `label="1,0"`)

	bad := post(t, ts.URL+"/graph?format=pdf", pngBody(t, solvable...))
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)

	unsolvable := post(t, ts.URL+"/graph", pngBody(t, "#.#", "###"))
	assert.Equal(t, http.StatusUnprocessableEntity, unsolvable.StatusCode)
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, err := http.Get(ts.URL + "/solve")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRepair(t *testing.T) {
	ts := newTestServer(t, nil)
	resp := post(t, ts.URL+"/repair", pngBody(t, "#.###", "#.#.#", "###.#", "###.#"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1", resp.Header.Get(server.HeaderWalls))
	assert.Equal(t, "6", resp.Header.Get(server.HeaderPathLength))

	img, err := imageio.Decode(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, overlay.Breach, img.At(7))

	bad := post(t, ts.URL+"/repair", pngBody(t, "###", "#.#"))
	assert.Equal(t, http.StatusUnprocessableEntity, bad.StatusCode)
}

func TestGenerate(t *testing.T) {
	ts := newTestServer(t, func(c *config.Config) { c.Server.MaxPixels = 1 << 10 })

	resp, err := http.Get(ts.URL + "/generate?cols=5&rows=3&seed=9&method=prim&loops=2&scale=2")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	img, err := imageio.Decode(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 22, img.Width)
	assert.Equal(t, 14, img.Height)

	cases := []struct {
		query string
		want  int
	}{
		{"cols=x", http.StatusBadRequest},
		{"seed=1.5", http.StatusBadRequest},
		{"cols=0", http.StatusBadRequest},
		{"method=wilson&cols=3&rows=3", http.StatusBadRequest},
		{"scale=99&cols=3&rows=3", http.StatusBadRequest},
		{"cols=100&rows=100", http.StatusRequestEntityTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/generate?" + tc.query)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}
