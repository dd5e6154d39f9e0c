// Package server exposes the maze solver over HTTP.
//
// Routes:
//
//	GET  /healthz                 liveness check
//	POST /solve?strategy=&scale=  image body in, PNG with the route out
//	POST /graph?format=           image body in, corridor graph as DOT, SVG or PNG
//	POST /repair?scale=           image body in, PNG with the fewest-walls route out
//	GET  /generate?cols=&rows=&seed=&method=&loops=&scale=
//	                              random maze as PNG
//
// Every request gets an id, returned in X-Solve-Id and attached to log lines.
//
// Status codes:
//
//	400  bad query parameters or an undecodable body
//	413  body larger than server.max_upload_bytes, or an image (uploaded or
//	     generated) with more than server.max_pixels pixels
//	422  a decodable maze that cannot be solved
package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/katalvlaran/pixmaze/corridor"
	"github.com/katalvlaran/pixmaze/dot"
	"github.com/katalvlaran/pixmaze/imageio"
	"github.com/katalvlaran/pixmaze/internal/config"
	"github.com/katalvlaran/pixmaze/mazegen"
	"github.com/katalvlaran/pixmaze/mst"
	"github.com/katalvlaran/pixmaze/pixel"
	"github.com/katalvlaran/pixmaze/solve"
)

// Response headers.
const (
	HeaderSolveID    = "X-Solve-Id"
	HeaderPathLength = "X-Path-Length"
	HeaderElapsed    = "X-Elapsed"
	HeaderWalls      = "X-Walls-Opened"
)

// Server handles solve requests. It holds no per-request state.
type Server struct {
	cfg      config.Config
	logger   *log.Logger
	strategy solve.Strategy
}

// New creates a Server. cfg must have passed Validate.
func New(cfg config.Config, logger *log.Logger) *Server {
	return &Server{cfg: cfg, logger: logger, strategy: cfg.StrategyValue()}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Post("/solve", s.solve)
	r.Post("/graph", s.graph)
	r.Post("/repair", s.repair)
	r.Get("/generate", s.generate)
	return r
}

// HTTPServer wraps Handler with the configured address and timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadTimeout:       s.cfg.Server.ReadTimeout,
		ReadHeaderTimeout: s.cfg.Server.ReadTimeout,
	}
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) solve(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	w.Header().Set(HeaderSolveID, id)
	logger := s.logger.With("id", id)

	strategy, scale, err := s.solveParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	buf, ok := s.decode(w, r, logger)
	if !ok {
		return
	}

	res, err := solve.Solve(buf, strategy)
	if err != nil {
		logger.Warn("Unsolvable maze", "err", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	img, err := solve.Render(buf, res)
	if err != nil {
		logger.Error("Render failed", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set(HeaderPathLength, strconv.Itoa(len(res.Path)))
	w.Header().Set(HeaderElapsed, res.Elapsed.String())
	if err := imageio.Encode(w, img, imageio.PNG, scale); err != nil {
		logger.Error("Encode failed", "err", err)
		return
	}
	logger.Info("Solved",
		"strategy", res.Strategy,
		"width", buf.Width,
		"height", buf.Height,
		"path", len(res.Path),
		"elapsed", res.Elapsed)
}

func (s *Server) repair(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	w.Header().Set(HeaderSolveID, id)
	logger := s.logger.With("id", id)

	scale, err := s.scaleParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	buf, ok := s.decode(w, r, logger)
	if !ok {
		return
	}

	rep, img, err := solve.Repair(buf)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set(HeaderPathLength, strconv.Itoa(len(rep.Path)))
	w.Header().Set(HeaderWalls, strconv.Itoa(rep.Cost()))
	if err := imageio.Encode(w, img, imageio.PNG, scale); err != nil {
		logger.Error("Encode failed", "err", err)
		return
	}
	logger.Info("Repaired", "walls", rep.Cost(), "path", len(rep.Path))
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	w.Header().Set(HeaderSolveID, id)
	logger := s.logger.With("id", id)

	q := r.URL.Query()
	g := s.cfg.Generate
	cols, rows, loops := g.Cols, g.Rows, g.Loops
	method := mst.Method(g.Method)
	var seed int64 = 1
	for _, p := range []struct {
		key string
		dst *int
	}{{"cols", &cols}, {"rows", &rows}, {"loops", &loops}} {
		v := q.Get(p.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, fmt.Sprintf("%s must be an integer, got %q", p.key, v), http.StatusBadRequest)
			return
		}
		*p.dst = n
	}
	if v := q.Get("seed"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			http.Error(w, fmt.Sprintf("seed must be an integer, got %q", v), http.StatusBadRequest)
			return
		}
		seed = n
	}
	if v := q.Get("method"); v != "" {
		method = mst.Method(v)
	}
	scale, err := s.scaleParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if cols <= mazegen.MaxCells && rows <= mazegen.MaxCells &&
		int64(2*cols+1)*int64(2*rows+1) > s.cfg.Server.MaxPixels {
		http.Error(w, "maze too large", http.StatusRequestEntityTooLarge)
		return
	}

	buf, err := solve.Generate(cols, rows,
		mazegen.WithMethod(method),
		mazegen.WithSeed(seed),
		mazegen.WithLoops(loops),
	)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := imageio.Encode(w, buf, imageio.PNG, scale); err != nil {
		logger.Error("Encode failed", "err", err)
		return
	}
	logger.Info("Generated", "cols", cols, "rows", rows, "method", method, "seed", seed, "loops", loops)
}

func (s *Server) scaleParam(r *http.Request) (int, error) {
	scale := s.cfg.Scale
	if v := r.URL.Query().Get("scale"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 32 {
			return 0, fmt.Errorf("scale must be an integer in [1,32], got %q", v)
		}
		scale = n
	}
	return scale, nil
}

func (s *Server) solveParams(r *http.Request) (solve.Strategy, int, error) {
	q := r.URL.Query()
	strategy := s.strategy
	if v := q.Get("strategy"); v != "" {
		st, err := solve.ParseStrategy(v)
		if err != nil {
			return 0, 0, err
		}
		strategy = st
	}
	scale, err := s.scaleParam(r)
	if err != nil {
		return 0, 0, err
	}
	return strategy, scale, nil
}

func (s *Server) graph(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	w.Header().Set(HeaderSolveID, id)
	logger := s.logger.With("id", id)

	format := dot.DOT
	if v := r.URL.Query().Get("format"); v != "" {
		f, err := dot.ParseFormat(v)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		format = f
	}
	buf, ok := s.decode(w, r, logger)
	if !ok {
		return
	}

	m, err := corridor.Build(buf)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	data, err := dot.Render(r.Context(), dot.FromMaze(m), format)
	if err != nil {
		logger.Error("Graph render failed", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType(format))
	_, _ = w.Write(data)
	logger.Info("Exported graph", "format", format, "nodes", m.Graph.NodeCount(), "corridors", m.Graph.EdgeCount())
}

// decode reads the request body as an image, answering the error itself
// when it fails.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, logger *log.Logger) (pixel.Buffer, bool) {
	start := time.Now()
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes))
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			http.Error(w, "image too large", http.StatusRequestEntityTooLarge)
			return pixel.Buffer{}, false
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return pixel.Buffer{}, false
	}
	// a small compressed body can still describe a huge bitmap
	width, height, err := imageio.Size(bytes.NewReader(data))
	if err != nil {
		logger.Debug("Bad upload", "err", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return pixel.Buffer{}, false
	}
	if px := int64(width) * int64(height); px > s.cfg.Server.MaxPixels {
		logger.Warn("Upload too large", "width", width, "height", height, "max_pixels", s.cfg.Server.MaxPixels)
		http.Error(w, fmt.Sprintf("image too large: %d pixels, limit %d", px, s.cfg.Server.MaxPixels),
			http.StatusRequestEntityTooLarge)
		return pixel.Buffer{}, false
	}
	buf, err := imageio.Decode(bytes.NewReader(data))
	if err != nil {
		logger.Debug("Bad upload", "err", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return pixel.Buffer{}, false
	}
	logger.Debug("Decoded upload", "width", buf.Width, "height", buf.Height, "took", time.Since(start))
	return buf, true
}

func contentType(f dot.Format) string {
	switch f {
	case dot.SVG:
		return "image/svg+xml"
	case dot.PNG:
		return "image/png"
	}
	return "text/vnd.graphviz; charset=utf-8"
}
