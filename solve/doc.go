// Package solve is the single entry point used by the command line tool and
// the HTTP server. It picks a maze model by Strategy, solves it, times the
// run, and renders the result.
//
// Strategies:
//
//   - Grid:     dense grid.Maze, breadth-first search over every cell.
//   - Graph:    corridor.Maze, Dijkstra over compressed corridors.
//   - GraphBFS: corridor.Maze, fewest-corridor path.
//
// Bench reproduces the builder comparison: average construction time of
// both models over N runs and their relative difference.
package solve
