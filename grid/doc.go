// Package grid models a maze bitmap as a dense grid with one Cell per pixel
// and solves it with breadth-first search.
//
// What:
//
//   - New scans the buffer in row-major order, classifies every cell, and
//     records the first open cell of row 0 (entrance) and of row Height-1
//     (exit).
//   - Solve runs BFS from the entrance and returns the ordered cells of a
//     shortest entrance→exit path.
//
// Neighbors are the up-to-four axis-adjacent cells (up, down, left, right)
// that are inside the grid, open, and not yet visited.
//
// Complexity:
//
//   - New:   O(W×H) time and memory.
//   - Solve: O(W×H) time, O(W×H) memory for visited flags and parents.
//
// Errors:
//
//   - ErrNoEntrance: row 0 has no open cell.
//   - ErrNoExit:     the last row has no open cell.
//   - ErrNoPath:     the exit is not reachable from the entrance.
//   - pixel.ErrEmpty, pixel.ErrBufferSize, pixel.ErrMode from validation.
package grid
