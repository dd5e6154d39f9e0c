// Package corridor compresses a maze bitmap into a sparse weighted graph.
//
// Instead of one node per pixel, Build walks straight corridors outward from
// a frontier of junction nodes and collapses every corridor run into one
// edge whose weight is the number of grid steps it covers. Nodes are stored
// in a core.Graph[Node]; identity is the cell coordinate.
//
// Walk rules, per frontier node (frontier is a LIFO stack):
//
//   - Directions are tried in the order left, right, up, down, each only if
//     the adjacent cell is open and unvisited when the node is popped.
//   - Every traversed cell is marked visited.
//   - A walk stops on a junction (an open, unvisited cell to either side) or
//     a dead end (no open, unvisited cell ahead).
//   - On vertical walks, if the cell just past the stop is already visited,
//     the walk links to the node registered there (weight steps+1) and no new
//     node is created.
//   - Otherwise a node is registered at the stop cell, linked with weight
//     steps, and pushed.
//
// The exit is the first registered node on the last row.
//
// Solve runs Dijkstra over the compressed graph; SolveBFS returns the path
// with the fewest junctions. Expand turns either into linear cell indices.
//
// Errors:
//
//   - ErrNoEntrance: row 0 has no open cell.
//   - ErrNoExit:     no node was registered on the last row.
//   - ErrNoPath:     the exit node is not reachable from the start node.
package corridor
