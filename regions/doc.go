// Package regions analyses the open areas of a maze bitmap.
//
// Label splits open cells into 4-connected regions. Repair answers the
// question a failed solve leaves open: which walls have to go so the exit
// becomes reachable. It runs a 0-1 BFS where entering an open cell costs 0
// and entering a wall costs 1, so the result breaks through as few walls as
// possible.
//
// Entrance and exit are chosen exactly as grid.New chooses them.
package regions
