// Package behavior provides the stock state variants behavior graphs are
// wired from: stopping, scanning, driving to a point, path planning,
// short-horizon avoidance, sequencing target lists, random exploration,
// waiting out a blockage, and manual passthrough. Each variant implements
// behave.State; none of them blocks or touches a clock — timing compares
// the tick timestamp against activation stamps carried in the context.
package behavior

import "github.com/enetx/g"

// Well-known context keys the variants read and write. Graphs move data
// between them with context operators.
const (
	// KeyTarget is the point Goto drives to and FindPath plans to.
	KeyTarget g.String = "target"
	// KeyTargets is the ordered point list NextSequence iterates by default.
	KeyTargets g.String = "targets"
	// KeyIndex is NextSequence's default iteration index.
	KeyIndex g.String = "index"
	// KeyPath is the waypoint list FindPath writes.
	KeyPath g.String = "path"
	// KeyPathIndex is the iteration index for walking KeyPath.
	KeyPathIndex g.String = "pathIndex"
	// KeyObstacle is the obstacle point Scan and Goto report.
	KeyObstacle g.String = "obstacle"
)

// stampKey namespaces a state-private context key by state id, so two
// instances of the same variant never trample each other's bookkeeping.
func stampKey(id, suffix g.String) g.String {
	return id + "." + suffix
}
