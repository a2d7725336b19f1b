// Package physics provides collision detection and distance utilities.
package physics

import "math"

// CollisionRadius is the uniform proximity threshold for every entity pair.
// Visual size is ignored on purpose: everything collides as a point.
const CollisionRadius = 20.0

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is strictly within radius of a target position.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) < radius*radius
}

// Collides reports whether two positions are closer than CollisionRadius.
func Collides(ax, ay, bx, by float64) bool {
	return PointInCircle(ax, ay, bx, by, CollisionRadius)
}
