package shape

// Edge is a pair of point indices joined by a line segment.
type Edge [2]int

// QuadEdges outlines the four sides of a quad.
var QuadEdges = []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}}

// CuboidEdges outlines the back face, the front face and the four edges
// joining them.
var CuboidEdges = []Edge{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// MarkerEdges draws the vertical, horizontal and depth spokes.
var MarkerEdges = []Edge{{0, 1}, {2, 3}, {4, 5}}

// Marker2DEdges is MarkerEdges without the depth spoke.
var Marker2DEdges = []Edge{{0, 1}, {2, 3}}

// PolygonEdges returns the closed outline of an n-point polygon: (i, i+1)
// for every i below n-1, then (n-1, 0). Fewer than two points give no edges.
func PolygonEdges(n int) []Edge {
	if n < 2 {
		return nil
	}
	edges := make([]Edge, 0, n)
	for i := 0; i < n-1; i++ {
		edges = append(edges, Edge{i, i + 1})
	}
	return append(edges, Edge{n - 1, 0})
}

// ArcEdges returns the open run (i, i+1) for i from start to end-1, with
// start and end clamped to [0, n-1]. No closing edge is added.
func ArcEdges(n, start, end int) []Edge {
	start, end = ClampArc(n, start, end)
	if end <= start {
		return nil
	}
	edges := make([]Edge, 0, end-start)
	for i := start; i < end; i++ {
		edges = append(edges, Edge{i, i + 1})
	}
	return edges
}

// ClampArc clamps an arc index range to the valid indices of an n-point
// polygon. For n == 0 both values are 0.
func ClampArc(n, start, end int) (int, int) {
	if n <= 0 {
		return 0, 0
	}
	return clamp(start, 0, n-1), clamp(end, 0, n-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
