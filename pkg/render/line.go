package render

// Point is an integer screen coordinate.
type Point struct {
	X, Y int
}

// Sentinel marks a vertex that cannot be projected because it sits at or
// behind the near plane.
var Sentinel = Point{-1, -1}

// Line is a screen-space segment. Direction carries no meaning: a line and
// its reverse denote the same edge.
type Line struct {
	X1, Y1, X2, Y2 int
}

func dist2(x1, y1, x2, y2 int) int {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// linesEqual reports whether two lines denote the same edge within a
// squared pixel tolerance, checking both endpoint pairings.
func linesEqual(a, b Line, tol2 int) bool {
	return (dist2(a.X1, a.Y1, b.X1, b.Y1) <= tol2 && dist2(a.X2, a.Y2, b.X2, b.Y2) <= tol2) ||
		(dist2(a.X1, a.Y1, b.X2, b.Y2) <= tol2 && dist2(a.X2, a.Y2, b.X1, b.Y1) <= tol2)
}

// appendLine adds the edge (a, b) to out unless an equivalent edge is
// already present. Before insertion the endpoints are ordered so the
// lexicographically smaller one (by X, then Y) comes first, which keeps the
// output independent of face winding.
func appendLine(out []Line, a, b Point, tol2 int) []Line {
	cand := Line{a.X, a.Y, b.X, b.Y}
	for _, l := range out {
		if linesEqual(l, cand, tol2) {
			return out
		}
	}
	if a.X > b.X || (a.X == b.X && a.Y > b.Y) {
		cand = Line{b.X, b.Y, a.X, a.Y}
	}
	return append(out, cand)
}
