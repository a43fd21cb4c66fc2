package worldgen

import "math"

// Point is a 2-D coordinate in map space, (x, y) in [0, W] x [0, H].
type Point struct {
	X, Y float64
}

// NoTriangle is the sentinel value for "no neighbor across this edge" /
// "no downslope" / "unset".
const NoTriangle = -1

// Mesh is a Delaunay triangulation of a point set. Triangles are stored as
// a flat array of vertex indices (three per triangle, counter-clockwise);
// Halfedges mirrors the delaunator convention: Halfedges[3*t+j] is the
// opposite halfedge index for edge j of triangle t, or -1 on the hull.
// Neighbors[t][j] is the triangle across edge j, or NoTriangle.
type Mesh struct {
	Points    []Point
	Triangles []int
	Halfedges []int
	Neighbors [][3]int
	Centroids []Point
	Boundary  []bool
}

// NumTriangles returns the number of triangles in the mesh.
func (m *Mesh) NumTriangles() int {
	return len(m.Triangles) / 3
}

// vertex returns the point at triangle t's local corner j (0, 1, or 2).
func (m *Mesh) vertex(t, j int) Point {
	return m.Points[m.Triangles[3*t+j]]
}

// BuildMesh Delaunay-triangulates points via incremental Bowyer-Watson
// insertion, then derives neighbor/centroid/boundary tables. Returns an
// *InternalError if the point set is too degenerate to produce any
// triangle (e.g. fewer than 3 points, or all points collinear).
func BuildMesh(points []Point) (*Mesh, error) {
	if len(points) < 3 {
		return nil, &InternalError{Stage: "mesh", Reason: "fewer than 3 points"}
	}

	tris := bowyerWatson(points)
	if len(tris) == 0 {
		return nil, &InternalError{Stage: "mesh", Reason: "triangulation produced zero triangles (degenerate point set)"}
	}

	flat := make([]int, 0, len(tris)*3)
	for _, t := range tris {
		flat = append(flat, t[0], t[1], t[2])
	}

	m := &Mesh{
		Points:    points,
		Triangles: flat,
	}
	m.buildHalfedges()
	m.buildDerived()
	return m, nil
}

// bwTriangle indexes into the working point list (points plus three
// super-triangle vertices appended at the end).
type bwTriangle [3]int

// bowyerWatson performs incremental Delaunay triangulation, returning
// triangles indexed into the original points slice with the bounding
// super-triangle removed.
func bowyerWatson(points []Point) []bwTriangle {
	n := len(points)
	work := make([]Point, n, n+3)
	copy(work, points)

	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	dx := maxX - minX
	dy := maxY - minY
	deltaMax := math.Max(dx, dy)
	if deltaMax <= 0 {
		deltaMax = 1
	}
	midX := (minX + maxX) / 2
	midY := (minY + maxY) / 2

	superA := n
	superB := n + 1
	superC := n + 2
	work = append(work,
		Point{midX - 20*deltaMax, midY - deltaMax},
		Point{midX, midY + 20*deltaMax},
		Point{midX + 20*deltaMax, midY - deltaMax},
	)

	triangles := []bwTriangle{ccw(work, bwTriangle{superA, superB, superC})}

	for pi := 0; pi < n; pi++ {
		p := work[pi]

		var bad []int
		for ti, t := range triangles {
			if inCircumcircle(work[t[0]], work[t[1]], work[t[2]], p) {
				bad = append(bad, ti)
			}
		}

		edgeCount := make(map[[2]int]int)
		type edge [2]int
		var edgeOrder []edge
		addEdge := func(a, b int) {
			key := [2]int{a, b}
			rev := [2]int{b, a}
			if edgeCount[rev] > 0 {
				edgeCount[rev]--
				return
			}
			edgeCount[key]++
			edgeOrder = append(edgeOrder, edge(key))
		}

		badSet := make(map[int]bool, len(bad))
		for _, ti := range bad {
			badSet[ti] = true
		}
		for _, ti := range bad {
			t := triangles[ti]
			addEdge(t[0], t[1])
			addEdge(t[1], t[2])
			addEdge(t[2], t[0])
		}

		var boundary []edge
		for _, e := range edgeOrder {
			if edgeCount[e] > 0 {
				boundary = append(boundary, e)
			}
		}

		kept := triangles[:0]
		for ti, t := range triangles {
			if !badSet[ti] {
				kept = append(kept, t)
			}
		}
		triangles = kept

		for _, e := range boundary {
			triangles = append(triangles, ccw(work, bwTriangle{e[0], e[1], pi}))
		}
	}

	result := make([]bwTriangle, 0, len(triangles))
	for _, t := range triangles {
		if t[0] >= n || t[1] >= n || t[2] >= n {
			continue
		}
		result = append(result, t)
	}
	return result
}

// ccw reorders a triangle's vertices to be counter-clockwise.
func ccw(pts []Point, t bwTriangle) bwTriangle {
	a, b, c := pts[t[0]], pts[t[1]], pts[t[2]]
	if signedArea2(a, b, c) < 0 {
		return bwTriangle{t[0], t[2], t[1]}
	}
	return t
}

func signedArea2(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// inCircumcircle reports whether p lies strictly inside the circumcircle
// of CCW triangle (a, b, c).
func inCircumcircle(a, b, c, p Point) bool {
	ax, ay := a.X-p.X, a.Y-p.Y
	bx, by := b.X-p.X, b.Y-p.Y
	cx, cy := c.X-p.X, c.Y-p.Y

	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)
	return det > 0
}

// buildHalfedges derives the opposite-halfedge table by matching each
// directed edge (a, b) of one triangle to the reverse directed edge (b, a)
// of its neighbor. Unmatched edges lie on the convex hull boundary.
func (m *Mesh) buildHalfedges() {
	T := m.NumTriangles()
	m.Halfedges = make([]int, 3*T)
	for i := range m.Halfedges {
		m.Halfedges[i] = NoTriangle
	}

	lookup := make(map[[2]int]int, 3*T)
	for t := 0; t < T; t++ {
		for j := 0; j < 3; j++ {
			a := m.Triangles[3*t+j]
			b := m.Triangles[3*t+(j+1)%3]
			lookup[[2]int{a, b}] = 3*t + j
		}
	}

	for t := 0; t < T; t++ {
		for j := 0; j < 3; j++ {
			a := m.Triangles[3*t+j]
			b := m.Triangles[3*t+(j+1)%3]
			if opp, ok := lookup[[2]int{b, a}]; ok {
				m.Halfedges[3*t+j] = opp
			}
		}
	}
}

// buildDerived computes Neighbors, Centroids, and Boundary from
// Triangles/Halfedges, per spec.md section 4.3.
func (m *Mesh) buildDerived() {
	T := m.NumTriangles()
	m.Neighbors = make([][3]int, T)
	m.Centroids = make([]Point, T)
	m.Boundary = make([]bool, T)

	for t := 0; t < T; t++ {
		boundary := false
		for j := 0; j < 3; j++ {
			e := 3*t + j
			opp := m.Halfedges[e]
			if opp == NoTriangle {
				m.Neighbors[t][j] = NoTriangle
				boundary = true
			} else {
				m.Neighbors[t][j] = opp / 3
			}
		}
		m.Boundary[t] = boundary

		a, b, c := m.vertex(t, 0), m.vertex(t, 1), m.vertex(t, 2)
		m.Centroids[t] = Point{
			X: (a.X + b.X + c.X) / 3,
			Y: (a.Y + b.Y + c.Y) / 3,
		}
	}
}

// EachNeighbor calls fn for each non-sentinel neighbor of triangle t.
func (m *Mesh) EachNeighbor(t int, fn func(u int)) {
	for _, u := range m.Neighbors[t] {
		if u != NoTriangle {
			fn(u)
		}
	}
}
