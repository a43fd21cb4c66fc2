package worldgen

import "math"

// SampleResult is the output of stage 1: a point set covering the map
// rectangle.
type SampleResult struct {
	Points []Point
}

// GeneratePoints produces a point set approximately uniformly covering the
// configured rectangle: boundary points along the four edges plus a
// jittered interior grid, per spec.md section 4.2. Terrain selects its own
// mountain peaks independently from mesh centroids (spec.md section 4.4),
// so this stage only needs to produce the point set the mesh triangulates.
func GeneratePoints(cfg MapConfig, rng *RNG) SampleResult {
	w, h := float64(cfg.Width), float64(cfg.Height)

	cellSize := math.Sqrt((w * h) / ((w * h * cfg.BiomeDensity) / 30))
	if cellSize < 2 {
		cellSize = 2 // safety guard bounding the triangle count, not a user-facing error
	}

	var points []Point
	points = append(points, boundaryPoints(w, h, cellSize/2)...)

	minX, minY := cellSize/2, cellSize/2
	maxX, maxY := w-cellSize/2, h-cellSize/2

	for gy := cellSize / 2; gy < h; gy += cellSize {
		for gx := cellSize / 2; gx < w; gx += cellSize {
			jx := gx + rng.Range(-cellSize*cfg.PointDeviation, cellSize*cfg.PointDeviation)
			jy := gy + rng.Range(-cellSize*cfg.PointDeviation, cellSize*cfg.PointDeviation)
			jx = clamp(jx, minX, maxX)
			jy = clamp(jy, minY, maxY)

			points = append(points, Point{X: jx, Y: jy})
		}
	}

	return SampleResult{Points: points}
}

// boundaryPoints emits points spaced evenly along the rectangle's four
// edges, traversing bottom -> right -> top -> left so the mesh's boundary
// detection sees a consistent winding.
func boundaryPoints(w, h, spacing float64) []Point {
	if spacing <= 0 {
		spacing = 1
	}
	var pts []Point

	for x := 0.0; x < w; x += spacing {
		pts = append(pts, Point{X: x, Y: h})
	}
	for y := h; y > 0; y -= spacing {
		pts = append(pts, Point{X: w, Y: y})
	}
	for x := w; x > 0; x -= spacing {
		pts = append(pts, Point{X: x, Y: 0})
	}
	for y := 0.0; y < h; y += spacing {
		pts = append(pts, Point{X: 0, Y: y})
	}

	return pts
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
