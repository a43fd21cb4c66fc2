package worldgen

import "math"

const rasterCellSize = 20.0

// MapData is the final rasterized output of Generate: per-pixel scalar
// fields and biome classes, plus a river-intensity grid, all indexed
// [y][x].
type MapData struct {
	Width, Height int
	Elevation     [][]float64
	Moisture      [][]float64
	Temperature   [][]float64
	Biomes        [][]Biome
	Rivers        [][]float64
}

// spatialHash buckets triangle centroids into rasterCellSize-pixel cells
// for nearest-centroid pixel lookup, avoiding an O(triangles) scan per
// pixel.
type spatialHash struct {
	cellSize float64
	buckets  map[[2]int][]int
}

func buildSpatialHash(mesh *Mesh) *spatialHash {
	sh := &spatialHash{cellSize: rasterCellSize, buckets: make(map[[2]int][]int)}
	for t, c := range mesh.Centroids {
		key := sh.cellOf(c.X, c.Y)
		sh.buckets[key] = append(sh.buckets[key], t)
	}
	return sh
}

func (sh *spatialHash) cellOf(x, y float64) [2]int {
	return [2]int{int(math.Floor(x / sh.cellSize)), int(math.Floor(y / sh.cellSize))}
}

// nearest returns the triangle whose centroid is closest to (x, y),
// searching the containing cell and its 8 neighbors first and widening
// the ring outward if nothing was found there (pathological for sparse
// meshes where rasterCellSize undershoots the average triangle size).
func (sh *spatialHash) nearest(mesh *Mesh, x, y float64) int {
	cx, cy := sh.cellOf(x, y)

	best := NoTriangle
	bestDist := math.Inf(1)

	for radius := 1; radius <= 1 || best == NoTriangle; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if radius > 1 && abs(dx) != radius && abs(dy) != radius {
					continue // already scanned by a smaller ring
				}
				key := [2]int{cx + dx, cy + dy}
				cands, ok := sh.buckets[key]
				if !ok {
					continue
				}
				for _, t := range cands {
					c := mesh.Centroids[t]
					ddx, ddy := c.X-x, c.Y-y
					d := ddx*ddx + ddy*ddy
					if d < bestDist {
						bestDist = d
						best = t
					}
				}
			}
		}
		if radius > 64 {
			break // no triangles anywhere near this pixel; give up
		}
	}

	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Rasterize projects per-triangle scalar and biome fields onto a
// Width x Height pixel grid by nearest-centroid lookup, then paints
// river intensity along each extracted river path, per spec.md
// section 4.8.
func Rasterize(cfg MapConfig, mesh *Mesh, elevation, moisture, temperature []float64, biomes []Biome, rivers []RiverPath) *MapData {
	w, h := cfg.Width, cfg.Height
	sh := buildSpatialHash(mesh)

	elevGrid := make([][]float64, h)
	moistGrid := make([][]float64, h)
	tempGrid := make([][]float64, h)
	biomeGrid := make([][]Biome, h)
	riverGrid := make([][]float64, h)

	for y := 0; y < h; y++ {
		elevGrid[y] = make([]float64, w)
		moistGrid[y] = make([]float64, w)
		tempGrid[y] = make([]float64, w)
		biomeGrid[y] = make([]Biome, w)
		riverGrid[y] = make([]float64, w)

		for x := 0; x < w; x++ {
			t := sh.nearest(mesh, float64(x)+0.5, float64(y)+0.5)
			if t == NoTriangle {
				continue
			}
			elevGrid[y][x] = elevation[t]
			moistGrid[y][x] = moisture[t]
			tempGrid[y][x] = temperature[t]
			biomeGrid[y][x] = biomes[t]
		}
	}

	paintRivers(cfg, mesh, rivers, riverGrid, w, h)

	return &MapData{
		Width:       w,
		Height:      h,
		Elevation:   elevGrid,
		Moisture:    moistGrid,
		Temperature: tempGrid,
		Biomes:      biomeGrid,
		Rivers:      riverGrid,
	}
}

// paintRivers stamps a soft disk of intensity along each river path,
// widening downstream and fading toward the edge, per spec.md section 4.8.
func paintRivers(cfg MapConfig, mesh *Mesh, rivers []RiverPath, grid [][]float64, w, h int) {
	for _, river := range rivers {
		n := len(river.Triangles)
		if n == 0 {
			continue
		}

		for i, t := range river.Triangles {
			c := mesh.Centroids[t]
			frac := float64(i) / float64(n)
			scaledWidth := math.Max(1, math.Log(1+10*river.SourceFlow*(0.2+0.8*frac))*cfg.RiverWidth*5)

			minX := int(math.Floor(c.X - scaledWidth))
			maxX := int(math.Ceil(c.X + scaledWidth))
			minY := int(math.Floor(c.Y - scaledWidth))
			maxY := int(math.Ceil(c.Y + scaledWidth))

			if minX < 0 {
				minX = 0
			}
			if minY < 0 {
				minY = 0
			}
			if maxX > w-1 {
				maxX = w - 1
			}
			if maxY > h-1 {
				maxY = h - 1
			}

			for py := minY; py <= maxY; py++ {
				for px := minX; px <= maxX; px++ {
					dx := float64(px) + 0.5 - c.X
					dy := float64(py) + 0.5 - c.Y
					dist := math.Sqrt(dx*dx + dy*dy)
					if dist > scaledWidth {
						continue
					}
					intensity := math.Pow(1-dist/scaledWidth, 0.8) * scaledWidth
					if intensity > grid[py][px] {
						grid[py][px] = intensity
					}
				}
			}
		}
	}
}
