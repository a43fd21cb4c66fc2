package worldgen

import (
	"container/heap"
	"math"
)

// TerrainResult holds stage-3 output: the normalized per-triangle
// elevation field.
type TerrainResult struct {
	Elevation []float64
}

// ComputeTerrain assigns per-triangle elevation from a continent mask, a
// mountain distance field, and multi-octave noise, per spec.md section
// 4.4, then normalizes the result so the minimum is 0 and the maximum is
// 1.
func ComputeTerrain(cfg MapConfig, mesh *Mesh) *TerrainResult {
	T := mesh.NumTriangles()

	mountainDist := mountainDistanceField(cfg, mesh)
	mask := continentMask(cfg, mesh)

	terrainNoise := NewNoise(cfg.Seed + "-terrain")
	waterNoise := NewNoise(cfg.Seed + "-water")

	elevation := make([]float64, T)
	for t := 0; t < T; t++ {
		if mesh.Boundary[t] {
			elevation[t] = 0
			continue
		}

		c := mesh.Centroids[t]
		continentTerm := mask[t] * 0.6
		mountainTerm := (1 - mountainDist[t]) * (1 - mountainDist[t]) * cfg.MountainHeight * 0.5
		noiseTerm := terrainNoise.FBM(c.X*0.01, c.Y*0.01, 4, 1.0, 0.5) * 0.3

		e := continentTerm + mountainTerm + noiseTerm

		w := waterNoise.Eval201(c.X*0.005, 0)
		if w < 0.3 {
			e *= w * 3
		}

		elevation[t] = e
	}

	normalize01(elevation)

	return &TerrainResult{Elevation: elevation}
}

// normalize01 linearly rescales vals in place so the minimum maps to 0 and
// the maximum maps to 1. A flat field (max == min) is set to all zeros
// rather than dividing by zero.
func normalize01(vals []float64) {
	if len(vals) == 0 {
		return
	}
	min, max := vals[0], vals[0]
	for _, v := range vals {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	span := max - min
	if span <= 0 {
		for i := range vals {
			vals[i] = 0
		}
		return
	}
	for i, v := range vals {
		vals[i] = (v - min) / span
	}
}

// mountainDistanceField runs a multi-source shortest-path search from
// selected mountain peaks, returning per-triangle distance normalized to
// [0, 1]; unreachable triangles (including when no peaks are selected)
// take value 1.0.
func mountainDistanceField(cfg MapConfig, mesh *Mesh) []float64 {
	T := mesh.NumTriangles()
	dist := make([]float64, T)
	for i := range dist {
		dist[i] = math.Inf(1)
	}

	peakNoiseA := NewNoise(cfg.Seed + "-peak-a")
	peakNoiseB := NewNoise(cfg.Seed + "-peak-b")
	peakRNG := Substream(cfg.Seed, "peak-select")
	jaggedRNG := Substream(cfg.Seed, "jagged")

	h := &triangleHeap{}
	heap.Init(h)

	for t := 0; t < T; t++ {
		if mesh.Boundary[t] {
			continue
		}
		c := mesh.Centroids[t]
		na := peakNoiseA.Eval2(c.X*0.02, c.Y*0.02)
		nb := peakNoiseB.Eval2(c.X*0.02, c.Y*0.02)
		if na*nb > 0.7 && peakRNG.Float64() < cfg.MountainFrequency*0.1 {
			dist[t] = 0
			heap.Push(h, triItem{tri: t, dist: 0})
		}
	}

	visited := make([]bool, T)
	for h.Len() > 0 {
		item := heap.Pop(h).(triItem)
		t := item.tri
		if visited[t] {
			continue
		}
		visited[t] = true

		mesh.EachNeighbor(t, func(u int) {
			eps := (jaggedRNG.Float64() - 0.5) * cfg.Jaggedness * 0.2
			cost := centroidDistance(mesh, t, u) * (1 + eps)
			nd := dist[t] + cost
			if nd < dist[u] {
				dist[u] = nd
				heap.Push(h, triItem{tri: u, dist: nd})
			}
		})
	}

	maxFinite := 0.0
	anyFinite := false
	for _, d := range dist {
		if !math.IsInf(d, 1) {
			anyFinite = true
			if d > maxFinite {
				maxFinite = d
			}
		}
	}

	result := make([]float64, T)
	for t, d := range dist {
		if math.IsInf(d, 1) || !anyFinite || maxFinite == 0 {
			result[t] = 1.0
		} else {
			result[t] = d / maxFinite
		}
	}
	return result
}

func centroidDistance(mesh *Mesh, t, u int) float64 {
	a, b := mesh.Centroids[t], mesh.Centroids[u]
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// landCenter is a continent or island center used by the continent mask.
type landCenter struct {
	pos      Point
	size     float64
	stretchX float64
	stretchY float64
}

// continentMask computes, per triangle, a value shaped by distance to the
// nearest continent/island center plus multi-octave edge noise, per
// spec.md section 4.4.
func continentMask(cfg MapConfig, mesh *Mesh) []float64 {
	T := mesh.NumTriangles()
	w, h := 0.0, 0.0
	for _, p := range mesh.Points {
		if p.X > w {
			w = p.X
		}
		if p.Y > h {
			h = p.Y
		}
	}

	placeRNG := Substream(cfg.Seed, "continents")
	stretchNoise := NewNoise(cfg.Seed + "-continent-stretch")

	numContinents := int(math.Sqrt(w*h) / 300)
	if numContinents < 1 {
		numContinents = 1
	}
	if numContinents > 3 {
		numContinents = 3
	}

	inset := 0.15
	centers := make([]landCenter, 0, numContinents)
	for len(centers) < numContinents {
		cx := w*inset + placeRNG.Float64()*w*(1-2*inset)
		cy := h*inset + placeRNG.Float64()*h*(1-2*inset)
		pos := Point{X: cx, Y: cy}
		size := placeRNG.Range(0.5, 1.0)
		centers = append(centers, newLandCenter(pos, size, stretchNoise))
	}

	numIslands := int(cfg.IslandFrequency * 10)
	for i := 0; i < numIslands; i++ {
		cx := placeRNG.Float64() * w
		cy := placeRNG.Float64() * h
		size := placeRNG.Range(0.1, 0.3)
		centers = append(centers, newLandCenter(Point{X: cx, Y: cy}, size, stretchNoise))
	}

	baseRadius := 0.35 * math.Min(w, h)
	edgeNoise := NewNoise(cfg.Seed + "-edge")

	mask := make([]float64, T)
	for t := 0; t < T; t++ {
		c := mesh.Centroids[t]

		minDist := math.Inf(1)
		for _, ctr := range centers {
			dx := (c.X - ctr.pos.X) / (baseRadius * ctr.size * ctr.stretchX)
			dy := (c.Y - ctr.pos.Y) / (baseRadius * ctr.size * ctr.stretchY)
			d := math.Sqrt(dx*dx + dy*dy)
			if d < minDist {
				minDist = d
			}
		}

		edge := edgeNoise.Eval2(c.X*0.02, c.Y*0.02)*0.04 +
			edgeNoise.Eval2(c.X*0.04, c.Y*0.04)*0.02 +
			edgeNoise.Eval2(c.X*0.08, c.Y*0.08)*0.01

		v := math.Max(0, 1-minDist+edge)
		v = math.Pow(v, 1.5)
		if v <= cfg.OceanRatio {
			v = 0
		}
		mask[t] = v
	}

	return mask
}

func newLandCenter(pos Point, size float64, stretchNoise *Noise) landCenter {
	sx := 1 + stretchNoise.Eval2(pos.X*0.01, pos.Y*0.01)*0.3
	sy := 1 + stretchNoise.Eval2(pos.X*0.01+50, pos.Y*0.01+50)*0.3
	return landCenter{pos: pos, size: size, stretchX: sx, stretchY: sy}
}
