package worldgen

import (
	"container/heap"
	"sort"
)

// HydrologyResult holds stage-5 output: per-triangle downslope pointers,
// accumulated flow, and the extracted river paths.
type HydrologyResult struct {
	Downslope []int
	Flow      []float64
	Rivers    []RiverPath
}

// RiverPath is an ordered sequence of triangle indices tracing a river
// from a source down to the sea, a boundary, or a sink, with a
// representative source flow used for rendering width.
type RiverPath struct {
	Triangles  []int
	SourceFlow float64
}

// ComputeHydrology derives downslope successors, resolves sinks so every
// land triangle drains somewhere, accumulates flow from rainfall, and
// extracts river paths, per spec.md section 4.6.
func ComputeHydrology(cfg MapConfig, mesh *Mesh, elevation, rainfall []float64) *HydrologyResult {
	downslope := computeDownslope(mesh, elevation)
	resolveSinks(cfg, mesh, elevation, downslope)
	flow := accumulateFlow(cfg, mesh, elevation, downslope, rainfall)
	rivers := extractRivers(cfg, mesh, elevation, downslope, flow)

	return &HydrologyResult{Downslope: downslope, Flow: flow, Rivers: rivers}
}

func computeDownslope(mesh *Mesh, elevation []float64) []int {
	T := mesh.NumTriangles()
	downslope := make([]int, T)

	for t := 0; t < T; t++ {
		downslope[t] = NoTriangle
		if mesh.Boundary[t] {
			continue
		}
		best := NoTriangle
		bestElev := elevation[t]
		mesh.EachNeighbor(t, func(u int) {
			if elevation[u] < bestElev {
				bestElev = elevation[u]
				best = u
			}
		})
		downslope[t] = best
	}

	return downslope
}

// sinkHeapItem orders the outward sink-resolution search by ascending
// elevation (explore the gentlest descent first), tie-broken by triangle
// index for determinism.
type sinkHeapItem struct {
	tri  int
	elev float64
}

type sinkHeap []sinkHeapItem

func (h sinkHeap) Len() int { return len(h) }
func (h sinkHeap) Less(i, j int) bool {
	if h[i].elev != h[j].elev {
		return h[i].elev < h[j].elev
	}
	return h[i].tri < h[j].tri
}
func (h sinkHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *sinkHeap) Push(x any)   { *h = append(*h, x.(sinkHeapItem)) }
func (h *sinkHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// resolveSinks routes every land sink's downslope through a chain of
// actual mesh neighbors to the nearest triangle whose downslope chain
// already reaches a boundary or below-sea triangle, so river paths built
// later only ever step between neighbors and no downslope cycle forms.
func resolveSinks(cfg MapConfig, mesh *Mesh, elevation []float64, downslope []int) {
	T := mesh.NumTriangles()

	var sinks []int
	for t := 0; t < T; t++ {
		if !mesh.Boundary[t] && elevation[t] >= cfg.SeaLevel && downslope[t] == NoTriangle {
			sinks = append(sinks, t)
		}
	}
	sort.Ints(sinks)

	// isDrained reports whether following downslope from t reaches a
	// boundary or below-sea triangle.
	isDrained := func(t int) bool {
		for steps := 0; t != NoTriangle && steps <= T; steps++ {
			if mesh.Boundary[t] || elevation[t] < cfg.SeaLevel {
				return true
			}
			t = downslope[t]
		}
		return false
	}

	for _, s := range sinks {
		if downslope[s] != NoTriangle {
			continue // resolved already as part of a previous sink's chain
		}

		visited := map[int]bool{s: true}
		parent := map[int]int{s: NoTriangle}

		h := &sinkHeap{}
		heap.Init(h)
		heap.Push(h, sinkHeapItem{tri: s, elev: elevation[s]})

		var target = NoTriangle
		for h.Len() > 0 {
			item := heap.Pop(h).(sinkHeapItem)
			t := item.tri

			if t != s && isDrained(t) {
				target = t
				break
			}

			mesh.EachNeighbor(t, func(u int) {
				if visited[u] {
					return
				}
				visited[u] = true
				parent[u] = t
				heap.Push(h, sinkHeapItem{tri: u, elev: elevation[u]})
			})
		}

		if target == NoTriangle {
			continue // no drainage path exists from this sink; leave it undrained
		}

		// Walk back from target to s, wiring each hop's downslope to the
		// next triangle toward the drain so the whole chain resolves at
		// once and every hop stays a mesh neighbor.
		cur := target
		next := NoTriangle
		for cur != NoTriangle {
			if next != NoTriangle {
				downslope[cur] = next
			}
			next = cur
			cur = parent[cur]
		}
	}
}

// accumulateFlow initializes flow from rainfall scaled by cfg.Rivers (plus
// a snowmelt bonus at high elevation), then sweeps triangles in descending
// elevation order, routing each triangle's flow into its downslope
// successor.
func accumulateFlow(cfg MapConfig, mesh *Mesh, elevation []float64, downslope []int, rainfall []float64) []float64 {
	T := mesh.NumTriangles()
	flow := make([]float64, T)

	for t := 0; t < T; t++ {
		if elevation[t] < cfg.SeaLevel {
			continue
		}
		r := 0.0
		if rainfall != nil {
			r = rainfall[t]
		}
		flow[t] = r * cfg.Rivers

		if elevation[t]-cfg.SeaLevel > 0.5 {
			flow[t] *= 1 + (elevation[t] - cfg.SeaLevel - 0.5)
		}
	}

	order := make([]int, T)
	for t := range order {
		order[t] = t
	}
	sort.SliceStable(order, func(i, j int) bool {
		if elevation[order[i]] != elevation[order[j]] {
			return elevation[order[i]] > elevation[order[j]]
		}
		return order[i] < order[j]
	})

	for _, t := range order {
		if mesh.Boundary[t] {
			continue
		}
		d := downslope[t]
		if d == NoTriangle {
			continue
		}
		flow[d] += flow[t]
	}

	return flow
}

// extractRivers traces downslope from every qualifying source triangle,
// stopping at a below-sea triangle, a boundary, a sink, or a would-be
// cycle (rejected), keeping paths longer than 3 and at most 100 overall.
func extractRivers(cfg MapConfig, mesh *Mesh, elevation []float64, downslope []int, flow []float64) []RiverPath {
	T := mesh.NumTriangles()

	var sources []int
	for t := 0; t < T; t++ {
		if mesh.Boundary[t] {
			continue
		}
		if elevation[t] >= cfg.SeaLevel && elevation[t] > 0.5 && flow[t] >= cfg.RiverMinFlow {
			sources = append(sources, t)
		}
	}

	var paths []RiverPath
	for _, s := range sources {
		path := []int{s}
		seen := map[int]bool{s: true}
		cur := s
		cyclic := false

		for {
			if elevation[cur] < cfg.SeaLevel || mesh.Boundary[cur] {
				break
			}
			next := downslope[cur]
			if next == NoTriangle {
				break
			}
			if seen[next] {
				cyclic = true
				break
			}
			path = append(path, next)
			seen[next] = true
			cur = next
		}

		if cyclic {
			continue
		}
		if len(path) <= 3 {
			continue
		}

		paths = append(paths, RiverPath{Triangles: path, SourceFlow: flow[s]})
	}

	sort.SliceStable(paths, func(i, j int) bool {
		return paths[i].SourceFlow > paths[j].SourceFlow
	})
	if len(paths) > 100 {
		paths = paths[:100]
	}

	return paths
}
