package worldgen

import "container/heap"

// triItem is one entry in a triangle priority queue, ordered by ascending
// distance with ties broken by ascending triangle index — the stable
// tie-break spec.md section 5 requires so identical seeds produce
// identical traversal order.
type triItem struct {
	tri  int
	dist float64
}

// triangleHeap implements container/heap.Interface, following the
// canonical PriorityQueue/Item shape used for A* pathfinding elsewhere in
// this codebase's lineage.
type triangleHeap []triItem

func (h triangleHeap) Len() int { return len(h) }

func (h triangleHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].tri < h[j].tri
}

func (h triangleHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *triangleHeap) Push(x any) {
	*h = append(*h, x.(triItem))
}

func (h *triangleHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

var _ heap.Interface = (*triangleHeap)(nil)
