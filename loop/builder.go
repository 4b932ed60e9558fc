package loop

import (
	"container/heap"

	"github.com/katalvlaran/pipeloop/gridgraph"
	"github.com/katalvlaran/pipeloop/pipe"
)

// unvisited marks a cell that is not (yet) part of the loop.
const unvisited = -1

// Build resolves the start cell of gg (unless already resolved) and
// discovers the loop through it.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. The resolved start needs two connected neighbors (ErrOpenStart).
//  3. Every finalized cell needs exactly two loop neighbors and the loop at
//     least four cells (ErrNotCycle).
//
// Calling Build twice on the same grid yields identical loops.
func Build(gg *gridgraph.GridGraph, opts ...Option) (*Loop, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if !gg.StartResolved() {
		if err := gg.ResolveStart(ResolveStartSymbol(gg)); err != nil {
			return nil, err
		}
	}
	start := gg.Start()
	if len(gg.ConnectedNeighbors(start)) < 2 {
		return nil, &GeometryError{At: start, Err: ErrOpenStart}
	}

	r := &runner{
		gg:    gg,
		opts:  cfg,
		dist:  make([]int, gg.Width*gg.Height),
		order: make([]pipe.Point, 0, 2*(gg.Width+gg.Height)),
	}
	for i := range r.dist {
		r.dist[i] = unvisited
	}

	var err error
	switch cfg.Strategy {
	case StrategyLevelOrder:
		err = r.levelOrder(start)
	default:
		err = r.shortestPaths(start)
	}
	if err != nil {
		return nil, err
	}
	if err = r.validate(); err != nil {
		return nil, err
	}

	return &Loop{
		start: start,
		width: gg.Width,
		dist:  r.dist,
		order: r.order,
		max:   r.max,
	}, nil
}

// runner holds the mutable state for a single traversal.
type runner struct {
	gg    *gridgraph.GridGraph
	opts  Options
	dist  []int        // row-major distance, unvisited for non-members
	order []pipe.Point // finalization order
	max   int
}

func (r *runner) idx(p pipe.Point) int { return p.Row*r.gg.Width + p.Col }

// finalize records p at distance d and fires the visit hook.
func (r *runner) finalize(p pipe.Point, d int) {
	r.dist[r.idx(p)] = d
	r.order = append(r.order, p)
	if d > r.max {
		r.max = d
	}
	r.opts.OnVisit(p, d)
}

func (r *runner) cancelled() error {
	select {
	case <-r.opts.Ctx.Done():
		return r.opts.Ctx.Err()
	default:
		return nil
	}
}

// shortestPaths is Dijkstra with unit weights and lazy decrease-key: stale
// heap entries for already finalized cells are skipped when popped.
func (r *runner) shortestPaths(start pipe.Point) error {
	pq := make(cellPQ, 0, 4)
	heap.Init(&pq)
	heap.Push(&pq, &cellItem{p: start, dist: 0})

	for pq.Len() > 0 {
		if err := r.cancelled(); err != nil {
			return err
		}
		item := heap.Pop(&pq).(*cellItem)
		if r.dist[r.idx(item.p)] != unvisited {
			continue
		}
		r.finalize(item.p, item.dist)

		for _, q := range r.gg.ConnectedNeighbors(item.p) {
			if r.dist[r.idx(q)] != unvisited {
				continue
			}
			heap.Push(&pq, &cellItem{p: q, dist: item.dist + 1})
		}
	}

	return nil
}

// levelOrder walks the loop with a FIFO queue. seen marks cells at enqueue
// time so each is queued once.
func (r *runner) levelOrder(start pipe.Point) error {
	type queueItem struct {
		p    pipe.Point
		dist int
	}
	seen := make([]bool, len(r.dist))
	queue := []queueItem{{p: start}}
	seen[r.idx(start)] = true

	for len(queue) > 0 {
		if err := r.cancelled(); err != nil {
			return err
		}
		item := queue[0]
		queue = queue[1:]
		r.finalize(item.p, item.dist)

		for _, q := range r.gg.ConnectedNeighbors(item.p) {
			if i := r.idx(q); !seen[i] {
				seen[i] = true
				queue = append(queue, queueItem{p: q, dist: item.dist + 1})
			}
		}
	}

	return nil
}

// validate checks that the visited set is one simple cycle.
func (r *runner) validate() error {
	for _, p := range r.order {
		if len(r.gg.ConnectedNeighbors(p)) != 2 {
			return &GeometryError{At: p, Err: ErrNotCycle}
		}
	}
	if len(r.order) < 4 {
		return &GeometryError{At: r.order[0], Err: ErrNotCycle}
	}

	return nil
}

// cellItem is a frontier entry: a cell and its tentative distance.
type cellItem struct {
	p    pipe.Point
	dist int
}

// cellPQ is a min-heap of *cellItem ordered by dist.
type cellPQ []*cellItem

func (pq cellPQ) Len() int           { return len(pq) }
func (pq cellPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq cellPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a *cellItem.
func (pq *cellPQ) Push(x any) { *pq = append(*pq, x.(*cellItem)) }

// Pop is called by heap.Pop.
func (pq *cellPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
