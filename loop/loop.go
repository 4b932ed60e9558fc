package loop

import "github.com/katalvlaran/pipeloop/pipe"

// Loop is the immutable result of Build: the member cells of the cycle
// through the start and their distances from it.
type Loop struct {
	start pipe.Point
	width int
	dist  []int
	order []pipe.Point
	max   int
}

func (l *Loop) at(p pipe.Point) int {
	if p.Row < 0 || p.Col < 0 || p.Col >= l.width {
		return unvisited
	}
	i := p.Row*l.width + p.Col
	if i >= len(l.dist) {
		return unvisited
	}
	return l.dist[i]
}

// Start returns the start cell.
func (l *Loop) Start() pipe.Point { return l.start }

// Len returns the number of loop cells.
func (l *Loop) Len() int { return len(l.order) }

// Contains reports whether p is a loop member.
func (l *Loop) Contains(p pipe.Point) bool { return l.at(p) != unvisited }

// Distance returns the shortest distance along the loop from the start to p.
// ok is false when p is not a member.
func (l *Loop) Distance(p pipe.Point) (dist int, ok bool) {
	d := l.at(p)
	return d, d != unvisited
}

// MaxDistance returns the distance of the farthest loop cell.
func (l *Loop) MaxDistance() int { return l.max }

// Distances returns a fresh map of every member to its distance.
func (l *Loop) Distances() map[pipe.Point]int {
	out := make(map[pipe.Point]int, len(l.order))
	for _, p := range l.order {
		out[p] = l.at(p)
	}
	return out
}

// Members returns the loop cells in row-major order.
func (l *Loop) Members() []pipe.Point {
	out := make([]pipe.Point, 0, len(l.order))
	for i, d := range l.dist {
		if d != unvisited {
			out = append(out, pipe.Point{Row: i / l.width, Col: i % l.width})
		}
	}
	return out
}

// Order returns the loop cells in the order they were finalized.
func (l *Loop) Order() []pipe.Point {
	out := make([]pipe.Point, len(l.order))
	copy(out, l.order)
	return out
}
