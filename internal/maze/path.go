package maze

import "container/heap"

// frontierItem is a queued cell. seq breaks priority ties in insertion order.
type frontierItem struct {
	cell     Cell
	priority int
	seq      int
}

// frontier is a min-heap on (priority, seq).
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]
	return it
}

// FindPath runs A* from start to goal over nav with unit step cost and the
// Manhattan heuristic. The result starts with start and ends with goal. It is
// nil when goal is unreachable or when start == goal.
//
// Equal-priority cells are expanded in the order they were queued, so the
// same grid always yields the same route.
func FindPath(start, goal Cell, nav Navigator) []Cell {
	open := &frontier{{cell: start, priority: 0, seq: 0}}
	seq := 1
	cameFrom := map[Cell]Cell{}
	costSoFar := map[Cell]int{start: 0}
	reached := false

	for open.Len() > 0 {
		current := heap.Pop(open).(frontierItem).cell
		if current == goal {
			reached = true
			break
		}

		for _, next := range nav.Neighbors(current) {
			cost := costSoFar[current] + 1
			if known, ok := costSoFar[next]; ok && cost >= known {
				continue
			}
			costSoFar[next] = cost
			cameFrom[next] = current
			heap.Push(open, frontierItem{
				cell:     next,
				priority: cost + next.Manhattan(goal),
				seq:      seq,
			})
			seq++
		}
	}

	if !reached {
		return nil
	}

	path := []Cell{goal}
	for c := goal; c != start; {
		c = cameFrom[c]
		path = append(path, c)
	}
	if len(path) <= 1 {
		return nil
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
