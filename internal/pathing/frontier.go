package pathing

import "container/heap"

type frontierItem struct {
	id     NodeID
	weight int
	seq    uint64
}

// frontier is a max-heap on weight. Equal weights leave in insertion order.
// pos tracks each node's heap slot so dominated nodes can be removed.
type frontier struct {
	items []frontierItem
	pos   []int
	seq   uint64
}

func (f *frontier) Len() int { return len(f.items) }

func (f *frontier) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if a.weight != b.weight {
		return a.weight > b.weight
	}
	return a.seq < b.seq
}

func (f *frontier) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
	f.pos[f.items[i].id] = i
	f.pos[f.items[j].id] = j
}

func (f *frontier) Push(x interface{}) {
	it := x.(frontierItem)
	f.track(it.id)
	f.pos[it.id] = len(f.items)
	f.items = append(f.items, it)
}

func (f *frontier) Pop() interface{} {
	old := f.items
	n := len(old)
	it := old[n-1]
	f.items = old[:n-1]
	f.pos[it.id] = -1
	return it
}

func (f *frontier) track(id NodeID) {
	for int(id) >= len(f.pos) {
		f.pos = append(f.pos, -1)
	}
}

func (f *frontier) add(id NodeID, weight int) {
	heap.Push(f, frontierItem{id: id, weight: weight, seq: f.seq})
	f.seq++
}

func (f *frontier) next() NodeID {
	return heap.Pop(f).(frontierItem).id
}

// remove drops id if it is still queued.
func (f *frontier) remove(id NodeID) {
	if int(id) >= len(f.pos) || f.pos[id] < 0 {
		return
	}
	heap.Remove(f, f.pos[id])
}
