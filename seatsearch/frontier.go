package seatsearch

// entry is one frontier record: a cell index, the costFromStart it was
// pushed with, its priority and a monotonically increasing sequence number.
type entry struct {
	idx      int
	cost     int64
	priority int64
	seq      uint64
}

// frontier is a min-heap of entries ordered by priority, then by seq.
// Equal priorities therefore pop in insertion (FIFO) order, which makes the
// returned path reproducible when several routes tie.
//
// No decrease-key: an improved cell is pushed again and the older entry
// stays in the heap.
type frontier []entry

// Len returns the number of entries in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by priority ascending, ties by insertion sequence.
func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two entries.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x, which must be an entry. Called by heap.Push.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(entry)) }

// Pop removes and returns the last entry. Called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	e := old[n-1]
	*f = old[:n-1]

	return e
}
