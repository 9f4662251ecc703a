package seatsearch

import "container/heap"

func pushEntry(f *frontier, e entry) { heap.Push(f, e) }

func popEntry(f *frontier) entry { return heap.Pop(f).(entry) }
