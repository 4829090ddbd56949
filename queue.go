package mzip

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// MergeQueue yields pending tree fragments in order of increasing weight.
// Fragments of equal weight come out in the order they were inserted.
type MergeQueue struct {
	h       fragmentHeap
	nextSeq uint64
}

// Insert adds a fragment with the given weight.
func (q *MergeQueue) Insert(fragment NodeIndex, weight uint64) {
	heap.Push(&q.h, queueEntry{weight: weight, seq: q.nextSeq, fragment: fragment})
	q.nextSeq++
}

// ExtractMin removes and returns the lightest fragment.  It must not be
// called on an empty queue.
func (q *MergeQueue) ExtractMin() (NodeIndex, uint64) {
	assert.Assertf(!q.IsEmpty(), "ExtractMin called on an empty MergeQueue")
	e := heap.Pop(&q.h).(queueEntry)
	return e.fragment, e.weight
}

// Len returns the number of pending fragments.
func (q *MergeQueue) Len() int {
	return q.h.Len()
}

// IsEmpty reports whether no fragments are pending.
func (q *MergeQueue) IsEmpty() bool {
	return q.h.Len() == 0
}

// type queueEntry + type fragmentHeap {{{

type queueEntry struct {
	weight   uint64
	seq      uint64
	fragment NodeIndex
}

type fragmentHeap struct {
	list []queueEntry
}

func (h *fragmentHeap) Len() int {
	return len(h.list)
}

func (h *fragmentHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *fragmentHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (h *fragmentHeap) Push(x interface{}) {
	h.list = append(h.list, x.(queueEntry))
}

func (h *fragmentHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = queueEntry{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*fragmentHeap)(nil)

// }}}
