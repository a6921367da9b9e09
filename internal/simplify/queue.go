package simplify

import "container/heap"

// scoredIndex is one priority-queue entry: the index of a candidate vertex
// and the importance score it was pushed with. A popped entry is always
// re-checked against a freshly computed score before it is trusted, since
// earlier removals may have changed its neighbors.
type scoredIndex struct {
	index int
	score float64
}

// removalQueue is a min-heap ordered ascending by (score, index), so that
// ties between equally important vertices always resolve in index order.
// This ordering is a hard contract: it fixes the outcome when several
// vertices share a score.
type removalQueue []scoredIndex

func (q removalQueue) Len() int { return len(q) }

func (q removalQueue) Less(i, j int) bool {
	if q[i].score != q[j].score {
		return q[i].score < q[j].score
	}
	return q[i].index < q[j].index
}

func (q removalQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *removalQueue) Push(x any) {
	*q = append(*q, x.(scoredIndex))
}

func (q *removalQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

var _ heap.Interface = (*removalQueue)(nil)
