package huffman

import "container/heap"

// node is one node of the code tree. The branches are either both
// nil or both non-nil; if nil this is a leaf and symbol is valid.
// A placeholder leaf carries no symbol: it only exists to give a
// single-symbol input a tree of depth one.
type node struct {
	left, right *node
	weight      uint64
	symbol      byte
	placeholder bool
}

func (n *node) isLeaf() bool { return n.left == nil }

// buildTree runs the greedy minimum-weight merge over the frequency
// table and returns the root. The table must not be empty.
//
// Candidates are ordered by (weight, seq), where leaves take seq
// values in ascending symbol order and every merged node takes the
// next counter value. Equal weights therefore resolve oldest-first,
// so identical inputs always produce the identical tree shape.
func buildTree(table []frequencyEntry) *node {
	h := make(nodeHeap, 0, len(table)+1)
	seq := 0
	for _, e := range table {
		h = append(h, heapItem{node: &node{weight: e.count, symbol: e.symbol}, seq: seq})
		seq++
	}
	if len(h) == 1 {
		// A lone leaf would get a zero-length code. Add a weightless
		// placeholder so the real symbol sits at depth one.
		h = append(h, heapItem{node: &node{placeholder: true}, seq: seq})
		seq++
	}
	heap.Init(&h)

	for h.Len() > 1 {
		a := heap.Pop(&h).(heapItem)
		b := heap.Pop(&h).(heapItem)
		heap.Push(&h, heapItem{
			node: &node{
				left:   a.node,
				right:  b.node,
				weight: a.node.weight + b.node.weight,
			},
			seq: seq,
		})
		seq++
	}
	return heap.Pop(&h).(heapItem).node
}

// Min-heap of candidate nodes used during tree building.

type heapItem struct {
	node *node
	seq  int
}

type nodeHeap []heapItem

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].node.weight != h[j].node.weight {
		return h[i].node.weight < h[j].node.weight
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) {
	*h = append(*h, x.(heapItem))
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
