package huffman

// codeWord is the bit pattern assigned to one symbol. The pattern's
// length low-order bits are significant, first tree step in the
// highest of them.
type codeWord struct {
	pattern uint64
	length  uint8
}

// codeTable maps every byte value to its code word; bytes absent from
// the input keep a zero-length entry that encoding never touches.
type codeTable [256]codeWord

// buildCodeTable walks the tree depth-first, appending 0 for a left
// step and 1 for a right step, and records the accumulated path at
// every real leaf. Leaves are the only code-bearing nodes, so the
// resulting codes are prefix-free.
func buildCodeTable(root *node) *codeTable {
	var t codeTable
	assignCodes(&t, root, 0, 0)
	return &t
}

func assignCodes(t *codeTable, n *node, pattern uint64, length uint8) {
	if n.isLeaf() {
		if !n.placeholder {
			t[n.symbol] = codeWord{pattern: pattern, length: length}
		}
		return
	}
	assignCodes(t, n.left, pattern<<1, length+1)
	assignCodes(t, n.right, pattern<<1|1, length+1)
}
