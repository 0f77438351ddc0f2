package huffman

import "github.com/icza/bitio"

// Archive layout:
//
//	byte 0: [4 reserved bits, must be 0][empty flag][3-bit padding count]
//
// An archive for empty input is exactly that one byte with the flag
// set. Otherwise a single MSB-first bitstream follows: the code tree
// in preorder, then the payload, then zero bits padding the final
// byte (their count is the header's padding field).
//
// Tree serialization, per node:
//
//	0                 internal node, followed by left then right subtree
//	1 p s7..s0        leaf; p=1 marks the placeholder (s written as 0
//	                  and ignored on read), p=0 a real leaf with symbol s
const (
	headerPaddingMask  = 0x07
	headerEmptyFlag    = 0x08
	headerReservedMask = 0xf0

	// Header byte, 21 tree bits for the smallest two-leaf tree, and
	// at least one payload bit.
	minArchiveLen = 4

	// A valid tree holds at most 256 real leaves plus the
	// placeholder; anything deeper or wider is rejected before the
	// recursion can chase it further.
	maxTreeDepth  = 256
	maxTreeLeaves = 257
)

// serializedTreeBits is the exact size of a serialized tree with the
// given leaf count: one discriminator bit for each of the 2n-1 nodes
// plus nine bits per leaf.
func serializedTreeBits(leaves int) int64 {
	return 11*int64(leaves) - 1
}

func writeTree(w *bitio.Writer, n *node) {
	if n.isLeaf() {
		w.TryWriteBool(true)
		w.TryWriteBool(n.placeholder)
		if n.placeholder {
			w.TryWriteBits(0, 8)
		} else {
			w.TryWriteBits(uint64(n.symbol), 8)
		}
		return
	}
	w.TryWriteBool(false)
	writeTree(w, n.left)
	writeTree(w, n.right)
}

// readTree reconstructs the code tree from the head of the bitstream,
// validating structure as it parses. Every malformed shape — bit
// budget exhausted mid-tree, a leaf for a root, duplicate symbols,
// more than one placeholder, impossible depth or width — is a
// FormatError.
func readTree(br *bitReader) (*node, error) {
	p := &treeParser{br: br}
	root, err := p.parseNode(0)
	if err != nil {
		return nil, err
	}
	if root.isLeaf() {
		return nil, FormatError("code tree root is a leaf")
	}
	return root, nil
}

type treeParser struct {
	br             *bitReader
	leaves         int
	hasPlaceholder bool
	seen           [256]bool
}

func (p *treeParser) parseNode(depth int) (*node, error) {
	if depth > maxTreeDepth {
		return nil, FormatError("code tree too deep")
	}
	isLeaf, err := p.br.readBool()
	if err != nil {
		return nil, err
	}

	if !isLeaf {
		left, err := p.parseNode(depth + 1)
		if err != nil {
			return nil, err
		}
		right, err := p.parseNode(depth + 1)
		if err != nil {
			return nil, err
		}
		return &node{left: left, right: right}, nil
	}

	p.leaves++
	if p.leaves > maxTreeLeaves {
		return nil, FormatError("too many leaves in code tree")
	}
	placeholder, err := p.br.readBool()
	if err != nil {
		return nil, err
	}
	sym, err := p.br.readBits(8)
	if err != nil {
		return nil, err
	}
	if placeholder {
		if p.hasPlaceholder {
			return nil, FormatError("more than one placeholder leaf")
		}
		p.hasPlaceholder = true
		return &node{placeholder: true}, nil
	}
	if p.seen[sym] {
		return nil, FormatError("duplicate symbol in code tree")
	}
	p.seen[sym] = true
	return &node{symbol: byte(sym)}, nil
}
