// Package huffman implements a lossless byte-oriented compressor
// based on static Huffman coding.
//
// Every archive is self-contained: the code tree built from the
// input's byte frequencies is serialized into the archive ahead of
// the bit-packed payload, so decoding needs no state beyond the
// archive itself. Tree construction breaks weight ties
// deterministically, which makes Compress reproducible down to the
// byte.
package huffman

import (
	"bytes"

	"github.com/icza/bitio"
)

// FormatError reports that the input to Decompress is not a
// well-formed archive.
type FormatError string

func (e FormatError) Error() string { return string(e) }

// Compress encodes input and returns the archive. It never fails;
// every byte sequence, including an empty one, has an archive.
// The result for an empty input is still non-empty because the
// archive header must be present.
func Compress(input []byte) []byte {
	table := countFrequencies(input)
	if len(table) == 0 {
		return []byte{headerEmptyFlag}
	}

	root := buildTree(table)
	codes := buildCodeTable(root)

	leaves := len(table)
	if leaves == 1 {
		leaves = 2 // placeholder leaf
	}
	totalBits := serializedTreeBits(leaves)
	for _, e := range table {
		totalBits += int64(e.count) * int64(codes[e.symbol].length)
	}
	padding := byte((8 - totalBits%8) % 8)

	var buf bytes.Buffer
	buf.Grow(int(totalBits/8) + 2)
	buf.WriteByte(padding)

	w := bitio.NewWriter(&buf)
	writeTree(w, root)
	for _, b := range input {
		c := codes[b]
		w.TryWriteBits(c.pattern, c.length)
	}
	// The output sink is an in-memory buffer; Close only flushes the
	// final partial byte, zero-padded in its low-order bits.
	w.Close()
	return buf.Bytes()
}

// Decompress decodes an archive produced by Compress and returns the
// original bytes. It returns a FormatError if the archive fails
// structural validation.
func Decompress(archive []byte) ([]byte, error) {
	if len(archive) == 0 {
		return nil, FormatError("empty input is not an archive")
	}
	header := archive[0]
	if header&headerReservedMask != 0 {
		return nil, FormatError("reserved header bits set")
	}
	padding := int64(header & headerPaddingMask)
	if header&headerEmptyFlag != 0 {
		if padding != 0 || len(archive) != 1 {
			return nil, FormatError("malformed empty-input archive")
		}
		return []byte{}, nil
	}
	if len(archive) < minArchiveLen {
		return nil, FormatError("archive too short to hold a code tree")
	}

	br := newBitReader(bytes.NewReader(archive[1:]), int64(len(archive)-1)*8-padding)
	root, err := readTree(br)
	if err != nil {
		return nil, err
	}
	if br.remaining == 0 {
		return nil, FormatError("archive has a code tree but no payload")
	}

	out := make([]byte, 0, len(archive)*2)
	node := root
	for br.remaining > 0 {
		right, err := br.readBool()
		if err != nil {
			return nil, err
		}
		if right {
			node = node.right
		} else {
			node = node.left
		}
		if node.isLeaf() {
			if !node.placeholder {
				out = append(out, node.symbol)
			}
			node = root
		}
	}
	if node != root {
		return nil, FormatError("payload ends inside a code word")
	}
	return out, nil
}
