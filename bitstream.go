package huffman

import (
	"io"

	"github.com/icza/bitio"
)

var errTruncated = FormatError("unexpected end of archive")

// bitReader reads single bits and small bit groups under a fixed
// budget. The budget is the number of meaningful bits in the archive
// after the header byte; the padding bits of the final byte sit
// outside it. Reading past the budget, or past the underlying data,
// reports a format error instead of handing out padding as payload.
type bitReader struct {
	src       *bitio.Reader
	remaining int64
}

func newBitReader(r io.Reader, budget int64) *bitReader {
	return &bitReader{src: bitio.NewReader(r), remaining: budget}
}

func (br *bitReader) readBool() (bool, error) {
	if br.remaining < 1 {
		return false, errTruncated
	}
	b, err := br.src.ReadBool()
	if err != nil {
		return false, errTruncated
	}
	br.remaining--
	return b, nil
}

func (br *bitReader) readBits(n uint8) (uint64, error) {
	if br.remaining < int64(n) {
		return 0, errTruncated
	}
	u, err := br.src.ReadBits(n)
	if err != nil {
		return 0, errTruncated
	}
	br.remaining -= int64(n)
	return u, nil
}
