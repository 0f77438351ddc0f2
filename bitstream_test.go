package huffman

import (
	"bytes"
	"testing"
)

func TestBitReaderBudget(t *testing.T) {
	// Two bytes of data, but only three meaningful bits.
	br := newBitReader(bytes.NewReader([]byte{0b10100000, 0xff}), 3)

	for i, want := range []bool{true, false, true} {
		got, err := br.readBool()
		if err != nil {
			t.Fatalf("bit %d: %v", i, err)
		}
		if got != want {
			t.Errorf("bit %d: got %v, want %v", i, got, want)
		}
	}
	if _, err := br.readBool(); err != errTruncated {
		t.Fatalf("read past budget: got %v, want %v", err, errTruncated)
	}
}

func TestBitReaderBudgetGroup(t *testing.T) {
	br := newBitReader(bytes.NewReader([]byte{0xab, 0xcd}), 12)
	if _, err := br.readBits(8); err != nil {
		t.Fatal(err)
	}
	if _, err := br.readBits(8); err != errTruncated {
		t.Fatalf("group past budget: got %v, want %v", err, errTruncated)
	}
}

func TestBitReaderPastData(t *testing.T) {
	// Budget larger than the underlying data must still fail cleanly.
	br := newBitReader(bytes.NewReader([]byte{0x00}), 16)
	if _, err := br.readBits(8); err != nil {
		t.Fatal(err)
	}
	if _, err := br.readBits(8); err != errTruncated {
		t.Fatalf("read past data: got %v, want %v", err, errTruncated)
	}
}

func TestBitReaderOrder(t *testing.T) {
	// Bits come out most significant first, matching the writer.
	br := newBitReader(bytes.NewReader([]byte{0xa5}), 8)
	got, err := br.readBits(8)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0xa5 {
		t.Fatalf("got %#x, want 0xa5", got)
	}
}
