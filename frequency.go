package huffman

type frequencyEntry struct {
	symbol byte
	count  uint64
}

// countFrequencies makes one pass over input and returns an entry per
// distinct byte, in ascending symbol order. Bytes that do not occur
// have no entry, so an empty input yields an empty table.
func countFrequencies(input []byte) []frequencyEntry {
	var counts [256]uint64
	for _, b := range input {
		counts[b]++
	}

	table := make([]frequencyEntry, 0, 256)
	for sym, count := range counts {
		if count > 0 {
			table = append(table, frequencyEntry{symbol: byte(sym), count: count})
		}
	}
	return table
}
