package pool

// Integer is the constraint for loop index types accepted by Partition and
// the loop-parallelization helpers.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Block is one contiguous half-open sub-range [Start, End) of a partitioned
// loop.
type Block[T Integer] struct {
	Start T
	End   T
}

// Size returns the number of indices covered by the block.
func (b Block[T]) Size() T {
	return b.End - b.Start
}

// Partition splits the half-open range [first, last) into at most count
// contiguous, non-overlapping blocks that cover the range exactly.
//
// Blocks share a common size of (last-first)/count; the remainder of the
// integer division is absorbed by the final block. When the range holds
// fewer indices than count, one block is produced per index. An empty range
// yields no blocks. If last < first the two are swapped first; descending
// iteration is up to the block function, not the partitioner.
func Partition[T Integer](first, last T, count int) []Block[T] {
	if last < first {
		first, last = last, first
	}
	total := last - first
	if total == 0 {
		return nil
	}
	if count < 1 {
		count = 1
	}

	// Compare before converting count to T: for narrow index types a large
	// count would wrap (uint8(256) is 0) and poison the division.
	var size T
	n := count
	if uint64(total) < uint64(count) {
		size = 1
		n = int(total)
	} else {
		size = total / T(count)
	}

	blocks := make([]Block[T], n)
	for i := 0; i < n; i++ {
		start := first + T(i)*size
		end := start + size
		if i == n-1 {
			end = last
		}
		blocks[i] = Block[T]{Start: start, End: end}
	}
	return blocks
}
