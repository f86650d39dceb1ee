package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name  string
		first int
		last  int
		count int
		want  []Block[int]
	}{
		{
			name:  "exact division",
			first: 0, last: 12, count: 3,
			want: []Block[int]{{0, 4}, {4, 8}, {8, 12}},
		},
		{
			name:  "remainder absorbed by last block",
			first: 0, last: 10, count: 3,
			want: []Block[int]{{0, 3}, {3, 6}, {6, 10}},
		},
		{
			name:  "hundred indices in seven blocks",
			first: 0, last: 100, count: 7,
			// 100/7 = 14, so six blocks of 14 and a final block of 16.
			want: []Block[int]{{0, 14}, {14, 28}, {28, 42}, {42, 56}, {56, 70}, {70, 84}, {84, 100}},
		},
		{
			name:  "empty range yields no blocks",
			first: 5, last: 5, count: 4,
			want: nil,
		},
		{
			name:  "fewer indices than blocks",
			first: 0, last: 3, count: 10,
			want: []Block[int]{{0, 1}, {1, 2}, {2, 3}},
		},
		{
			name:  "swapped bounds are normalized",
			first: 10, last: 0, count: 2,
			want: []Block[int]{{0, 5}, {5, 10}},
		},
		{
			name:  "non-positive count floored to one",
			first: 0, last: 8, count: 0,
			want: []Block[int]{{0, 8}},
		},
		{
			name:  "negative indices",
			first: -5, last: 5, count: 2,
			want: []Block[int]{{-5, 0}, {0, 5}},
		},
		{
			name:  "single index",
			first: 7, last: 8, count: 4,
			want: []Block[int]{{7, 8}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Partition(tt.first, tt.last, tt.count)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestPartitionCoverage checks that for a spread of ranges and block counts
// the blocks are contiguous, non-overlapping, and cover the range exactly.
func TestPartitionCoverage(t *testing.T) {
	ranges := [][2]int{{0, 1}, {0, 17}, {3, 100}, {-20, 13}, {0, 1000}}
	counts := []int{1, 2, 3, 7, 16, 100, 1500}

	for _, r := range ranges {
		for _, count := range counts {
			blocks := Partition(r[0], r[1], count)
			require.NotEmpty(t, blocks, "range %v count %d", r, count)
			assert.LessOrEqual(t, len(blocks), max(count, 1))

			next := r[0]
			for _, b := range blocks {
				require.Equal(t, next, b.Start, "range %v count %d", r, count)
				require.Greater(t, b.End, b.Start, "blocks must be non-empty")
				next = b.End
			}
			assert.Equal(t, r[1], next, "blocks must end exactly at last")
		}
	}
}

func TestPartitionNarrowTypeLargeCount(t *testing.T) {
	// uint8(256) wraps to zero; the count comparison must happen at full
	// width so this still takes the one-block-per-index path.
	blocks := Partition[uint8](0, 10, 256)

	require.Len(t, blocks, 10)
	for i, b := range blocks {
		assert.Equal(t, uint8(i), b.Start)
		assert.Equal(t, uint8(i+1), b.End)
	}

	blocks16 := Partition[uint16](0, 100, 1 << 16)
	require.Len(t, blocks16, 100)
	assert.Equal(t, uint16(100), blocks16[99].End)
}

func TestPartitionUnsignedType(t *testing.T) {
	blocks := Partition[uint16](0, 9, 4)

	require.Len(t, blocks, 4)
	assert.Equal(t, uint16(0), blocks[0].Start)
	assert.Equal(t, uint16(9), blocks[3].End)
	// 9/4 = 2, remainder lands in the last block.
	assert.Equal(t, uint16(2), blocks[0].Size())
	assert.Equal(t, uint16(3), blocks[3].Size())
}
