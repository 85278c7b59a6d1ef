package tree

import "math/bits"

// sparseTable answers range-minimum queries over a fixed []int in O(1) after
// an O(N log N) build, following the classic sparse-table construction
// (see <https://cp-algorithms.com/data_structures/sparse-table.html>).
// table[k][i] holds the index (into the original slice) of the minimum
// value among the 2^k elements starting at i.
type sparseTable struct {
	values []int
	table  [][]int
}

func newSparseTable(values []int) *sparseTable {
	n := len(values)
	levels := bits.Len(uint(n)) // floor(log2(n)) + 1; n must be at least 1
	table := make([][]int, levels)

	table[0] = make([]int, n)
	for i := 0; i < n; i++ {
		table[0][i] = i
	}

	for k := 1; k < levels; k++ {
		width := 1 << uint(k)
		half := width >> 1
		row := make([]int, n-width+1)
		prev := table[k-1]
		for i := 0; i+width <= n; i++ {
			left := prev[i]
			right := prev[i+half]
			if values[right] < values[left] {
				row[i] = right
			} else {
				row[i] = left
			}
		}
		table[k] = row
	}

	return &sparseTable{values: values, table: table}
}

// minIndex returns the index (into the original slice) of the minimum value
// in the half-open range [start, stop). The caller guarantees start < stop.
//
// Complexity: O(1).
func (s *sparseTable) minIndex(start, stop int) int {
	length := stop - start
	k := bits.Len(uint(length)) - 1
	width := 1 << uint(k)
	left := s.table[k][start]
	right := s.table[k][stop-width]
	if s.values[right] < s.values[left] {
		return right
	}
	return left
}
