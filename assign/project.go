package assign

// project maps the solved padded matching back onto the caller's original
// rows×cols window.
//
// rowOf[j] = row matched to padded column j. For every real row i < rows,
// the result holds the real column it was matched to, or Unassigned when
// its partner was a padding column (j >= cols). Padding rows (i >= rows,
// present when cols > rows) are dropped entirely.
//
// Complexity: O(size).
func project(rowOf []int, rows, cols int) []int {
	result := make([]int, rows)
	for i := range result {
		result[i] = Unassigned
	}
	for j, i := range rowOf {
		if i < rows && j < cols {
			result[i] = j
		}
	}

	return result
}
