// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Band stores the cells of a rows×cols table that lie inside a Sakoe–Chiba
// corridor |row − col| ≤ width. Every other cell reads as fill.
//
// Layout: each row owns a slot block of 2·width+1 entries; column col of row
// row lives at slot col − (row − width). Slots that fall left of column 0 or
// right of cols−1 are allocated but never exposed.
type Band[T any] struct {
	r, c, w int
	stride  int // 2*w + 1
	fill    T
	data    []T
}

// NewBand creates a band table of the given shape with every stored cell set
// to fill. A width ≥ max(rows, cols) is clamped, since such a band already
// covers the whole table.
// Complexity: O(rows·width) time and memory.
func NewBand[T any](rows, cols, width int, fill T) (*Band[T], error) {
	if rows <= 0 || cols <= 0 || width < 0 {
		return nil, fmt.Errorf("NewBand(%d,%d,%d): %w", rows, cols, width, ErrInvalidDimensions)
	}
	if limit := max(rows, cols); width > limit {
		width = limit
	}
	stride := 2*width + 1
	data := make([]T, rows*stride)
	for i := range data {
		data[i] = fill
	}

	return &Band[T]{r: rows, c: cols, w: width, stride: stride, fill: fill, data: data}, nil
}

// Rows returns the number of rows in the table.
func (b *Band[T]) Rows() int { return b.r }

// Cols returns the number of columns in the table.
func (b *Band[T]) Cols() int { return b.c }

// Width returns the (possibly clamped) band half-width.
func (b *Band[T]) Width() int { return b.w }

// Lo returns the first in-band column of row, max(0, row−width).
func (b *Band[T]) Lo(row int) int { return max(0, row-b.w) }

// Hi returns the last in-band column of row, min(cols−1, row+width).
// Hi(row) < Lo(row) means the row has no in-band cell.
func (b *Band[T]) Hi(row int) int { return min(b.c-1, row+b.w) }

// InBand reports whether (row, col) is a stored cell.
func (b *Band[T]) InBand(row, col int) bool {
	if row < 0 || row >= b.r || col < 0 || col >= b.c {
		return false
	}

	return col >= b.Lo(row) && col <= b.Hi(row)
}

// At returns the value at (row, col), or fill for any cell outside the band
// or outside the table.
// Complexity: O(1).
func (b *Band[T]) At(row, col int) T {
	if !b.InBand(row, col) {
		return b.fill
	}

	return b.data[row*b.stride+col-(row-b.w)]
}

// Set assigns v at (row, col). Writes outside the band fail with ErrOutsideBand.
// Complexity: O(1).
func (b *Band[T]) Set(row, col int, v T) error {
	if !b.InBand(row, col) {
		return fmt.Errorf("Band.Set(%d,%d): %w", row, col, ErrOutsideBand)
	}
	b.data[row*b.stride+col-(row-b.w)] = v

	return nil
}

// Span returns the in-band cells of row as a slice view together with the
// column of its first element. The view is empty when the row has no in-band
// cell. Span panics if row is out of range.
func (b *Band[T]) Span(row int) (lo int, cells []T) {
	lo, hi := b.Lo(row), b.Hi(row)
	if hi < lo {
		return lo, nil
	}
	base := row*b.stride - (row - b.w)

	return lo, b.data[base+lo : base+hi+1 : base+hi+1]
}
