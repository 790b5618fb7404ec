// Package matrix provides the table storage used by the alignment engine.
//
// Two layouts are offered:
//
//   - Dense — a row-major rows×cols table holding every cell. Used by the
//     unconstrained DTW, whose memory is O(I·U).
//   - Band  — a Sakoe–Chiba corridor that only stores cells with
//     |row − col| ≤ width. Reads outside the corridor return the fill value
//     the band was created with, so a dynamic program can treat them as
//     "unreached" without bounds checks. Memory is O(rows·(2·width+1)).
//
// Both types are generic over the cell type: the engine keeps accumulated
// costs in a float64 table and predecessor steps in a small integer table.
//
//	acc, _ := matrix.NewBand[float64](rows, cols, w, 1e9)
//	lo, cells := acc.Span(i) // in-band cells of row i start at column lo
//
// Tables are not safe for concurrent mutation; the engine owns each table
// exclusively for the duration of a single call.
package matrix
