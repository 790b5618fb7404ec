// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/posealign/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_InvalidDimensions verifies that non-positive shapes are rejected.
func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[float64](0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense[int](2, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDense_AtSet checks round-trips and bounds errors on the checked accessors.
func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	assert.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrIndexOutOfBounds)
}

// TestDense_RowView verifies that Row shares storage with the table.
func TestDense_RowView(t *testing.T) {
	m, err := matrix.NewDense[int8](3, 2)
	require.NoError(t, err)

	row := m.Row(1)
	require.Len(t, row, 2)
	row[0] = 7

	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, int8(7), v)

	m.Fill(3)
	assert.Equal(t, []int8{3, 3}, m.Row(2))
	assert.Equal(t, "[3, 3]\n[3, 3]\n[3, 3]\n", m.String())
}
