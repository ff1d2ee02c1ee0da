package math

import (
	"errors"
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// MaxMatrixSize is the largest supported matrix dimension
const MaxMatrixSize = 4

var (
	// ErrSingularMatrix is returned when inverting a matrix whose determinant is exactly zero
	ErrSingularMatrix = errors.New("cannot invert matrix with determinant of 0")

	// ErrInvalidSubmatrixIndex is the panic value for an out-of-range submatrix row or column
	ErrInvalidSubmatrixIndex = errors.New("invalid submatrix index")
)

// SquareMatrix is an N×N matrix with 1 <= N <= 4, stored row-major in a fixed array.
// Only the top-left size×size block of data is meaningful.
type SquareMatrix struct {
	size int
	data [MaxMatrixSize][MaxMatrixSize]float64
}

// NewSquareMatrix creates a matrix from its rows. It panics if the rows
// do not form a square matrix of a supported size.
func NewSquareMatrix(rows ...[]float64) SquareMatrix {
	n := len(rows)
	if n < 1 || n > MaxMatrixSize {
		panic(fmt.Sprintf("unsupported matrix size %d", n))
	}
	m := SquareMatrix{size: n}
	for r, row := range rows {
		if len(row) != n {
			panic(fmt.Sprintf("row %d has %d columns, expected %d", r, len(row), n))
		}
		copy(m.data[r][:n], row)
	}
	return m
}

// Identity returns the n×n identity matrix
func Identity(n int) SquareMatrix {
	if n < 1 || n > MaxMatrixSize {
		panic(fmt.Sprintf("unsupported matrix size %d", n))
	}
	m := SquareMatrix{size: n}
	for i := 0; i < n; i++ {
		m.data[i][i] = 1
	}
	return m
}

// Size returns the matrix dimension
func (m SquareMatrix) Size() int {
	return m.size
}

// At returns the element at row, col
func (m SquareMatrix) At(row, col int) float64 {
	return m.data[row][col]
}

// Multiply returns m × other. Both matrices must have the same size.
func (m SquareMatrix) Multiply(other SquareMatrix) SquareMatrix {
	if m.size != other.size {
		panic(fmt.Sprintf("cannot multiply %dx%d by %dx%d", m.size, m.size, other.size, other.size))
	}
	result := SquareMatrix{size: m.size}
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			sum := 0.0
			for k := 0; k < m.size; k++ {
				sum += m.data[r][k] * other.data[k][c]
			}
			result.data[r][c] = sum
		}
	}
	return result
}

// Transpose swaps rows and columns
func (m SquareMatrix) Transpose() SquareMatrix {
	result := SquareMatrix{size: m.size}
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			result.data[c][r] = m.data[r][c]
		}
	}
	return result
}

// Submatrix returns a copy of m with the given row and column removed.
// Out-of-range indices panic with ErrInvalidSubmatrixIndex.
func (m SquareMatrix) Submatrix(row, col int) SquareMatrix {
	if m.size < 2 || row < 0 || row >= m.size || col < 0 || col >= m.size {
		panic(fmt.Errorf("%w: (%d, %d) for a %dx%d matrix", ErrInvalidSubmatrixIndex, row, col, m.size, m.size))
	}
	result := SquareMatrix{size: m.size - 1}
	ri := 0
	for r := 0; r < m.size; r++ {
		if r == row {
			continue
		}
		ci := 0
		for c := 0; c < m.size; c++ {
			if c == col {
				continue
			}
			result.data[ri][ci] = m.data[r][c]
			ci++
		}
		ri++
	}
	return result
}

// Minor returns the determinant of the submatrix at row, col
func (m SquareMatrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at row, col with sign (-1)^(row+col)
func (m SquareMatrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 0 {
		return minor
	}
	return -minor
}

// Determinant computes the determinant by cofactor expansion along row 0
func (m SquareMatrix) Determinant() float64 {
	switch m.size {
	case 1:
		return m.data[0][0]
	case 2:
		return m.data[0][0]*m.data[1][1] - m.data[0][1]*m.data[1][0]
	}
	det := 0.0
	for c := 0; c < m.size; c++ {
		det += m.data[0][c] * m.Cofactor(0, c)
	}
	return det
}

// IsInvertible reports whether the determinant is non-zero
func (m SquareMatrix) IsInvertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the adjugate divided by the determinant.
// A determinant of exactly 0 yields ErrSingularMatrix; there is no tolerance.
func (m SquareMatrix) Inverse() (SquareMatrix, error) {
	det := m.Determinant()
	if det == 0 {
		return SquareMatrix{}, ErrSingularMatrix
	}
	if m.size == 1 {
		return NewSquareMatrix([]float64{1 / det}), nil
	}
	result := SquareMatrix{size: m.size}
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			// transposed write builds the adjugate in place
			result.data[c][r] = m.Cofactor(r, c) / det
		}
	}
	return result, nil
}

// ApproxEqual compares two matrices element-wise within core.Epsilon
func (m SquareMatrix) ApproxEqual(other SquareMatrix) bool {
	if m.size != other.size {
		return false
	}
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			if !core.ApproxEqual(m.data[r][c], other.data[r][c]) {
				return false
			}
		}
	}
	return true
}

// String formats the matrix one row per line
func (m SquareMatrix) String() string {
	s := ""
	for r := 0; r < m.size; r++ {
		s += fmt.Sprint(m.data[r][:m.size])
		if r < m.size-1 {
			s += "\n"
		}
	}
	return s
}
