package output

import (
	"github.com/james-bowman/sparse"

	"github.com/go-textenc/textenc/encoding/api"
)

// Sparse is an api.NumericOutput materializing only the cells that were
// explicitly set, in DOK (dictionary of keys) format. Never-set cells read
// as 0. The zero value is ready to use; the matrix is allocated by Reshape.
type Sparse struct {
	m *sparse.DOK
}

// Reshape implements api.NumericOutput. A table with no rows or no columns
// comes out as a nil matrix.
func (s *Sparse) Reshape(rows, cols int) {
	if rows == 0 || cols == 0 {
		s.m = nil
		return
	}
	s.m = sparse.NewDOK(rows, cols)
}

// Set implements api.NumericOutput. Zero values are skipped so they are never
// materialized.
func (s *Sparse) Set(row, col int, value float64) {
	if value == 0 {
		return
	}
	s.m.Set(row, col, value)
}

// Matrix returns the backing DOK matrix, or nil for an empty table.
func (s *Sparse) Matrix() *sparse.DOK {
	return s.m
}

// ToCSR returns the contents converted to CSR, the format most numeric
// consumers of sparse data want, or nil for an empty table.
func (s *Sparse) ToCSR() *sparse.CSR {
	if s.m == nil {
		return nil
	}
	return s.m.ToCSR()
}

var _ api.NumericOutput = (*Sparse)(nil)
