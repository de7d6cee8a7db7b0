// Package output provides the fixed-shape numeric sinks encoding writes into:
// a dense matrix backed by gonum and a sparse matrix in DOK format.
package output

import (
	"gonum.org/v1/gonum/mat"

	"github.com/go-textenc/textenc/encoding/api"
)

// Dense is an api.NumericOutput writing into a gonum dense matrix. The zero
// value is ready to use; the matrix is allocated by Reshape.
type Dense struct {
	m *mat.Dense
}

// Reshape implements api.NumericOutput. Previous contents are discarded and
// every cell starts at 0. A table with no rows or no columns comes out as an
// empty matrix.
func (d *Dense) Reshape(rows, cols int) {
	if rows == 0 || cols == 0 {
		d.m = &mat.Dense{}
		return
	}
	d.m = mat.NewDense(rows, cols, nil)
}

// Set implements api.NumericOutput.
func (d *Dense) Set(row, col int, value float64) {
	d.m.Set(row, col, value)
}

// Matrix returns the backing matrix, or nil before the first Reshape.
func (d *Dense) Matrix() *mat.Dense {
	return d.m
}

var _ api.NumericOutput = (*Dense)(nil)
