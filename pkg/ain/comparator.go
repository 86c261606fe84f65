package ain

import "github.com/ainkit/ainviz/pkg/errors"

// Comparator is the externally supplied preference-degree capability.
//
// Degree(a, b) returns a scalar in [0, 1] expressing the degree (typically a
// dominance probability) to which a exceeds b. The product
// Degree(a, b) * Degree(b, a) is used as an edge weight by the relation
// graph builder; zero means "no ambiguity, no edge".
type Comparator interface {
	Degree(a, b AIN) float64
}

// ComparatorFunc adapts a plain function to the Comparator interface.
type ComparatorFunc func(a, b AIN) float64

// Degree calls f(a, b).
func (f ComparatorFunc) Degree(a, b AIN) float64 { return f(a, b) }

// MatrixComparator serves precomputed directional preference degrees for a
// fixed collection. Entry [i][j] is the degree to which element i exceeds
// element j. It identifies AINs by value, so the collection must not contain
// duplicate intervals with different intended degrees.
type MatrixComparator struct {
	index   map[AIN]int
	degrees [][]float64
}

// NewMatrixComparator builds a comparator from a collection and its degree
// matrix. The matrix must be square with one row per element and all entries
// in [0, 1]; violations return an INVALID_INPUT error.
func NewMatrixComparator(ains []AIN, degrees [][]float64) (*MatrixComparator, error) {
	if len(degrees) != len(ains) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "degree matrix has %d rows for %d elements", len(degrees), len(ains))
	}
	for i, row := range degrees {
		if len(row) != len(ains) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "degree matrix row %d has %d entries, want %d", i, len(row), len(ains))
		}
		for j, d := range row {
			if d < 0 || d > 1 {
				return nil, errors.New(errors.ErrCodeInvalidInput, "degree [%d][%d] = %v outside [0, 1]", i, j, d)
			}
		}
	}
	index := make(map[AIN]int, len(ains))
	for i, a := range ains {
		index[a] = i
	}
	return &MatrixComparator{index: index, degrees: degrees}, nil
}

// Degree looks up the precomputed degree for the pair. Unknown values map to
// degree 0, which yields no edge and unconditional timeline compatibility.
func (m *MatrixComparator) Degree(a, b AIN) float64 {
	i, okA := m.index[a]
	j, okB := m.index[b]
	if !okA || !okB {
		return 0
	}
	return m.degrees[i][j]
}
