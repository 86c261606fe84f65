// Package ain defines the asymmetric interval number value type and the
// comparison capability consumed by the relation graph builder and the
// timeline level packer.
//
// An AIN is a bounded quantity with a lower bound, an upper bound, and an
// expected value inside the interval. The directional preference-degree
// computation between two AINs is an external capability expressed by the
// [Comparator] interface; this package deliberately does not implement the
// numerical comparison algorithm itself. [MatrixComparator] serves degrees
// that were computed elsewhere.
package ain

import (
	"fmt"
	"math"

	"github.com/ainkit/ainviz/pkg/errors"
)

// AIN is an asymmetric interval number: an interval [Lower, Upper] with an
// expected value Expected inside it. Values are immutable once constructed.
type AIN struct {
	Lower    float64
	Upper    float64
	Expected float64
}

// New creates an AIN with the expected value defaulting to the interval
// midpoint. Returns an INVALID_INPUT error if the bounds are not finite or
// lower > upper.
func New(lower, upper float64) (AIN, error) {
	return NewWithExpected(lower, upper, (lower+upper)/2)
}

// NewWithExpected creates an AIN with an explicit expected value.
// The expected value must lie within [lower, upper].
func NewWithExpected(lower, upper, expected float64) (AIN, error) {
	a := AIN{Lower: lower, Upper: upper, Expected: expected}
	if err := a.Validate(); err != nil {
		return AIN{}, err
	}
	return a, nil
}

// MustNew is like New but panics on invalid bounds.
// Intended for tests and literals with known-good values.
func MustNew(lower, upper float64) AIN {
	a, err := New(lower, upper)
	if err != nil {
		panic(err)
	}
	return a
}

// Validate checks the AIN invariant: finite bounds with
// Lower <= Expected <= Upper. Returns an INVALID_INPUT error on violation.
func (a AIN) Validate() error {
	for _, v := range []float64{a.Lower, a.Upper, a.Expected} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New(errors.ErrCodeInvalidInput, "interval values must be finite, got [%v, %v]_{%v}", a.Lower, a.Upper, a.Expected)
		}
	}
	if a.Lower > a.Upper {
		return errors.New(errors.ErrCodeInvalidInput, "lower bound %v exceeds upper bound %v", a.Lower, a.Upper)
	}
	if a.Expected < a.Lower || a.Expected > a.Upper {
		return errors.New(errors.ErrCodeInvalidInput, "expected value %v outside [%v, %v]", a.Expected, a.Lower, a.Upper)
	}
	return nil
}

// String renders the interval in the form "[l, u]_{e}" with four decimal
// places, the display form used by graph summaries.
func (a AIN) String() string {
	return fmt.Sprintf("[%.4f, %.4f]_{%.4f}", a.Lower, a.Upper, a.Expected)
}

// Touches reports whether the two intervals share exactly a boundary point.
// Touching intervals may not share a timeline level even when their
// preference degrees do not overlap.
func (a AIN) Touches(b AIN) bool {
	return a.Upper == b.Lower || a.Lower == b.Upper
}

// ValidateAll checks every element of a collection, failing fast on the
// first invalid one. The relation graph builder calls this before any graph
// state is built.
func ValidateAll(ains []AIN) error {
	for i, a := range ains {
		if err := a.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "all elements must be valid interval numbers (element %d)", i)
		}
	}
	return nil
}
