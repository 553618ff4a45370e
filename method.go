package famrisk

// Method selects the bounded univariate search used by Minimize
type Method uint32

const (
	// Brent combines golden section steps with parabolic interpolation.
	Brent Method = iota
	// GoldenSection shrinks the bracket by the golden ratio at every step.
	GoldenSection
)

func (m Method) String() string {
	switch m {
	case Brent:
		return "Brent"
	case GoldenSection:
		return "GoldenSection"

	default:
		return "Illegal selection"
	}
}

// Options configures the optimizer. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	Method Method

	// Tolerance is the absolute precision requested on the argument.
	Tolerance float64

	// MaxIterations bounds the number of bracket-shrinking steps.
	MaxIterations int
}

// DefaultOptions selects Brent's method with a 1e-8 tolerance and a budget of
// 500 iterations.
func DefaultOptions() Options {
	return Options{
		Method:        Brent,
		Tolerance:     1e-8,
		MaxIterations: 500,
	}
}
