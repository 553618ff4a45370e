package famrisk

import (
	"fmt"
	"math"

	"github.com/carbocation/pfx"
)

// Minimum is the outcome of a bounded search.
type Minimum struct {
	X           float64
	F           float64
	Iterations  int
	Evaluations int
}

var (
	goldenRatio = (math.Sqrt(5) - 1) / 2
	goldenStep  = (3 - math.Sqrt(5)) / 2
	sqrtEpsilon = math.Sqrt(2.220446049250313e-16)
)

// gridPoints is the number of interior probes used to find a finite region
// when the first probes of a search are all undefined.
const gridPoints = 64

// Minimize searches [lo, hi] for a minimizer of f. NaN and -Inf are not valid
// objective values and, like +Inf, are treated as "not the minimum", so f may
// be undefined on parts of the interval. If the first probes land in such a
// part, the search restarts around the best of an evenly spaced grid. A
// minimum is never reported at a point where f is undefined; that is a
// NotConverged error.
func Minimize(f func(float64) float64, lo, hi float64, opts Options) (Minimum, error) {
	if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return Minimum{}, newError(InvalidInput, pfx.Err(fmt.Errorf("Interval [%v, %v] is not a finite, non-empty interval", lo, hi)))
	}
	if !(opts.Tolerance > 0) {
		return Minimum{}, newError(InvalidInput, pfx.Err(fmt.Errorf("Tolerance must be positive, got %v", opts.Tolerance)))
	}
	if opts.MaxIterations < 1 {
		return Minimum{}, newError(InvalidInput, pfx.Err(fmt.Errorf("MaxIterations must be at least 1, got %d", opts.MaxIterations)))
	}

	obj := &objective{f: f}

	var res Minimum
	var err error
	switch opts.Method {
	case Brent:
		res, err = brent(obj, lo, hi, opts)
	case GoldenSection:
		res, err = goldenSection(obj, lo, hi, opts)
	default:
		return Minimum{}, newError(InvalidInput, pfx.Err(fmt.Errorf("Method %s is not recognized", opts.Method)))
	}
	res.Evaluations = obj.evaluations

	return res, err
}

type objective struct {
	f           func(float64) float64
	evaluations int
}

func (o *objective) eval(x float64) float64 {
	o.evaluations++
	y := o.f(x)
	if math.IsNaN(y) || math.IsInf(y, -1) {
		return math.Inf(1)
	}
	return y
}

// finiteBracket probes an evenly spaced interior grid of [a, b] and returns
// the best finite probe together with its neighbors, which bracket the
// minimum of a unimodal f. ok is false if f is undefined at every probe.
func (o *objective) finiteBracket(a, b float64) (lo, hi, best, fbest float64, ok bool) {
	step := (b - a) / (gridPoints + 1)
	fbest = math.Inf(1)
	bestIdx := -1
	for i := 1; i <= gridPoints; i++ {
		if fx := o.eval(a + float64(i)*step); fx < fbest {
			bestIdx, fbest = i, fx
		}
	}
	if bestIdx < 0 {
		return a, b, math.NaN(), fbest, false
	}

	best = a + float64(bestIdx)*step
	return best - step, best + step, best, fbest, true
}

// brent is Brent's (1973) combination of golden section steps and successive
// parabolic interpolation. The interval end points are never evaluated.
func brent(obj *objective, a, b float64, opts Options) (Minimum, error) {
	tol3 := opts.Tolerance / 3

	x := a + goldenStep*(b-a)
	fx := obj.eval(x)
	if math.IsInf(fx, 1) {
		var ok bool
		if a, b, x, fx, ok = obj.finiteBracket(a, b); !ok {
			return Minimum{X: x, F: fx}, newError(NotConverged, pfx.Err(fmt.Errorf("Objective is undefined at every probe of [%v, %v]", a, b)))
		}
	}
	w, v := x, x
	fw, fv := fx, fx

	var d, e float64
	for iter := 0; ; iter++ {
		xm := (a + b) / 2
		tol1 := sqrtEpsilon*math.Abs(x) + tol3
		t2 := 2 * tol1

		if math.Abs(x-xm) <= t2-(b-a)/2 {
			if math.IsInf(fx, 1) {
				return Minimum{X: x, F: fx, Iterations: iter}, newError(NotConverged, pfx.Err(fmt.Errorf("Brent closed on %v, where the objective is undefined", x)))
			}
			return Minimum{X: x, F: fx, Iterations: iter}, nil
		}
		if iter >= opts.MaxIterations {
			return Minimum{X: x, F: fx, Iterations: iter}, newError(NotConverged, pfx.Err(fmt.Errorf("Brent stopped after %d iterations with bracket [%v, %v]", iter, a, b)))
		}

		var p, q, r float64
		finite := !math.IsInf(fx, 1) && !math.IsInf(fw, 1) && !math.IsInf(fv, 1)
		if math.Abs(e) > tol1 && finite {
			r = (x - w) * (fx - fv)
			q = (x - v) * (fx - fw)
			p = (x-v)*q - (x-w)*r
			q = (q - r) * 2
			if q > 0 {
				p = -p
			} else {
				q = -q
			}
			r = e
			e = d
		}

		if !finite || math.Abs(p) >= math.Abs(q*r/2) || p <= q*(a-x) || p >= q*(b-x) {
			if x < xm {
				e = b - x
			} else {
				e = a - x
			}
			d = goldenStep * e
		} else {
			d = p / q
			u := x + d
			if u-a < t2 || b-u < t2 {
				d = tol1
				if x >= xm {
					d = -d
				}
			}
		}

		var u float64
		if math.Abs(d) >= tol1 {
			u = x + d
		} else if d > 0 {
			u = x + tol1
		} else {
			u = x - tol1
		}
		fu := obj.eval(u)

		// Ties only count as progress between finite values; otherwise the
		// search would drift through an undefined region.
		if fu < fx || (fu == fx && !math.IsInf(fx, 1)) {
			if u < x {
				b = x
			} else {
				a = x
			}
			v, fv = w, fw
			w, fw = x, fx
			x, fx = u, fu
			continue
		}

		if u < x {
			a = u
		} else {
			b = u
		}
		if fu <= fw || w == x {
			v, fv = w, fw
			w, fw = u, fu
		} else if fu <= fv || v == x || v == w {
			v, fv = u, fu
		}
	}
}

// goldenSection keeps two interior probes and discards the sub-interval on the
// side of the worse one. Like brent it never evaluates the end points.
func goldenSection(obj *objective, a, b float64, opts Options) (Minimum, error) {
	c := b - goldenRatio*(b-a)
	d := a + goldenRatio*(b-a)
	fc, fd := obj.eval(c), obj.eval(d)
	if math.IsInf(fc, 1) && math.IsInf(fd, 1) {
		lo, hi, _, _, ok := obj.finiteBracket(a, b)
		if !ok {
			return Minimum{X: math.NaN(), F: fc}, newError(NotConverged, pfx.Err(fmt.Errorf("Objective is undefined at every probe of [%v, %v]", a, b)))
		}
		a, b = lo, hi
		c = b - goldenRatio*(b-a)
		d = a + goldenRatio*(b-a)
		fc, fd = obj.eval(c), obj.eval(d)
	}

	for iter := 0; ; iter++ {
		if b-a <= opts.Tolerance {
			x, fx := c, fc
			if fd < fc {
				x, fx = d, fd
			}
			if math.IsInf(fx, 1) {
				return Minimum{X: x, F: fx, Iterations: iter}, newError(NotConverged, pfx.Err(fmt.Errorf("Golden section closed on %v, where the objective is undefined", x)))
			}
			return Minimum{X: x, F: fx, Iterations: iter}, nil
		}
		if iter >= opts.MaxIterations {
			x, fx := c, fc
			if fd < fc {
				x, fx = d, fd
			}
			return Minimum{X: x, F: fx, Iterations: iter}, newError(NotConverged, pfx.Err(fmt.Errorf("Golden section stopped after %d iterations with bracket [%v, %v]", iter, a, b)))
		}

		if fc <= fd {
			b, d, fd = d, c, fc
			c = b - goldenRatio*(b-a)
			fc = obj.eval(c)
		} else {
			a, c, fc = c, d, fd
			d = a + goldenRatio*(b-a)
			fd = obj.eval(d)
		}
	}
}
