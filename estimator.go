package famrisk

import (
	"fmt"
	"math"

	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/floats"
)

// curvatureStep is the half-width of the central difference used for the
// observed information.
const curvatureStep = 1e-4

// EstimatePenetrance returns the maximum likelihood estimate of the
// probability that a relative of a proband is affected with the familial form
// of the disease. m[i] and k[i] are the affected and known counts of pedigree
// i. Every pedigree is assumed to have entered the sample because it had at
// least r affected relatives, and the likelihood is conditioned on that.
func EstimatePenetrance(m, k []int, r int) (float64, error) {
	peds, err := PedigreesFromCounts(m, k)
	if err != nil {
		return math.NaN(), err
	}

	est, err := EstimatePenetranceWithOptions(peds, r, DefaultOptions())
	if err != nil {
		return math.NaN(), err
	}

	return est.P, nil
}

// EstimatePenetranceWithOptions is EstimatePenetrance with control over the
// optimizer, returning the full Estimate.
func EstimatePenetranceWithOptions(peds []Pedigree, r int, opts Options) (*Estimate, error) {
	if err := validateAscertainedSample(peds, r); err != nil {
		return nil, err
	}

	nll := func(p float64) float64 {
		return NegLogLikelihood(peds, r, p)
	}

	fit, err := Minimize(nll, 0, 1, opts)
	if err != nil {
		return nil, err
	}

	return &Estimate{
		P:                fit.X,
		NegLogLikelihood: fit.F,
		StdErr:           standardError(nll, fit.X, fit.F),
		Iterations:       fit.Iterations,
		Evaluations:      fit.Evaluations,
		Method:           opts.Method,
	}, nil
}

// NegLogLikelihood is the negative log of the ascertainment-corrected
// likelihood of peds at per-relative risk p: each pedigree contributes
// Binomial(m; k, p) / P(X >= r). It is +Inf wherever the likelihood of any
// pedigree is 0 or undefined, e.g., at p = 0 when r > 0. Inputs are not
// validated.
func NegLogLikelihood(peds []Pedigree, r int, p float64) float64 {
	contributions := make([]float64, len(peds))
	for i, ped := range peds {
		c := BinomialLogTail(r, ped.Known, p) - BinomialLogProb(ped.Affected, ped.Known, p)
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return math.Inf(1)
		}
		contributions[i] = c
	}

	return floats.Sum(contributions)
}

func validateAscertainedSample(peds []Pedigree, r int) error {
	if len(peds) == 0 {
		return newError(InvalidInput, pfx.Err(fmt.Errorf("At least one pedigree is required")))
	}

	for i, ped := range peds {
		if err := ped.Validate(); err != nil {
			return newError(kindOf(err), pfx.Err(fmt.Errorf("Pedigree %d: %w", i, cause(err))))
		}
		if ped.Known == 0 {
			return newError(InvalidInput, pfx.Err(fmt.Errorf("Pedigree %d has no relatives with known status", i)))
		}
	}

	if r < 0 {
		return newError(InvalidInput, pfx.Err(fmt.Errorf("Ascertainment threshold must be non-negative, got %d", r)))
	}
	if lowest := minAffected(peds); r > lowest {
		return newError(InvalidInput, pfx.Err(fmt.Errorf("Ascertainment threshold %d exceeds the smallest affected count %d in the sample", r, lowest)))
	}

	return nil
}

func standardError(nll func(float64) float64, p, fp float64) float64 {
	if p-curvatureStep <= 0 || p+curvatureStep >= 1 {
		return math.NaN()
	}

	curvature := (nll(p+curvatureStep) - 2*fp + nll(p-curvatureStep)) / (curvatureStep * curvatureStep)
	if math.IsNaN(curvature) || math.IsInf(curvature, 0) || curvature <= 0 {
		return math.NaN()
	}

	return 1 / math.Sqrt(curvature)
}
