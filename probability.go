package famrisk

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// FamilialDiseaseResult holds the probabilities computed for one pedigree by
// SegregationProbabilities.
type FamilialDiseaseResult struct {
	MProb        float64 // P(m of k affected | familial)
	RProb        float64 // P(m of k affected | sporadic)
	ProbFamilial float64 // Posterior probability that the pedigree is familial
	AllFamilial  float64 // P(at least m-r cases are familial | m affected, familial)
}

// Defined reports whether every field is a number. When MProb is 0, the
// quantities conditioned on the familial model are 0/0 and hold NaN.
func (f *FamilialDiseaseResult) Defined() bool {
	return !math.IsNaN(f.MProb) && !math.IsNaN(f.RProb) && !math.IsNaN(f.ProbFamilial) && !math.IsNaN(f.AllFamilial)
}

// Estimate is the maximum likelihood estimate of the per-relative familial
// risk, with enough detail about the fit to judge it.
type Estimate struct {
	P                float64
	NegLogLikelihood float64

	// StdErr comes from the observed information, i.e., the curvature of the
	// negative log-likelihood at P. It is NaN when P is on (or numerically
	// next to) the boundary, or when the curvature is not positive.
	StdErr float64

	Iterations  int
	Evaluations int
	Method      Method
}

// ConfidenceInterval returns the Wald interval at the given level (e.g.,
// 0.95), clamped to [0, 1]. Both ends are NaN if StdErr is NaN or level is not
// in (0, 1).
func (e *Estimate) ConfidenceInterval(level float64) (lo, hi float64) {
	if !(level > 0 && level < 1) || math.IsNaN(e.StdErr) {
		return math.NaN(), math.NaN()
	}

	z := distuv.UnitNormal.Quantile(1 - (1-level)/2)

	return math.Max(0, e.P-z*e.StdErr), math.Min(1, e.P+z*e.StdErr)
}
