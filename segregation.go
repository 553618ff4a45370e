package famrisk

import (
	"errors"
	"fmt"
	"math"

	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/floats"
)

// SegregationProbabilities computes, for a pedigree with m of k relatives
// affected, the probability of that observation under the familial and the
// sporadic models, the posterior probability that the pedigree is familial
// given the prior priorF, and the probability that at least m-r of the m
// cases are familial.
//
// Under the familial model, j of the cases are familial (rate pf among all k
// relatives) and the other m-j are sporadic (rate pr among the remaining k-j).
//
// If the familial model assigns the observation zero probability, the result
// is returned with NaN in place of the 0/0 quantities together with an error
// of kind Undefined. Callers that only want defined results should check
// errors.Is(err, ErrUndefined) or (*FamilialDiseaseResult).Defined.
func SegregationProbabilities(m, k int, pf, pr, priorF float64, r int) (*FamilialDiseaseResult, error) {
	if err := validateSegregationInput(m, k, pf, pr, priorF, r); err != nil {
		return nil, err
	}

	// terms[j] = P(j familial cases, m-j sporadic cases)
	terms := make([]float64, m+1)
	for j := range terms {
		terms[j] = BinomialProb(j, k, pf) * BinomialProb(m-j, k-j, pr)
	}

	out := &FamilialDiseaseResult{
		MProb: floats.Sum(terms),
		RProb: BinomialProb(m, k, pr),
	}

	evidence := out.MProb*priorF + out.RProb*(1-priorF)
	if evidence > 0 {
		out.ProbFamilial = out.MProb * priorF / evidence
	} else {
		out.ProbFamilial = math.NaN()
	}

	if out.MProb > 0 {
		out.AllFamilial = floats.Sum(terms[m-r:]) / out.MProb
	} else {
		out.AllFamilial = math.NaN()
	}

	if !out.Defined() {
		return out, newError(Undefined, pfx.Err(fmt.Errorf("%d of %d affected has probability %v under the familial model (pf=%v, pr=%v)", m, k, out.MProb, pf, pr)))
	}

	return out, nil
}

// SegregationForPedigrees applies SegregationProbabilities to each pedigree
// with shared parameters. Invalid input stops the batch. Undefined results are
// kept in place and the first Undefined error is returned once every pedigree
// has been computed.
func SegregationForPedigrees(peds []Pedigree, pf, pr, priorF float64, r int) ([]*FamilialDiseaseResult, error) {
	out := make([]*FamilialDiseaseResult, 0, len(peds))

	var undefined error
	for i, ped := range peds {
		res, err := SegregationProbabilities(ped.Affected, ped.Known, pf, pr, priorF, r)
		if err == nil {
			out = append(out, res)
			continue
		}

		if !errors.Is(err, ErrUndefined) {
			return nil, newError(kindOf(err), pfx.Err(fmt.Errorf("Pedigree %d: %w", i, cause(err))))
		}
		if undefined == nil {
			undefined = newError(Undefined, pfx.Err(fmt.Errorf("Pedigree %d: %w", i, cause(err))))
		}
		out = append(out, res)
	}

	return out, undefined
}

func validateSegregationInput(m, k int, pf, pr, priorF float64, r int) error {
	if err := (Pedigree{Affected: m, Known: k}).Validate(); err != nil {
		return err
	}

	for _, param := range []struct {
		name  string
		value float64
	}{
		{"pf", pf},
		{"pr", pr},
		{"priorF", priorF},
	} {
		if err := validateProbability(param.name, param.value); err != nil {
			return err
		}
	}

	if r < 0 || r > m {
		return newError(InvalidInput, pfx.Err(fmt.Errorf("r must satisfy 0 <= r <= m = %d, got %d", m, r)))
	}

	return nil
}
