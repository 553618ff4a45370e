package famrisk

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// Pedigree summarizes one family by the number of relatives known to be
// affected and the number of relatives whose affection status is known.
type Pedigree struct {
	Affected int
	Known    int
}

// Validate reports an InvalidInput error if the counts are negative or more
// relatives are affected than have a known status.
func (p Pedigree) Validate() error {
	if p.Affected < 0 || p.Known < 0 {
		return newError(InvalidInput, pfx.Err(fmt.Errorf("Counts must be non-negative, got %d affected of %d", p.Affected, p.Known)))
	}
	if p.Affected > p.Known {
		return newError(InvalidInput, pfx.Err(fmt.Errorf("%d affected exceeds the %d relatives with known status", p.Affected, p.Known)))
	}

	return nil
}

// PedigreesFromCounts pairs up parallel slices of affected and known counts.
func PedigreesFromCounts(m, k []int) ([]Pedigree, error) {
	if len(m) != len(k) {
		return nil, newError(InvalidInput, pfx.Err(fmt.Errorf("Got %d affected counts but %d known counts", len(m), len(k))))
	}

	peds := make([]Pedigree, 0, len(m))
	for i := range m {
		ped := Pedigree{Affected: m[i], Known: k[i]}
		if err := ped.Validate(); err != nil {
			return nil, newError(kindOf(err), pfx.Err(fmt.Errorf("Pedigree %d: %w", i, cause(err))))
		}
		peds = append(peds, ped)
	}

	return peds, nil
}

// minAffected returns the smallest affected count. peds must not be empty.
func minAffected(peds []Pedigree) int {
	lowest := peds[0].Affected
	for _, ped := range peds[1:] {
		if ped.Affected < lowest {
			lowest = ped.Affected
		}
	}
	return lowest
}

func validateProbability(name string, p float64) error {
	if !(p >= 0 && p <= 1) {
		return newError(InvalidInput, pfx.Err(fmt.Errorf("%s must lie in [0, 1], got %v", name, p)))
	}
	return nil
}
