package famrisk

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	_, err := SegregationProbabilities(3, 2, 0.2, 0.05, 0.1, 0)

	var e *Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, InvalidInput, e.Kind)

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrNotConverged))
	assert.False(t, errors.Is(err, ErrUndefined))

	// The kind survives further wrapping by callers.
	wrapped := fmt.Errorf("pedigree 12: %w", err)
	assert.True(t, errors.Is(wrapped, ErrInvalidInput))

	assert.True(t, strings.HasPrefix(err.Error(), "invalid input: "))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "invalid input", InvalidInput.String())
	assert.Equal(t, "not converged", NotConverged.String())
	assert.Equal(t, "undefined result", Undefined.String())
	assert.Equal(t, "Illegal selection", Kind(0).String())
	assert.Equal(t, "not converged", ErrNotConverged.Error())
}

func TestErrorKindNamedOnce(t *testing.T) {
	_, err := PedigreesFromCounts([]int{2, 5}, []int{9, 4})
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, 1, strings.Count(err.Error(), InvalidInput.String()), err.Error())
	assert.Contains(t, err.Error(), "Pedigree 1")

	_, err = EstimatePenetranceWithOptions([]Pedigree{{2, 9}, {-1, 4}}, 0, DefaultOptions())
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, 1, strings.Count(err.Error(), InvalidInput.String()), err.Error())

	_, err = SegregationForPedigrees([]Pedigree{{2, 9}, {3, 2}}, 0.2, 0.05, 0.1, 0)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, 1, strings.Count(err.Error(), InvalidInput.String()), err.Error())

	_, err = SegregationForPedigrees([]Pedigree{{2, 9}}, 1, 0.05, 0.1, 0)
	assert.True(t, errors.Is(err, ErrUndefined))
	assert.False(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, 1, strings.Count(err.Error(), Undefined.String()), err.Error())
}
