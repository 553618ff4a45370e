package famrisk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPedigreesFromCounts(t *testing.T) {
	peds, err := PedigreesFromCounts([]int{2, 0, 4}, []int{9, 3, 7})
	require.NoError(t, err)
	assert.Equal(t, []Pedigree{{2, 9}, {0, 3}, {4, 7}}, peds)
	assert.Equal(t, 0, minAffected(peds))

	_, err = PedigreesFromCounts([]int{2, 3}, []int{9})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = PedigreesFromCounts([]int{2, 5}, []int{9, 4})
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "Pedigree 1")
}

func TestPedigreeValidate(t *testing.T) {
	assert.NoError(t, Pedigree{Affected: 0, Known: 0}.Validate())
	assert.NoError(t, Pedigree{Affected: 3, Known: 3}.Validate())
	assert.Error(t, Pedigree{Affected: 4, Known: 3}.Validate())
	assert.Error(t, Pedigree{Affected: -1, Known: 3}.Validate())
	assert.Error(t, Pedigree{Affected: 0, Known: -3}.Validate())
}
