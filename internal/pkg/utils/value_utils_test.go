package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateValueUSD(t *testing.T) {
	v, err := CalculateValueUSD("1.5", 2000)
	require.NoError(t, err)
	assert.InDelta(t, 3000.0, v, 1e-9)

	v, err = CalculateValueUSD("123", 0)
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = CalculateValueUSD("1,5", 2)
	assert.Error(t, err)
}

func TestShiftDecimals(t *testing.T) {
	assert.InDelta(t, 0.5, ShiftDecimals("500000000000000000", 18), 1e-12)
	assert.Zero(t, ShiftDecimals("", 18))
	assert.Zero(t, ShiftDecimals("junk", 18))
}
