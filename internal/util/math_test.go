package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundFloat64(t *testing.T) {
	assert.Equal(t, 66.7, RoundFloat64(66.6666, 1))
	assert.Equal(t, 33.3, RoundFloat64(33.3333, 1))
	assert.Equal(t, 0.0, RoundFloat64(0, 1))

	// ties go to the even digit
	assert.Equal(t, 6.2, RoundFloat64(6.25, 1))
	assert.Equal(t, 31.2, RoundFloat64(31.25, 1))
	assert.Equal(t, 43.8, RoundFloat64(43.75, 1))
	assert.Equal(t, 2.0, RoundFloat64(2.5, 0))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(0, 0))
	assert.Equal(t, 66.7, Percentage(2, 3))
	assert.Equal(t, 100.0, Percentage(4, 4))
	assert.Equal(t, 6.2, Percentage(1, 16))
	assert.Equal(t, 31.2, Percentage(5, 16))
	assert.Equal(t, 18.8, Percentage(3, 16))
}
