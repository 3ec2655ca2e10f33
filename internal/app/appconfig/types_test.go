package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileSpecsDecode(t *testing.T) {
	var specs ProfileSpecs
	require.NoError(t, specs.Decode("Subuh:0.95:0.15, Dhuha:0.6:0.2"))
	assert.Equal(t, ProfileSpecs{
		{Name: "Subuh", BaseRate: 0.95, WeekendPenalty: 0.15},
		{Name: "Dhuha", BaseRate: 0.6, WeekendPenalty: 0.2},
	}, specs)

	require.NoError(t, specs.Decode(""))
	assert.Empty(t, specs)

	assert.Error(t, specs.Decode("Subuh:0.95"))
	assert.Error(t, specs.Decode("Subuh:1.5:0.1"))
	assert.Error(t, specs.Decode("Subuh:abc:0.1"))
}
