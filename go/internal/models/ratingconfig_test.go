package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingConfigRoundTrip(t *testing.T) {
	cfg := ModifiedEloConfig{K: 32, AbsenteeDemerit: 5}

	data, err := MarshalRatingConfig(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"MODIFIED_ELO","k":32,"absenteeDemerit":5}`, string(data))

	decoded, err := UnmarshalRatingConfig(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, decoded)
	assert.Equal(t, RankingLogicModifiedElo, decoded.RankingLogic())
}

func TestMarshalRatingConfigNil(t *testing.T) {
	data, err := MarshalRatingConfig(nil)
	require.NoError(t, err)
	assert.Nil(t, data)

	var ptr *ModifiedEloConfig
	data, err = MarshalRatingConfig(ptr)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestUnmarshalRatingConfigEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "null", " null "} {
		cfg, err := UnmarshalRatingConfig([]byte(in))
		require.NoError(t, err, "input %q", in)
		assert.Nil(t, cfg, "input %q", in)
	}
}

func TestUnmarshalRatingConfigMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"truncated", `{"type":"MODIFIED_ELO","k":`},
		{"not an object", `[1,2,3]`},
		{"missing type", `{"k":32,"absenteeDemerit":5}`},
		{"unknown type", `{"type":"GLICKO","k":32}`},
		{"wrong field type", `{"type":"MODIFIED_ELO","k":"thirty-two"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := UnmarshalRatingConfig([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedRatingConfig)
			assert.Nil(t, cfg)

			// Same input, same failure.
			_, again := UnmarshalRatingConfig([]byte(tt.input))
			assert.Equal(t, err.Error(), again.Error())
		})
	}
}
