package main

import (
	"errors"
	"testing"

	"github.com/klever-io/klv-gas-station-go/converter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertAmount(t *testing.T) {
	t.Parallel()

	t.Run("supported conversions should work", func(t *testing.T) {
		t.Parallel()

		testCases := []struct {
			amount   string
			from     string
			to       string
			expected string
		}{
			{amount: "120.4", from: unitNative, to: unitGwei, expected: "12.04"},
			{amount: "120.4", from: unitNative, to: unitWei, expected: "12040000000"},
			{amount: "361", from: unitGwei, to: unitWei, expected: "361000000000"},
			{amount: "1000000000", from: unitWei, to: unitGwei, expected: "1"},
		}

		for _, tc := range testCases {
			result, err := convertAmount(tc.amount, tc.from, tc.to)
			require.Nil(t, err)
			assert.Equal(t, tc.expected, result.String())
		}
	})
	t.Run("negative amount should error", func(t *testing.T) {
		t.Parallel()

		_, err := convertAmount("-1", unitNative, unitWei)
		assert.True(t, errors.Is(err, converter.ErrInvalidAmount))
	})
	t.Run("unsupported conversion should error", func(t *testing.T) {
		t.Parallel()

		_, err := convertAmount("1", unitWei, unitNative)
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "unsupported conversion")
	})
}

func TestCreateWatchedPriorities(t *testing.T) {
	t.Parallel()

	t.Run("empty config should watch every priority", func(t *testing.T) {
		t.Parallel()

		watched := createWatchedPriorities(nil)
		require.Equal(t, 4, len(watched))
		assert.Equal(t, "fast", watched[0].Priority.String())
		assert.Equal(t, uint32(defaultPercentDifferenceToNotify), watched[0].PercentDifferenceToNotify)
	})
}
