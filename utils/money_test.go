package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		cents    int64
		expected string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{99, "$0.99"},
		{100, "$1.00"},
		{1800, "$18.00"},
		{6800, "$68.00"},
		{20250, "$202.50"},
		{123456, "$1,234.56"},
		{100000000, "$1,000,000.00"},
		{-1800, "-$18.00"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, FormatUSD(tc.cents), "cents %d", tc.cents)
	}
}
