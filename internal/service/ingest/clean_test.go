package ingest

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	cases := []struct {
		input       string
		placeholder string
		want        string
	}{
		{"  Acme  ", "Unknown", "Acme"},
		{"", "Unknown", "Unknown"},
		{"   ", "Unknown", "Unknown"},
		{"nan", "Unknown", "Unknown"},
		{"None", "Unknown", "Unknown"},
		{"NaN", "Unknown", "Unknown"},
		{"<NA>", "Unknown", "Unknown"},
		{"N/A", "Unknown", "Unknown"},
		{" Acme ", "Unknown", "Acme"},
		{"", "", ""},
		{"none", "Unknown", "none"}, // token list is case-sensitive
	}
	for _, c := range cases {
		got := CleanText(c.input, c.placeholder)
		if got != c.want {
			t.Errorf("CleanText(%q, %q) = %q, want %q", c.input, c.placeholder, got, c.want)
		}
	}
}

func TestCleanDate_DayFirstFormats(t *testing.T) {
	t.Parallel()
	want := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{
		"31.12.2024",
		"31/12/2024",
		"31-12-2024",
		"2024-12-31",
		" 31.12.2024 ",
		"31.12.2024 14:30",
		" 31.12.2024",
	} {
		got := CleanDate(input)
		require.NotNilf(t, got, "CleanDate(%q) returned nil", input)
		assert.Truef(t, got.Equal(want), "CleanDate(%q) = %v, want %v", input, got, want)
	}
}

func TestCleanDate_UnparseableIsMissing(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"",
		"nan",
		"None",
		"not a date",
		"99.99.2024",
		"123",    // number below the serial plausibility range
		"75000",  // number above the serial plausibility range
		"-45292", // negative day count
	} {
		assert.Nilf(t, CleanDate(input), "CleanDate(%q) should be missing", input)
	}
}

func TestCleanDate_SerialFallback(t *testing.T) {
	t.Parallel()

	// 45292 days after 1899-12-30 is 2024-01-01.
	got := CleanDate("45292")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), *got)

	// 32874 is 1990-01-01.
	got = CleanDate("32874")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC), *got)
}

func TestSerialRoundTrip(t *testing.T) {
	t.Parallel()

	for _, serial := range []int{20000, 32874, 45292, 59999, 60000} {
		parsed := CleanDate(fmt.Sprintf("%d", serial))
		require.NotNilf(t, parsed, "serial %d should parse", serial)
		assert.Equal(t, serial, DateToSerial(*parsed), "serial %d did not round-trip", serial)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"31.12.2024", "01.03.2024", "29.02.2024"} {
		parsed := CleanDate(input)
		require.NotNilf(t, parsed, "CleanDate(%q) returned nil", input)
		assert.Equal(t, input, FormatDate(*parsed))
	}
}
