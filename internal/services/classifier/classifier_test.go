package classifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRules(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		format   string
		part     string
		serial   string
		separate bool
	}{
		{"pid long", "pid.sick.com/1138661/23400015", "pid_long", "1138661", "23400015", true},
		{"pid short", "pid.sick.com/1234567", "pid_short", "1234567", "1234567", false},
		{"pid url", "http://pid.sick.com/1234567", "pid_url", "1234567", "1234567", false},
		{"composite", "104631522440725", "composite", "1046315", "22440725", true},
		{"dated", "12345672022", "dated", "1234567", "12345672022", false},
		{"dated suffix", "12345672022X", "dated_suffix", "1234567", "12345672022X", false},
		{"part only", "1234567", "part", "1234567", "1234567", false},
		{"trims whitespace", "  1234567\r\n", "part", "1234567", "1234567", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, err := Classify(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.format, code.Format)
			assert.Equal(t, tc.part, code.PartNumber)
			assert.Equal(t, tc.serial, code.SerialNumber)
			assert.Equal(t, tc.separate, code.HasSeparateSerial)
		})
	}
}

func TestClassifyRejects(t *testing.T) {
	for _, in := range []string{
		"",
		"12345",
		strings.Repeat("x", 29),
		strings.Repeat("x", 20),
		strings.Repeat("1", 27),
		"https://pid.sick.com/123456", // marker requires http://
		"1234567890123456",
	} {
		code, err := Classify(in)
		assert.ErrorIs(t, err, ErrUnrecognized, in)
		assert.Empty(t, code.PartNumber)
		assert.Empty(t, code.SerialNumber)
	}
}

func TestClassifyMatchedButMissingField(t *testing.T) {
	// 29 characters with the marker but only one slash.
	in := "0000000000000000pid.sick.com/"
	require.Len(t, in, 29)

	code, err := Classify(in)
	require.NoError(t, err)
	assert.Equal(t, "pid_long", code.Format)
	assert.Empty(t, code.PartNumber)
	assert.Empty(t, code.SerialNumber)
	assert.False(t, code.Complete())
}

func TestClassifyCountsRunes(t *testing.T) {
	code, err := Classify("ÄÖÜ1234")
	require.NoError(t, err)
	assert.Equal(t, "ÄÖÜ1234", code.PartNumber)
}

func TestClassifyWithCustomTable(t *testing.T) {
	rules := append([]Rule{{
		Name:         "lot",
		Length:       9,
		Marker:       "L-",
		PartNumber:   head(2),
		SerialNumber: tail(7),
	}}, Rules...)

	code, err := ClassifyWith(rules, "L-ABC1234")
	require.NoError(t, err)
	assert.Equal(t, "lot", code.Format)
	assert.Equal(t, "ABC1234", code.SerialNumber)

	_, err = Classify("L-ABC1234")
	assert.ErrorIs(t, err, ErrUnrecognized)
}
