package contract

import (
	"testing"

	"github.com/mhelling/podfit/schema"
	"github.com/stretchr/testify/assert"
)

// TestGetPlainFillLabel maps seat counts to labels.
func TestGetPlainFillLabel(t *testing.T) {
	assert.Equal(t, ShortValue, GetPlainFillLabel(3))
	assert.Equal(t, FullValue, GetPlainFillLabel(4))
	assert.Equal(t, FullValue, GetPlainFillLabel(5))
}

// TestGetColorFillLabel keeps plain text when colors are off.
func TestGetColorFillLabel(t *testing.T) {
	assert.Equal(t, ShortValue, GetColorFillLabel(3, false))
	assert.Equal(t, FullValue, GetColorFillLabel(5, false))
	assert.Contains(t, GetColorFillLabel(3, true), ShortValue)
}

// TestTruncateName elides long names from the front.
func TestTruncateName(t *testing.T) {
	assert.Equal(t, "short", TruncateName("short", 10))
	assert.Equal(t, "...ong name", TruncateName("a very long name", 11))
	assert.Equal(t, "abc", TruncateName("abcdef", 3))
	assert.Equal(t, "abcdef", TruncateName("abcdef", 0), "zero disables truncation")
}

// TestFormatPowers renders compact rating lists.
func TestFormatPowers(t *testing.T) {
	assert.Equal(t, "7/7.5", FormatPowers([]schema.PowerValue{7, 7.5}))
	assert.Equal(t, "", FormatPowers(nil))
}
