package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBookingNumber(t *testing.T) {
	assert.Equal(t, "BK202406010001", FormatBookingNumber("20240601", 1))
	assert.Equal(t, "BK202406010042", FormatBookingNumber("20240601", 42))
	assert.Equal(t, "BK202412319999", FormatBookingNumber("20241231", 9999))
	// the sequence keeps growing past four digits rather than wrapping
	assert.Equal(t, "BK2024060110000", FormatBookingNumber("20240601", 10000))
}
