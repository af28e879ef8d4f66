package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	date, err := NormalizeDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", date)

	date, err = NormalizeDate("  2024-12-31 ")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", date)

	for _, bad := range []string{"", "06/01/2024", "2024-13-01", "yesterday"} {
		_, err := NormalizeDate(bad)
		assert.ErrorIs(t, err, ErrValidation, "input %q", bad)
	}
}

func TestNormalizeTime(t *testing.T) {
	cases := map[string]string{
		"10:00 AM": "10:00 AM",
		"10:00 am": "10:00 AM",
		"03:30 PM": "3:30 PM",
		"15:30":    "3:30 PM",
		"9:00 AM":  "9:00 AM",
		"00:15":    "12:15 AM",
	}
	for input, want := range cases {
		got, err := NormalizeTime(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	for _, bad := range []string{"", "25:00", "10:65 AM", "noonish"} {
		_, err := NormalizeTime(bad)
		assert.ErrorIs(t, err, ErrValidation, "input %q", bad)
	}
}

func TestMinutesOfDay(t *testing.T) {
	assert.Equal(t, 0, minutesOfDay("12:00 AM"))
	assert.Equal(t, 9*60, minutesOfDay("9:00 AM"))
	assert.Equal(t, 13*60+30, minutesOfDay("1:30 PM"))
	assert.Less(t, minutesOfDay("9:00 AM"), minutesOfDay("10:00 AM"))
	assert.Less(t, minutesOfDay("10:00 AM"), minutesOfDay("1:00 PM"))
}

func TestCreateRequestValidate(t *testing.T) {
	valid := CreateRequest{
		MemberID:    1,
		TrainerID:   5,
		ServiceID:   2,
		BookingDate: "2024-06-01",
		BookingTime: "10:00 am",
	}

	req := valid
	require.NoError(t, req.Validate())
	assert.Equal(t, "10:00 AM", req.BookingTime)
	assert.Equal(t, "personal", req.SessionType)

	req = valid
	req.MemberID = 0
	assert.ErrorIs(t, req.Validate(), ErrValidation)

	req = valid
	req.TrainerID = 0
	assert.ErrorIs(t, req.Validate(), ErrValidation)

	req = valid
	req.ServiceID = 0
	assert.ErrorIs(t, req.Validate(), ErrValidation)

	req = valid
	req.BookingDate = "June 1st"
	assert.ErrorIs(t, req.Validate(), ErrValidation)

	req = valid
	req.BookingTime = "sometime"
	assert.ErrorIs(t, req.Validate(), ErrValidation)

	req = valid
	req.DurationMinutes = -30
	assert.ErrorIs(t, req.Validate(), ErrValidation)

	req = valid
	req.DurationMinutes = 600
	assert.ErrorIs(t, req.Validate(), ErrValidation)

	req = valid
	req.SessionType = "group"
	require.NoError(t, req.Validate())
	assert.Equal(t, "group", req.SessionType)
}
