package booking

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// timeLayout is the canonical slot time representation, e.g. "10:00 AM".
const timeLayout = "3:04 PM"

var acceptedTimeLayouts = []string{"3:04 PM", "03:04 PM", "15:04"}

// NormalizeDate validates a calendar date and returns it in YYYY-MM-DD form.
func NormalizeDate(s string) (string, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", validationf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t.Format(dateLayout), nil
}

// NormalizeTime validates a slot time and returns the canonical 12-hour form.
func NormalizeTime(s string) (string, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range acceptedTimeLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(timeLayout), nil
		}
	}
	return "", validationf("invalid time %q", s)
}

// minutesOfDay converts a canonical slot time to minutes since midnight for
// chronological sorting. The display format is not lexically sortable.
func minutesOfDay(canonical string) int {
	t, err := time.Parse(timeLayout, canonical)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// CreateRequest carries the input for a new booking. Validate normalizes the
// date and time fields in place.
type CreateRequest struct {
	MemberID        uint   `json:"memberId"`
	TrainerID       uint   `json:"trainerId"`
	ServiceID       uint   `json:"serviceId"`
	BookingDate     string `json:"bookingDate"`
	BookingTime     string `json:"bookingTime"`
	DurationMinutes int    `json:"durationMinutes"`
	SessionType     string `json:"sessionType"`
	Notes           string `json:"notes"`
	SpecialRequests string `json:"specialRequests"`
}

func (r *CreateRequest) Validate() error {
	if r.MemberID == 0 {
		return validationf("memberId is required")
	}
	if r.TrainerID == 0 {
		return validationf("trainerId is required")
	}
	if r.ServiceID == 0 {
		return validationf("serviceId is required")
	}

	date, err := NormalizeDate(r.BookingDate)
	if err != nil {
		return err
	}
	r.BookingDate = date

	slotTime, err := NormalizeTime(r.BookingTime)
	if err != nil {
		return err
	}
	r.BookingTime = slotTime

	if r.DurationMinutes < 0 || r.DurationMinutes > 480 {
		return validationf("durationMinutes must be between 0 and 480")
	}
	if r.SessionType == "" {
		r.SessionType = "personal"
	}

	return nil
}
