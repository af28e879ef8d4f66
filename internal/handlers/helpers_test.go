package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gymbook/gymbook-backend/internal/booking"
)

func TestErrorStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: memberId is required", booking.ErrValidation), 400},
		{fmt.Errorf("%w: booking 9", booking.ErrNotFound), 404},
		{fmt.Errorf("%w: trainer 5 at 2024-06-01 10:00 AM", booking.ErrSlotUnavailable), 409},
		{fmt.Errorf("%w: pending -> completed", booking.ErrInvalidTransition), 409},
		{booking.ErrConflict, 409},
		{fmt.Errorf("%w: insert booking: boom", booking.ErrPersistence), 500},
		{errors.New("something else"), 500},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, errorStatus(tc.err), "error %v", tc.err)
	}
}
