package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(h *Hub, id uint, role string) *Client {
	c := &Client{ID: id, Role: role, Send: make(chan []byte, 4), Hub: h}
	h.clients[c] = true
	return c
}

func TestSendBookingEventRouting(t *testing.T) {
	h := NewHub()
	member := newTestClient(h, 7, "member")
	trainer := newTestClient(h, 3, "trainer")
	admin := newTestClient(h, 1, "admin")
	otherMember := newTestClient(h, 8, "member")

	h.SendBookingEvent(BookingEvent{
		BookingID:     12,
		BookingNumber: "BK202406010001",
		MemberID:      7,
		TrainerID:     3,
		Status:        "confirmed",
		Action:        "confirmed",
	})

	require.Len(t, member.Send, 1)
	require.Len(t, trainer.Send, 1)
	require.Len(t, admin.Send, 1)
	assert.Len(t, otherMember.Send, 0)

	var msg WebSocketMessage
	require.NoError(t, json.Unmarshal(<-member.Send, &msg))
	assert.Equal(t, "booking_confirmed", msg.Type)

	data, ok := msg.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "BK202406010001", data["bookingNumber"])
	assert.NotEmpty(t, data["eventId"])
}

func TestSendBookingEventSkipsFullChannels(t *testing.T) {
	h := NewHub()
	member := &Client{ID: 7, Role: "member", Send: make(chan []byte), Hub: h}
	h.clients[member] = true

	// The unbuffered channel has no reader; the send must not block
	h.SendBookingEvent(BookingEvent{BookingID: 1, MemberID: 7, Action: "created"})

	assert.Equal(t, 1, h.GetConnectedClients())
}
