package messagingtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism-backend/messaging"
)

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Publish(context.Background(), messaging.EventReservationCreated, messaging.ReservationCreated{ReservationID: 1})
	r.Publish(context.Background(), messaging.EventReviewCreated, messaging.ReviewCreated{ReviewID: 2})

	events := r.Events()
	require.Len(t, events, 2)
	assert.Equal(t, messaging.EventReservationCreated, events[0].Type)
	assert.Equal(t, messaging.EventReviewCreated, events[1].Type)
}
