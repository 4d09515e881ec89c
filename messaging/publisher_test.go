package messaging

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent_Envelope(t *testing.T) {
	event := NewEvent(EventReviewCreated, ReviewCreated{ReviewID: 7, LocationID: 3, Rating: 4, NewAverage: 3.5, Reviews: 2})

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "review.created", decoded["type"])
	assert.NotEmpty(t, decoded["id"])
	payload := decoded["payload"].(map[string]any)
	assert.Equal(t, 3.5, payload["newAverage"])
	assert.Equal(t, float64(3), payload["locationId"])
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	p.Publish(context.Background(), EventReviewCreated, nil)
	assert.NoError(t, p.Close())
}
