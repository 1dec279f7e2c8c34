package hub

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub(slog.New(slog.DiscardHandler))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go h.Run(ctx)
	return h
}

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.ClientCount() == n }, time.Second, 5*time.Millisecond)
}

func TestBroadcastReachesSubscribersOnly(t *testing.T) {
	h := newTestHub(t)

	sub := NewClient("sub", 8)
	other := NewClient("other", 8)
	h.Register(sub)
	h.Register(other)
	waitForClients(t, h, 2)

	h.Subscribe(sub, []string{TopicCountdown})
	h.Subscribe(other, []string{TopicWeather})

	h.Broadcast(TopicCountdown, map[string]string{"remaining": "1h 0m 0s"})

	select {
	case data := <-sub.Send:
		var msg UpdateMessage
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, "update", msg.Type)
		assert.Equal(t, TopicCountdown, msg.Topic)
		assert.Contains(t, string(msg.Payload), "1h 0m 0s")
	case <-time.After(time.Second):
		t.Fatal("subscriber received nothing")
	}

	select {
	case <-other.Send:
		t.Fatal("unsubscribed client received a countdown update")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	h := newTestHub(t)

	c := NewClient("c", 8)
	h.Register(c)
	waitForClients(t, h, 1)

	h.Subscribe(c, []string{TopicItinerary, TopicPosition})
	assert.Equal(t, 1, h.SubscriberCount(TopicItinerary))

	h.Unsubscribe(c, []string{TopicItinerary})
	assert.Equal(t, 0, h.SubscriberCount(TopicItinerary))
	assert.Equal(t, 1, h.SubscriberCount(TopicPosition))
	assert.False(t, c.HasTopic(TopicItinerary))
	assert.True(t, c.HasTopic(TopicPosition))
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	h := newTestHub(t)

	c := NewClient("c", 8)
	h.Register(c)
	waitForClients(t, h, 1)

	h.Subscribe(c, []string{TopicWeather})
	h.Unregister(c)
	waitForClients(t, h, 0)

	_, open := <-c.Send
	assert.False(t, open)
	assert.Equal(t, 0, h.SubscriberCount(TopicWeather))
}

func TestValidTopic(t *testing.T) {
	assert.True(t, ValidTopic(TopicItinerary))
	assert.True(t, ValidTopic(TopicCountdown))
	assert.True(t, ValidTopic(TopicWeather))
	assert.True(t, ValidTopic(TopicPosition))
	assert.False(t, ValidTopic("tides"))
	assert.False(t, ValidTopic(""))
}
