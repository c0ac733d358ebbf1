package ws_match

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/humanbelnik/reelmatch/core/internal/model"
	"github.com/stretchr/testify/assert"
)

func subscribedClient(h *Hub, code model.GroupCode, buffer int) *Client {
	client := &Client{
		Send:      make(chan []byte, buffer),
		GroupCode: code,
	}
	h.RegisterClient(client)
	return client
}

func TestHub_DeliversMatchEventToGroup(t *testing.T) {
	h := NewHub(nil)
	code := model.GroupCode("123456")
	client := subscribedClient(h, code, 1)
	stranger := subscribedClient(h, model.GroupCode("654321"), 1)

	h.NotifyMatch(code, model.Match{
		TitleID:   42,
		Kind:      model.KindMovie,
		LikeCount: 3,
	}, model.Tally{Like: 3, TotalMembers: 4})

	var event Event
	assert.NoError(t, json.Unmarshal(<-client.Send, &event))
	assert.Equal(t, EventMatchFound, event.Type)
	assert.Equal(t, float64(42), event.Payload["title_id"])
	assert.Equal(t, "movie", event.Payload["media_kind"])
	assert.Empty(t, stranger.Send)
}

func TestHub_ConcurrentBroadcastsToSameGroup(t *testing.T) {
	h := NewHub(nil)
	code := model.GroupCode("123456")

	// an unbuffered subscriber that never reads forces the eviction path on
	// every broadcast racing for it
	client := subscribedClient(h, code, 0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.NotifyMatch(code, model.Match{TitleID: 1, Kind: model.KindMovie, LikeCount: 2},
				model.Tally{Like: 2, TotalMembers: 2})
		}()
	}
	wg.Wait()

	// the slow client was evicted exactly once: its channel is closed and
	// the group is gone
	_, open := <-client.Send
	assert.False(t, open)

	h.mu.RLock()
	defer h.mu.RUnlock()
	assert.NotContains(t, h.groups, code)
}

func TestHub_RemoveClientDropsEmptyGroup(t *testing.T) {
	h := NewHub(nil)
	code := model.GroupCode("123456")
	client := subscribedClient(h, code, 1)

	h.RemoveClient(client)

	h.mu.RLock()
	defer h.mu.RUnlock()
	assert.NotContains(t, h.groups, code)
}
