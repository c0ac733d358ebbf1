package ws_match

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/humanbelnik/reelmatch/core/internal/model"
)

const EventMatchFound = "MATCH_FOUND"

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

type Client struct {
	Conn      *websocket.Conn
	Send      chan []byte
	GroupCode model.GroupCode
}

// Hub fans match events out to each group's subscribed clients. Delivery is
// best-effort; the match poll endpoint is the source of truth.
type Hub struct {
	mu sync.RWMutex

	groups map[model.GroupCode]map[*Client]bool

	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		groups: make(map[model.GroupCode]map[*Client]bool),
		logger: logger,
	}
}

func (h *Hub) RegisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.groups[client.GroupCode]; !ok {
		h.groups[client.GroupCode] = make(map[*Client]bool)
	}
	h.groups[client.GroupCode][client] = true

	h.logger.Info("client registered", "group", client.GroupCode)
}

func (h *Hub) RemoveClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if group, ok := h.groups[client.GroupCode]; ok {
		delete(group, client)
		if len(group) == 0 {
			delete(h.groups, client.GroupCode)
		}
	}
	h.logger.Info("client unregistered", "group", client.GroupCode)
}

// NotifyMatch implements the voting controller's MatchNotifier port.
func (h *Hub) NotifyMatch(code model.GroupCode, match model.Match, tally model.Tally) {
	h.broadcastToGroup(code, Event{
		Type: EventMatchFound,
		Payload: map[string]any{
			"title_id":   match.TitleID,
			"media_kind": string(match.Kind),
			"like_count": match.LikeCount,
			"group_size": tally.TotalMembers,
		},
	})
}

// broadcastToGroup holds the write lock for the whole fan-out: vote handlers
// broadcast concurrently, and evicting a slow client mutates the group map
// and closes its Send channel.
func (h *Hub) broadcastToGroup(code model.GroupCode, event Event) {
	eventBytes, _ := json.Marshal(event)

	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.groups[code]; ok {
		for client := range clients {
			select {
			case client.Send <- eventBytes:
			default:
				close(client.Send)
				delete(clients, client)
			}
		}
		if len(clients) == 0 {
			delete(h.groups, code)
		}
	}
}

func (h *Hub) StartClientReading(client *Client) {
	defer func() {
		h.RemoveClient(client)
		client.Conn.Close()
	}()

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) StartClientWriting(client *Client) {
	defer client.Conn.Close()

	for message := range client.Send {
		if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
}
