package hub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// Topics a client can subscribe to. Each maps to one of the live update
// streams; subscriptions are independent and can be started and stopped
// without affecting each other.
const (
	TopicItinerary = "itinerary"
	TopicCountdown = "countdown"
	TopicWeather   = "weather"
	TopicPosition  = "position"
)

// ValidTopic reports whether a subscription request names a known stream
func ValidTopic(topic string) bool {
	switch topic {
	case TopicItinerary, TopicCountdown, TopicWeather, TopicPosition:
		return true
	}
	return false
}

type Client struct {
	ID     string
	Send   chan []byte
	topics map[string]struct{}
	mu     sync.RWMutex
}

func NewClient(id string, bufferSize int) *Client {
	return &Client{
		ID:     id,
		Send:   make(chan []byte, bufferSize),
		topics: make(map[string]struct{}),
	}
}

func (c *Client) HasTopic(topic string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.topics[topic]
	return ok
}

func (c *Client) AddTopics(topics []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range topics {
		c.topics[t] = struct{}{}
	}
}

func (c *Client) RemoveTopics(topics []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range topics {
		delete(c.topics, t)
	}
}

func (c *Client) Topics() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	topics := make([]string, 0, len(c.topics))
	for t := range c.topics {
		topics = append(topics, t)
	}
	return topics
}

type update struct {
	topic   string
	payload []byte
}

// Hub fans live updates out to websocket clients by topic
type Hub struct {
	mu           sync.RWMutex
	clients      map[*Client]struct{}
	topicClients map[string]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	broadcast  chan update

	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:      make(map[*Client]struct{}),
		topicClients: make(map[string]map[*Client]struct{}),
		register:     make(chan *Client, 16),
		unregister:   make(chan *Client, 16),
		broadcast:    make(chan update, 256),
		logger:       logger,
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAllClients()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			h.mu.Unlock()
			h.logger.Debug("client registered", "client_id", client.ID, "total", len(h.clients))

		case client := <-h.unregister:
			h.removeClient(client)

		case u := <-h.broadcast:
			h.fanout(u)
		}
	}
}

func (h *Hub) Subscribe(client *Client, topics []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	client.AddTopics(topics)

	for _, topic := range topics {
		if h.topicClients[topic] == nil {
			h.topicClients[topic] = make(map[*Client]struct{})
		}
		h.topicClients[topic][client] = struct{}{}
	}
}

func (h *Hub) Unsubscribe(client *Client, topics []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	client.RemoveTopics(topics)

	for _, topic := range topics {
		if h.topicClients[topic] != nil {
			delete(h.topicClients[topic], client)
			if len(h.topicClients[topic]) == 0 {
				delete(h.topicClients, topic)
			}
		}
	}
}

// UpdateMessage is the wire envelope for a topic broadcast
type UpdateMessage struct {
	Type    string          `json:"type"`
	Topic   string          `json:"topic"`
	Payload json.RawMessage `json:"payload"`
}

// Broadcast sends a payload to every client subscribed to the topic. It never
// blocks the caller; a full hub queue drops the update and logs.
func (h *Hub) Broadcast(topic string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("broadcast payload marshal failed", "topic", topic, "error", err)
		return
	}
	select {
	case h.broadcast <- update{topic: topic, payload: data}:
	default:
		h.logger.Warn("broadcast channel full, dropping update", "topic", topic)
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// SubscriberCount returns how many clients listen to a topic
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topicClients[topic])
}

func (h *Hub) fanout(u update) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.topicClients[u.topic]
	if !ok || len(clients) == 0 {
		return
	}

	msg := UpdateMessage{Type: "update", Topic: u.topic, Payload: u.payload}
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	for client := range clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Debug("client send buffer full", "client_id", client.ID, "topic", u.topic)
		}
	}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}

	for _, topic := range client.Topics() {
		if h.topicClients[topic] != nil {
			delete(h.topicClients[topic], client)
			if len(h.topicClients[topic]) == 0 {
				delete(h.topicClients, topic)
			}
		}
	}

	delete(h.clients, client)
	close(client.Send)
	h.logger.Debug("client unregistered", "client_id", client.ID, "total", len(h.clients))
}

func (h *Hub) closeAllClients() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		close(client.Send)
	}
	h.clients = make(map[*Client]struct{})
	h.topicClients = make(map[string]map[*Client]struct{})
}
