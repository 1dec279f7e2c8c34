package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/domain"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/hub"
	"github.com/aquihaydragonesgonzalo/FLAM-EURIBIA/internal/store"
)

type WSHandler struct {
	hub      *hub.Hub
	store    *store.Live
	weather  *store.Weather
	notifier Notifier
	logger   *slog.Logger
}

func NewWSHandler(h *hub.Hub, s *store.Live, w *store.Weather, notifier Notifier, logger *slog.Logger) *WSHandler {
	return &WSHandler{hub: h, store: s, weather: w, notifier: notifier, logger: logger}
}

type WSMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type SubscribePayload struct {
	Topics []string `json:"topics"`
}

type SnapshotMessage struct {
	Type    string `json:"type"`
	Topic   string `json:"topic"`
	Payload any    `json:"payload"`
}

type PongMessage struct {
	Type string `json:"type"`
}

func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.logger.Error("websocket accept failed", "error", err)
		return
	}

	clientID := uuid.New().String()
	client := hub.NewClient(clientID, 256)

	h.hub.Register(client)
	ServerStats.IncWSConnections()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go h.writeLoop(ctx, conn, client)

	h.readLoop(ctx, conn, client)
}

func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, client *hub.Client) {
	defer func() {
		h.hub.Unregister(client)
		ServerStats.DecWSConnections()
		conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		msgType, data, err := conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure {
				h.logger.Debug("websocket read error", "client_id", client.ID, "error", err)
			}
			return
		}

		if msgType != websocket.MessageText {
			continue
		}
		ServerStats.IncWSMessagesIn()

		var msg WSMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.logger.Debug("invalid message format", "client_id", client.ID, "error", err)
			continue
		}

		switch msg.Type {
		case "subscribe":
			var payload SubscribePayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				continue
			}
			topics := validTopics(payload.Topics)
			if len(topics) > 0 {
				h.hub.Subscribe(client, topics)
				h.sendSnapshots(client, topics)
			}

		case "unsubscribe":
			var payload SubscribePayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				continue
			}
			if len(payload.Topics) > 0 {
				h.hub.Unsubscribe(client, payload.Topics)
			}

		case "position":
			var payload PositionRequest
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				continue
			}
			if payload.Lat < -90 || payload.Lat > 90 || payload.Lon < -180 || payload.Lon > 180 {
				continue
			}
			h.store.SetPosition(domain.Coords{Lat: payload.Lat, Lon: payload.Lon}, time.Now())
			ServerStats.IncPositionUpdates()
			if h.notifier != nil {
				h.notifier.Notify()
			}

		case "heading":
			var payload HeadingRequest
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				continue
			}
			heading, ok := NormalizeHeading(payload.Heading, payload.Convention)
			if !ok {
				continue
			}
			h.store.SetHeading(heading)
			if h.notifier != nil {
				h.notifier.Notify()
			}

		case "ping":
			h.sendPong(client)
		}
	}
}

func (h *WSHandler) writeLoop(ctx context.Context, conn *websocket.Conn, client *hub.Client) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case msg, ok := <-client.Send:
			if !ok {
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := conn.Write(writeCtx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				return
			}
			ServerStats.IncWSMessagesOut()

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}
		}
	}
}

// sendSnapshots pushes the current state of each newly subscribed topic so a
// client renders immediately instead of waiting for the next change.
func (h *WSHandler) sendSnapshots(client *hub.Client, topics []string) {
	for _, topic := range topics {
		var payload any

		switch topic {
		case hub.TopicItinerary, hub.TopicCountdown:
			snap, ok := h.store.Snapshot()
			if !ok {
				continue
			}
			if topic == hub.TopicCountdown {
				payload = snap.Countdown
			} else {
				payload = snap
			}
		case hub.TopicWeather:
			report, ok := h.weather.Report()
			if !ok {
				continue
			}
			payload = report
		case hub.TopicPosition:
			pos := h.store.Position()
			if pos == nil {
				continue
			}
			payload = pos
		default:
			continue
		}

		h.send(client, SnapshotMessage{Type: "snapshot", Topic: topic, Payload: payload})
	}
}

func (h *WSHandler) sendPong(client *hub.Client) {
	h.send(client, PongMessage{Type: "pong"})
}

func (h *WSHandler) send(client *hub.Client, msg any) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	select {
	case client.Send <- data:
		ServerStats.IncWSMessagesOut()
	default:
		h.logger.Debug("failed to send, buffer full", "client_id", client.ID)
	}
}

func validTopics(topics []string) []string {
	var out []string
	for _, t := range topics {
		if hub.ValidTopic(t) {
			out = append(out, t)
		}
	}
	return out
}
