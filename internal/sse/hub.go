package sse

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event represents an event sent over SSE
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Guild     string      `json:"guild_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Filter selects the events a client receives. Empty fields match all.
type Filter struct {
	Types []string `json:"types,omitempty"`
	Guild string   `json:"guild_id,omitempty"`
}

// Client represents a connected SSE client
type Client struct {
	ID           string
	EventChannel chan Event
	types        map[string]bool
	guild        string
}

func (c *Client) wants(e Event) bool {
	if c.guild != "" && e.Guild != c.guild {
		return false
	}
	return c.types == nil || c.types[e.Type]
}

// Hub manages SSE client connections and event broadcasting
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Event
	register   chan *Client
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// NewHub creates a new SSE Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop shuts down the hub and closes every client channel. Safe to call
// more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		for _, client := range h.clients {
			close(client.EventChannel)
		}
		h.clients = make(map[string]*Client)
		h.mu.Unlock()
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[clientID]; ok {
				close(client.EventChannel)
				delete(h.clients, clientID)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				if !client.wants(event) {
					continue
				}
				// Slow clients miss events rather than stall the hub.
				select {
				case client.EventChannel <- event:
				default:
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a new client to the hub
func (h *Hub) Register(filter Filter) *Client {
	client := &Client{
		ID:           uuid.New().String(),
		EventChannel: make(chan Event, ClientEventBuffer),
		guild:        filter.Guild,
	}
	if len(filter.Types) > 0 {
		client.types = make(map[string]bool, len(filter.Types))
		for _, t := range filter.Types {
			client.types[t] = true
		}
	}

	select {
	case <-h.shutdown:
		close(client.EventChannel)
		return client
	default:
	}

	select {
	case h.register <- client:
	case <-h.shutdown:
		close(client.EventChannel)
	}
	return client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast sends an event to all interested clients
func (h *Hub) Broadcast(eventType, guild string, payload interface{}) {
	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Guild:     guild,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- event:
	default:
		slog.Warn(LogMsgEventDropped, "type", eventType)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage formats an SSE event for transmission
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("id: %s\nevent: %s\ndata: %s\n\n", event.ID, event.Type, data)), nil
}
