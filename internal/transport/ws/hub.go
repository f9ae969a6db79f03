package ws

import (
	"encoding/json"

	"go.uber.org/zap"

	"sarrisk/internal/metrics"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans mission events out to connected coordinators
type Hub struct {
	// mission code -> coordinator connections
	coordinators map[string]map[*Connection]bool

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
	disconnect chan string

	log *zap.Logger
}

// Connection represents a WebSocket connection
type Connection struct {
	MissionCode   string
	CoordinatorID string
	Send          chan []byte
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	MissionCode string
	Message     *Message
}

// NewHub creates a new WebSocket hub
func NewHub(log *zap.Logger) *Hub {
	h := &Hub{
		coordinators: make(map[string]map[*Connection]bool),
		register:     make(chan *Connection),
		unregister:   make(chan *Connection),
		broadcast:    make(chan *BroadcastMessage, 256),
		disconnect:   make(chan string),
		log:          log,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			conns := h.coordinators[conn.MissionCode]
			if conns == nil {
				conns = make(map[*Connection]bool)
				h.coordinators[conn.MissionCode] = conns
			}
			conns[conn] = true
			metrics.WSConnections.Inc()
			h.log.Info("coordinator connected",
				zap.String("mission", conn.MissionCode), zap.String("coordinator", conn.CoordinatorID))

		case conn := <-h.unregister:
			h.remove(conn)

		case code := <-h.disconnect:
			for conn := range h.coordinators[code] {
				h.remove(conn)
			}

		case msg := <-h.broadcast:
			data, err := json.Marshal(msg.Message)
			if err != nil {
				h.log.Error("failed to encode event", zap.String("type", msg.Message.Type), zap.Error(err))
				continue
			}
			for conn := range h.coordinators[msg.MissionCode] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
		}
	}
}

func (h *Hub) remove(conn *Connection) {
	conns, ok := h.coordinators[conn.MissionCode]
	if !ok || !conns[conn] {
		return
	}
	delete(conns, conn)
	if len(conns) == 0 {
		delete(h.coordinators, conn.MissionCode)
	}
	close(conn.Send)
	metrics.WSConnections.Dec()
	h.log.Info("coordinator disconnected",
		zap.String("mission", conn.MissionCode), zap.String("coordinator", conn.CoordinatorID))
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToCoordinator sends an event to every coordinator watching the
// mission (implements service.Broadcaster)
func (h *Hub) BroadcastToCoordinator(missionCode string, msgType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.log.Error("failed to encode payload", zap.String("type", msgType), zap.Error(err))
		return
	}
	h.broadcast <- &BroadcastMessage{
		MissionCode: missionCode,
		Message: &Message{
			Type:    msgType,
			Payload: data,
		},
	}
}

// DisconnectMission closes every connection of a mission (implements
// service.Broadcaster)
func (h *Hub) DisconnectMission(missionCode string) {
	h.disconnect <- missionCode
}
