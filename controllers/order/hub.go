package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/afnankhn654-alt/ShopNest/store"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	sendBuffer = 16
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type wsClient struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans committed store events out to websocket subscribers. It
// implements store.Notifier.
type Hub struct {
	mu      sync.Mutex
	clients map[*wsClient]struct{}
	closed  bool
	logger  *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{clients: make(map[*wsClient]struct{}), logger: logger}
}

// Notify queues the event for every subscriber. Subscribers whose buffer is
// full are disconnected.
func (h *Hub) Notify(e store.Event) {
	data, err := json.Marshal(e)
	if err != nil {
		h.logger.Error("marshal order event", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for cl := range h.clients {
		select {
		case cl.send <- data:
		default:
			h.logger.Warn("dropping slow websocket subscriber")
			h.removeLocked(cl)
			_ = cl.conn.Close()
		}
	}
}

// Len is the number of connected subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every subscriber and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for cl := range h.clients {
		h.removeLocked(cl)
		_ = cl.conn.Close()
	}
}

func (h *Hub) register(conn *websocket.Conn) *wsClient {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	cl := &wsClient{conn: conn, send: make(chan []byte, sendBuffer)}
	h.clients[cl] = struct{}{}
	return cl
}

func (h *Hub) unregister(cl *wsClient) {
	h.mu.Lock()
	h.removeLocked(cl)
	h.mu.Unlock()
}

func (h *Hub) removeLocked(cl *wsClient) {
	if _, ok := h.clients[cl]; ok {
		delete(h.clients, cl)
		close(cl.send)
	}
}

// writePump drains cl.send until the hub closes it.
func (cl *wsClient) writePump() {
	failed := false
	for data := range cl.send {
		if failed {
			continue
		}
		_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := cl.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			failed = true
			_ = cl.conn.Close()
		}
	}
}

// GET /orders/ws
func OrderWebSocketHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		cl := hub.register(conn)
		if cl == nil {
			return
		}

		done := make(chan struct{})
		go func() {
			defer close(done)
			cl.writePump()
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		hub.unregister(cl)
		<-done
	}
}
