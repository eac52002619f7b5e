// Package stream broadcasts grid states to websocket viewers.
package stream

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"gridstep/internal/monitoring"
)

const writeWait = 5 * time.Second

// Frame is one grid state as sent on the wire. Cells holds the row-major
// float32 values, little-endian, base64-encoded so NaN and Inf survive JSON.
type Frame struct {
	Type  string `json:"type"`
	Step  int    `json:"step"`
	Rule  string `json:"rule"`
	N     int    `json:"n"`
	Cells string `json:"cells"`
}

// NewFrame packs cells into a Frame.
func NewFrame(step int, rule string, cells []float32, n int) Frame {
	buf := make([]byte, 4*len(cells))
	for i, c := range cells {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(c))
	}
	return Frame{Type: "grid", Step: step, Rule: rule, N: n, Cells: base64.StdEncoding.EncodeToString(buf)}
}

// DecodeCells unpacks the cell payload of f.
func (f Frame) DecodeCells() ([]float32, error) {
	raw, err := base64.StdEncoding.DecodeString(f.Cells)
	if err != nil {
		return nil, fmt.Errorf("decode cells: %w", err)
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("cell payload length %d not multiple of 4", len(raw))
	}
	cells := make([]float32, len(raw)/4)
	for i := range cells {
		cells[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return cells, nil
}

// Hub tracks connected viewers and fans frames out to them. New viewers
// receive the most recent frame on connect.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*websocket.Conn]*sync.Mutex
	last    []byte
}

// NewHub returns an empty hub. Any origin may connect.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]*sync.Mutex),
	}
}

// ServeHTTP upgrades the request and holds the connection until the viewer
// goes away. Incoming messages are ignored.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		monitoring.Logf("stream: upgrade error: %v", err)
		return
	}
	defer conn.Close()

	connMu := &sync.Mutex{}
	h.mu.Lock()
	h.clients[conn] = connMu
	last := h.last
	h.mu.Unlock()
	defer h.remove(conn)

	if last != nil {
		connMu.Lock()
		err := write(conn, last)
		connMu.Unlock()
		if err != nil {
			monitoring.Logf("stream: initial write error: %v", err)
			return
		}
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast sends f to every viewer and returns how many received it.
// Viewers whose write fails are dropped.
func (h *Hub) Broadcast(f Frame) (int, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return 0, fmt.Errorf("encode frame: %w", err)
	}

	h.mu.Lock()
	h.last = data
	h.mu.Unlock()

	h.mu.RLock()
	var failed []*websocket.Conn
	sent := 0
	for conn, connMu := range h.clients {
		connMu.Lock()
		err := write(conn, data)
		connMu.Unlock()
		if err != nil {
			monitoring.Logf("stream: write error: %v", err)
			failed = append(failed, conn)
			continue
		}
		sent++
	}
	h.mu.RUnlock()

	for _, conn := range failed {
		conn.Close()
		h.remove(conn)
	}
	return sent, nil
}

// Clients reports the number of connected viewers.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

func write(conn *websocket.Conn, data []byte) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}
