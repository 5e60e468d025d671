package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// RoomAll receives every engagement event regardless of asset.
const RoomAll = "all"

const writeWait = 5 * time.Second

type Hub struct {
	mu    sync.Mutex
	rooms map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	log.Printf("[hub] init")
	return &Hub{
		rooms: make(map[string]map[*websocket.Conn]bool),
	}
}

func (h *Hub) Register(roomID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[roomID]; !ok {
		h.rooms[roomID] = make(map[*websocket.Conn]bool)
		log.Printf("[hub] create room=%s", roomID)
	}

	h.rooms[roomID][conn] = true
	log.Printf("[hub] register room=%s conns=%d", roomID, len(h.rooms[roomID]))
}

func (h *Hub) Unregister(roomID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.unregisterLocked(roomID, conn)
}

func (h *Hub) unregisterLocked(roomID string, conn *websocket.Conn) {
	conns, ok := h.rooms[roomID]
	if !ok {
		return
	}

	if _, ok := conns[conn]; ok {
		delete(conns, conn)
		conn.Close()
		log.Printf("[hub] unregister room=%s conns=%d", roomID, len(conns))
	}

	if len(conns) == 0 {
		delete(h.rooms, roomID)
		log.Printf("[hub] delete room=%s", roomID)
	}
}

// Count reports how many connections sit in a room.
func (h *Hub) Count(roomID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[roomID])
}

// SendToRoom writes msg to every connection of the room. Writes happen under
// the hub lock because a websocket.Conn allows only one concurrent writer.
// A stalled client therefore holds the lock for up to writeWait, delaying
// every other room; a connection whose write fails is dropped so it stalls
// the hub at most once.
func (h *Hub) SendToRoom(roomID string, msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.rooms[roomID]
	if len(conns) == 0 {
		return
	}

	var failed []*websocket.Conn
	for conn := range conns {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			log.Printf("[hub][SEND-ERR] room=%s err=%v", roomID, err)
			failed = append(failed, conn)
		}
	}
	for _, conn := range failed {
		h.unregisterLocked(roomID, conn)
	}
}

var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}
