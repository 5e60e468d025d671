package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/Vovarama1992/bestelerim/internal/ports"
)

// WSHandler subscribes the client to engagement updates. ?asset=<name>
// narrows the stream to one asset; without it the client gets everything.
func WSHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade уже ответил клиенту
			return
		}

		roomID := r.URL.Query().Get("asset")
		if roomID == "" {
			roomID = RoomAll
		}

		hub.Register(roomID, conn)
		defer hub.Unregister(roomID, conn)

		// клиент ничего не шлёт, читаем только ради close/ping
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}

// Forward pushes service events to the hub until ctx is done or the
// channel is closed. Each event goes to RoomAll and to the asset's own room.
func Forward(ctx context.Context, hub *Hub, events <-chan ports.EngagementEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}

			payload, err := json.Marshal(ev)
			if err != nil {
				log.Printf("[SEND][ERR] json marshal failed: %v", err)
				continue
			}

			hub.SendToRoom(RoomAll, payload)
			if ev.AssetName != RoomAll {
				hub.SendToRoom(ev.AssetName, payload)
			}
		}
	}
}
