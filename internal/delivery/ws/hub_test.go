package ws_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	ws "github.com/Vovarama1992/bestelerim/internal/delivery/ws"
	"github.com/Vovarama1992/bestelerim/internal/models"
	"github.com/Vovarama1992/bestelerim/internal/ports"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForConns(t *testing.T, hub *ws.Hub, room string, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.Count(room) == n }, 2*time.Second, 10*time.Millisecond)
}

func readEvent(t *testing.T, conn *websocket.Conn) ports.EngagementEvent {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev ports.EngagementEvent
	require.NoError(t, json.Unmarshal(raw, &ev))
	return ev
}

func Test_Forward_RoutesToAllAndAssetRooms(t *testing.T) {
	hub := ws.NewHub()
	srv := httptest.NewServer(ws.WSHandler(hub))
	defer srv.Close()

	all := dial(t, srv, "")
	one := dial(t, srv, "?asset=a.mp3")
	other := dial(t, srv, "?asset=b.mp3")
	waitForConns(t, hub, ws.RoomAll, 1)
	waitForConns(t, hub, "a.mp3", 1)
	waitForConns(t, hub, "b.mp3", 1)

	events := make(chan ports.EngagementEvent, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ws.Forward(ctx, hub, events)

	events <- ports.EngagementEvent{Kind: models.CounterLikes, AssetName: "a.mp3", Count: 2, At: time.Now()}

	ev := readEvent(t, all)
	assert.Equal(t, "a.mp3", ev.AssetName)
	assert.EqualValues(t, 2, ev.Count)

	ev = readEvent(t, one)
	assert.Equal(t, models.CounterLikes, ev.Kind)

	require.NoError(t, other.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := other.ReadMessage()
	assert.Error(t, err, "b.mp3 subscriber must not see a.mp3 events")
}

func Test_Hub_UnregisterOnDisconnect(t *testing.T) {
	hub := ws.NewHub()
	srv := httptest.NewServer(ws.WSHandler(hub))
	defer srv.Close()

	conn := dial(t, srv, "?asset=x.mp3")
	waitForConns(t, hub, "x.mp3", 1)

	conn.Close()
	waitForConns(t, hub, "x.mp3", 0)
}

func Test_Forward_StopsOnClosedChannel(t *testing.T) {
	events := make(chan ports.EngagementEvent)
	done := make(chan struct{})

	go func() {
		ws.Forward(context.Background(), ws.NewHub(), events)
		close(done)
	}()
	close(events)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Forward did not return after channel close")
	}
}

func Test_Hub_SendToEmptyRoomIsNoop(t *testing.T) {
	hub := ws.NewHub()
	hub.SendToRoom("nobody", []byte(`{}`))
	assert.Equal(t, 0, hub.Count("nobody"))
}

func Test_Hub_SendDropsConnectionThatFailsToWrite(t *testing.T) {
	hub := ws.NewHub()
	registered := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := ws.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register("stale", conn)
		conn.UnderlyingConn().Close()
		close(registered)
	}))
	defer srv.Close()

	dial(t, srv, "")
	select {
	case <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("server never registered the connection")
	}
	require.Equal(t, 1, hub.Count("stale"))

	hub.SendToRoom("stale", []byte(`{}`))
	assert.Equal(t, 0, hub.Count("stale"))

	hub.SendToRoom("stale", []byte(`{}`))
	assert.Equal(t, 0, hub.Count("stale"))
}
