package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/countdown"
	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
)

// dialSocketPair upgrades one connection through a test server and hands
// back both ends: the server side goes into the hub, the client side is
// what the test reads from.
func dialSocketPair(t *testing.T) (*websocket.Conn, *websocket.Conn) {
	t.Helper()

	serverConns := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		serverConns <- conn
	}))
	t.Cleanup(srv.Close)

	clientConn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { _ = clientConn.Close() })

	serverConn := <-serverConns
	t.Cleanup(func() { _ = serverConn.Close() })
	return serverConn, clientConn
}

func readSocketMessage(t *testing.T, conn *websocket.Conn, within time.Duration) models.SocketMessage {
	t.Helper()

	_ = conn.SetReadDeadline(time.Now().Add(within))
	var msg models.SocketMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	return msg
}

func TestRegisterIsIdempotent(t *testing.T) {
	ws := NewWebSocketManager()
	go ws.Run()

	serverConn, clientConn := dialSocketPair(t)
	c := &client{id: "c1", conn: serverConn}

	const room = "b1-600001-M-100-SUP1"
	ws.register <- subscription{room: room, c: c}
	ws.register <- subscription{room: room, c: c}

	ws.Broadcast(room, models.SocketMessage{Type: "Dm", Message: "one"})
	ws.Broadcast(room, models.SocketMessage{Type: "Dm", Message: "two"})

	first := readSocketMessage(t, clientConn, 2*time.Second)
	if first.Message != "one" {
		t.Fatalf("expected first message %q, got %q", "one", first.Message)
	}
	second := readSocketMessage(t, clientConn, 2*time.Second)
	if second.Message != "two" {
		t.Fatalf("a duplicate register must not deliver twice, got %q", second.Message)
	}
}

func TestBroadcastReachesOnlyRoomMembers(t *testing.T) {
	ws := NewWebSocketManager()
	go ws.Run()

	memberConn, memberClient := dialSocketPair(t)
	otherConn, otherClient := dialSocketPair(t)

	ws.register <- subscription{room: "b1-600001-M-100-SUP1", c: &client{id: "member", conn: memberConn}}
	ws.register <- subscription{room: "b1-600002-M-200-SUP2", c: &client{id: "other", conn: otherConn}}

	ws.Broadcast("b1-600001-M-100-SUP1", models.SocketMessage{Type: "Dm", Message: "offer"})

	got := readSocketMessage(t, memberClient, 2*time.Second)
	if got.Message != "offer" {
		t.Fatalf("expected the room member to receive %q, got %q", "offer", got.Message)
	}

	_ = otherClient.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	var stray models.SocketMessage
	if err := otherClient.ReadJSON(&stray); err == nil {
		t.Fatalf("a client in another room must not receive the message, got %+v", stray)
	}
}

func TestWatchIsNoOpOnRewatch(t *testing.T) {
	ws := NewWebSocketManager()
	go ws.Run()

	deadline := time.Now().Add(time.Hour)
	ws.Watch("600001", deadline)
	ws.Watch("600001", deadline)

	ws.mu.Lock()
	n := len(ws.timers)
	timer := ws.timers["600001"]
	ws.mu.Unlock()

	if n != 1 {
		t.Fatalf("expected one timer for the RFQ, got %d", n)
	}
	timer.Stop()
}

func TestWatchExpiryReachesRFQRooms(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for a real deadline to pass")
	}

	ws := NewWebSocketManager()
	go ws.Run()

	serverConn, clientConn := dialSocketPair(t)
	ws.register <- subscription{room: "b1-600001-M-100-SUP1", c: &client{id: "c1", conn: serverConn}}

	ws.Watch("600001", time.Now().Add(1500*time.Millisecond))

	_ = clientConn.SetReadDeadline(time.Now().Add(4 * time.Second))
	var payload struct {
		Type      string             `json:"type"`
		RfqNumber string             `json:"rfqNumber"`
		Countdown countdown.Snapshot `json:"countdown"`
	}
	if err := clientConn.ReadJSON(&payload); err != nil {
		t.Fatalf("expected a countdown push before the read deadline: %v", err)
	}
	if payload.Type != "countdown" || payload.RfqNumber != "600001" {
		t.Fatalf("unexpected expiry payload %+v", payload)
	}
	if payload.Countdown.StateText != "expired" {
		t.Fatalf("expected the terminal snapshot, got state %q", payload.Countdown.StateText)
	}
}
