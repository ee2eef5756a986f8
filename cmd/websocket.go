package main

import (
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/countdown"
	"github.com/Rakshith-Airdit/AISP-PRICE-COMPARISION/internal/models"
)

const (
	readLimit     = 1 << 20
	readDeadline  = 120 * time.Second
	writeDeadline = 5 * time.Second
	pingInterval  = 15 * time.Second
)

type client struct {
	id   string
	conn *websocket.Conn
}

type subscription struct {
	room string
	c    *client
}

type roomMsg struct {
	room    string
	payload any
}

// WebSocketManager owns the negotiation rooms. Rooms are keyed
// buyer-rfq-material-bidder; registering twice on the same room is a no-op,
// so a reconnecting client just re-registers. All room and client state is
// touched only inside Run.
type WebSocketManager struct {
	rooms        map[string]map[*client]bool
	memberOf     map[*client]map[string]bool
	register     chan subscription
	unregister   chan *client
	broadcast    chan roomMsg
	broadcastRFQ chan roomMsg

	mu     sync.Mutex
	timers map[string]*countdown.Timer
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		rooms:        make(map[string]map[*client]bool),
		memberOf:     make(map[*client]map[string]bool),
		register:     make(chan subscription),
		unregister:   make(chan *client),
		broadcast:    make(chan roomMsg),
		broadcastRFQ: make(chan roomMsg),
		timers:       make(map[string]*countdown.Timer),
	}
}

func (ws *WebSocketManager) Run() {
	for {
		select {
		case sub := <-ws.register:
			if ws.rooms[sub.room] == nil {
				ws.rooms[sub.room] = make(map[*client]bool)
			}
			if ws.rooms[sub.room][sub.c] {
				continue
			}
			ws.rooms[sub.room][sub.c] = true
			if ws.memberOf[sub.c] == nil {
				ws.memberOf[sub.c] = make(map[string]bool)
			}
			ws.memberOf[sub.c][sub.room] = true
			log.Printf("WS register client=%s room=%s", sub.c.id, sub.room)

		case c := <-ws.unregister:
			ws.drop(c)
			log.Printf("WS unregister client=%s", c.id)

		case msg := <-ws.broadcast:
			ws.sendToRoom(msg.room, msg.payload)

		case msg := <-ws.broadcastRFQ:
			// Room keys are buyer-rfq-material-bidder, so every room of
			// the RFQ carries its number between dashes.
			marker := "-" + msg.room + "-"
			for room := range ws.rooms {
				if strings.Contains(room, marker) {
					ws.sendToRoom(room, msg.payload)
				}
			}
		}
	}
}

func (ws *WebSocketManager) sendToRoom(room string, payload any) {
	for c := range ws.rooms[room] {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
		if err := c.conn.WriteJSON(payload); err != nil {
			log.Printf("broadcast error room=%s client=%s: %v", room, c.id, err)
			ws.drop(c)
		}
	}
}

func (ws *WebSocketManager) drop(c *client) {
	for room := range ws.memberOf[c] {
		delete(ws.rooms[room], c)
		if len(ws.rooms[room]) == 0 {
			delete(ws.rooms, room)
		}
	}
	delete(ws.memberOf, c)
	_ = c.conn.Close()
}

// Broadcast sends the payload to every connection in a room. Safe to call
// from any goroutine.
func (ws *WebSocketManager) Broadcast(room string, payload any) {
	ws.broadcast <- roomMsg{room: room, payload: payload}
}

// Watch starts one countdown per RFQ deadline and, when it expires, pushes
// the final snapshot to every room of that RFQ. Watching an already watched
// RFQ is a no-op.
func (ws *WebSocketManager) Watch(rfqNumber string, deadline time.Time) {
	ws.mu.Lock()
	if _, ok := ws.timers[rfqNumber]; ok {
		ws.mu.Unlock()
		return
	}
	timer := countdown.NewTimer(deadline)
	ws.timers[rfqNumber] = timer
	ws.mu.Unlock()

	go timer.Start(func(snap countdown.Snapshot) {
		if snap.State != countdown.Expired {
			return
		}
		ws.broadcastRFQ <- roomMsg{room: rfqNumber, payload: map[string]any{
			"type":      "countdown",
			"rfqNumber": rfqNumber,
			"countdown": snap,
		}}
		ws.mu.Lock()
		delete(ws.timers, rfqNumber)
		ws.mu.Unlock()
	})
}

var upgrader = websocket.Upgrader{
	CheckOrigin:       func(r *http.Request) bool { return true },
	ReadBufferSize:    1024,
	WriteBufferSize:   1024,
	EnableCompression: true,
}

// WebSocketHandler upgrades the connection and serves register/Dm frames.
func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	c := &client{id: uuid.NewString(), conn: conn}

	conn.SetReadLimit(readLimit)
	conn.SetReadDeadline(time.Now().Add(readDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	go pingLoop(app.wsManager, c)
	go app.handleSocketMessages(c)
}

func pingLoop(ws *WebSocketManager, c *client) {
	t := time.NewTicker(pingInterval)
	defer t.Stop()
	for range t.C {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
		if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			_ = writeClose(c.conn, websocket.CloseGoingAway, "ping error")
			ws.unregister <- c
			return
		}
	}
}

func (app *application) handleSocketMessages(c *client) {
	defer func() {
		app.wsManager.unregister <- c
	}()

	for {
		var msg models.SocketMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			_ = writeClose(c.conn, websocket.CloseNormalClosure, "read error")
			return
		}

		switch msg.Type {
		case "register":
			room := strings.TrimSpace(msg.RoomInfo)
			if room == "" {
				log.Println("reject register: empty roomInfo")
				continue
			}
			app.wsManager.register <- subscription{room: room, c: c}

		case "Dm":
			if msg.To == "" {
				log.Println("reject Dm: empty destination")
				continue
			}
			app.wsManager.Broadcast(msg.To, msg)

		default:
			log.Printf("reject frame: unknown type %q", msg.Type)
		}
	}
}

func writeClose(conn *websocket.Conn, code int, reason string) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(writeDeadline),
	)
}
