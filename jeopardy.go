// Jeopardy sessions
//
// Every session is one game board shared by every browser that opens its
// URL: a projector, the host's laptop, a phone. Pointer events from any
// display drive the same game, and every display is sent the same frame.
//
// Features:
// - WebSockets per game ID: /path/:gameid and /path/:gameid/ws
// - Each session owns one jeopardy.App, touched only by the hub goroutine
// - Frames are recorded draw operations, replayed on a <canvas> client-side
// - Unchanged frames are not re-sent, so hover updates stay cheap
// - Sessions auto-reaped after configurable idle timeout
// - Random 8-char game IDs via crypto/rand, with server-side collision check
// - In-browser QR button to open the current session on another display

package main

import (
	"crypto/rand"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"

	"github.com/Seednode/jeopardy/jeopardy"
)

// Messages coming from clients
type ClientMessage struct {
	Type   string  `json:"type"`             // "motion" or "release"
	X      float64 `json:"x"`                // layout units, not CSS pixels
	Y      float64 `json:"y"`                // layout units, not CSS pixels
	Button int     `json:"button,omitempty"` // release: 0 primary, 1 secondary
}

// SessionInfoMessage is sent immediately on connect so the client can size
// its canvas before the first frame arrives.
type SessionInfoMessage struct {
	Type   string  `json:"type"` // "session_info"
	GameID string  `json:"game_id"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// FrameMessage carries everything needed to draw the active view.
type FrameMessage struct {
	Type string            `json:"type"` // "frame"
	View string            `json:"view"` // "menu", "board", "question" or "gameover"
	Ops  []jeopardy.DrawOp `json:"ops"`
}

type Client struct {
	id   string
	conn *websocket.Conn
	send chan any
}

type pointerEvent struct {
	client *Client
	msg    ClientMessage
}

type Hub struct {
	id      string
	app     *jeopardy.App
	layout  jeopardy.Layout
	clients map[*Client]bool

	register chan *Client
	unreg    chan *Client
	events   chan pointerEvent
	done     chan struct{}

	mu sync.RWMutex

	createdAt  time.Time
	lastActive time.Time
	lastFrame  []jeopardy.DrawOp
	closeOnce  sync.Once
}

func newHub(cfg *Config, gameID string) *Hub {
	now := time.Now()
	return &Hub{
		id:         gameID,
		app:        jeopardy.NewApp(cfg.gameOptions()),
		layout:     cfg.layout,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unreg:      make(chan *Client),
		events:     make(chan pointerEvent, 64),
		done:       make(chan struct{}),
		createdAt:  now,
		lastActive: now,
	}
}

func (h *Hub) run(cfg *Config) {
	for {
		select {
		case <-h.done:
			return

		case c := <-h.register:
			if h.addClient(c, h.frame()) {
				logf(cfg, "GAMES: Display %s joined %s", c.id, h.id)
			}

		case c := <-h.unreg:
			h.mu.Lock()
			h.lastActive = time.Now()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()

			logf(cfg, "GAMES: Display %s left %s", c.id, h.id)

		case ev := <-h.events:
			h.handlePointer(cfg, ev)
		}
	}
}

// addClient greets c and starts sending it frames. It reports false, and
// closes c.send, when the hub has already been closed.
func (h *Hub) addClient(c *Client, frame FrameMessage) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	// closeAll closes done before it takes the lock, so checking here
	// keeps c out of a map it has already cleared.
	select {
	case <-h.done:
		close(c.send)
		return false
	default:
	}

	h.lastActive = time.Now()
	h.clients[c] = true
	c.send <- SessionInfoMessage{
		Type:   "session_info",
		GameID: h.id,
		Width:  h.layout.WindowWidth,
		Height: h.layout.WindowHeight,
	}
	c.send <- frame

	return true
}

// handlePointer feeds one pointer event to the game and sends the new
// frame if anything visible changed.
func (h *Hub) handlePointer(cfg *Config, ev pointerEvent) {
	msg := ev.msg

	h.mu.Lock()
	h.lastActive = time.Now()
	h.mu.Unlock()

	switch msg.Type {
	case "motion":
		h.app.PointerMotion(msg.X, msg.Y)
	case "release":
		button := jeopardy.PointerPrimary
		if msg.Button == 1 {
			button = jeopardy.PointerSecondary
		}

		from := jeopardy.ViewName(h.app.Active())
		if h.app.PointerRelease(msg.X, msg.Y, button) {
			logf(cfg, "GAMES: %s moved from %s to %s", h.id, from, jeopardy.ViewName(h.app.Active()))
		}
	default:
		return
	}

	frame := h.frame()
	if slices.Equal(frame.Ops, h.lastFrame) {
		return
	}
	h.lastFrame = frame.Ops

	h.broadcast(frame)
}

func (h *Hub) frame() FrameMessage {
	return FrameMessage{
		Type: "frame",
		View: jeopardy.ViewName(h.app.Active()),
		Ops:  h.app.Frame(),
	}
}

func (h *Hub) broadcast(msg any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.send <- msg:
		default:
			delete(h.clients, client)
			close(client.send)
		}
	}
}

// closeAll disconnects all clients of this hub and stops its loop.
func (h *Hub) closeAll() {
	h.closeOnce.Do(func() {
		close(h.done)
	})

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		close(c.send)
		_ = c.conn.Close()
		delete(h.clients, c)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GameManager holds a set of hubs keyed by game ID, so each $path/$gameid
// is its own isolated session.
type GameManager struct {
	mu          sync.Mutex
	hubs        map[string]*Hub
	idleTimeout time.Duration
	stop        chan struct{}
	stopOnce    sync.Once
}

func newGameManager(idleTimeout time.Duration) *GameManager {
	gm := &GameManager{
		hubs:        make(map[string]*Hub),
		idleTimeout: idleTimeout,
		stop:        make(chan struct{}),
	}
	if idleTimeout > 0 {
		go gm.reaperLoop()
	}
	return gm
}

func (gm *GameManager) getHub(cfg *Config, gameID string) *Hub {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if hub, ok := gm.hubs[gameID]; ok {
		return hub
	}

	hub := newHub(cfg, gameID)
	gm.hubs[gameID] = hub
	go hub.run(cfg)
	return hub
}

// newGameID generates a crypto-random game ID and ensures it doesn't
// collide with existing games.
func (gm *GameManager) newGameID() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	for {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		out := make([]byte, 8)
		for i := range out {
			out[i] = letters[int(buf[i])%len(letters)]
		}
		id := string(out)

		gm.mu.Lock()
		_, exists := gm.hubs[id]
		gm.mu.Unlock()

		if !exists {
			return id
		}
	}
}

// reaperLoop periodically removes hubs that have been idle longer than idleTimeout.
func (gm *GameManager) reaperLoop() {
	ticker := time.NewTicker(gm.idleTimeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-gm.stop:
			return
		case <-ticker.C:
			gm.reap(time.Now().Add(-gm.idleTimeout))
		}
	}
}

// reap closes every hub last active before cutoff.
func (gm *GameManager) reap(cutoff time.Time) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	for id, hub := range gm.hubs {
		hub.mu.RLock()
		last := hub.lastActive
		hub.mu.RUnlock()

		if last.Before(cutoff) {
			delete(gm.hubs, id)
			go hub.closeAll()
		}
	}
}

// Close stops the reaper and every running session.
func (gm *GameManager) Close() {
	gm.stopOnce.Do(func() {
		close(gm.stop)
	})

	gm.mu.Lock()
	defer gm.mu.Unlock()

	for id, hub := range gm.hubs {
		delete(gm.hubs, id)
		hub.closeAll()
	}
}

// WebSocket handler that picks the hub based on :gameid
func serveWSForManager(cfg *Config, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameID := ps.ByName("gameid")
		if gameID == "" {
			http.Error(w, "missing game id", http.StatusBadRequest)
			return
		}

		hub := gm.getHub(cfg, gameID)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logf(cfg, "ERROR: Websocket upgrade for %s from %s: %v", gameID, realIP(r), err)
			return
		}

		client := &Client{
			id:   uuid.NewString(),
			conn: conn,
			send: make(chan any, 16),
		}

		select {
		case hub.register <- client:
		case <-hub.done:
			_ = conn.Close()
			return
		}

		go client.writePump()
		client.readPump(hub)
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unreg <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case "motion", "release":
			select {
			case h.events <- pointerEvent{client: c, msg: msg}:
			case <-h.done:
				return
			}
		default:
			// ignore unknown types
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// QR handler: generates a PNG QR code for the current game URL using go-qrcode.
func qrHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	gameID := ps.ByName("gameid")
	if gameID == "" {
		http.Error(w, "missing game id", http.StatusBadRequest)
		return
	}

	// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	// We are at /.../:gameid/qr; strip trailing "/qr" to get the game URL.
	path := strings.TrimSuffix(r.URL.Path, "/qr")

	url := scheme + "://" + r.Host + path

	const qrSize = 320
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func getIndexHandler(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		data, err := assets.ReadFile("assets/jeopardy/index.html")
		if err != nil {
			errs <- err
			http.Error(w, "client unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Header().Set("Expires", time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		securityHeaders(cfg, w)

		_, _ = w.Write(data)
	}
}

// redirectNewGame handles GET /path by generating a new random game ID
// (with server-side collision detection) and redirecting to /path/:gameid.
func redirectNewGame(cfg *Config, path string, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gameID := gm.newGameID()
		logf(cfg, "GAMES: Created game %s/%s for %s", path, gameID, realIP(r))
		http.Redirect(w, r, cfg.prefix+path+"/"+gameID, http.StatusTemporaryRedirect)
	}
}

// registerJeopardyGame sets up routes so that:
//   - $path                  → redirects to new random game (8-char ID)
//   - $path/:gameid          → HTML client
//   - $path/:gameid/ws       → WebSocket for that game
//   - $path/:gameid/qr       → PNG QR code for that game URL
func registerJeopardyGame(cfg *Config, path string, mux *httprouter.Router, errs chan<- error) *GameManager {
	gm := newGameManager(cfg.sessionTimeout)

	mux.GET(cfg.prefix+path, redirectNewGame(cfg, path, gm))

	mux.GET(cfg.prefix+path+"/:gameid", getIndexHandler(cfg, errs))

	mux.GET(cfg.prefix+path+"/:gameid/ws", serveWSForManager(cfg, gm))

	mux.GET(cfg.prefix+path+"/:gameid/qr", qrHandler)

	return gm
}
