package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"tabletop-hub/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 16 << 10
	sendBuffer     = 64
	intentTimeout  = 5 * time.Second
)

type client struct {
	room        string
	participant string
	conn        *websocket.Conn
	send        chan []byte
}

// Hub keeps the live connections of every room. Each client has one writer
// goroutine; everything else only queues onto its send channel.
type Hub struct {
	allowOrigins map[string]bool
	upgrader     websocket.Upgrader
	logger       *zap.Logger

	mu          sync.RWMutex
	rooms       map[string]map[*client]struct{}
	roomManager RoomManager
}

// NewHub builds a hub. An empty allow list accepts every origin.
func NewHub(roomManager RoomManager, allowOrigins []string, logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Hub{
		allowOrigins: map[string]bool{},
		logger:       logger,
		rooms:        make(map[string]map[*client]struct{}),
		roomManager:  roomManager,
	}
	for _, o := range allowOrigins {
		if o != "" {
			h.allowOrigins[o] = true
		}
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

func (h *Hub) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	return origin == "" || len(h.allowOrigins) == 0 || h.allowOrigins[origin]
}

// HandleWS upgrades a room connection.
// @Summary Room event stream
// @Description WebSocket carrying intents in and redacted room events out. Omit participant_id to watch as a spectator.
// @Tags Realtime
// @Param room_code query string true "Room code"
// @Param participant_id query string false "Participant id returned by create/join"
// @Success 101
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /ws [get]
func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := strings.ToUpper(c.Query("room_code"))
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	view, ok := h.roomManager.Get(roomCode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	participant := c.Query("participant_id")
	if participant != "" && !isMember(view, participant) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not a participant of this room"})
		return
	}
	if !h.checkOrigin(c.Request) {
		c.JSON(http.StatusForbidden, gin.H{"error": "origin not allowed"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.String("room", roomCode), zap.Error(err))
		return
	}
	cl := &client{room: roomCode, participant: participant, conn: conn, send: make(chan []byte, sendBuffer)}
	h.register(cl)
	h.logger.Debug("client connected", zap.String("room", roomCode), zap.String("participant", participant))

	go h.writePump(cl)
	h.greet(cl, view)
	h.readPump(cl)

	h.remove(cl)
	h.logger.Debug("client disconnected", zap.String("room", roomCode), zap.String("participant", participant))
}

func isMember(v shared.RoomView, id string) bool {
	for _, p := range v.Participants {
		if p.ID == id {
			return true
		}
	}
	return false
}

// greet sends the room snapshot and, when a game runs, the state the client
// may see.
func (h *Hub) greet(c *client, view shared.RoomView) {
	h.sendTo(c, shared.Event{Kind: shared.EventRoomUpdated, Room: &view})
	if st, err := h.roomManager.State(c.room, c.participant); err == nil {
		h.sendTo(c, shared.Event{Kind: shared.EventGameUpdated, State: st, CurrentTurn: st.CurrentTurn})
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[c.room]; !ok {
		h.rooms[c.room] = make(map[*client]struct{})
	}
	h.rooms[c.room][c] = struct{}{}
}

// remove unregisters c and closes its send channel, which stops the writer.
// It is safe to call more than once.
func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.rooms[c.room]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.rooms, c.room)
	}
	close(c.send)
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) readPump(c *client) {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("websocket read failed", zap.String("room", c.room), zap.Error(err))
			}
			return
		}
		var in shared.Intent
		if err := json.Unmarshal(data, &in); err != nil {
			h.sendTo(c, shared.Event{Kind: shared.EventError, Message: "malformed message"})
			continue
		}
		h.dispatch(c, in)
	}
}

// dispatch runs one intent as the connection's participant. Failures go
// back to the sender only.
func (h *Hub) dispatch(c *client, in shared.Intent) {
	if c.participant == "" {
		h.sendTo(c, shared.Event{Kind: shared.EventError, Message: "connect with a participant_id to act"})
		return
	}
	in.PlayerID = c.participant

	ctx, cancel := context.WithTimeout(context.Background(), intentTimeout)
	defer cancel()
	if err := h.roomManager.HandleIntent(ctx, c.room, in); err != nil {
		h.logger.Debug("intent rejected",
			zap.String("room", c.room),
			zap.String("participant", c.participant),
			zap.String("kind", in.Kind),
			zap.Error(err),
		)
		h.sendTo(c, shared.Event{Kind: shared.EventError, Message: err.Error()})
	}
}

// Broadcast sends ev to every client of the room, each with the state
// redacted for its own participant. Clients whose buffer is full are
// dropped.
func (h *Hub) Broadcast(roomCode string, ev shared.Event) {
	h.mu.RLock()
	encoded := map[string][]byte{}
	var slow []*client
	for c := range h.rooms[roomCode] {
		msg, ok := encoded[c.participant]
		if !ok {
			var err error
			if msg, err = json.Marshal(ev.ForViewer(c.participant)); err != nil {
				h.mu.RUnlock()
				h.logger.Error("encode event", zap.String("kind", ev.Kind), zap.Error(err))
				return
			}
			encoded[c.participant] = msg
		}
		select {
		case c.send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("dropping slow client", zap.String("room", roomCode), zap.String("participant", c.participant))
		h.remove(c)
	}
}

func (h *Hub) sendTo(c *client, ev shared.Event) {
	msg, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("encode event", zap.String("kind", ev.Kind), zap.Error(err))
		return
	}
	h.mu.RLock()
	_, live := h.rooms[c.room][c]
	full := false
	if live {
		select {
		case c.send <- msg:
		default:
			full = true
		}
	}
	h.mu.RUnlock()
	if full {
		h.remove(c)
	}
}

// Clients reports how many connections a room has.
func (h *Hub) Clients(roomCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomCode])
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for code, set := range h.rooms {
		for c := range set {
			close(c.send)
		}
		delete(h.rooms, code)
	}
}
