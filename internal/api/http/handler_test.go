package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tabletop-hub/internal/api/ws"
	"tabletop-hub/internal/config"
	"tabletop-hub/internal/game"
	"tabletop-hub/internal/room"
	"tabletop-hub/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	rm := room.NewManager(game.NewEngine(game.DefaultRules(), game.WithSeed(3)), store.NewMemoryStore(), logger, room.Options{})
	hub := ws.NewHub(rm, nil, logger)
	rm.SetBroadcaster(hub)
	t.Cleanup(func() {
		hub.Close()
		rm.Close()
	})
	cfg := config.Config{Bot: config.Bot{DefaultDifficulty: "medium"}, Rules: config.Rules{StrictCards: true, HeartsTarget: 100, SpadesTarget: 500}}
	return NewRouter(rm, hub, cfg, logger)
}

func do(t *testing.T, r *gin.Engine, method, path string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if out != nil && w.Code < 300 {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w.Code
}

type player struct {
	PlayerID string `json:"playerId"`
}

func TestCreateRoom(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		body any
		want int
	}{
		{"chess", CreateRoomRequest{GameType: "chess", PlayerName: "alice"}, http.StatusCreated},
		{"go fish", CreateRoomRequest{GameType: "gofish"}, http.StatusCreated},
		{"unknown game", CreateRoomRequest{GameType: "go"}, http.StatusBadRequest},
		{"missing game", map[string]string{"playerName": "x"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp RoomResponse
			code := do(t, r, http.MethodPost, "/rooms", tt.body, &resp)
			if code != tt.want {
				t.Fatalf("status = %d, want %d", code, tt.want)
			}
			if code != http.StatusCreated {
				return
			}
			if len(resp.Room.Code) != 6 || resp.Participant == nil || resp.Room.HostID != resp.Participant.ID {
				t.Errorf("response = %+v", resp)
			}
		})
	}

	var list RoomsResponse
	if code := do(t, r, http.MethodGet, "/rooms", nil, &list); code != http.StatusOK || len(list.Rooms) != 2 {
		t.Errorf("list = %d %+v", code, list)
	}
	if code := do(t, r, http.MethodGet, "/rooms/NOPE42", nil, nil); code != http.StatusNotFound {
		t.Errorf("unknown room status = %d", code)
	}
}

func TestGameFlow(t *testing.T) {
	r := newTestRouter(t)

	var created RoomResponse
	do(t, r, http.MethodPost, "/rooms", CreateRoomRequest{GameType: "chess", PlayerName: "alice"}, &created)
	base := "/rooms/" + created.Room.Code
	host := created.Participant.ID

	var joined RoomResponse
	if code := do(t, r, http.MethodPost, base+"/join", JoinRoomRequest{PlayerName: "bob"}, &joined); code != http.StatusOK {
		t.Fatalf("join status = %d", code)
	}
	guest := joined.Participant.ID

	if code := do(t, r, http.MethodPost, base+"/start", player{guest}, nil); code != http.StatusForbidden {
		t.Errorf("guest start = %d, want 403", code)
	}
	if code := do(t, r, http.MethodPost, base+"/start", player{host}, nil); code != http.StatusConflict {
		t.Errorf("unready start = %d, want 409", code)
	}
	for _, id := range []string{host, guest} {
		if code := do(t, r, http.MethodPost, base+"/ready", player{id}, nil); code != http.StatusOK {
			t.Fatalf("ready = %d", code)
		}
	}
	if code := do(t, r, http.MethodPost, base+"/start", player{host}, nil); code != http.StatusOK {
		t.Fatalf("start = %d", code)
	}

	t.Run("possible moves", func(t *testing.T) {
		tests := []struct {
			query string
			want  int
			moves int
		}{
			{"?playerId=" + host, http.StatusOK, 20},
			{"?playerId=" + guest, http.StatusOK, 0},
			{"", http.StatusBadRequest, 0},
			{"?playerId=stranger", http.StatusForbidden, 0},
		}
		for _, tt := range tests {
			var resp MovesResponse
			code := do(t, r, http.MethodGet, base+"/possible-moves"+tt.query, nil, &resp)
			if code != tt.want || len(resp.Moves) != tt.moves {
				t.Errorf("%q: status %d with %d moves, want %d with %d", tt.query, code, len(resp.Moves), tt.want, tt.moves)
			}
		}
	})

	move := func(from, to string) game.Move {
		f, _ := game.ParseSquare(from)
		g, _ := game.ParseSquare(to)
		return game.Move{Kind: game.KindChessMove, Data: game.MoveData{From: &f, To: &g}}
	}
	moves := []struct {
		name string
		body MoveRequest
		want int
	}{
		{"out of turn", MoveRequest{PlayerID: guest, Move: move("e7", "e5")}, http.StatusConflict},
		{"illegal", MoveRequest{PlayerID: host, Move: move("e2", "e5")}, http.StatusUnprocessableEntity},
		{"wrong kind", MoveRequest{PlayerID: host, Move: game.Move{Kind: game.KindPlayCard}}, http.StatusUnprocessableEntity},
		{"legal", MoveRequest{PlayerID: host, Move: move("e2", "e4")}, http.StatusOK},
	}
	for _, tt := range moves {
		var resp StateResponse
		if code := do(t, r, http.MethodPost, base+"/moves", tt.body, &resp); code != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.name, code, tt.want)
		}
		if tt.want == http.StatusOK && (resp.State == nil || resp.State.CurrentTurn != guest) {
			t.Errorf("%s: state = %+v", tt.name, resp.State)
		}
	}

	var snap SnapshotResponse
	if code := do(t, r, http.MethodGet, base+"/snapshot", nil, &snap); code != http.StatusOK {
		t.Fatalf("snapshot = %d", code)
	}
	if snap.Record.TurnCounter != 1 || snap.Record.CurrentTurn != guest {
		t.Errorf("snapshot = %+v", snap.Record)
	}

	if code := do(t, r, http.MethodPost, base+"/actions", ActionRequest{PlayerID: guest, Action: "resign"}, nil); code != http.StatusBadRequest {
		t.Errorf("unknown action = %d, want 400", code)
	}
	if code := do(t, r, http.MethodPost, base+"/rematch", player{host}, nil); code != http.StatusConflict {
		t.Errorf("rematch mid-game = %d, want 409", code)
	}
	if code := do(t, r, http.MethodPost, base+"/actions", ActionRequest{PlayerID: guest, Action: "forfeit"}, nil); code != http.StatusOK {
		t.Fatalf("forfeit = %d", code)
	}

	var st StateResponse
	do(t, r, http.MethodGet, base+"/state", nil, &st)
	if st.State == nil || !st.State.GameOver || st.State.Winner != host {
		t.Errorf("final state = %+v", st.State)
	}

	var again RoomResponse
	if code := do(t, r, http.MethodPost, base+"/rematch", player{host}, &again); code != http.StatusOK || again.Room.Status != "waiting" {
		t.Errorf("rematch = %d %+v", code, again.Room)
	}
	if code := do(t, r, http.MethodPost, base+"/leave", player{guest}, nil); code != http.StatusOK {
		t.Errorf("leave = %d", code)
	}
}

func TestConfigAndHealth(t *testing.T) {
	r := newTestRouter(t)

	var cfg ConfigResponse
	if code := do(t, r, http.MethodGet, "/config", nil, &cfg); code != http.StatusOK {
		t.Fatalf("config = %d", code)
	}
	if len(cfg.Games) != len(game.Types) {
		t.Fatalf("games = %+v", cfg.Games)
	}
	for _, g := range cfg.Games {
		if g.MinPlayers < 2 || g.MaxPlayers < g.MinPlayers {
			t.Errorf("%s limits = %d..%d", g.Type, g.MinPlayers, g.MaxPlayers)
		}
	}
	if !cfg.Rules.StrictCards || cfg.Bot.DefaultDifficulty != "medium" {
		t.Errorf("config = %+v", cfg)
	}

	if code := do(t, r, http.MethodGet, "/healthz", nil, nil); code != http.StatusOK {
		t.Errorf("healthz = %d", code)
	}
	if code := do(t, r, http.MethodGet, "/", nil, nil); code != http.StatusMovedPermanently {
		t.Errorf("root = %d", code)
	}
}
