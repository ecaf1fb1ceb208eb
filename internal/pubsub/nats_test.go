package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"tabletop-hub/internal/game"
	"tabletop-hub/internal/shared"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

type fakeHandler struct {
	code string
	in   shared.Intent
	err  error
}

func (f *fakeHandler) HandleIntent(_ context.Context, code string, in shared.Intent) error {
	f.code, f.in = code, in
	return f.err
}

func TestRoomCode(t *testing.T) {
	b := NewBridge(nil, "tt", zap.NewNop())
	tests := []struct {
		subject string
		want    string
		ok      bool
	}{
		{"tt.rooms.ABC123.intents", "ABC123", true},
		{"tt.rooms.ABC123.events", "", false},
		{"other.rooms.ABC123.intents", "", false},
		{"tt.rooms..intents", "", false},
		{"tt.rooms.A.B.intents", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			got, ok := b.roomCode(tt.subject)
			if got != tt.want || ok != tt.ok {
				t.Errorf("roomCode(%q) = %q, %v", tt.subject, got, ok)
			}
		})
	}
	if s := b.EventSubject("ABC123"); s != "tt.rooms.ABC123.events" {
		t.Errorf("EventSubject = %q", s)
	}
}

func TestHandle(t *testing.T) {
	b := NewBridge(nil, "", zap.NewNop())
	intent, _ := json.Marshal(shared.Intent{Kind: shared.IntentReadyToggle, PlayerID: "p1"})
	anon, _ := json.Marshal(shared.Intent{Kind: shared.IntentReadyToggle})

	tests := []struct {
		name    string
		subject string
		data    []byte
		err     error
		want    Reply
	}{
		{"accepted", "tabletop.rooms.R1.intents", intent, nil, Reply{OK: true}},
		{"rejected", "tabletop.rooms.R1.intents", intent, errors.New("room not found"), Reply{Error: "room not found"}},
		{"no player", "tabletop.rooms.R1.intents", anon, nil, Reply{Error: "playerId is required"}},
		{"garbage", "tabletop.rooms.R1.intents", []byte("{"), nil, Reply{Error: "malformed message"}},
		{"bad subject", "tabletop.rooms.R1", intent, nil, Reply{Error: "bad subject"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &fakeHandler{err: tt.err}
			got := b.handle(h, &nats.Msg{Subject: tt.subject, Data: tt.data})
			if got != tt.want {
				t.Errorf("reply = %+v, want %+v", got, tt.want)
			}
			if tt.want.OK && (h.code != "R1" || h.in.PlayerID != "p1") {
				t.Errorf("handler got %q %+v", h.code, h.in)
			}
		})
	}
}

// TestBridgeRoundTrip needs a server; set TABLETOP_TEST_NATS_URL to run it.
func TestBridgeRoundTrip(t *testing.T) {
	url := os.Getenv("TABLETOP_TEST_NATS_URL")
	if url == "" {
		t.Skip("TABLETOP_TEST_NATS_URL not set")
	}
	b, err := Connect(url, "test"+time.Now().Format("150405"), zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()
	h := &fakeHandler{}
	if err := b.Serve(h); err != nil {
		t.Fatal(err)
	}

	events := make(chan *nats.Msg, 1)
	sub, err := b.nc.ChanSubscribe(b.EventSubject("R1"), events)
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Unsubscribe()

	st, _ := game.NewEngine(game.DefaultRules(), game.WithSeed(1)).Initialize(game.GoFish, []string{"a", "b"})
	b.Broadcast("R1", shared.Event{Kind: shared.EventGameStarted, State: st})
	select {
	case msg := <-events:
		var ev shared.Event
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			t.Fatal(err)
		}
		for _, c := range ev.State.GoFish.Hands["a"] {
			if c != game.Hidden {
				t.Fatal("published a visible hand")
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event published")
	}

	req, _ := json.Marshal(shared.Intent{Kind: shared.IntentStartGame, PlayerID: "a"})
	resp, err := b.nc.Request(b.IntentSubject("R1"), req, 2*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	var reply Reply
	if err := json.Unmarshal(resp.Data, &reply); err != nil || !reply.OK {
		t.Fatalf("reply = %+v, %v", reply, err)
	}
}
