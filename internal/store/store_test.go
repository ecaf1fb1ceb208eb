package store

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"tabletop-hub/internal/game"
	"tabletop-hub/internal/room"
	"tabletop-hub/internal/shared"

	"go.uber.org/zap"
)

var _ room.Store = (*MemoryStore)(nil)
var _ room.Store = (*PostgresStore)(nil)

func newState(t *testing.T) *game.State {
	t.Helper()
	s, err := game.NewEngine(game.DefaultRules(), game.WithSeed(3)).Initialize(game.GoFish, []string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// exerciseStore runs the behaviour every room.Store must share.
func exerciseStore(t *testing.T, s room.Store, code string) {
	ctx := context.Background()
	st := newState(t)
	rec := func(n int64) room.GameRecord {
		return room.GameRecord{RoomCode: code, State: st, CurrentTurn: st.CurrentTurn, TurnCounter: n, UpdatedAt: time.Now().UTC().Truncate(time.Millisecond)}
	}

	if err := s.SaveRoom(ctx, shared.RoomView{Code: code, GameType: game.GoFish, Status: shared.StatusWaiting}); err != nil {
		t.Fatalf("SaveRoom: %v", err)
	}
	if _, ok, err := s.LoadGame(ctx, code); ok || err != nil {
		t.Fatalf("LoadGame before save = %v, %v", ok, err)
	}

	steps := []struct {
		name    string
		counter int64
		stale   bool
	}{
		{"successor without game", 1, true},
		{"new game", 0, false},
		{"first move", 1, false},
		{"replayed move", 1, true},
		{"skipped counter", 3, true},
		{"second move", 2, false},
		{"restart", 0, false},
		{"move after restart", 1, false},
	}
	for _, tt := range steps {
		err := s.SaveGame(ctx, rec(tt.counter))
		if tt.stale != errors.Is(err, room.ErrStaleTurn) || (!tt.stale && err != nil) {
			t.Fatalf("%s: SaveGame(%d) err = %v", tt.name, tt.counter, err)
		}
	}

	got, ok, err := s.LoadGame(ctx, code)
	if err != nil || !ok {
		t.Fatalf("LoadGame = %v, %v", ok, err)
	}
	if got.TurnCounter != 1 || got.CurrentTurn != st.CurrentTurn || got.State.Type != game.GoFish {
		t.Errorf("loaded %+v", got)
	}
	if len(got.State.Cards()) != 52 {
		t.Errorf("loaded state holds %d cards", len(got.State.Cards()))
	}

	if err := s.DeleteRoom(ctx, code); err != nil {
		t.Fatalf("DeleteRoom: %v", err)
	}
	if _, ok, _ := s.LoadGame(ctx, code); ok {
		t.Error("game survived DeleteRoom")
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore(), "MEM001")
}

func TestMemoryStoreCopiesState(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	st := newState(t)
	if err := m.SaveGame(ctx, room.GameRecord{RoomCode: "C", State: st}); err != nil {
		t.Fatal(err)
	}
	st.CurrentTurn = "mutated"
	got, _, _ := m.LoadGame(ctx, "C")
	if got.State.CurrentTurn == "mutated" {
		t.Fatal("store shares the caller's state")
	}
	got.State.CurrentTurn = "again"
	again, _, _ := m.LoadGame(ctx, "C")
	if again.State.CurrentTurn == "again" {
		t.Fatal("store shares the returned state")
	}
}

// TestPostgresStore needs a database; set TABLETOP_TEST_DATABASE_URL to run it.
func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("TABLETOP_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TABLETOP_TEST_DATABASE_URL not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s, err := OpenPostgres(ctx, dsn, zap.NewNop())
	if err != nil {
		t.Fatalf("OpenPostgres: %v", err)
	}
	defer s.Close()
	exerciseStore(t, s, "PGT"+time.Now().Format("150405"))
}

func TestOpenPostgresBadDSN(t *testing.T) {
	if _, err := OpenPostgres(context.Background(), "postgres://%zz", zap.NewNop()); err == nil {
		t.Fatal("expected an error for a malformed dsn")
	}
}
