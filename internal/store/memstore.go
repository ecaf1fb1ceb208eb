package store

import (
	"context"
	"fmt"
	"sync"

	"tabletop-hub/internal/room"
	"tabletop-hub/internal/shared"
)

// MemoryStore keeps rooms and games in process. States are cloned on the
// way in and out so callers never share them.
type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[string]shared.RoomView
	games map[string]room.GameRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms: map[string]shared.RoomView{},
		games: map[string]room.GameRecord{},
	}
}

func (m *MemoryStore) SaveRoom(_ context.Context, r shared.RoomView) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.Participants = append([]shared.ParticipantView(nil), r.Participants...)
	m.rooms[r.Code] = r
	return nil
}

func (m *MemoryStore) DeleteRoom(_ context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rooms, code)
	delete(m.games, code)
	return nil
}

func (m *MemoryStore) SaveGame(_ context.Context, rec room.GameRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, ok := m.games[rec.RoomCode]
	if err := checkCounter(prev.TurnCounter, ok, rec.TurnCounter); err != nil {
		return err
	}
	rec.State = rec.State.Clone()
	m.games[rec.RoomCode] = rec
	return nil
}

func (m *MemoryStore) LoadGame(_ context.Context, code string) (room.GameRecord, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.games[code]
	if !ok {
		return room.GameRecord{}, false, nil
	}
	rec.State = rec.State.Clone()
	return rec, true, nil
}

// checkCounter accepts a new game (counter 0) or the direct successor of
// the stored counter.
func checkCounter(stored int64, exists bool, next int64) error {
	if next == 0 {
		return nil
	}
	if !exists {
		return fmt.Errorf("%w: no game stored, got %d", room.ErrStaleTurn, next)
	}
	if next != stored+1 {
		return fmt.Errorf("%w: stored %d, got %d", room.ErrStaleTurn, stored, next)
	}
	return nil
}
