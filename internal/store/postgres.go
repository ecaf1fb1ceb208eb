package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tabletop-hub/internal/game"
	"tabletop-hub/internal/room"
	"tabletop-hub/internal/shared"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS rooms (
	code       TEXT PRIMARY KEY,
	view       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS games (
	room_code    TEXT PRIMARY KEY,
	state        JSONB NOT NULL,
	current_turn TEXT NOT NULL,
	turn_counter BIGINT NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL
);`

// PostgresStore persists rooms and games with lib/pq. Every game write is a
// transaction that locks the row and checks the turn counter.
type PostgresStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// OpenPostgres connects, pings and migrates.
func OpenPostgres(ctx context.Context, dsn string, logger *zap.Logger) (*PostgresStore, error) {
	connector, err := pq.NewConnector(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres dsn: %w", err)
	}
	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	s := NewPostgresStore(db, logger)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func NewPostgresStore(db *sql.DB, logger *zap.Logger) *PostgresStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresStore{db: db, logger: logger}
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error { return s.db.Close() }

func (s *PostgresStore) SaveRoom(ctx context.Context, r shared.RoomView) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode room: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO rooms (code, view, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (code) DO UPDATE SET view = EXCLUDED.view, updated_at = now()`,
		r.Code, body)
	if err != nil {
		return fmt.Errorf("save room: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteRoom(ctx context.Context, code string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `DELETE FROM games WHERE room_code = $1`, code); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM rooms WHERE code = $1`, code); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return tx.Commit()
}

func (s *PostgresStore) SaveGame(ctx context.Context, rec room.GameRecord) error {
	body, err := json.Marshal(rec.State)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	defer tx.Rollback()

	var stored int64
	err = tx.QueryRowContext(ctx,
		`SELECT turn_counter FROM games WHERE room_code = $1 FOR UPDATE`, rec.RoomCode).Scan(&stored)
	exists := err == nil
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("read turn counter: %w", err)
	}
	if err := checkCounter(stored, exists, rec.TurnCounter); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO games (room_code, state, current_turn, turn_counter, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (room_code) DO UPDATE SET
			state = EXCLUDED.state,
			current_turn = EXCLUDED.current_turn,
			turn_counter = EXCLUDED.turn_counter,
			updated_at = EXCLUDED.updated_at`,
		rec.RoomCode, body, rec.CurrentTurn, rec.TurnCounter, rec.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			s.logger.Error("game upsert failed",
				zap.String("room", rec.RoomCode),
				zap.String("code", string(pqErr.Code)),
				zap.String("detail", pqErr.Detail),
			)
		}
		return fmt.Errorf("save game: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit game: %w", err)
	}
	return nil
}

func (s *PostgresStore) LoadGame(ctx context.Context, code string) (room.GameRecord, bool, error) {
	rec := room.GameRecord{RoomCode: code}
	var body []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT state, current_turn, turn_counter, updated_at FROM games WHERE room_code = $1`, code).
		Scan(&body, &rec.CurrentTurn, &rec.TurnCounter, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return room.GameRecord{}, false, nil
	}
	if err != nil {
		return room.GameRecord{}, false, fmt.Errorf("load game: %w", err)
	}
	var st game.State
	if err := json.Unmarshal(body, &st); err != nil {
		return room.GameRecord{}, false, fmt.Errorf("decode state: %w", err)
	}
	rec.State = &st
	return rec, true, nil
}
