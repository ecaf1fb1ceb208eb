package room

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"tabletop-hub/internal/game"
	"tabletop-hub/internal/shared"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Options struct {
	MinBotDelay       time.Duration
	MaxBotDelay       time.Duration
	DefaultDifficulty game.Difficulty
}

// Manager owns every room. It validates lobby changes, runs moves through
// the engine, persists each accepted move before publishing it and drives
// bot seats.
//
// Lock order: m.mu is never held while taking a room's mu.
type Manager struct {
	engine *game.Engine
	store  Store
	bc     Broadcaster
	logger *zap.Logger
	opts   Options

	mu    sync.RWMutex
	rooms map[string]*Room

	bgMu   sync.Mutex
	closed bool
	done   chan struct{}
	wg     sync.WaitGroup
}

func NewManager(engine *game.Engine, s Store, logger *zap.Logger, opts Options) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.DefaultDifficulty == "" {
		opts.DefaultDifficulty = game.Medium
	}
	return &Manager{
		engine: engine,
		store:  s,
		bc:     nopBroadcaster{},
		logger: logger,
		opts:   opts,
		rooms:  map[string]*Room{},
		done:   make(chan struct{}),
	}
}

// SetBroadcaster wires the event sinks. Call it before serving traffic.
func (m *Manager) SetBroadcaster(bc Broadcaster) {
	m.bc = bc
}

// Close stops pending bot turns and waits for running ones.
func (m *Manager) Close() {
	m.bgMu.Lock()
	if !m.closed {
		m.closed = true
		close(m.done)
	}
	m.bgMu.Unlock()
	m.wg.Wait()
}

// lock returns the room with its mutex held.
func (m *Manager) lock(code string) (*Room, error) {
	m.mu.RLock()
	r, ok := m.rooms[strings.ToUpper(code)]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrRoomNotFound
	}
	r.mu.Lock()
	if r.deleted {
		r.mu.Unlock()
		return nil, ErrRoomNotFound
	}
	return r, nil
}

func (m *Manager) CreateRoom(ctx context.Context, gameType, hostName string) (shared.RoomView, shared.ParticipantView, error) {
	t, err := game.ParseType(gameType)
	if err != nil {
		return shared.RoomView{}, shared.ParticipantView{}, err
	}
	host := &Participant{ID: uuid.NewString(), Name: displayName(hostName), Role: shared.RolePlayer}
	r := &Room{
		GameType:     t,
		HostID:       host.ID,
		Participants: []*Participant{host},
		Status:       shared.StatusWaiting,
		DrawOffers:   map[string]bool{},
		CreatedAt:    time.Now().UTC(),
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	m.mu.Lock()
	for {
		code := randCode(6)
		if _, taken := m.rooms[code]; !taken {
			r.Code = code
			break
		}
	}
	m.rooms[r.Code] = r
	m.mu.Unlock()

	if err := m.saveRoom(ctx, r); err != nil {
		m.mu.Lock()
		delete(m.rooms, r.Code)
		m.mu.Unlock()
		return shared.RoomView{}, shared.ParticipantView{}, err
	}
	m.logger.Info("room created", zap.String("room", r.Code), zap.String("game", string(t)))
	return r.view(), participantView(host), nil
}

// Join adds a player, or a spectator when spectator is set. Players can only
// join while the room is waiting and has a free seat.
func (m *Manager) Join(ctx context.Context, code, name string, spectator bool) (shared.RoomView, shared.ParticipantView, error) {
	r, err := m.lock(code)
	if err != nil {
		return shared.RoomView{}, shared.ParticipantView{}, err
	}
	defer r.mu.Unlock()

	p := &Participant{ID: uuid.NewString(), Name: displayName(name), Role: shared.RolePlayer}
	if spectator {
		p.Role = shared.RoleSpectator
	} else if err := m.checkSeat(r); err != nil {
		return shared.RoomView{}, shared.ParticipantView{}, err
	}
	r.Participants = append(r.Participants, p)
	if err := m.saveRoom(ctx, r); err != nil {
		r.remove(p.ID)
		return shared.RoomView{}, shared.ParticipantView{}, err
	}
	m.logger.Info("participant joined", zap.String("room", r.Code), zap.String("participant", p.ID), zap.String("role", string(p.Role)))
	m.announceRoom(r)
	return r.view(), participantView(p), nil
}

func (m *Manager) checkSeat(r *Room) error {
	if r.Status != shared.StatusWaiting {
		return ErrGameInProgress
	}
	if _, max := game.PlayerLimits(r.GameType); len(r.seatedIDs()) >= max {
		return ErrRoomFull
	}
	return nil
}

// AddBot seats a bot. An empty difficulty uses the configured default.
func (m *Manager) AddBot(ctx context.Context, code, requesterID, difficulty string) (shared.RoomView, shared.ParticipantView, error) {
	r, err := m.lock(code)
	if err != nil {
		return shared.RoomView{}, shared.ParticipantView{}, err
	}
	defer r.mu.Unlock()

	if requesterID != r.HostID {
		return shared.RoomView{}, shared.ParticipantView{}, ErrNotHost
	}
	d := m.opts.DefaultDifficulty
	if difficulty != "" {
		if d, err = game.ParseDifficulty(difficulty); err != nil {
			return shared.RoomView{}, shared.ParticipantView{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
		}
	}
	if err := m.checkSeat(r); err != nil {
		return shared.RoomView{}, shared.ParticipantView{}, err
	}
	bot := &Participant{
		ID:         "bot-" + uuid.NewString(),
		Name:       fmt.Sprintf("Bot %d", len(r.seatedIDs())+1),
		Role:       shared.RoleBot,
		Ready:      true,
		Difficulty: d,
	}
	r.Participants = append(r.Participants, bot)
	if err := m.saveRoom(ctx, r); err != nil {
		r.remove(bot.ID)
		return shared.RoomView{}, shared.ParticipantView{}, err
	}
	m.announceRoom(r)
	return r.view(), participantView(bot), nil
}

func (m *Manager) ToggleReady(ctx context.Context, code, playerID string) (shared.RoomView, error) {
	r, err := m.lock(code)
	if err != nil {
		return shared.RoomView{}, err
	}
	defer r.mu.Unlock()

	p := r.participant(playerID)
	switch {
	case p == nil || p.Role == shared.RoleBot:
		return shared.RoomView{}, ErrNotParticipant
	case p.Role == shared.RoleSpectator:
		return shared.RoomView{}, ErrSpectator
	case r.Status != shared.StatusWaiting:
		return shared.RoomView{}, ErrGameInProgress
	}
	p.Ready = !p.Ready
	if err := m.saveRoom(ctx, r); err != nil {
		p.Ready = !p.Ready
		return shared.RoomView{}, err
	}
	m.announceRoom(r)
	return r.view(), nil
}

// StartGame deals the game once the seat count fits the game type and every
// seat is ready. Seats play in join order.
func (m *Manager) StartGame(ctx context.Context, code, requesterID string) error {
	r, err := m.lock(code)
	if err != nil {
		return err
	}
	defer r.mu.Unlock()

	if requesterID != r.HostID {
		return ErrNotHost
	}
	if r.Status != shared.StatusWaiting {
		return ErrGameInProgress
	}
	seats := r.seatedIDs()
	if min, max := game.PlayerLimits(r.GameType); len(seats) < min || len(seats) > max {
		return fmt.Errorf("%w: %s needs %d to %d players, have %d", ErrNotReady, r.GameType, min, max, len(seats))
	}
	for _, id := range seats {
		if p := r.participant(id); !p.Ready {
			return fmt.Errorf("%w: %s is not ready", ErrNotReady, p.Name)
		}
	}

	s, err := m.engine.Initialize(r.GameType, seats)
	if err != nil {
		return err
	}
	rec := GameRecord{RoomCode: r.Code, State: s, CurrentTurn: s.CurrentTurn, UpdatedAt: time.Now().UTC()}
	if err := m.store.SaveGame(ctx, rec); err != nil {
		return fmt.Errorf("save game %s: %w", r.Code, err)
	}
	r.State = s
	r.TurnCounter = 0
	r.Status = shared.StatusPlaying
	clear(r.DrawOffers)
	m.saveRoomLogged(ctx, r)

	m.logger.Info("game started", zap.String("room", r.Code), zap.String("game", string(r.GameType)), zap.Int("seats", len(seats)))
	m.bc.Broadcast(r.Code, shared.Event{Kind: shared.EventGameStarted, State: s, CurrentTurn: s.CurrentTurn})
	m.announceRoom(r)
	m.scheduleBot(r)
	return nil
}

// SubmitMove applies a human move. The engine checks turn order and rules;
// a rejected move leaves the room untouched.
func (m *Manager) SubmitMove(ctx context.Context, code, playerID string, mv game.Move) error {
	r, err := m.lock(code)
	if err != nil {
		return err
	}
	defer r.mu.Unlock()

	if err := seatedPlayer(r, playerID); err != nil {
		return err
	}
	if r.State == nil {
		return ErrNoGame
	}
	next, err := m.engine.ProcessMove(r.State, mv, playerID)
	if err != nil {
		return err
	}
	return m.advance(ctx, r, &mv, next)
}

// GameAction handles forfeits and draw offers. A draw is agreed once every
// seat has offered; bots never offer.
func (m *Manager) GameAction(ctx context.Context, code, playerID, action string) error {
	r, err := m.lock(code)
	if err != nil {
		return err
	}
	defer r.mu.Unlock()

	if err := seatedPlayer(r, playerID); err != nil {
		return err
	}
	if r.State == nil || r.Status != shared.StatusPlaying {
		return ErrNoGame
	}

	switch action {
	case shared.ActionForfeit:
		next, err := m.engine.Forfeit(r.State, playerID)
		if err != nil {
			return err
		}
		return m.advance(ctx, r, nil, next)
	case shared.ActionDrawOffer:
		r.DrawOffers[playerID] = true
		for _, id := range r.seatedIDs() {
			if !r.DrawOffers[id] {
				m.bc.Broadcast(r.Code, shared.Event{Kind: shared.EventDrawOffered, From: playerID})
				return nil
			}
		}
		next, err := m.engine.AgreeDraw(r.State)
		if err != nil {
			return err
		}
		return m.advance(ctx, r, nil, next)
	}
	return fmt.Errorf("%w: unknown action %q", ErrInvalidRequest, action)
}

// Rematch returns a finished room to the lobby. Humans must ready up again.
func (m *Manager) Rematch(ctx context.Context, code, requesterID string) (shared.RoomView, error) {
	r, err := m.lock(code)
	if err != nil {
		return shared.RoomView{}, err
	}
	defer r.mu.Unlock()

	if requesterID != r.HostID {
		return shared.RoomView{}, ErrNotHost
	}
	switch r.Status {
	case shared.StatusPlaying:
		return shared.RoomView{}, ErrGameInProgress
	case shared.StatusWaiting:
		return shared.RoomView{}, ErrNoGame
	}
	r.reset()
	if err := m.saveRoom(ctx, r); err != nil {
		return shared.RoomView{}, err
	}
	m.announceRoom(r)
	return r.view(), nil
}

func (r *Room) reset() {
	r.Epoch++
	r.State = nil
	r.TurnCounter = 0
	r.Status = shared.StatusWaiting
	clear(r.DrawOffers)
	for _, p := range r.Participants {
		if p.Role == shared.RolePlayer {
			p.Ready = false
		}
	}
}

// Leave removes a participant. A seat leaving a running game forfeits it.
// The host role passes to the next human and the room closes when no
// human is left.
func (m *Manager) Leave(ctx context.Context, code, participantID string) error {
	r, err := m.lock(code)
	if err != nil {
		return err
	}
	defer r.mu.Unlock()

	p := r.participant(participantID)
	if p == nil || p.Role == shared.RoleBot {
		return ErrNotParticipant
	}
	if p.seated() && r.Status == shared.StatusPlaying && r.State != nil && !r.State.GameOver {
		next, err := m.engine.Forfeit(r.State, p.ID)
		if err != nil {
			return err
		}
		if err := m.advance(ctx, r, nil, next); err != nil {
			return err
		}
	}
	r.remove(p.ID)
	delete(r.DrawOffers, p.ID)

	humans := r.humans()
	if len(humans) == 0 {
		return m.deleteRoom(ctx, r)
	}
	if r.HostID == p.ID {
		r.HostID = humans[0].ID
	}
	m.logger.Info("participant left", zap.String("room", r.Code), zap.String("participant", p.ID))
	m.saveRoomLogged(ctx, r)
	m.announceRoom(r)
	return nil
}

func (m *Manager) deleteRoom(ctx context.Context, r *Room) error {
	r.deleted = true
	r.Epoch++
	m.mu.Lock()
	delete(m.rooms, r.Code)
	m.mu.Unlock()
	m.logger.Info("room closed", zap.String("room", r.Code))
	if err := m.store.DeleteRoom(ctx, r.Code); err != nil {
		return fmt.Errorf("delete room %s: %w", r.Code, err)
	}
	return nil
}

const maxChatLen = 500

// Chat relays a message from any participant to the room.
func (m *Manager) Chat(code, from, text string) error {
	text = strings.TrimSpace(text)
	if text == "" || utf8.RuneCountInString(text) > maxChatLen {
		return fmt.Errorf("%w: chat messages need 1 to %d characters", ErrInvalidRequest, maxChatLen)
	}
	r, err := m.lock(code)
	if err != nil {
		return err
	}
	defer r.mu.Unlock()

	if r.participant(from) == nil {
		return ErrNotParticipant
	}
	m.bc.Broadcast(r.Code, shared.Event{Kind: shared.EventChat, From: from, Text: text})
	return nil
}

// HandleIntent dispatches one client intent. PlayerID must already be set.
func (m *Manager) HandleIntent(ctx context.Context, code string, in shared.Intent) error {
	switch in.Kind {
	case shared.IntentGameMove:
		if in.Move == nil {
			return fmt.Errorf("%w: game_move without a move", ErrInvalidRequest)
		}
		return m.SubmitMove(ctx, code, in.PlayerID, *in.Move)
	case shared.IntentStartGame:
		return m.StartGame(ctx, code, in.PlayerID)
	case shared.IntentReadyToggle:
		_, err := m.ToggleReady(ctx, code, in.PlayerID)
		return err
	case shared.IntentGameAction:
		return m.GameAction(ctx, code, in.PlayerID, in.Action)
	case shared.IntentChat:
		return m.Chat(code, in.PlayerID, in.Text)
	case shared.IntentRematch:
		_, err := m.Rematch(ctx, code, in.PlayerID)
		return err
	}
	return fmt.Errorf("%w: unknown intent %q", ErrInvalidRequest, in.Kind)
}

func (m *Manager) Get(code string) (shared.RoomView, bool) {
	r, err := m.lock(code)
	if err != nil {
		return shared.RoomView{}, false
	}
	defer r.mu.Unlock()
	return r.view(), true
}

// List returns every open room, oldest first.
func (m *Manager) List() []shared.RoomView {
	m.mu.RLock()
	rooms := make([]*Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		rooms = append(rooms, r)
	}
	m.mu.RUnlock()

	out := make([]shared.RoomView, 0, len(rooms))
	for _, r := range rooms {
		r.mu.Lock()
		if !r.deleted {
			out = append(out, r.view())
		}
		r.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Code < out[j].Code
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// State returns the live game as viewer may see it. Unknown viewers get the
// spectator view.
func (m *Manager) State(code, viewer string) (*game.State, error) {
	r, err := m.lock(code)
	if err != nil {
		return nil, err
	}
	defer r.mu.Unlock()

	if r.State == nil {
		return nil, ErrNoGame
	}
	if r.participant(viewer) == nil {
		viewer = ""
	}
	return r.State.Redacted(viewer), nil
}

// Snapshot reads the last persisted record of the room's game.
func (m *Manager) Snapshot(ctx context.Context, code, viewer string) (GameRecord, error) {
	r, err := m.lock(code)
	if err != nil {
		return GameRecord{}, err
	}
	if r.participant(viewer) == nil {
		viewer = ""
	}
	code = r.Code
	r.mu.Unlock()

	rec, ok, err := m.store.LoadGame(ctx, code)
	if err != nil {
		return GameRecord{}, fmt.Errorf("load game %s: %w", code, err)
	}
	if !ok {
		return GameRecord{}, ErrNoGame
	}
	rec.State = rec.State.Redacted(viewer)
	return rec, nil
}

// PossibleMoves lists the legal moves of playerID, which is empty unless it
// is that player's turn.
func (m *Manager) PossibleMoves(code, playerID string) ([]game.Move, error) {
	r, err := m.lock(code)
	if err != nil {
		return nil, err
	}
	defer r.mu.Unlock()

	if err := seatedPlayer(r, playerID); err != nil {
		return nil, err
	}
	if r.State == nil {
		return nil, ErrNoGame
	}
	if r.State.CurrentTurn != playerID {
		return []game.Move{}, nil
	}
	moves := m.engine.LegalMoves(r.State)
	if moves == nil {
		moves = []game.Move{}
	}
	return moves, nil
}

// advance persists next, swaps it in and publishes it. The caller holds r.mu.
func (m *Manager) advance(ctx context.Context, r *Room, mv *game.Move, next *game.State) error {
	rec := GameRecord{
		RoomCode:    r.Code,
		State:       next,
		CurrentTurn: next.CurrentTurn,
		TurnCounter: r.TurnCounter + 1,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := m.store.SaveGame(ctx, rec); err != nil {
		return fmt.Errorf("save game %s: %w", r.Code, err)
	}
	r.State = next
	r.TurnCounter = rec.TurnCounter
	if mv != nil {
		clear(r.DrawOffers)
	}

	m.bc.Broadcast(r.Code, shared.Event{Kind: shared.EventGameUpdated, State: next, CurrentTurn: next.CurrentTurn, Move: mv})
	if !next.GameOver {
		m.scheduleBot(r)
		return nil
	}
	r.Status = shared.StatusFinished
	m.logger.Info("game ended",
		zap.String("room", r.Code),
		zap.String("reason", string(next.EndReason)),
		zap.String("winner", next.Winner),
		zap.Int64("turns", r.TurnCounter),
	)
	m.bc.Broadcast(r.Code, shared.Event{Kind: shared.EventGameEnded, Reason: string(next.EndReason), Winner: next.Winner})
	m.saveRoomLogged(ctx, r)
	m.announceRoom(r)
	return nil
}

// scheduleBot starts the delayed turn of a bot seat. The caller holds r.mu.
func (m *Manager) scheduleBot(r *Room) {
	if r.State == nil || r.State.GameOver {
		return
	}
	if p := r.participant(r.State.CurrentTurn); p == nil || p.Role != shared.RoleBot {
		return
	}
	epoch, turn := r.Epoch, r.TurnCounter
	delay := m.botDelay()

	m.bgMu.Lock()
	if m.closed {
		m.bgMu.Unlock()
		return
	}
	m.wg.Add(1)
	m.bgMu.Unlock()

	go func() {
		defer m.wg.Done()
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-m.done:
			return
		case <-timer.C:
		}
		m.playBot(r, epoch, turn)
	}()
}

func (m *Manager) playBot(r *Room, epoch, turn int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.deleted || r.Epoch != epoch || r.TurnCounter != turn || r.State == nil || r.State.GameOver {
		m.logger.Debug("dropping stale bot turn", zap.String("room", r.Code), zap.Int64("turn", turn))
		return
	}
	bot := r.participant(r.State.CurrentTurn)
	if bot == nil || bot.Role != shared.RoleBot {
		return
	}

	var (
		next *game.State
		err  error
	)
	mv, ok := m.engine.SelectMove(r.State, bot.Difficulty)
	if ok {
		next, err = m.engine.ProcessMove(r.State, *mv, bot.ID)
	} else {
		next, err = m.engine.SkipTurn(r.State)
	}
	if err != nil {
		m.logger.Error("bot move rejected", zap.String("room", r.Code), zap.String("bot", bot.ID), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := m.advance(ctx, r, mv, next); err != nil {
		m.logger.Error("bot move not saved", zap.String("room", r.Code), zap.String("bot", bot.ID), zap.Error(err))
	}
}

func (m *Manager) botDelay() time.Duration {
	lo, hi := m.opts.MinBotDelay, m.opts.MaxBotDelay
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(rand.Int63n(int64(hi-lo)+1))
}

func (m *Manager) saveRoom(ctx context.Context, r *Room) error {
	if err := m.store.SaveRoom(ctx, r.view()); err != nil {
		return fmt.Errorf("save room %s: %w", r.Code, err)
	}
	return nil
}

// saveRoomLogged is used once the game record is already committed, where a
// failed room snapshot must not undo the move.
func (m *Manager) saveRoomLogged(ctx context.Context, r *Room) {
	if err := m.saveRoom(ctx, r); err != nil {
		m.logger.Warn("room snapshot not saved", zap.String("room", r.Code), zap.Error(err))
	}
}

func (m *Manager) announceRoom(r *Room) {
	v := r.view()
	m.bc.Broadcast(r.Code, shared.Event{Kind: shared.EventRoomUpdated, Room: &v})
}

// seatedPlayer checks that id is a human seat. Bot seats are only driven
// by the manager.
func seatedPlayer(r *Room, id string) error {
	p := r.participant(id)
	if p == nil || p.Role == shared.RoleBot {
		return ErrNotParticipant
	}
	if !p.seated() {
		return ErrSpectator
	}
	return nil
}

func participantView(p *Participant) shared.ParticipantView {
	return shared.ParticipantView{ID: p.ID, Name: p.Name, Role: p.Role, Ready: p.Ready, Difficulty: p.Difficulty}
}

const maxNameLen = 32

func displayName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Player"
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		name = string([]rune(name)[:maxNameLen])
	}
	return name
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
