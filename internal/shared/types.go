package shared

import (
	"time"

	"tabletop-hub/internal/game"
)

// Intent kinds a client may send.
const (
	IntentGameMove    = "game_move"
	IntentStartGame   = "start_game"
	IntentReadyToggle = "ready_toggle"
	IntentGameAction  = "game_action"
	IntentChat        = "chat"
	IntentRematch     = "rematch"
)

// Event kinds sent to clients.
const (
	EventGameStarted = "game_started"
	EventGameUpdated = "game_updated"
	EventGameEnded   = "game_ended"
	EventError       = "error"
	EventRoomUpdated = "room_updated"
	EventDrawOffered = "draw_offered"
	EventChat        = "chat"
)

// Game actions carried by a game_action intent.
const (
	ActionForfeit   = "forfeit"
	ActionDrawOffer = "draw_offer"
)

// Intent is one inbound client message. PlayerID is filled in by the
// transport from the authenticated connection when the client omits it.
type Intent struct {
	Kind     string     `json:"kind"`
	PlayerID string     `json:"playerId,omitempty"`
	Move     *game.Move `json:"move,omitempty"`
	Action   string     `json:"action,omitempty"`
	Text     string     `json:"text,omitempty"`
}

// Event is one outbound message. State holds the full game state and is
// redacted per recipient before it leaves the process.
type Event struct {
	Kind        string      `json:"kind"`
	State       *game.State `json:"state,omitempty"`
	CurrentTurn string      `json:"currentTurn,omitempty"`
	Move        *game.Move  `json:"move,omitempty"`
	Reason      string      `json:"reason,omitempty"`
	Winner      string      `json:"winner,omitempty"`
	Message     string      `json:"message,omitempty"`
	Room        *RoomView   `json:"room,omitempty"`
	From        string      `json:"from,omitempty"`
	Text        string      `json:"text,omitempty"`
}

// ForViewer returns a copy of ev whose state only shows viewer's hand.
func (ev Event) ForViewer(viewer string) Event {
	if ev.State != nil {
		ev.State = ev.State.Redacted(viewer)
	}
	return ev
}

type Role string

const (
	RolePlayer    Role = "player"
	RoleBot       Role = "bot"
	RoleSpectator Role = "spectator"
)

type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusPlaying  Status = "playing"
	StatusFinished Status = "finished"
)

type ParticipantView struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Role       Role            `json:"role"`
	Ready      bool            `json:"ready"`
	Difficulty game.Difficulty `json:"difficulty,omitempty"`
}

// RoomView is the public snapshot of a room. It never carries hands.
type RoomView struct {
	Code         string            `json:"code"`
	GameType     game.Type         `json:"gameType"`
	HostID       string            `json:"hostId"`
	Status       Status            `json:"status"`
	Participants []ParticipantView `json:"participants"`
	CurrentTurn  string            `json:"currentTurn,omitempty"`
	TurnCounter  int64             `json:"turnCounter"`
	Winner       string            `json:"winner,omitempty"`
	EndReason    string            `json:"endReason,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// Seated returns the ids of players and bots in seating order.
func (v RoomView) Seated() []string {
	var out []string
	for _, p := range v.Participants {
		if p.Role != RoleSpectator {
			out = append(out, p.ID)
		}
	}
	return out
}
