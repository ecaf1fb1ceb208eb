package room

import (
	"sync"
	"time"

	"tabletop-hub/internal/game"
	"tabletop-hub/internal/shared"
)

type Participant struct {
	ID         string
	Name       string
	Role       shared.Role
	Ready      bool
	Difficulty game.Difficulty
}

func (p *Participant) seated() bool { return p.Role != shared.RoleSpectator }

// Room is one lobby and at most one game. Every field is guarded by mu.
type Room struct {
	mu sync.Mutex

	Code         string
	GameType     game.Type
	HostID       string
	Participants []*Participant
	Status       shared.Status
	State        *game.State
	// TurnCounter counts accepted state changes of the current game.
	TurnCounter int64
	// Epoch changes whenever the game is reset, so a scheduled bot move can
	// tell it belongs to an old game.
	Epoch      int64
	DrawOffers map[string]bool
	CreatedAt  time.Time

	deleted bool
}

func (r *Room) participant(id string) *Participant {
	for _, p := range r.Participants {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *Room) seatedIDs() []string {
	var out []string
	for _, p := range r.Participants {
		if p.seated() {
			out = append(out, p.ID)
		}
	}
	return out
}

func (r *Room) humans() []*Participant {
	var out []*Participant
	for _, p := range r.Participants {
		if p.Role != shared.RoleBot {
			out = append(out, p)
		}
	}
	return out
}

func (r *Room) remove(id string) {
	for i, p := range r.Participants {
		if p.ID == id {
			r.Participants = append(r.Participants[:i], r.Participants[i+1:]...)
			return
		}
	}
}

func (r *Room) view() shared.RoomView {
	v := shared.RoomView{
		Code:         r.Code,
		GameType:     r.GameType,
		HostID:       r.HostID,
		Status:       r.Status,
		TurnCounter:  r.TurnCounter,
		CreatedAt:    r.CreatedAt,
		Participants: make([]shared.ParticipantView, 0, len(r.Participants)),
	}
	for _, p := range r.Participants {
		v.Participants = append(v.Participants, shared.ParticipantView{
			ID:         p.ID,
			Name:       p.Name,
			Role:       p.Role,
			Ready:      p.Ready,
			Difficulty: p.Difficulty,
		})
	}
	if r.State != nil {
		v.CurrentTurn = r.State.CurrentTurn
		v.Winner = r.State.Winner
		v.EndReason = string(r.State.EndReason)
	}
	return v
}
