package room

import "tabletop-hub/internal/shared"

// Broadcaster delivers room events. Implementations redact Event.State for
// each recipient and must not block or call back into the Manager.
type Broadcaster interface {
	Broadcast(roomCode string, ev shared.Event)
}

// Broadcasters fans every event out to each member.
type Broadcasters []Broadcaster

func (bs Broadcasters) Broadcast(roomCode string, ev shared.Event) {
	for _, b := range bs {
		b.Broadcast(roomCode, ev)
	}
}

type nopBroadcaster struct{}

func (nopBroadcaster) Broadcast(string, shared.Event) {}
