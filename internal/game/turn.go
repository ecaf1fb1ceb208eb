package game

// nextSeat returns the player seated after id, wrapping after the last seat.
func (s *State) nextSeat(id string) string {
	i := s.seatOf(id)
	if i < 0 {
		return s.Players[0]
	}
	return s.Players[(i+1)%len(s.Players)]
}

func (s *State) advanceTurn() {
	s.CurrentTurn = s.nextSeat(s.CurrentTurn)
}

// opponent is the other seat of a two-player game.
func (s *State) opponent(id string) string {
	if s.seatOf(id) == 0 {
		return s.Players[1]
	}
	return s.Players[0]
}
