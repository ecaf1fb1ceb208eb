package game

type TrickPlay struct {
	Player string `json:"player"`
	Card   Card   `json:"card"`
}

// trickWinner returns the seat that takes trick. trump may be empty.
func trickWinner(trick []TrickPlay, lead, trump string) string {
	best := trick[0]
	for _, tp := range trick[1:] {
		if beats(tp.Card, best.Card, lead, trump) {
			best = tp
		}
	}
	return best.Player
}

// beats reports whether c wins over the current best card.
func beats(c, best Card, lead, trump string) bool {
	cs, bs := c.Suit(), best.Suit()
	if trump != "" && cs == trump && bs != trump {
		return true
	}
	if cs != bs {
		return false
	}
	if cs != lead && cs != trump {
		return false
	}
	return trickValue(c) > trickValue(best)
}

func trickCards(trick []TrickPlay) []Card {
	out := make([]Card, 0, len(trick))
	for _, tp := range trick {
		out = append(out, tp.Card)
	}
	return out
}

// followable filters hand down to the cards a seat may play to the trick.
// mustLead names a card that has to open the trick, leadBlocked a suit that
// may not be led until broken.
func followable(hand []Card, trick []TrickPlay, lead, mustLead, leadBlocked string) []Card {
	if len(trick) == 0 {
		if mustLead != "" && hasCard(hand, Card(mustLead)) {
			return []Card{Card(mustLead)}
		}
		if leadBlocked != "" && !onlySuit(hand, leadBlocked) {
			var out []Card
			for _, c := range hand {
				if c.Suit() != leadBlocked {
					out = append(out, c)
				}
			}
			return out
		}
		return append([]Card(nil), hand...)
	}
	if !hasSuit(hand, lead) {
		return append([]Card(nil), hand...)
	}
	var out []Card
	for _, c := range hand {
		if c.Suit() == lead {
			out = append(out, c)
		}
	}
	return out
}

// checkFollow validates card against the trick-taking rules.
func checkFollow(hand []Card, card Card, trick []TrickPlay, lead, mustLead, leadBlocked string) error {
	for _, c := range followable(hand, trick, lead, mustLead, leadBlocked) {
		if c == card {
			return nil
		}
	}
	switch {
	case len(trick) > 0:
		return illegal("you must follow %s", lead)
	case mustLead != "" && hasCard(hand, Card(mustLead)):
		return illegal("the first trick must be led with %s", mustLead)
	default:
		return illegal("%s has not been broken", leadBlocked)
	}
}
