package game

import "testing"

func TestEasyBotPlaysLegalMoves(t *testing.T) {
	tests := []struct {
		gameType Type
		seats    int
	}{
		{Chess, 2},
		{Checkers, 2},
		{Hearts, 4},
		{Spades, 4},
		{CrazyEights, 3},
		{GoFish, 3},
	}
	for _, tt := range tests {
		t.Run(string(tt.gameType), func(t *testing.T) {
			e := seeded(17)
			s, err := e.Initialize(tt.gameType, players(tt.seats))
			if err != nil {
				t.Fatal(err)
			}
			legal := map[string]bool{}
			for _, m := range e.LegalMoves(s) {
				legal[m.String()] = true
			}
			for i := 0; i < 100; i++ {
				m, ok := e.SelectMove(s, Easy)
				if !ok {
					t.Fatalf("no move selected")
				}
				if tt.gameType != Spades && !legal[m.String()] {
					t.Fatalf("selected %s outside the legal set", m)
				}
				if _, err := e.ProcessMove(s, *m, s.CurrentTurn); err != nil {
					t.Fatalf("selected move %s rejected: %v", m, err)
				}
			}
		})
	}
}

func TestMediumBotPrefersCaptures(t *testing.T) {
	e := seeded(3)
	s := chessPosition(map[string]Piece{"e1": "wK", "e8": "bK", "d1": "wQ", "d5": "bN"}, 0)
	for i := 0; i < 20; i++ {
		m, ok := e.SelectMove(s, Medium)
		if !ok {
			t.Fatal("no move selected")
		}
		if *m.Data.To != sq("d5") {
			t.Fatalf("medium bot played %s instead of taking the knight", m)
		}
	}
}

func TestMediumBotDucksInHearts(t *testing.T) {
	e := seeded(3)
	s := heartsPosition(map[string][]Card{
		"n": {}, "e": {"2♣", "K♣"}, "s": {"3♦"}, "w": {"4♦"},
	}, 3)
	s.CurrentTurn = "e"
	s.Hearts.Trick = []TrickPlay{{Player: "n", Card: "10♣"}}
	s.Hearts.LeadSuit = SuitClubs
	for i := 0; i < 20; i++ {
		m, _ := e.SelectMove(s, Medium)
		if m.Data.Card != "2♣" {
			t.Fatalf("medium bot played %s over the ten", m.Data.Card)
		}
	}
}

func TestHardBotChess(t *testing.T) {
	e := seeded(1)
	s, _ := e.Initialize(Chess, players(2))
	m, ok := e.SelectMove(s, Hard)
	if !ok {
		t.Fatal("no move selected")
	}
	if *m.Data.From != sq("d2") || *m.Data.To != sq("d4") {
		t.Errorf("opening = %s, want d2-d4", m)
	}

	capture := chessPosition(map[string]Piece{"e1": "wK", "e8": "bK", "a1": "wR", "a7": "bP"}, 0)
	m, _ = e.SelectMove(capture, Hard)
	if *m.Data.To != sq("a7") {
		t.Errorf("hard bot played %s instead of the capture", m)
	}
}

func TestCheckersBotsCapture(t *testing.T) {
	single := map[Square]Piece{
		{Row: 5, Col: 2}: "r", {Row: 4, Col: 3}: "b", {Row: 5, Col: 6}: "r", {Row: 0, Col: 1}: "b",
	}
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		m, ok := seeded(1).SelectMove(checkersPosition(single, 0), d)
		if !ok || *m.Data.From != (Square{Row: 5, Col: 2}) || *m.Data.To != (Square{Row: 3, Col: 4}) {
			t.Errorf("%s bot skipped the forced capture: %v", d, m)
		}
	}

	chains := map[Square]Piece{
		{Row: 5, Col: 0}: "r", {Row: 4, Col: 1}: "b", {Row: 2, Col: 3}: "b",
		{Row: 6, Col: 7}: "r", {Row: 5, Col: 6}: "b",
	}
	m, _ := seeded(1).SelectMove(checkersPosition(chains, 0), Hard)
	if *m.Data.From != (Square{Row: 5, Col: 0}) {
		t.Errorf("hard bot chose %s over the double jump", m)
	}
}

func TestBotBidsAndPasses(t *testing.T) {
	e := seeded(8)
	s, _ := e.Initialize(Spades, players(4))
	want := SpadesBid(s.Spades.Hands[s.CurrentTurn])
	for _, d := range []Difficulty{Easy, Medium, Hard} {
		m, ok := e.SelectMove(s, d)
		if !ok || m.Kind != KindBid || *m.Data.Bid != want {
			t.Errorf("%s bid = %v, want %d", d, m, want)
		}
	}

	h, _ := e.Initialize(Hearts, players(4))
	m, _ := e.SelectMove(h, Hard)
	if m.Kind != KindPassCards || len(m.Data.Cards) != 3 {
		t.Fatalf("hard pass = %v", m)
	}
}

func TestSpadesBid(t *testing.T) {
	allSpades := make([]Card, 0, 13)
	for _, r := range Ranks {
		allSpades = append(allSpades, NewCard(r, SuitSpades))
	}
	tests := []struct {
		name string
		hand []Card
		want int
	}{
		{"empty hand bids one", nil, 1},
		{"four spades and two honours", []Card{"2♠", "3♠", "4♠", "5♠", "A♥", "K♦", "3♣"}, 3},
		{"every spade", allSpades, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpadesBid(tt.hand); got != tt.want {
				t.Errorf("SpadesBid = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHeartsPassChoice(t *testing.T) {
	got := heartsPassChoice([]Card{"2♣", "3♣", "Q♠", "A♥", "K♠", "5♦"})
	want := []Card{"Q♠", "K♠", "A♥"}
	if !equalCards(got, want) {
		t.Errorf("pass = %v, want %v", got, want)
	}
}

func TestSelectMoveWhenFinished(t *testing.T) {
	e := seeded(1)
	s, _ := e.Initialize(Chess, players(2))
	over, _ := e.AgreeDraw(s)
	if m, ok := e.SelectMove(over, Hard); ok {
		t.Errorf("finished game produced move %s", m)
	}
}
