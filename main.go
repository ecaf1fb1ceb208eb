package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"tabletop-hub/internal/game"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "tabletop",
		Usage: "play chess or checkers against a bot in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "game", Value: "chess", Usage: "chess or checkers"},
			&cli.StringFlag{Name: "difficulty", Value: "medium", Usage: "bot difficulty: easy, medium or hard"},
			&cli.Int64Flag{Name: "seed", Usage: "random seed for bot choices (default: time based)"},
		},
		Action: play,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func play(c *cli.Context) error {
	t, err := game.ParseType(c.String("game"))
	if err != nil || (t != game.Chess && t != game.Checkers) {
		return cli.Exit("console play supports chess and checkers", 2)
	}
	d, err := game.ParseDifficulty(c.String("difficulty"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engine := game.NewEngine(game.DefaultRules(), game.WithSeed(seed))
	s, err := engine.Initialize(t, []string{"you", "cpu"})
	if err != nil {
		return err
	}

	kind := game.KindChessMove
	if t == game.Checkers {
		kind = game.KindCheckersMove
	}
	reader := bufio.NewReader(os.Stdin)
	for !s.GameOver {
		fmt.Printf("\nTurn %d: %s\n", s.MoveCount+1, s.CurrentTurn)
		printBoard(board(s))

		if s.CurrentTurn == "cpu" {
			mv, ok := engine.SelectMove(s, d)
			if !ok {
				fmt.Println("Bot has no move.")
				break
			}
			next, err := engine.ProcessMove(s, *mv, "cpu")
			if err != nil {
				return fmt.Errorf("bot move rejected: %w", err)
			}
			fmt.Println("Bot plays:", mv)
			s = next
			continue
		}

		fmt.Println("Enter a move as two squares (e.g. e2 e4), or quit")
		for {
			fmt.Print("> ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return nil
			}
			parts := strings.Fields(line)
			if len(parts) == 1 && parts[0] == "quit" {
				return nil
			}
			if len(parts) != 2 {
				fmt.Println("Wrong format. Try again.")
				continue
			}
			from, err1 := game.ParseSquare(parts[0])
			to, err2 := game.ParseSquare(parts[1])
			if err1 != nil || err2 != nil {
				fmt.Println("Unknown square. Try again.")
				continue
			}
			next, err := engine.ProcessMove(s, game.Move{Kind: kind, Data: game.MoveData{From: &from, To: &to}}, "you")
			if err != nil {
				fmt.Println("Invalid move:", err)
				continue
			}
			s = next
			break
		}
	}

	fmt.Println("\nGame over!")
	printBoard(board(s))
	js, _ := json.MarshalIndent(struct {
		Winner    string         `json:"winner"`
		EndReason game.EndReason `json:"endReason"`
		Moves     int            `json:"moves"`
	}{s.Winner, s.EndReason, s.MoveCount}, "", "  ")
	fmt.Println(string(js))
	return nil
}

func board(s *game.State) *game.Board {
	if s.Chess != nil {
		return &s.Chess.Board
	}
	return &s.Checkers.Board
}

func printBoard(b *game.Board) {
	for r := 0; r < 8; r++ {
		fmt.Printf("%d ", 8-r)
		for c := 0; c < 8; c++ {
			if p := b[r][c]; p == game.Empty {
				fmt.Print(". ")
			} else {
				fmt.Printf("%s ", p)
			}
		}
		fmt.Println()
	}
	fmt.Println("  a b c d e f g h")
}
