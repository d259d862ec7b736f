// Command play runs the dungeon game as an interactive console client.
//
// It plays against a local engine instance, with no server involved. Flags
// select the configuration file or difficulty and where saves are written.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/minidungeon/minidungeon/game/engine"
)

func main() {
	cmd := &cli.Command{
		Name:  "play",
		Usage: "Play the dungeon game in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a game configuration JSON file",
			},
			&cli.IntFlag{
				Name:    "difficulty",
				Aliases: []string{"d"},
				Value:   -1,
				Usage:   "Override difficulty 0-10 (default: from config)",
			},
			&cli.StringFlag{
				Name:    "save-file",
				Aliases: []string{"s"},
				Value:   "dungeon_save.json",
				Usage:   "Path used by the save and load commands",
			},
			&cli.IntFlag{
				Name:  "seed",
				Value: 0,
				Usage: "Map generation seed (0 uses a random seed)",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	config := engine.DefaultGameConfig()
	if path := cmd.String("config"); path != "" {
		loaded, err := engine.LoadGameConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		config = loaded
	}

	if d := cmd.Int("difficulty"); d >= 0 {
		config.Difficulty = int(d)
	}
	if seed := cmd.Int("seed"); seed != 0 {
		config.Seed = int64(seed)
	}

	gameEngine, err := engine.NewEngine(config)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	savePath := cmd.String("save-file")

	fmt.Println("=== Mini Dungeon ===")
	fmt.Println("Reach the ladder (L) on level 2 to win.")
	fmt.Println("Commands: u/d/l/r (or up/down/left/right), b (bomb), save, load, scores, restart, q (quit)")
	fmt.Println()

	render(gameEngine)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if input == "" {
			continue
		}

		switch input {
		case "q", "quit", "exit":
			fmt.Println("Bye.")
			return nil

		case "b", "bomb":
			gameEngine.ActivateBomb()
			render(gameEngine)

		case "save":
			if err := gameEngine.SaveGame(savePath); err != nil {
				fmt.Printf("Save failed: %v\n", err)
			}
			printMessages(gameEngine)

		case "load":
			if err := gameEngine.LoadGame(savePath); err != nil {
				if errors.Is(err, engine.ErrNoSaveFile) {
					printMessages(gameEngine)
				} else {
					fmt.Printf("Load failed: %v\n", err)
				}
				continue
			}
			render(gameEngine)

		case "scores":
			fmt.Println(gameEngine.TopScoresDisplay())

		case "restart":
			gameEngine.StartGame(config.Difficulty)
			render(gameEngine)

		case "help", "?":
			fmt.Println("Commands: u/d/l/r (or up/down/left/right), b (bomb), save, load, scores, restart, q (quit)")

		default:
			if _, ok := engine.NormalizeDirection(input); !ok {
				fmt.Printf("Unknown command: %s (try 'help')\n", input)
				continue
			}
			gameEngine.MovePlayer(input)
			render(gameEngine)

			if gameEngine.Status() != engine.StatusPlaying {
				fmt.Println()
				fmt.Println(gameEngine.TopScoresDisplay())
				fmt.Println("Type 'restart' to play again or 'q' to quit.")
			}
		}
	}

	return scanner.Err()
}

// render prints the map, the status line, and any pending log messages.
func render(e *engine.GameEngine) {
	fmt.Println(e.CurrentMap().Render(e.PlayerPosition()))
	fmt.Println(e.PlayerStatusLine())
	printMessages(e)
}

func printMessages(e *engine.GameEngine) {
	for _, msg := range e.Messages() {
		fmt.Println("  " + msg)
	}
	e.ClearMessages()
}
