// Package pgn extracts playable game records from PGN files.
//
// Extraction leans on notnil/chess for the PGN grammar itself; its only
// job here is turning foreign input into record strings the replay
// engine consumes. The engine never delegates move resolution to it.
package pgn

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/notnil/chess"
)

// Game is one extracted game: the record string the replay engine
// consumes plus the tags worth cataloging.
type Game struct {
	White  string
	Black  string
	Event  string
	Record string
	Plies  int
}

// ExtractGames reads every game from a PGN stream, in order. Games that
// fail to parse are skipped rather than failing the whole stream; a
// large database dump almost always contains a few broken games.
func ExtractGames(r io.Reader) ([]Game, error) {
	var games []Game

	scanner := bufio.NewScanner(r)
	// Increase buffer size for long lines.
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	var gameText strings.Builder
	inGame := false

	for scanner.Scan() {
		line := scanner.Text()

		// Detect game boundaries.
		if strings.HasPrefix(line, "[Event ") {
			if inGame && gameText.Len() > 0 {
				if g, err := extractGame(gameText.String()); err == nil {
					games = append(games, g)
				}
				gameText.Reset()
			}
			inGame = true
		}

		if inGame {
			gameText.WriteString(line)
			gameText.WriteString("\n")
		}
	}

	// Process last game.
	if gameText.Len() > 0 {
		if g, err := extractGame(gameText.String()); err == nil {
			games = append(games, g)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading PGN: %w", err)
	}

	return games, nil
}

// Stats contains statistics about record extraction from a PGN stream.
type Stats struct {
	TotalGames      int
	TotalPlies      int
	AvgPliesPerGame float64
}

// ExtractWithStats extracts games and returns extraction statistics.
func ExtractWithStats(r io.Reader) ([]Game, Stats, error) {
	games, err := ExtractGames(r)
	if err != nil {
		return nil, Stats{}, err
	}

	var totalPlies int
	for _, g := range games {
		totalPlies += g.Plies
	}

	var avgPlies float64
	if len(games) > 0 {
		avgPlies = float64(totalPlies) / float64(len(games))
	}

	stats := Stats{
		TotalGames:      len(games),
		TotalPlies:      totalPlies,
		AvgPliesPerGame: avgPlies,
	}

	return games, stats, nil
}

func extractGame(pgnText string) (Game, error) {
	pgnFunc, err := chess.PGN(strings.NewReader(pgnText))
	if err != nil {
		return Game{}, err
	}

	g := chess.NewGame(pgnFunc)
	moves := g.Moves()
	positions := g.Positions()
	if len(positions) == 0 {
		return Game{}, fmt.Errorf("game has no positions")
	}

	// The record is the starting FEN followed by numbered movetext. The
	// replay tokenizer strips the numbers again; keeping them makes the
	// record readable on its own.
	var b strings.Builder
	b.WriteString(positions[0].String())

	notation := chess.AlgebraicNotation{}
	num := 1
	for i, m := range moves {
		pos := positions[i]
		if pos.Turn() == chess.White {
			fmt.Fprintf(&b, " %d.", num)
		} else {
			num++
		}
		b.WriteString(" ")
		b.WriteString(notation.Encode(pos, m))
	}

	return Game{
		White:  tagValue(g, "White"),
		Black:  tagValue(g, "Black"),
		Event:  tagValue(g, "Event"),
		Record: b.String(),
		Plies:  len(moves),
	}, nil
}

func tagValue(g *chess.Game, key string) string {
	if pair := g.GetTagPair(key); pair != nil {
		return pair.Value
	}
	return ""
}
