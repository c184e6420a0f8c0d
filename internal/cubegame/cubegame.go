package cubegame

import (
	"fmt"
	"strconv"
	"strings"
)

// Cube colors
const (
	Red   string = "red"
	Green string = "green"
	Blue  string = "blue"
)

// gamePrefix - Every game line starts with this prefix followed by the game id
const gamePrefix string = "Game "

// MalformedGame - Custom error to inform that a game line could not be parsed
type MalformedGame struct {
	Line   string
	Reason string
}

// Error - Used to notify that a game line could not be parsed
func (M MalformedGame) Error() string {
	if M.Reason == "" {
		return "malformed game"
	}
	return fmt.Sprintf("malformed game %q: %s", M.Line, M.Reason)
}

// Is - Matches any MalformedGame regardless of contents
func (M MalformedGame) Is(target error) bool {
	_, ok := target.(MalformedGame)
	return ok
}

// UnknownColor - Custom error to inform that a draw names a color the bag does not hold
type UnknownColor struct {
	Color string
}

// Error - Used to notify that a color is unknown
func (U UnknownColor) Error() string {
	return fmt.Sprintf("unknown cube color %q", U.Color)
}

// Is - Matches any UnknownColor regardless of color
func (U UnknownColor) Is(target error) bool {
	_, ok := target.(UnknownColor)
	return ok
}

// Draw - A number of cubes of one color shown in a round
type Draw struct {
	Color string
	Count int
}

// Round - All draws shown at once
type Round []Draw

// Game - One line of the input
type Game struct {
	ID     int
	Rounds []Round
}

// Limits - Number of cubes of each color in the bag
type Limits struct {
	Red   int
	Green int
	Blue  int
}

// For - Returns the limit for the given color, or an UnknownColor error
func (L Limits) For(color string) (limit int, err error) {
	switch color {
	case Red:
		limit = L.Red
	case Green:
		limit = L.Green
	case Blue:
		limit = L.Blue
	default:
		err = UnknownColor{Color: color}
	}

	return
}

// ParseGame - Parses a line of the form "Game <id>: <count> <color>, ...; <count> <color>, ..."
//
// It returns:
//   - game is the parsed Game
//   - err is of type MalformedGame if the line does not follow the format
func ParseGame(line string) (game Game, err error) {
	header, rounds, found := strings.Cut(line, ":")
	if !found {
		err = MalformedGame{Line: line, Reason: "missing ':'"}
		return
	}

	idText, ok := strings.CutPrefix(strings.TrimSpace(header), gamePrefix)
	if !ok {
		err = MalformedGame{Line: line, Reason: fmt.Sprintf("missing %q prefix", gamePrefix)}
		return
	}
	game.ID, err = strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		err = MalformedGame{Line: line, Reason: fmt.Sprintf("invalid game id %q", idText)}
		return
	}

	for _, roundText := range strings.Split(rounds, ";") {
		var round Round
		for _, drawText := range strings.Split(roundText, ",") {
			fields := strings.Fields(drawText)
			if len(fields) != 2 {
				err = MalformedGame{Line: line, Reason: fmt.Sprintf("draw %q is not '<count> <color>'", strings.TrimSpace(drawText))}
				return
			}
			var count int
			count, err = strconv.Atoi(fields[0])
			if err != nil || count < 0 {
				err = MalformedGame{Line: line, Reason: fmt.Sprintf("invalid cube count %q", fields[0])}
				return
			}
			round = append(round, Draw{Color: fields[1], Count: count})
		}
		game.Rounds = append(game.Rounds, round)
	}

	return
}

// Feasible - Returns true if no draw in any round shows more cubes of a color than the bag holds
func (G Game) Feasible(limits Limits) (feasible bool, err error) {
	var limit int
	for _, round := range G.Rounds {
		for _, draw := range round {
			limit, err = limits.For(draw.Color)
			if err != nil {
				return
			}
			if draw.Count > limit {
				return
			}
		}
	}

	return true, nil
}

// Minimum - Returns the fewest cubes of each color that make the game possible
func (G Game) Minimum() (minimum Limits) {
	for _, round := range G.Rounds {
		for _, draw := range round {
			switch draw.Color {
			case Red:
				minimum.Red = max(minimum.Red, draw.Count)
			case Green:
				minimum.Green = max(minimum.Green, draw.Count)
			case Blue:
				minimum.Blue = max(minimum.Blue, draw.Count)
			}
		}
	}

	return
}

// Power - Returns the product of the minimum number of cubes of each color
func (G Game) Power() int {
	m := G.Minimum()
	return m.Red * m.Green * m.Blue
}

// Sums - Returns the sum of the ids of all feasible games and the sum of the power of every game.
// Empty lines are skipped.
func Sums(lines []string, limits Limits) (feasibleIDs, power int, err error) {
	var game Game
	var feasible bool
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if game, err = ParseGame(line); err != nil {
			err = fmt.Errorf("line %d: %w", i+1, err)
			return
		}
		if feasible, err = game.Feasible(limits); err != nil {
			err = fmt.Errorf("line %d: %w", i+1, err)
			return
		}
		if feasible {
			feasibleIDs += game.ID
		}
		power += game.Power()
	}

	return
}
