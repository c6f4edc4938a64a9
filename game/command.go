package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/luca-patrignani/ride-the-bus/domain/card"
)

// ErrInvalidCommand is returned for input that is neither a command nor a card.
var ErrInvalidCommand = errors.New("invalid command")

type CommandType string

const (
	CommandHelp   CommandType = "help"
	CommandExit   CommandType = "exit"
	CommandList   CommandType = "list"
	CommandReset  CommandType = "reset"
	CommandBack   CommandType = "back"
	CommandDeal   CommandType = "deal"
	CommandReveal CommandType = "reveal"
)

// Command is one line of user input.
type Command struct {
	Type CommandType
	// Target is the optional argument of list and deal: a choice name or
	// "optimal".
	Target string
	// Card is the revealed card of a reveal command.
	Card card.Card
}

// ParseCommand parses a line typed at the prompt. Anything that is not a
// keyword is read as a card label.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrInvalidCommand
	}
	switch CommandType(fields[0]) {
	case CommandHelp, CommandExit, CommandReset, CommandBack:
		return Command{Type: CommandType(fields[0])}, nil
	case CommandList, CommandDeal:
		cmd := Command{Type: CommandType(fields[0])}
		if len(fields) > 1 {
			cmd.Target = fields[1]
		}
		return cmd, nil
	}
	c, err := card.Parse(fields[0])
	if err != nil {
		return Command{}, fmt.Errorf("%w: %w", ErrInvalidCommand, err)
	}
	return Command{Type: CommandReveal, Card: c}, nil
}
