package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/ride-the-bus/config"
	"github.com/luca-patrignani/ride-the-bus/domain/card"
	"github.com/luca-patrignani/ride-the-bus/domain/deck"
	"github.com/luca-patrignani/ride-the-bus/domain/ridethebus"
	"github.com/luca-patrignani/ride-the-bus/domain/solver"
	"github.com/luca-patrignani/ride-the-bus/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "goroutines used to solve the game")
	flag.BoolVar(&cfg.Practice, "practice", cfg.Practice, "deal every card from a shuffled shoe")
	flag.StringVar(&cfg.Seed, "seed", cfg.Seed, "seed of the practice shoe")
	flag.IntVar(&cfg.Precision, "precision", cfg.Precision, "decimals of expected values")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, _ := cfg.Level()
	logger := slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(level))))

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Ride ", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("The ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("Bus", pterm.FgRed.ToStyle()),
	).Render()

	// The tree is not stored: it is solved again on every start.
	spinner, _ := pterm.DefaultSpinner.Start("Solving Ride The Bus ...")
	tree, err := solver.Solve(ridethebus.FirstDecision(),
		solver.WithWorkers(cfg.Workers),
		solver.WithLogger(logger),
	)
	if err != nil {
		spinner.Fail()
		logger.Error("failed to solve the game", "error", err)
		os.Exit(1)
	}
	spinner.Success(fmt.Sprintf("All games considered: %d outcomes over %d decisions", tree.OutcomeCount(), tree.NodeCount()))

	var shoe *deck.Shoe
	if cfg.Practice {
		shoe = newShoe(cfg)
	}

	printHelp()
	s := session{
		walker:    game.NewWalker(tree),
		shoe:      shoe,
		cfg:       cfg,
		logger:    logger,
		showNodes: true,
	}
	if cfg.Practice {
		pterm.Info.Println("Practice mode: type deal {choice} to play against the next card")
	}
	s.run()
}

func newShoe(cfg *config.Config) *deck.Shoe {
	if cfg.Seed != "" {
		return deck.NewShoe(deck.WithSeed([]byte(cfg.Seed)))
	}
	return deck.NewShoe()
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}

// session is the interactive loop of one player walking the solved tree.
type session struct {
	walker    *game.Walker
	shoe      *deck.Shoe
	cfg       *config.Config
	logger    *slog.Logger
	showNodes bool // print the choices of the current decision before the next prompt
}

func (s *session) run() {
	for {
		if s.showNodes {
			pterm.Println()
			printTable(s.walker.Revealed())
			printChoices(s.walker.Current(), s.cfg.Precision)
			s.showNodes = false
		}

		line, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("?").Show()
		cmd, err := game.ParseCommand(line)
		if err != nil {
			pterm.Error.Println("invalid command, type help for the list of commands")
			s.logger.Debug("rejected input", "line", line, "error", err)
			continue
		}

		switch cmd.Type {
		case game.CommandHelp:
			printHelp()
		case game.CommandExit:
			return
		case game.CommandList:
			s.list(cmd.Target)
		case game.CommandReset:
			s.reset()
		case game.CommandBack:
			s.back()
		case game.CommandDeal:
			s.deal(cmd.Target)
		case game.CommandReveal:
			s.reveal(cmd.Card)
		}
	}
}

func (s *session) list(target string) {
	tree := s.walker.Current()
	if target == "" {
		printChoices(tree, s.cfg.Precision)
		return
	}
	ec, ok := game.ListTarget(tree, target)
	if !ok {
		pterm.Error.Println("invalid list target")
		return
	}
	printOutcomes(ec, s.cfg.Precision)
}

// deal plays target, a choice name or "optimal", against the next card of
// the practice shoe.
func (s *session) deal(target string) {
	if target == "" {
		target = "optimal"
	}
	tree := s.walker.Current()
	if tree.Len() == 0 {
		s.reset()
		return
	}
	ec, ok := game.ListTarget(tree, target)
	if !ok {
		pterm.Error.Println("invalid deal target, type list for the choices")
		return
	}

	if s.shoe == nil {
		s.shoe = newShoe(s.cfg)
	}
	table := s.walker.Revealed()
	var (
		c    card.Card
		step game.Step
		err  error
	)
	// Cards typed by hand during this game are still in the shoe: burn them.
	for {
		c, err = s.shoe.Draw()
		if errors.Is(err, deck.ErrEmpty) {
			s.shoe.Shuffle()
			c, err = s.shoe.Draw()
		}
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		step, err = s.walker.Play(ec.String(), c)
		if !errors.Is(err, game.ErrInvalidCard) {
			break
		}
		s.logger.Debug("burned a card already on the table", "card", c.String())
	}
	if err != nil {
		s.shoe.Undo()
		pterm.Error.Println(err)
		return
	}

	pterm.Info.Printfln("You play %s, the dealer reveals %s", pterm.LightCyan(ec.String()), c.Symbol())
	s.logger.Debug("card dealt", "card", c.String(), "choice", ec.String(), "outcome", step.Outcome.Kind.String())
	s.settle(step, append(table, c))
}

func (s *session) reveal(c card.Card) {
	revealed := append(s.walker.Revealed(), c)
	step, err := s.walker.Reveal(c)
	switch {
	case errors.Is(err, game.ErrInvalidCard):
		pterm.Error.Printfln("INVALID CARD PROVIDED: %s was already revealed", c.Symbol())
		return
	case errors.Is(err, game.ErrFinished):
		s.reset()
		return
	case err != nil:
		pterm.Error.Println(err)
		return
	}

	pterm.Info.Printfln("So you chose %s", pterm.LightCyan(step.Choice.String()))
	s.logger.Debug("card revealed", "card", c.String(), "choice", step.Choice.String(), "outcome", step.Outcome.Kind.String())
	s.settle(step, revealed)
}

// settle shows the next choices, or the result when the game is over.
func (s *session) settle(step game.Step, revealed []card.Card) {
	if !step.Finished {
		s.showNodes = true
		return
	}

	printTable(revealed)
	if step.Outcome.Kind == solver.Lost {
		pterm.Error.Println("You lost the pot")
	} else {
		pterm.Success.Printfln("You leave with %sx your bet", formatEV(step.Outcome.Value(), s.cfg.Precision))
	}
	pterm.Info.Println("No more decisions, resetting")
	s.reset()
}

func (s *session) back() {
	revealed := s.walker.Revealed()
	if !s.walker.Back() {
		pterm.Warning.Println("already at the first decision")
		return
	}
	if s.shoe != nil {
		returnToShoe(s.shoe, revealed[len(revealed)-1])
	}
	s.showNodes = true
}

// returnToShoe puts c back on the shoe when it was the last card dealt from
// it. Cards typed by the player never came from the shoe.
func returnToShoe(shoe *deck.Shoe, c card.Card) bool {
	drawn := shoe.Drawn()
	if len(drawn) == 0 || drawn[len(drawn)-1] != c {
		return false
	}
	shoe.Undo()
	return true
}

func (s *session) reset() {
	s.walker.Reset()
	if s.shoe != nil {
		s.shoe.Shuffle()
	}
	s.showNodes = true
}
