package deck

import (
	"crypto/cipher"
	"errors"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/xof/blake2xb"

	"github.com/luca-patrignani/ride-the-bus/domain/card"
)

// ErrEmpty is returned when every card of the shoe was drawn.
var ErrEmpty = errors.New("no cards left in the shoe")

var suite suites.Suite = suites.MustFind("Ed25519")

// Shoe is a shuffled deck the practice dealer reveals cards from.
type Shoe struct {
	cards  []card.Card
	next   int
	stream func() cipher.Stream
}

type option func(Shoe) Shoe

// NewShoe returns a shuffled shoe. By default the order comes from the
// suite's cryptographic random stream.
func NewShoe(opts ...option) *Shoe {
	s := Shoe{
		stream: suite.RandomStream,
	}
	for _, opt := range opts {
		s = opt(s)
	}
	s.Shuffle()
	return &s
}

// WithSeed makes every shuffle of the shoe reproducible. The first shuffle
// after NewShoe and every following one derive from the same seed stream, so
// two shoes with the same seed deal the same sequence of games.
func WithSeed(seed []byte) option {
	return func(s Shoe) Shoe {
		xof := blake2xb.New(seed)
		s.stream = func() cipher.Stream { return xof }
		return s
	}
}

// Draw reveals the next card.
func (s *Shoe) Draw() (card.Card, error) {
	if s.next >= len(s.cards) {
		return 0, ErrEmpty
	}
	c := s.cards[s.next]
	s.next++
	return c, nil
}

// Remaining returns the number of cards left to draw.
func (s *Shoe) Remaining() int {
	return len(s.cards) - s.next
}

// Drawn returns the cards drawn since the last shuffle, oldest first.
func (s *Shoe) Drawn() []card.Card {
	return append([]card.Card(nil), s.cards[:s.next]...)
}

// Undo puts the last drawn card back on top of the shoe. It reports false
// when nothing was drawn since the last shuffle.
func (s *Shoe) Undo() (card.Card, bool) {
	if s.next == 0 {
		return 0, false
	}
	s.next--
	return s.cards[s.next], true
}
