package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCardFormat is returned when a label matches no card of the deck.
var ErrInvalidCardFormat = errors.New("invalid card format")

// labels maps every canonical label to its card. Built once, never mutated.
var labels = func() map[string]Card {
	m := make(map[string]Card, DeckSize)
	for c := range All() {
		m[c.String()] = c
	}
	return m
}()

// Parse converts a human-entered label such as "10c", "qd" or "AS" to a Card.
// The rank token comes first, the suit letter last, case does not matter.
func Parse(label string) (Card, error) {
	normalized := strings.ToUpper(strings.TrimSpace(label))
	c, ok := labels[normalized]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCardFormat, label)
	}
	return c, nil
}

// MustParse is like Parse but panics on error. Intended for tests and fixed tables.
func MustParse(label string) Card {
	c, err := Parse(label)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseAll parses a whitespace separated list of labels.
func ParseAll(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := Parse(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
