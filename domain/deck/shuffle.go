package deck

import (
	"crypto/cipher"
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"

	"github.com/luca-patrignani/ride-the-bus/domain/card"
)

// Shuffle puts every card back in the shoe and shuffles it.
func (s *Shoe) Shuffle() {
	cards := card.Deck()
	perm := permutation(len(cards), s.stream())
	s.cards = make([]card.Card, len(cards))
	for i, p := range perm {
		s.cards[i] = cards[p]
	}
	s.next = 0
}

// permutation returns a uniform random permutation of 0..size-1 (Fisher-Yates).
func permutation(size int, stream cipher.Stream) []int {
	perm := make([]int, size)
	for i := range perm {
		perm[i] = i
	}
	for i := size - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), stream).Int64())
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
