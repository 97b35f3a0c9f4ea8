package deck

import (
	"errors"
	"math/rand/v2"

	"github.com/arcanaland/twentyone/internal/card"
)

// Size is the number of cards in a full short deck (4 suits x 9 ranks)
const Size = 36

// ErrDeckExhausted is returned when drawing from an empty deck
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck represents the ordered draw pile. The front of the slice is the top card.
type Deck struct {
	cards []card.Card
	rng   *rand.Rand // nil means the global source
}

// New creates an empty deck that shuffles with rng. Call Generate to fill it.
func New(rng *rand.Rand) *Deck {
	return &Deck{
		cards: make([]card.Card, 0, Size),
		rng:   rng,
	}
}

// NewStacked creates a deck with a fixed order, top card first. Generate still
// rebuilds and shuffles a full deck.
func NewStacked(cards []card.Card, rng *rand.Rand) *Deck {
	d := New(rng)
	d.cards = append(d.cards, cards...)
	return d
}

// Generate rebuilds the full deck in suit-major, rank-minor order and shuffles it
func (d *Deck) Generate() {
	d.cards = d.cards[:0]
	for _, suit := range card.Suits() {
		for _, rank := range card.Ranks() {
			d.cards = append(d.cards, card.Card{Suit: suit, Rank: rank})
		}
	}

	d.Shuffle()
}

// Shuffle shuffles the remaining cards using Fisher-Yates
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card
func (d *Deck) Draw() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, ErrDeckExhausted
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

// Remaining returns the number of cards left to draw
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, top first
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}
