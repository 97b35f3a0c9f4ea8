// Package hand holds the two hand roles and the scoring rules of the game.
package hand

import (
	"fmt"

	"github.com/arcanaland/twentyone/internal/card"
)

// Twentyone is the winning hand value
const Twentyone = 21

// Role identifies whose hand a card goes to
type Role uint8

const (
	Player Role = iota
	Dealer
)

// Valid reports whether r is Player or Dealer
func (r Role) Valid() bool {
	return r == Player || r == Dealer
}

func (r Role) String() string {
	switch r {
	case Player:
		return "player"
	case Dealer:
		return "dealer"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

// Hand is an ordered set of cards held by one role
type Hand []card.Card

// Value scores the hand, see Value
func (h Hand) Value() int {
	return Value(h)
}

// Value computes the score of a hand.
//
// Non-ace cards count their base points (jack 2, queen 3, king 4). A hand of
// exactly two aces is worth 21. Otherwise each ace in turn counts 11 if that
// keeps the running total at 21 or less, and 1 if not. Five picture cards score
// 21 whatever the arithmetic says. Values above 21 are returned as is.
func Value(cards []card.Card) int {
	total := 0
	aces := 0
	pictures := 0

	for _, c := range cards {
		if c.Rank == card.Ace {
			aces++
			continue
		}
		if c.Rank.IsPicture() {
			pictures++
		}
		total += c.Rank.Points()
	}

	if aces == 2 && total == 0 {
		total = Twentyone
	} else {
		for range aces {
			if total+11 <= Twentyone {
				total += 11
			} else {
				total++
			}
		}
	}

	if len(cards) == 5 && pictures == 5 {
		total = Twentyone
	}

	return total
}

// IsBust reports whether a hand value is over 21
func IsBust(value int) bool {
	return value > Twentyone
}

// IsTwentyone reports whether a hand value is exactly 21
func IsTwentyone(value int) bool {
	return value == Twentyone
}
