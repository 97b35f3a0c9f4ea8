package card

import (
	"fmt"
	"strings"
)

// Suit is one of the four card suits
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Rank is one of the nine ranks of the short deck (six through ace)
type Rank uint8

const (
	Six Rank = iota
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var suitCodes = [...]string{"c", "d", "h", "s"}
var suitNames = [...]string{"clubs", "diamonds", "hearts", "spades"}
var rankNames = [...]string{"six", "seven", "eight", "nine", "ten", "jack", "queen", "king", "ace"}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// Suits returns the suits in canonical order
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// Ranks returns the ranks in canonical order
func Ranks() []Rank {
	return []Rank{Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return int(s) < len(suitCodes)
}

// Code returns the single letter used in asset names
func (s Suit) Code() string {
	if !s.Valid() {
		return "?"
	}
	return suitCodes[s]
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("suit(%d)", uint8(s))
	}
	return suitNames[s]
}

// Valid reports whether r is one of the nine ranks
func (r Rank) Valid() bool {
	return int(r) < len(rankNames)
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("rank(%d)", uint8(r))
	}
	return rankNames[r]
}

// IsPicture reports whether the rank is a jack, queen or king
func (r Rank) IsPicture() bool {
	return r == Jack || r == Queen || r == King
}

// Points returns the base value of the rank. Aces are worth 0 here, their value
// depends on the rest of the hand.
func (r Rank) Points() int {
	switch r {
	case Six:
		return 6
	case Seven:
		return 7
	case Eight:
		return 8
	case Nine:
		return 9
	case Ten:
		return 10
	case Jack:
		return 2
	case Queen:
		return 3
	case King:
		return 4
	default:
		return 0
	}
}

// AssetName returns the suit_rank name front ends use to pick card art, e.g. "h_ace"
func (c Card) AssetName() string {
	return c.Suit.Code() + "_" + c.Rank.String()
}

func (c Card) String() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

// Parse converts an asset name such as "s_queen" back into a Card
func Parse(name string) (Card, error) {
	code, rankName, ok := strings.Cut(strings.ToLower(strings.TrimSpace(name)), "_")
	if !ok {
		return Card{}, fmt.Errorf("invalid card name: %q", name)
	}

	var c Card
	found := false
	for i, sc := range suitCodes {
		if sc == code {
			c.Suit = Suit(i)
			found = true
			break
		}
	}
	if !found {
		return Card{}, fmt.Errorf("unknown suit in card name: %q", name)
	}

	found = false
	for i, rn := range rankNames {
		if rn == rankName {
			c.Rank = Rank(i)
			found = true
			break
		}
	}
	if !found {
		return Card{}, fmt.Errorf("unknown rank in card name: %q", name)
	}

	return c, nil
}

// MustParse is like Parse but panics on error. Intended for tests and fixed tables.
func MustParse(name string) Card {
	c, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseList parses a space or comma separated list of asset names
func ParseList(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
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
