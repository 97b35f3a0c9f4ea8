// Package game owns the state of a single game session: the deck, both hands,
// the player's cash and the current bet.
package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/arcanaland/twentyone/internal/card"
	"github.com/arcanaland/twentyone/internal/deck"
	"github.com/arcanaland/twentyone/internal/hand"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// StartingCash is the bankroll of a new session
const StartingCash = 100

// ErrUnknownRole is returned when a card is dealt to neither the player nor the dealer
var ErrUnknownRole = errors.New("unknown hand role")

// Phase is the progress of the current round
type Phase uint8

const (
	// NotStarted: no card dealt to the dealer yet, bets can still change
	NotStarted Phase = iota
	// InProgress: the dealer holds its first card, the player draws or stands
	InProgress
	// Resolved: the outcome is known and the bet settled
	Resolved
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not-started"
	case InProgress:
		return "in-progress"
	case Resolved:
		return "resolved"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// Session is one player's game against the dealer
type Session struct {
	id       string
	deck     *deck.Deck
	player   hand.Hand
	dealer   hand.Hand
	totalBet int
	cash     int
	phase    Phase
	logger   *log.Logger
}

// Option configures a Session
type Option func(*Session)

// WithRNG shuffles with rng instead of the global source
func WithRNG(rng *rand.Rand) Option {
	return func(s *Session) {
		s.deck = deck.New(rng)
	}
}

// WithDeck uses d as the draw pile, e.g. a stacked deck for a replay
func WithDeck(d *deck.Deck) Option {
	return func(s *Session) {
		s.deck = d
	}
}

// WithLogger sets the logger for session events
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New creates a session with StartingCash and an empty deck. Call GenerateDeck
// before dealing.
func New(opts ...Option) *Session {
	s := &Session{
		id:   uuid.NewString(),
		cash: StartingCash,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.deck == nil {
		s.deck = deck.New(nil)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.logger = s.logger.With("session", s.id[:8])
	return s
}

// ID returns the session identifier used in logs
func (s *Session) ID() string {
	return s.id
}

// GenerateDeck rebuilds and shuffles the full deck
func (s *Session) GenerateDeck() {
	s.deck.Generate()
	s.logger.Debug("generated deck", "cards", s.deck.Remaining())
}

// Reset clears both hands and the bet. Cash and the deck are left alone.
func (s *Session) Reset() {
	s.player = s.player[:0]
	s.dealer = s.dealer[:0]
	s.totalBet = 0
	s.phase = NotStarted
}

// TotalReset resets the round and restores the starting cash
func (s *Session) TotalReset() {
	s.Reset()
	s.cash = StartingCash
}

// TakeCard moves the top card of the deck into the hand for role
func (s *Session) TakeCard(role hand.Role) (card.Card, error) {
	if !role.Valid() {
		return card.Card{}, fmt.Errorf("take card: %w: %s", ErrUnknownRole, role)
	}

	c, err := s.deck.Draw()
	if err != nil {
		return card.Card{}, fmt.Errorf("take card for %s: %w", role, err)
	}

	switch role {
	case hand.Player:
		s.player = append(s.player, c)
	case hand.Dealer:
		s.dealer = append(s.dealer, c)
		if s.phase == NotStarted {
			s.phase = InProgress
		}
	}

	s.logger.Debug("dealt card", "role", role, "card", c.AssetName(), "remaining", s.deck.Remaining())
	return c, nil
}

// Hand returns a copy of the cards held by role
func (s *Session) Hand(role hand.Role) hand.Hand {
	var src hand.Hand
	switch role {
	case hand.Player:
		src = s.player
	case hand.Dealer:
		src = s.dealer
	}
	out := make(hand.Hand, len(src))
	copy(out, src)
	return out
}

// HandValue scores the hand held by role. An unknown role scores 0.
func (s *Session) HandValue(role hand.Role) int {
	switch role {
	case hand.Player:
		return s.player.Value()
	case hand.Dealer:
		return s.dealer.Value()
	default:
		return 0
	}
}

// Phase returns the progress of the current round
func (s *Session) Phase() Phase {
	return s.phase
}

// CardsRemaining returns the number of cards left in the deck
func (s *Session) CardsRemaining() int {
	return s.deck.Remaining()
}
