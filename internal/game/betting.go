package game

import (
	"fmt"

	"github.com/arcanaland/twentyone/internal/hand"
)

// DealerStandsAt is the hand value at which the dealer stops drawing
const DealerStandsAt = 17

// Outcome is the result of a round from the player's side
type Outcome uint8

const (
	Win Outcome = iota
	Lose
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

// IncreaseTotalBet moves delta from cash into the pot. The pot grows by twice
// delta since the dealer matches the wager. It returns false and changes nothing
// if delta is not positive or the player cannot cover it.
func (s *Session) IncreaseTotalBet(delta int) bool {
	if delta <= 0 || s.cash-delta < 0 {
		s.logger.Debug("bet rejected", "delta", delta, "cash", s.cash)
		return false
	}
	s.cash -= delta
	s.totalBet += delta * 2
	s.logger.Debug("bet increased", "delta", delta, "total_bet", s.totalBet, "cash", s.cash)
	return true
}

// TotalBet returns the pot, which is twice the player's wager
func (s *Session) TotalBet() int {
	return s.totalBet
}

// Cash returns the player's available money
func (s *Session) Cash() int {
	return s.cash
}

// ReturnBet gives the player's own wager back and empties the pot
func (s *Session) ReturnBet() {
	s.cash += s.totalBet / 2
	s.totalBet = 0
}

// TakeGain pays the whole pot to the player
func (s *Session) TakeGain() {
	s.cash += s.totalBet
	s.totalBet = 0
}

// DealerShouldDraw reports whether the dealer must take another card
func (s *Session) DealerShouldDraw() bool {
	return s.dealer.Value() < DealerStandsAt
}

// CheckPlayer decides the round right after a player draw: a bust loses and
// exactly 21 wins. ok is false while the round is still open.
func (s *Session) CheckPlayer() (outcome Outcome, ok bool) {
	v := s.player.Value()
	switch {
	case hand.IsBust(v):
		return Lose, true
	case hand.IsTwentyone(v):
		return Win, true
	default:
		return 0, false
	}
}

// ResolveStand compares the hands once the dealer has finished drawing.
// The dealer wins with a higher value that is not a bust, equal values are a
// draw unless both are bust, anything else goes to the player.
func (s *Session) ResolveStand() Outcome {
	d := s.dealer.Value()
	p := s.player.Value()
	switch {
	case d > p && d <= hand.Twentyone:
		return Lose
	case d == p && d <= hand.Twentyone:
		return Draw
	default:
		return Win
	}
}

// Settle pays out the pot according to outcome and closes the round
func (s *Session) Settle(outcome Outcome) {
	pot := s.totalBet
	switch outcome {
	case Win:
		s.TakeGain()
	case Draw:
		s.ReturnBet()
	default:
		s.totalBet = 0
	}
	s.phase = Resolved
	s.logger.Info("round settled",
		"outcome", outcome,
		"pot", pot,
		"player", s.player.Value(),
		"dealer", s.dealer.Value(),
		"cash", s.cash)
}
