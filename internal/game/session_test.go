package game

import (
	"testing"

	"github.com/arcanaland/twentyone/internal/card"
	"github.com/arcanaland/twentyone/internal/deck"
	"github.com/arcanaland/twentyone/internal/hand"
	"github.com/arcanaland/twentyone/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stacked(t *testing.T, names string) *Session {
	t.Helper()
	cards, err := card.ParseList(names)
	require.NoError(t, err)
	return New(WithDeck(deck.NewStacked(cards, nil)))
}

func TestNewSession(t *testing.T) {
	s := New(WithRNG(randutil.New(1)))
	assert.Equal(t, StartingCash, s.Cash())
	assert.Equal(t, 0, s.TotalBet())
	assert.Equal(t, NotStarted, s.Phase())
	assert.Equal(t, 0, s.CardsRemaining())
	assert.NotEmpty(t, s.ID())

	s.GenerateDeck()
	assert.Equal(t, deck.Size, s.CardsRemaining())
}

func TestSessionsHaveDistinctIDs(t *testing.T) {
	assert.NotEqual(t, New().ID(), New().ID())
}

func TestTakeCard(t *testing.T) {
	s := stacked(t, "h_ace c_ten d_six")

	c, err := s.TakeCard(hand.Player)
	require.NoError(t, err)
	assert.Equal(t, "h_ace", c.AssetName())
	assert.Equal(t, NotStarted, s.Phase())

	c, err = s.TakeCard(hand.Dealer)
	require.NoError(t, err)
	assert.Equal(t, "c_ten", c.AssetName())
	assert.Equal(t, InProgress, s.Phase())

	_, err = s.TakeCard(hand.Player)
	require.NoError(t, err)

	assert.Equal(t, hand.Hand{card.MustParse("h_ace"), card.MustParse("d_six")}, s.Hand(hand.Player))
	assert.Equal(t, hand.Hand{card.MustParse("c_ten")}, s.Hand(hand.Dealer))
	assert.Equal(t, 17, s.HandValue(hand.Player))
	assert.Equal(t, 10, s.HandValue(hand.Dealer))
}

func TestTakeCardFromEmptyDeck(t *testing.T) {
	s := stacked(t, "h_ace")
	_, err := s.TakeCard(hand.Player)
	require.NoError(t, err)

	_, err = s.TakeCard(hand.Dealer)
	assert.ErrorIs(t, err, deck.ErrDeckExhausted)
	assert.Empty(t, s.Hand(hand.Dealer))
	assert.Equal(t, NotStarted, s.Phase())
}

func TestTakeCardUnknownRole(t *testing.T) {
	s := stacked(t, "h_ace")
	_, err := s.TakeCard(hand.Role(9))
	assert.ErrorIs(t, err, ErrUnknownRole)
	assert.Equal(t, 1, s.CardsRemaining())
	assert.Equal(t, 0, s.HandValue(hand.Role(9)))
	assert.Empty(t, s.Hand(hand.Role(9)))
}

func TestHandReturnsCopy(t *testing.T) {
	s := stacked(t, "h_ace")
	_, err := s.TakeCard(hand.Player)
	require.NoError(t, err)

	h := s.Hand(hand.Player)
	h[0] = card.MustParse("c_six")
	assert.Equal(t, 11, s.HandValue(hand.Player))
}

func TestResetKeepsCash(t *testing.T) {
	s := New(WithRNG(randutil.New(5)))
	s.GenerateDeck()
	require.True(t, s.IncreaseTotalBet(30))
	_, err := s.TakeCard(hand.Player)
	require.NoError(t, err)
	_, err = s.TakeCard(hand.Dealer)
	require.NoError(t, err)

	s.Reset()

	assert.Equal(t, 70, s.Cash())
	assert.Equal(t, 0, s.TotalBet())
	assert.Empty(t, s.Hand(hand.Player))
	assert.Empty(t, s.Hand(hand.Dealer))
	assert.Equal(t, NotStarted, s.Phase())
	// The deck is not regenerated.
	assert.Equal(t, deck.Size-2, s.CardsRemaining())
}

func TestTotalResetRestoresCash(t *testing.T) {
	s := New(WithRNG(randutil.New(6)))
	s.GenerateDeck()
	require.True(t, s.IncreaseTotalBet(80))
	_, err := s.TakeCard(hand.Player)
	require.NoError(t, err)

	s.TotalReset()

	assert.Equal(t, StartingCash, s.Cash())
	assert.Equal(t, 0, s.TotalBet())
	assert.Empty(t, s.Hand(hand.Player))
	assert.Empty(t, s.Hand(hand.Dealer))
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "not-started", NotStarted.String())
	assert.Equal(t, "in-progress", InProgress.String())
	assert.Equal(t, "resolved", Resolved.String())
	assert.Equal(t, "phase(7)", Phase(7).String())
}
