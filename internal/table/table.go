// Package table drives rounds of the game for a front end: chips, draws, the
// paced dealer turn, settlement and recording the final score.
package table

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/arcanaland/twentyone/internal/card"
	"github.com/arcanaland/twentyone/internal/game"
	"github.com/arcanaland/twentyone/internal/hand"
	"github.com/arcanaland/twentyone/internal/records"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

var (
	// ErrInsufficientFunds is returned when a chip is worth more than the cash left
	ErrInsufficientFunds = errors.New("insufficient funds for this bet")
	// ErrBettingClosed is returned for chip changes after the first card
	ErrBettingClosed = errors.New("bets are closed once cards are dealt")
	// ErrNoBet is returned when the player asks for a card with an empty wager
	ErrNoBet = errors.New("place a bet before taking a card")
	// ErrRoundNotStarted is returned when standing before any card is dealt
	ErrRoundNotStarted = errors.New("round has not started")
	// ErrRoundOver is returned for draws and stands once the round is settled
	ErrRoundOver = errors.New("round is over")
	// ErrRoundInProgress is returned when restarting or quitting an unsettled round
	ErrRoundInProgress = errors.New("round is still in progress")
	// ErrOutOfCash is returned when restarting with no cash left
	ErrOutOfCash = errors.New("no cash left to play another round")
)

// Chip is a betting chip; its value is the amount added to the wager
type Chip int

const (
	Red   Chip = 10
	Blue  Chip = 50
	Green Chip = 100
)

func (c Chip) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Green:
		return "green"
	default:
		return fmt.Sprintf("chip(%d)", int(c))
	}
}

// Message is the status line shown to the player
type Message uint8

const (
	MsgStart Message = iota
	MsgCardOffer
	MsgBetIssue
	MsgWin
	MsgLose
	MsgDraw
)

// Text returns the sentence for the message
func (m Message) Text() string {
	switch m {
	case MsgStart:
		return "Place your bet and take a card"
	case MsgCardOffer:
		return "Another card?"
	case MsgBetIssue:
		return "You don't have enough cash for that bet"
	case MsgWin:
		return "Congratulations! You win"
	case MsgLose:
		return "You lose"
	case MsgDraw:
		return "It's a draw"
	default:
		return ""
	}
}

// EventKind says what an Event reports
type EventKind uint8

const (
	EventCard EventKind = iota
	EventMessage
	EventBet
	EventOutcome
)

// Event is sent to the observer whenever something visible changes
type Event struct {
	Kind    EventKind
	Role    hand.Role
	Card    card.Card
	Value   int // hand value of Role after Card
	Message Message
	Outcome game.Outcome
	Cash    int
	Bet     int
}

// Observer receives table events. It may be called from a timer goroutine.
type Observer func(Event)

// Table runs rounds on a game session
type Table struct {
	session *game.Session
	ledger  *records.Ledger

	clock          quartz.Clock
	dealerDelay    time.Duration
	noticeDuration time.Duration

	observer Observer
	logger   *log.Logger

	mu      sync.Mutex
	message Message
	notice  *quartz.Timer
}

// Option configures a Table
type Option func(*Table)

// WithClock sets the clock used for the dealer pause and the bet notice
func WithClock(clock quartz.Clock) Option {
	return func(t *Table) { t.clock = clock }
}

// WithDealerDelay sets the pause after each card the dealer draws
func WithDealerDelay(d time.Duration) Option {
	return func(t *Table) { t.dealerDelay = d }
}

// WithNoticeDuration sets how long MsgBetIssue stays up
func WithNoticeDuration(d time.Duration) Option {
	return func(t *Table) { t.noticeDuration = d }
}

// WithObserver sets the function that receives table events
func WithObserver(o Observer) Option {
	return func(t *Table) { t.observer = o }
}

// WithLedger records the player's cash in ledger when they quit
func WithLedger(ledger *records.Ledger) Option {
	return func(t *Table) { t.ledger = ledger }
}

// WithLogger sets the logger for round events
func WithLogger(logger *log.Logger) Option {
	return func(t *Table) { t.logger = logger }
}

// New creates a table for session. The session's deck is generated unless it
// already holds cards, e.g. a stacked deck being replayed.
func New(session *game.Session, opts ...Option) *Table {
	t := &Table{
		session:        session,
		clock:          quartz.NewReal(),
		dealerDelay:    500 * time.Millisecond,
		noticeDuration: time.Second,
		observer:       func(Event) {},
		logger:         log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.session.CardsRemaining() == 0 {
		t.session.GenerateDeck()
	}
	t.message = MsgStart
	return t
}

// Session returns the underlying game session
func (t *Table) Session() *game.Session {
	return t.session
}

// Message returns the current status message
func (t *Table) Message() Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.message
}

// Bet adds a chip to the wager. Bets are only accepted before the first card.
// A bet the player cannot cover shows MsgBetIssue for the notice duration.
func (t *Table) Bet(chip Chip) error {
	if !t.bettingOpen() {
		return ErrBettingClosed
	}

	if !t.session.IncreaseTotalBet(int(chip)) {
		t.logger.Warn("bet rejected", "chip", chip, "cash", t.session.Cash())
		t.showNotice(MsgBetIssue)
		return fmt.Errorf("%w: %s chip is %d, cash is %d", ErrInsufficientFunds, chip, int(chip), t.session.Cash())
	}

	t.logger.Debug("bet placed", "chip", chip, "total_bet", t.session.TotalBet())
	t.emit(Event{Kind: EventBet, Cash: t.session.Cash(), Bet: t.session.TotalBet()})
	return nil
}

// ClearBet takes the chips back off the table before any card is dealt
func (t *Table) ClearBet() error {
	if !t.bettingOpen() {
		return ErrBettingClosed
	}
	t.session.ReturnBet()
	t.emit(Event{Kind: EventBet, Cash: t.session.Cash(), Bet: t.session.TotalBet()})
	return nil
}

// Hit deals the player a card. The first hit of a round also deals the
// dealer's first card. A player bust or 21 ends the round immediately.
func (t *Table) Hit() error {
	if t.session.Phase() == game.Resolved {
		return ErrRoundOver
	}
	if t.session.TotalBet() <= 0 {
		return ErrNoBet
	}

	if err := t.deal(hand.Player); err != nil {
		return err
	}

	if t.session.Phase() == game.NotStarted {
		if err := t.deal(hand.Dealer); err != nil {
			return err
		}
		t.setMessage(MsgCardOffer)
	}

	if outcome, ok := t.session.CheckPlayer(); ok {
		t.settle(outcome)
	}
	return nil
}

// Stand lets the dealer draw up to 17, pausing after every card, then settles
// the round. If ctx is cancelled during a pause the round stays open and Stand
// can be called again to continue.
func (t *Table) Stand(ctx context.Context) error {
	switch t.session.Phase() {
	case game.NotStarted:
		return ErrRoundNotStarted
	case game.Resolved:
		return ErrRoundOver
	}

	for t.session.DealerShouldDraw() {
		if err := t.deal(hand.Dealer); err != nil {
			return err
		}
		if err := t.pause(ctx, t.dealerDelay); err != nil {
			return err
		}
	}

	t.settle(t.session.ResolveStand())
	return nil
}

// Restart starts the next round with a fresh deck, keeping the player's cash
func (t *Table) Restart() error {
	if t.session.Phase() != game.Resolved {
		return ErrRoundInProgress
	}
	if t.session.Cash() <= 0 {
		return ErrOutOfCash
	}

	t.session.Reset()
	t.session.GenerateDeck()
	t.setMessage(MsgStart)
	t.logger.Debug("round restarted", "cash", t.session.Cash())
	return nil
}

// Quit ends the session between rounds. Chips placed before the first card
// are returned, remaining cash above zero is added to the ledger, then the
// session goes back to the starting cash. It returns the score that was
// recorded, or 0. A round that is still being played must be finished first.
func (t *Table) Quit() (int, error) {
	if t.session.Phase() == game.InProgress {
		return 0, ErrRoundInProgress
	}
	if t.session.Phase() == game.NotStarted && t.session.TotalBet() > 0 {
		t.session.ReturnBet()
	}
	score := t.session.Cash()
	recorded := 0

	if score > 0 && t.ledger != nil {
		if err := t.ledger.AddTry(score); err != nil {
			return 0, fmt.Errorf("error recording score: %w", err)
		}
		recorded = score
	}

	t.stopNotice()
	t.session.TotalReset()
	t.session.GenerateDeck()
	t.setMessage(MsgStart)
	t.logger.Info("session ended", "score", score, "recorded", recorded > 0)
	return recorded, nil
}

func (t *Table) bettingOpen() bool {
	return t.session.Phase() == game.NotStarted && len(t.session.Hand(hand.Player)) == 0
}

func (t *Table) deal(role hand.Role) error {
	c, err := t.session.TakeCard(role)
	if err != nil {
		t.logger.Error("deal failed", "role", role, "err", err)
		return err
	}
	t.emit(Event{Kind: EventCard, Role: role, Card: c, Value: t.session.HandValue(role)})
	return nil
}

func (t *Table) settle(outcome game.Outcome) {
	t.session.Settle(outcome)

	var msg Message
	switch outcome {
	case game.Win:
		msg = MsgWin
	case game.Draw:
		msg = MsgDraw
	default:
		msg = MsgLose
	}

	t.emit(Event{Kind: EventOutcome, Outcome: outcome, Cash: t.session.Cash()})
	t.setMessage(msg)
}

func (t *Table) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	done := make(chan struct{})
	timer := t.clock.AfterFunc(d, func() { close(done) }, "table", "dealer")
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// showNotice displays msg and returns to MsgStart once the notice duration passes
func (t *Table) showNotice(msg Message) {
	t.mu.Lock()
	if t.notice != nil {
		t.notice.Stop()
	}
	t.message = msg
	t.notice = t.clock.AfterFunc(t.noticeDuration, func() {
		t.mu.Lock()
		if t.message != msg {
			t.mu.Unlock()
			return
		}
		t.message = MsgStart
		t.mu.Unlock()
		t.emit(Event{Kind: EventMessage, Message: MsgStart})
	}, "table", "notice")
	t.mu.Unlock()

	t.emit(Event{Kind: EventMessage, Message: msg})
}

func (t *Table) stopNotice() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.notice != nil {
		t.notice.Stop()
		t.notice = nil
	}
}

func (t *Table) setMessage(msg Message) {
	t.mu.Lock()
	t.message = msg
	t.mu.Unlock()
	t.emit(Event{Kind: EventMessage, Message: msg})
}

func (t *Table) emit(e Event) {
	t.observer(e)
}
