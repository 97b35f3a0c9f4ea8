package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/arcanaland/twentyone/internal/card"
	"github.com/arcanaland/twentyone/internal/game"
	"github.com/arcanaland/twentyone/internal/hand"
	"github.com/arcanaland/twentyone/internal/randutil"
	"github.com/arcanaland/twentyone/internal/table"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var seed int64

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Sit down at the table and play",
	Long: `Play starts a game with 100 cash. Place chips, draw cards and stand when you are done.
When you quit, your remaining cash is added to the high score list.

Commands at the table:
  r, b, g   bet a red (10), blue (50) or green (100) chip
  c         take your chips back before the first card
  h         take a card
  s         stand and let the dealer draw
  n         next round
  q         quit and record your cash
  ?         show this help`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger, err := loadLedger()
		if err != nil {
			return err
		}

		var rng *rand.Rand
		if seed != 0 {
			rng = randutil.New(seed)
		} else {
			rng = randutil.NewRandom()
		}
		session := game.New(game.WithRNG(rng), game.WithLogger(logger))
		logger.Info("starting game", "session", session.ID(), "seed", seed)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		out := &screen{w: cmd.OutOrStdout()}
		tbl := table.New(session,
			table.WithLedger(ledger),
			table.WithLogger(logger),
			table.WithDealerDelay(cfg.DealerDelay()),
			table.WithNoticeDuration(cfg.NoticeDuration()),
			table.WithObserver(out.render),
		)
		return runGame(ctx, tbl, cmd.InOrStdin(), out)
	},
}

func init() {
	RootCmd.AddCommand(playCmd)
	playCmd.Flags().Int64Var(&seed, "seed", 0, "Shuffle seed for a reproducible game (0 picks a random one)")
}

// runGame reads one command per line until the player quits or input ends
func runGame(ctx context.Context, tbl *table.Table, in io.Reader, out *screen) error {
	out.println(color.CyanString("%s", tbl.Message().Text()))
	out.status(tbl.Session())

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		var err error
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "":
			continue
		case "r", "10":
			err = tbl.Bet(table.Red)
		case "b", "50":
			err = tbl.Bet(table.Blue)
		case "g", "100":
			err = tbl.Bet(table.Green)
		case "c":
			err = tbl.ClearBet()
		case "h":
			err = tbl.Hit()
		case "s":
			err = tbl.Stand(ctx)
		case "n":
			err = tbl.Restart()
		case "q":
			score, err := tbl.Quit()
			if errors.Is(err, table.ErrRoundInProgress) {
				out.println(color.YellowString("%v, stand or draw before leaving", err))
				continue
			}
			if err != nil {
				return err
			}
			if score > 0 {
				out.println(fmt.Sprintf("Recorded %d in the high scores.", score))
			} else {
				out.println("Nothing to record, better luck next time.")
			}
			return nil
		case "?", "help":
			out.println(playCmd.Long)
			continue
		default:
			out.println(color.YellowString("Unknown command, type ? for help"))
			continue
		}

		switch {
		case errors.Is(err, context.Canceled):
			out.println("Left the table.")
			return nil
		case errors.Is(err, table.ErrInsufficientFunds):
			// already shown as a notice
		case errors.Is(err, table.ErrOutOfCash):
			out.println(color.RedString("%v. Type q to record your game.", err))
		case err != nil && isTableError(err):
			out.println(color.YellowString("%v", err))
		case err != nil:
			return err
		}
		out.status(tbl.Session())
	}
	return scanner.Err()
}

// isTableError reports whether err is a rule violation the player can recover from
func isTableError(err error) bool {
	for _, target := range []error{
		table.ErrBettingClosed,
		table.ErrNoBet,
		table.ErrRoundNotStarted,
		table.ErrRoundOver,
		table.ErrRoundInProgress,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// screen serializes output, table events can arrive from timer goroutines
type screen struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *screen) println(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, line)
}

func (s *screen) status(session *game.Session) {
	s.println(fmt.Sprintf("[cash %d | bet %d | you %d | dealer %d]",
		session.Cash(), session.TotalBet(),
		session.HandValue(hand.Player), session.HandValue(hand.Dealer)))
}

func (s *screen) render(e table.Event) {
	switch e.Kind {
	case table.EventCard:
		s.println(fmt.Sprintf("%-6s draws %s  (%d)", e.Role, cardLabel(e.Card), e.Value))
	case table.EventMessage:
		switch e.Message {
		case table.MsgBetIssue, table.MsgLose:
			s.println(color.RedString("%s", e.Message.Text()))
		case table.MsgWin:
			s.println(color.GreenString("%s", e.Message.Text()))
		default:
			s.println(color.CyanString("%s", e.Message.Text()))
		}
	case table.EventOutcome:
		s.println(fmt.Sprintf("Round over: %s, cash is now %d", e.Outcome, e.Cash))
	}
}

// cardLabel renders a card as rank and suit symbol, red suits in red
func cardLabel(c card.Card) string {
	var rank string
	switch c.Rank {
	case card.Jack:
		rank = "J"
	case card.Queen:
		rank = "Q"
	case card.King:
		rank = "K"
	case card.Ace:
		rank = "A"
	default:
		rank = fmt.Sprint(c.Rank.Points())
	}

	var symbol string
	switch c.Suit {
	case card.Clubs:
		symbol = "♣"
	case card.Diamonds:
		symbol = "♦"
	case card.Hearts:
		symbol = "♥"
	case card.Spades:
		symbol = "♠"
	}

	label := rank + symbol
	if c.Suit == card.Hearts || c.Suit == card.Diamonds {
		return color.RedString("%s", label)
	}
	return color.HiWhiteString("%s", label)
}
