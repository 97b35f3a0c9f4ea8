package hand

import (
	"testing"

	"github.com/arcanaland/twentyone/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		want  int
	}{
		{name: "empty hand", cards: "", want: 0},
		{name: "two aces", cards: "h_ace s_ace", want: 21},
		{name: "soft ace with ten", cards: "h_ace c_ten", want: 21},
		{name: "second ace resolves against updated total", cards: "h_ace s_ace c_nine", want: 21},
		{name: "ace then nine then ace", cards: "h_ace c_nine s_ace", want: 21},
		{name: "five pictures override arithmetic", cards: "c_jack d_queen h_king s_jack c_queen", want: 21},
		{name: "three tens bust", cards: "c_ten d_ten h_ten", want: 30},
		{name: "four pictures are just points", cards: "c_jack d_queen h_king s_jack", want: 11},
		{name: "four pictures and an ace", cards: "c_jack d_queen h_king s_jack h_ace", want: 12},
		{name: "five cards with a numeral", cards: "c_jack d_queen h_king s_jack c_six", want: 17},
		{name: "single ace", cards: "d_ace", want: 11},
		{name: "hard ace", cards: "c_ten d_king h_ace", want: 15},
		{name: "ace fits exactly", cards: "c_six d_jack s_jack h_ace", want: 21},
		{name: "ace one over falls back to one", cards: "c_seven d_king h_ace", want: 12},
		{name: "two aces with picture", cards: "h_ace s_ace c_jack", want: 14},
		{name: "three aces", cards: "h_ace s_ace c_ace", want: 13},
		{name: "four aces", cards: "h_ace s_ace c_ace d_ace", want: 14},
		{name: "numerals", cards: "c_seven d_eight", want: 15},
		{name: "picture values", cards: "c_jack d_queen h_king", want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, err := card.ParseList(tt.cards)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Value(cards))
			assert.Equal(t, tt.want, Hand(cards).Value())
		})
	}
}

func TestBustAndTwentyone(t *testing.T) {
	assert.False(t, IsBust(21))
	assert.True(t, IsBust(22))
	assert.True(t, IsTwentyone(21))
	assert.False(t, IsTwentyone(20))
}

func TestRole(t *testing.T) {
	assert.Equal(t, "player", Player.String())
	assert.Equal(t, "dealer", Dealer.String())
	assert.True(t, Player.Valid())
	assert.True(t, Dealer.Valid())
	assert.False(t, Role(5).Valid())
	assert.Equal(t, "role(5)", Role(5).String())
}
