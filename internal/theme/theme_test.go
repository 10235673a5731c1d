package theme

import (
	"image/color"
	"testing"

	"github.com/robalobadob/numbermatch/internal/game"
)

func TestValueColorCycles(t *testing.T) {
	if ValueColor(1) != StarBlue || ValueColor(9) != AsteroidGray {
		t.Fatal("values 1 and 9 should map to the ends of the palette")
	}
	if ValueColor(10) != ValueColor(1) {
		t.Fatal("value 10 should wrap to value 1's color")
	}
	if ValueColor(0) != AsteroidGray || ValueColor(-8) != StarBlue {
		t.Fatal("non-positive values should wrap too")
	}
}

func TestTimerColor(t *testing.T) {
	cases := []struct {
		frac float64
		want string
	}{
		{1, "green"},
		{0.31, "green"},
		{0.3, "orange"},
		{0.11, "orange"},
		{0.1, "red"},
		{0, "red"},
	}
	names := map[string]color.RGBA{"green": AlienGreen, "orange": ShipOrange, "red": WarningRed}
	for _, tc := range cases {
		if got := TimerColor(tc.frac); got != names[tc.want] {
			t.Errorf("TimerColor(%v) = %v; want %s", tc.frac, got, tc.want)
		}
	}
}

func TestToneColor(t *testing.T) {
	if ToneColor(game.ToneWarning) != WarningRed || ToneColor(game.ToneGold) != Gold {
		t.Fatal("warning and gold tones")
	}
	if ToneColor(game.ToneSuccess) != AlienGreen || ToneColor(game.ToneInfo) != NebulaTeal {
		t.Fatal("success and info tones")
	}
}
