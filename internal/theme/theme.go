// Package theme holds the space palette and the color rules that depend on
// game state (per-value cell colors, timer bar, toast tones).
package theme

import (
	"image/color"

	"github.com/robalobadob/numbermatch/internal/game"
)

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

var (
	DarkSpace    = rgb(5, 5, 20)
	DeepSpace    = rgb(10, 10, 40)
	StarBlue     = rgb(30, 144, 255)
	PlanetPurple = rgb(138, 43, 226)
	AsteroidGray = rgb(169, 169, 169)
	ShipOrange   = rgb(255, 140, 0)
	GalaxyPink   = rgb(255, 105, 180)
	NebulaTeal   = rgb(0, 255, 255)
	StarWhite    = rgb(255, 255, 255)
	AlienGreen   = rgb(50, 205, 50)
	WarningRed   = rgb(255, 50, 50)
	GridBlue     = rgb(0, 100, 200)
	Gold         = rgb(255, 215, 0)
	BarTrack     = rgb(50, 50, 50)
	PlanetNear   = rgb(40, 40, 100)
	PlanetFar    = rgb(100, 40, 100)
)

var valueColors = []color.RGBA{
	StarBlue, PlanetPurple, ShipOrange, NebulaTeal,
	AlienGreen, GalaxyPink, GridBlue, Gold, AsteroidGray,
}

// ValueColor is the fill of a cell holding v. Values cycle through the
// palette so any configured range gets a color.
func ValueColor(v int) color.RGBA {
	n := len(valueColors)
	i := ((v-1)%n + n) % n
	return valueColors[i]
}

// TimerColor picks the bar color for the fraction of time left.
func TimerColor(frac float64) color.RGBA {
	switch {
	case frac > 0.3:
		return AlienGreen
	case frac > 0.1:
		return ShipOrange
	default:
		return WarningRed
	}
}

// ToneColor maps a toast tone to its text color.
func ToneColor(t game.Tone) color.RGBA {
	switch t {
	case game.ToneSuccess:
		return AlienGreen
	case game.ToneWarning:
		return WarningRed
	case game.ToneGold:
		return Gold
	default:
		return NebulaTeal
	}
}
