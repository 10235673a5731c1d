package ui

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	// decoders for ebitenutil.NewImageFromFile
	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
)

const (
	sampleRate  = 44100
	musicVolume = 0.2
)

var imageExts = []string{".jpeg", ".jpg", ".png"}

// AssetLoadError reports an optional image or sound that could not be used.
// The game falls back to procedural drawing or silence.
type AssetLoadError struct {
	Name string
	Err  error
}

func (e *AssetLoadError) Error() string { return fmt.Sprintf("load asset %s: %v", e.Name, e.Err) }
func (e *AssetLoadError) Unwrap() error { return e.Err }

// Assets are the optional backgrounds and sounds. Any field may be nil.
type Assets struct {
	StartBG    *ebiten.Image
	GameOverBG *ebiten.Image

	music    *audio.Player
	gameOver *audio.Player
}

// LoadAssets reads assets from dir, logging and skipping anything missing
// or undecodable.
func LoadAssets(dir string, withSound bool, logger zerolog.Logger) *Assets {
	a := &Assets{}
	var err error

	if a.StartBG, err = loadImage(dir, "game_start"); err != nil {
		logAssetErr(logger, err)
	}
	if a.GameOverBG, err = loadImage(dir, "game_over"); err != nil {
		logAssetErr(logger, err)
	}
	if !withSound {
		return a
	}

	ctx := audio.NewContext(sampleRate)
	if a.music, err = loadSound(ctx, filepath.Join(dir, "music.mp3"), true); err != nil {
		logAssetErr(logger, err)
	} else {
		a.music.SetVolume(musicVolume)
	}
	if a.gameOver, err = loadSound(ctx, filepath.Join(dir, "game_over.mp3"), false); err != nil {
		logAssetErr(logger, err)
	}
	return a
}

func logAssetErr(logger zerolog.Logger, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug().Err(err).Msg("asset missing, using fallback")
		return
	}
	logger.Warn().Err(err).Msg("asset unusable, using fallback")
}

func loadImage(dir, base string) (*ebiten.Image, error) {
	for _, ext := range imageExts {
		path := filepath.Join(dir, base+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, &AssetLoadError{Name: path, Err: err}
		}
		return img, nil
	}
	return nil, &AssetLoadError{Name: base, Err: fs.ErrNotExist}
}

func loadSound(ctx *audio.Context, path string, loop bool) (*audio.Player, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &AssetLoadError{Name: path, Err: err}
	}
	stream, err := mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
	if err != nil {
		return nil, &AssetLoadError{Name: path, Err: err}
	}
	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}
	p, err := ctx.NewPlayer(src)
	if err != nil {
		return nil, &AssetLoadError{Name: path, Err: err}
	}
	return p, nil
}

// PlayMusic starts the background loop from the top.
func (a *Assets) PlayMusic() {
	if a.music == nil {
		return
	}
	_ = a.music.Rewind()
	a.music.Play()
}

// GameOver stops the music and plays the game-over sound once.
func (a *Assets) GameOver() {
	if a.music != nil {
		a.music.Pause()
	}
	if a.gameOver != nil {
		_ = a.gameOver.Rewind()
		a.gameOver.Play()
	}
}
