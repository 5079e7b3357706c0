package gui

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/micromatch/internal/fx"
	"github.com/appengine-ltd/micromatch/internal/game"
)

var allCues = []game.SoundCue{
	game.CueCorrect,
	game.CueWrong,
	game.CueExplosion,
	game.CueLevelUp,
	game.CueGameOver,
	game.CueVictory,
	game.CueHint,
}

// cueBank holds one loaded sound per cue. A zero bank plays nothing, which is
// what muted and headless-audio runs get.
type cueBank struct {
	sounds map[game.SoundCue]rl.Sound
	device bool
}

func loadCueBank(mute bool) *cueBank {
	b := &cueBank{}
	if mute {
		return b
	}
	rl.InitAudioDevice()
	if !rl.IsAudioDeviceReady() {
		log.Printf("audio device unavailable; sound disabled")
		return b
	}
	b.device = true
	b.sounds = make(map[game.SoundCue]rl.Sound, len(allCues))
	for _, cue := range allCues {
		samples := fx.Synthesize(fx.Melody(cue), fx.SampleRate)
		if len(samples) == 0 {
			continue
		}
		wave := rl.NewWave(uint32(len(samples)), fx.SampleRate, 16, 1, fx.PCM16(samples))
		b.sounds[cue] = rl.LoadSoundFromWave(wave)
	}
	return b
}

func (b *cueBank) Play(cue game.SoundCue) {
	if b == nil || cue == game.CueNone {
		return
	}
	if s, ok := b.sounds[cue]; ok {
		rl.PlaySound(s)
	}
}

func (b *cueBank) Close() {
	if b == nil || !b.device {
		return
	}
	for _, s := range b.sounds {
		rl.UnloadSound(s)
	}
	b.sounds = nil
	rl.CloseAudioDevice()
	b.device = false
}
