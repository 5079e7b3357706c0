package fx

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/appengine-ltd/micromatch/internal/game"
)

const SampleRate = 22050

type Note struct {
	Freq     float64
	Duration time.Duration
	// Sweep is the frequency reached by the end of the note; zero holds Freq.
	Sweep float64
}

// Melody returns the notes played for a cue; CueNone plays nothing.
func Melody(cue game.SoundCue) []Note {
	switch cue {
	case game.CueCorrect:
		return []Note{{Freq: 523.25, Duration: 90 * time.Millisecond}, {Freq: 783.99, Duration: 120 * time.Millisecond}}
	case game.CueWrong:
		return []Note{{Freq: 220, Duration: 260 * time.Millisecond, Sweep: 150}}
	case game.CueExplosion:
		return []Note{{Freq: 880, Duration: 320 * time.Millisecond, Sweep: 60}}
	case game.CueLevelUp:
		return []Note{
			{Freq: 523.25, Duration: 100 * time.Millisecond},
			{Freq: 659.25, Duration: 100 * time.Millisecond},
			{Freq: 783.99, Duration: 100 * time.Millisecond},
			{Freq: 1046.5, Duration: 180 * time.Millisecond},
		}
	case game.CueGameOver:
		return []Note{
			{Freq: 392, Duration: 200 * time.Millisecond},
			{Freq: 311.13, Duration: 200 * time.Millisecond},
			{Freq: 261.63, Duration: 400 * time.Millisecond, Sweep: 196},
		}
	case game.CueVictory:
		return []Note{
			{Freq: 659.25, Duration: 120 * time.Millisecond},
			{Freq: 783.99, Duration: 120 * time.Millisecond},
			{Freq: 1046.5, Duration: 120 * time.Millisecond},
			{Freq: 1318.5, Duration: 300 * time.Millisecond},
		}
	case game.CueHint:
		return []Note{{Freq: 987.77, Duration: 70 * time.Millisecond}}
	default:
		return nil
	}
}

// Synthesize renders notes as mono samples in [-1, 1] with a short linear
// fade at both ends of each note to avoid clicks.
func Synthesize(notes []Note, sampleRate int) []float32 {
	if sampleRate <= 0 {
		sampleRate = SampleRate
	}
	var out []float32
	for _, n := range notes {
		count := int(math.Round(n.Duration.Seconds() * float64(sampleRate)))
		if count <= 0 {
			continue
		}
		fade := min(count/8, sampleRate/200)
		phase := 0.0
		for i := 0; i < count; i++ {
			freq := n.Freq
			if n.Sweep > 0 {
				freq = n.Freq + (n.Sweep-n.Freq)*float64(i)/float64(count)
			}
			phase += 2 * math.Pi * freq / float64(sampleRate)
			amp := 0.35
			if fade > 0 {
				if i < fade {
					amp *= float64(i) / float64(fade)
				} else if i >= count-fade {
					amp *= float64(count-1-i) / float64(fade)
				}
			}
			out = append(out, float32(amp*math.Sin(phase)))
		}
	}
	return out
}

// PCM16 encodes samples as little-endian signed 16-bit audio.
func PCM16(samples []float32) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		v := max(-1, min(1, float64(s)))
		binary.LittleEndian.PutUint16(out[2*i:], uint16(int16(math.Round(v*math.MaxInt16))))
	}
	return out
}
