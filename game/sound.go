package game

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/meghashyamc/dreamgolf/logger"
)

const sampleRate = 48000

type Cue int

const (
	CueShot Cue = iota
	CueBounce
	CueBoostPerfect
	CueBoostPartial
	CueBoostMissed
	CueHole
)

type note struct {
	freq     float64
	duration time.Duration
}

var cueNotes = map[Cue][]note{
	CueShot:         {{freq: 220, duration: 60 * time.Millisecond}},
	CueBounce:       {{freq: 330, duration: 30 * time.Millisecond}},
	CueBoostPerfect: {{freq: 660, duration: 60 * time.Millisecond}, {freq: 880, duration: 90 * time.Millisecond}},
	CueBoostPartial: {{freq: 550, duration: 80 * time.Millisecond}},
	CueBoostMissed:  {{freq: 160, duration: 120 * time.Millisecond}},
	CueHole:         {{freq: 523, duration: 100 * time.Millisecond}, {freq: 659, duration: 100 * time.Millisecond}, {freq: 784, duration: 180 * time.Millisecond}},
}

// Sounds plays generated tones for game cues. A nil *Sounds is silent.
type Sounds struct {
	players map[Cue]*audio.Player
	logger  logger.Logger
}

func NewSounds(log logger.Logger) *Sounds {
	ctx := audio.NewContext(sampleRate)
	s := &Sounds{
		players: make(map[Cue]*audio.Player),
		logger:  log,
	}
	for cue, notes := range cueNotes {
		player := ctx.NewPlayerFromBytes(melody(notes, 0.25))
		player.SetVolume(0.6)
		s.players[cue] = player
	}
	return s
}

func (s *Sounds) Play(cue Cue) {
	if s == nil {
		return
	}
	player, ok := s.players[cue]
	if !ok {
		return
	}
	if err := player.Rewind(); err != nil {
		s.logger.Warn("failed to rewind sound", "cue", int(cue), "err", err.Error())
	}
	player.Play()
}

// melody renders notes back to back as 16-bit little-endian stereo PCM.
func melody(notes []note, volume float64) []byte {
	var out []byte
	for _, n := range notes {
		out = append(out, tone(n.freq, n.duration, volume)...)
	}
	return out
}

// tone renders one sine note with a short linear fade at both ends.
func tone(freq float64, duration time.Duration, volume float64) []byte {
	samples := int(float64(sampleRate) * duration.Seconds())
	fade := min(samples/10, sampleRate/200)
	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		envelope := 1.0
		if fade > 0 {
			if i < fade {
				envelope = float64(i) / float64(fade)
			} else if i >= samples-fade {
				envelope = float64(samples-1-i) / float64(fade)
			}
		}
		v := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * volume * envelope
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], sample)
		binary.LittleEndian.PutUint16(buf[i*4+2:], sample)
	}
	return buf
}
