package ui

import (
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/pwiecz/tile_tactics/lib"
)

const sampleRate = 44100

// Blow tones: harder blows sound lower and last longer.
const (
	hitBaseFrequency     = 220
	counterBaseFrequency = 165
	minToneFrequency     = 55
	toneSamplesPerDamage = sampleRate / 40
	maxToneSamples       = sampleRate / 2
)

// A square wave on one stereo side. Counter tones fade out, hits keep their volume
// until they end.
type voice struct {
	side      int // 0 left, 1 right
	period    int // in samples
	length    int
	remaining int
	fade      bool
}

func (v *voice) amplitude() int {
	if !v.fade {
		return 127
	}
	return 127 * v.remaining / v.length
}

// AudioPlayer plays the blows of an attack exchange as short square-wave tones on
// an unsigned 8-bit stereo stream: the attacker's blow on the left, the counter on
// the right.
type AudioPlayer struct {
	player *oto.Player
	source *toneSource
}

type toneSource struct {
	mutex  sync.Mutex
	pos    int
	voices []*voice
}

func (s *toneSource) Read(buf []byte) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	frames := len(buf) / 2
	for i := 0; i < frames; i++ {
		var level [2]int
		for _, v := range s.voices {
			if v.remaining == 0 {
				continue
			}
			if (s.pos+i)%v.period < v.period/2 {
				level[v.side] -= v.amplitude()
			} else {
				level[v.side] += v.amplitude()
			}
			v.remaining--
		}
		buf[2*i] = byte(128 + lib.Clamp(level[0], -128, 127))
		buf[2*i+1] = byte(128 + lib.Clamp(level[1], -128, 127))
	}
	s.pos += frames
	live := s.voices[:0]
	for _, v := range s.voices {
		if v.remaining > 0 {
			live = append(live, v)
		}
	}
	s.voices = live
	return frames * 2, nil
}

func (s *toneSource) add(v *voice) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.voices = append(s.voices, v)
}

func (s *toneSource) silence() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.voices = nil
}

// blowVoice is the tone for a blow dealing damage out of a maximum of maxHP.
func blowVoice(attack lib.UnitAttack, maxHP int) *voice {
	base, side := hitBaseFrequency, 0
	if attack.Counter {
		base, side = counterBaseFrequency, 1
	}
	frequency := base - (base-minToneFrequency)*lib.Min(attack.Damage, maxHP)/lib.Max(maxHP, 1)
	length := lib.Min(attack.Damage*toneSamplesPerDamage, maxToneSamples)
	return &voice{
		side:      side,
		period:    sampleRate / lib.Max(frequency, minToneFrequency),
		length:    length,
		remaining: length,
		fade:      attack.Counter,
	}
}

// NewAudioPlayer returns a silent player when context is nil.
func NewAudioPlayer(context *oto.Context) *AudioPlayer {
	if context == nil {
		return &AudioPlayer{}
	}
	s := &toneSource{}
	p := &AudioPlayer{
		source: s,
		player: context.NewPlayer(s),
	}
	p.player.Play()
	return p
}

// PlayBlow queues the tone of one landed blow. Blows dealing no damage are silent.
func (p *AudioPlayer) PlayBlow(attack lib.UnitAttack) {
	if p.source == nil || attack.Damage <= 0 {
		return
	}
	p.source.add(blowVoice(attack, lib.DefaultHP))
}

// Silence drops every queued tone, e.g. when a scenario is reloaded.
func (p *AudioPlayer) Silence() {
	if p.source == nil {
		return
	}
	p.source.silence()
}

func (p *AudioPlayer) Close() {
	if p.player == nil {
		return
	}
	p.source.silence()
	p.player.Close()
}
