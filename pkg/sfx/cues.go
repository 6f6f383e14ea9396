// Package sfx synthesizes the short sound cues played on session events.
//
// Cues are generated procedurally with beep streamers and rendered to
// 16-bit little-endian stereo PCM, the format ebiten's audio player consumes.
package sfx

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate used for every cue
const SampleRate = beep.SampleRate(48000)

// Cue identifies a sound effect
type Cue int

const (
	CueStart Cue = iota
	CueHit
	CuePower
	CueDilation
	CueMiss
	CueEnd
)

// AllCues lists every cue in a stable order
var AllCues = []Cue{CueStart, CueHit, CuePower, CueDilation, CueMiss, CueEnd}

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueHit:
		return "hit"
	case CuePower:
		return "power"
	case CueDilation:
		return "dilation"
	case CueMiss:
		return "miss"
	case CueEnd:
		return "end"
	default:
		return "unknown"
	}
}

// note is a single enveloped sine tone
type note struct {
	freq     float64
	duration time.Duration
	volume   float64
}

// cueNotes defines each cue as a sequence of notes
var cueNotes = map[Cue][]note{
	CueStart:    {{freq: 523.25, duration: 70 * time.Millisecond, volume: 0.5}, {freq: 783.99, duration: 110 * time.Millisecond, volume: 0.5}},
	CueHit:      {{freq: 880, duration: 60 * time.Millisecond, volume: 0.45}},
	CuePower:    {{freq: 659.25, duration: 60 * time.Millisecond, volume: 0.5}, {freq: 987.77, duration: 60 * time.Millisecond, volume: 0.5}, {freq: 1318.51, duration: 120 * time.Millisecond, volume: 0.5}},
	CueDilation: {{freq: 220, duration: 250 * time.Millisecond, volume: 0.4}},
	CueMiss:     {{freq: 140, duration: 80 * time.Millisecond, volume: 0.25}},
	CueEnd:      {{freq: 783.99, duration: 90 * time.Millisecond, volume: 0.5}, {freq: 523.25, duration: 90 * time.Millisecond, volume: 0.5}, {freq: 392, duration: 200 * time.Millisecond, volume: 0.5}},
}

// Streamer builds a fresh streamer for the cue
func Streamer(cue Cue) (beep.Streamer, error) {
	notes, ok := cueNotes[cue]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", cue)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(SampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("cue %s: %w", cue, err)
		}
		samples := SampleRate.N(n.duration)
		shaped := newEnvelope(beep.Take(samples, tone), samples, SampleRate.N(5*time.Millisecond))
		parts = append(parts, WithVolume(shaped, n.volume))
	}

	return beep.Seq(parts...), nil
}

// Duration returns the total length of the cue
func Duration(cue Cue) time.Duration {
	var total time.Duration
	for _, n := range cueNotes[cue] {
		total += n.duration
	}
	return total
}

// RenderPCM drains the streamer into 16-bit signed little-endian stereo PCM
func RenderPCM(s beep.Streamer) ([]byte, error) {
	var out bytes.Buffer
	buf := make([][2]float64, 512)

	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for c := 0; c < 2; c++ {
				v := buf[i][c]
				if v > 1 {
					v = 1
				} else if v < -1 {
					v = -1
				}
				sample := int16(v * math.MaxInt16)
				out.WriteByte(byte(sample))
				out.WriteByte(byte(sample >> 8))
			}
		}
		if !ok {
			break
		}
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to render cue: %w", err)
	}
	return out.Bytes(), nil
}

// Render builds and renders a cue in one step
func Render(cue Cue) ([]byte, error) {
	s, err := Streamer(cue)
	if err != nil {
		return nil, err
	}
	return RenderPCM(s)
}

// envelope applies a linear attack and release to avoid clicks
type envelope struct {
	streamer beep.Streamer
	position int
	total    int
	ramp     int
}

func newEnvelope(s beep.Streamer, total, ramp int) beep.Streamer {
	if ramp*2 > total {
		ramp = total / 2
	}
	return &envelope{streamer: s, total: total, ramp: ramp}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.ramp > 0 {
			if e.position < e.ramp {
				vol = float64(e.position) / float64(e.ramp)
			} else if remaining := e.total - e.position; remaining < e.ramp {
				vol = float64(remaining) / float64(e.ramp)
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// WithVolume scales a streamer by a linear volume factor
// math.Log2(0) is -Inf, so zero volume becomes silent
func WithVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
