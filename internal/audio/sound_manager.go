// Package audio plays the game's generated sound effects and background
// music through beep.
package audio

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

const (
	sampleRate = beep.SampleRate(44100)

	chirpStep = 90 * time.Millisecond
)

// ErrClosed is returned by Initialize after Cleanup. A SoundManager owns
// the process-wide speaker and cannot be reopened.
var ErrClosed = errors.New("audio: sound manager closed")

// Player is the set of sounds the game asks for.
type Player interface {
	PlayLineClear(lines int)
	StartMusic()
	StopMusic()
	Cleanup()
}

var (
	_ Player = (*SoundManager)(nil)
	_ Player = Silent{}
)

// SoundManager owns the speaker and mixes effects over the music loop.
// Every method is safe to call before Initialize and after Cleanup.
// A manager is single-use: once cleaned up it stays silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	volume      float64
	withMusic   bool
	initialized bool
	closed      bool
}

// NewSoundManager creates a sound manager for the given settings.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	return &SoundManager{
		mixer:     &beep.Mixer{},
		volume:    cfg.Volume,
		withMusic: cfg.Music,
	}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.closed {
		return ErrClosed
	}
	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(withVolume(sm.mixer, sm.volume))
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and retires the manager.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.closed = true
	if !sm.initialized {
		return
	}

	if sm.music != nil {
		sm.music.Paused = true
		sm.music = nil
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayLineClear plays a rising chirp with one step per cleared line.
func (sm *SoundManager) PlayLineClear(lines int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || lines <= 0 {
		return
	}

	speaker.Lock()
	sm.mixer.Add(NewChirp(sampleRate, lines))
	speaker.Unlock()
}

// StartMusic starts the background loop unless it is already playing or
// music is disabled.
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.withMusic {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if sm.music != nil {
		sm.music.Paused = false
		return
	}
	sm.music = &beep.Ctrl{Streamer: NewMelodyGenerator(sampleRate)}
	sm.mixer.Add(sm.music)
}

// StopMusic pauses the background loop.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	speaker.Unlock()
}

// Silent is a Player that makes no sound.
type Silent struct{}

func (Silent) PlayLineClear(int) {}
func (Silent) StartMusic()       {}
func (Silent) StopMusic()        {}
func (Silent) Cleanup()          {}

// withVolume scales s; vol is linear in [0, 1].
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// NewChirp returns a finite streamer of lines short tones, each a major
// third above the last.
func NewChirp(sr beep.SampleRate, lines int) beep.Streamer {
	steps := make([]beep.Streamer, 0, lines)
	for i := range lines {
		freq := 523.25 * math.Pow(2, float64(i)*4/12)
		steps = append(steps, beep.Take(sr.N(chirpStep), NewToneGenerator(sr, freq, 0.25)))
	}
	return beep.Seq(steps...)
}

// ToneGenerator generates a sine tone with a short attack and exponential decay.
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	amp  float64
	pos  int
}

// NewToneGenerator creates a tone generator.
func NewToneGenerator(sr beep.SampleRate, freq, amp float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq, amp: amp}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Min(t/0.005, 1.0) * math.Exp(-t*12)
		sample := g.amp * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// melody is the background loop: frequency in Hz (0 rests) and length in
// eighth notes.
var melody = []struct {
	freq  float64
	beats int
}{
	{659.25, 2}, {493.88, 1}, {523.25, 1}, {587.33, 2}, {523.25, 1}, {493.88, 1},
	{440.00, 2}, {440.00, 1}, {523.25, 1}, {659.25, 2}, {587.33, 1}, {523.25, 1},
	{493.88, 3}, {523.25, 1}, {587.33, 2}, {659.25, 2},
	{523.25, 2}, {440.00, 2}, {440.00, 2}, {0, 2},
}

const eighth = 150 * time.Millisecond

// MelodyGenerator plays the melody forever with a soft square-ish voice.
type MelodyGenerator struct {
	sr     beep.SampleRate
	pos    int
	starts []int // Sample offset of each note
	total  int
}

// NewMelodyGenerator creates a looping melody generator.
func NewMelodyGenerator(sr beep.SampleRate) *MelodyGenerator {
	g := &MelodyGenerator{sr: sr, starts: make([]int, len(melody))}
	for i, n := range melody {
		g.starts[i] = g.total
		g.total += sr.N(eighth) * n.beats
	}
	return g
}

// noteAt returns the note index playing at sample offset p within one loop.
func (g *MelodyGenerator) noteAt(p int) int {
	i := len(g.starts) - 1
	for i > 0 && g.starts[i] > p {
		i--
	}
	return i
}

func (g *MelodyGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		p := g.pos % g.total
		note := g.noteAt(p)
		freq := melody[note].freq

		sample := 0.0
		if freq > 0 {
			t := float64(p-g.starts[note]) / float64(g.sr)
			envelope := math.Min(t/0.01, 1.0) * math.Exp(-t*3)
			sample = 0.08 * envelope * (math.Sin(2*math.Pi*freq*t) + math.Sin(2*math.Pi*freq*3*t)/3)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MelodyGenerator) Err() error {
	return nil
}
