// Package audio plays short synthesized sound cues for gameplay events.
package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned when playing before Init.
var ErrNotInitialized = errors.New("audio not initialized")

// Cue names a gameplay sound.
type Cue uint8

const (
	CueSwing Cue = iota
	CueHit
	CueJump
	CueHurt
	CueDeath
	CueOpenUI
)

var cueNames = [...]string{"swing", "hit", "jump", "hurt", "death", "open-ui"}

func (c Cue) String() string {
	if int(c) < len(cueNames) {
		return cueNames[c]
	}
	return fmt.Sprintf("cue(%d)", uint8(c))
}

// tone is a sequence of sine segments.
type tone struct {
	freqs []float64
	step  time.Duration
}

var tones = map[Cue]tone{
	CueSwing:  {freqs: []float64{660, 440}, step: 40 * time.Millisecond},
	CueHit:    {freqs: []float64{220, 160}, step: 50 * time.Millisecond},
	CueJump:   {freqs: []float64{330, 495}, step: 45 * time.Millisecond},
	CueHurt:   {freqs: []float64{180, 140, 110}, step: 60 * time.Millisecond},
	CueDeath:  {freqs: []float64{300, 200, 120, 80}, step: 120 * time.Millisecond},
	CueOpenUI: {freqs: []float64{523, 659, 784}, step: 50 * time.Millisecond},
}

// Manager mixes cues into the speaker.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	sfxVolLevel  float64

	// Mixer for concurrent cues
	sfxMixer *beep.Mixer
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		sampleRate:   DefaultSampleRate,
		masterVolume: 1.0,
		sfxVolLevel:  1.0,
		sfxMixer:     &beep.Mixer{},
	}
}

// Init opens the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.sfxMixer)

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
}

// SetSFXVolume sets the cue volume (0.0 to 1.0).
func (m *Manager) SetSFXVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfxVolLevel = clamp(vol, 0, 1)
}

// GetMasterVolume returns the master volume.
func (m *Manager) GetMasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// GetSFXVolume returns the cue volume.
func (m *Manager) GetSFXVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sfxVolLevel
}

// Play mixes c into the output.
func (m *Manager) Play(c Cue) error {
	m.mu.RLock()
	initialized := m.initialized
	vol := m.masterVolume * m.sfxVolLevel
	m.mu.RUnlock()

	if !initialized {
		return ErrNotInitialized
	}

	s, err := cueStreamer(c, m.sampleRate, vol)
	if err != nil {
		return err
	}

	speaker.Lock()
	m.sfxMixer.Add(s)
	speaker.Unlock()
	return nil
}

// cueStreamer renders c as a finite streamer at vol.
func cueStreamer(c Cue, sr beep.SampleRate, vol float64) (beep.Streamer, error) {
	t, ok := tones[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %s", c)
	}

	parts := make([]beep.Streamer, 0, len(t.freqs))
	for _, f := range t.freqs {
		sine, err := generators.SineTone(sr, f)
		if err != nil {
			return nil, fmt.Errorf("%s tone %vHz: %w", c, f, err)
		}
		parts = append(parts, beep.Take(sr.N(t.step), sine))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volumeToDb(vol),
		Silent:   vol <= 0,
	}, nil
}

// volumeToDb converts a 0-1 volume to decibels for a base-2 Volume effect.
// vol=1 -> 0, vol=0.5 -> about -6, vol=0.25 -> about -12.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	return 20 * math.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
