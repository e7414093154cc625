// Package audio plays the background track while the maze is on screen.
package audio

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// Music loops a WAV file through the default audio device.
type Music struct {
	mu      sync.Mutex
	stream  beep.StreamSeekCloser
	format  beep.Format
	ctrl    *beep.Ctrl
	volume  *effects.Volume
	playing bool
}

// Open decodes the WAV header at path. Nothing plays until Play is called.
func Open(path string) (*Music, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open music: %w", err)
	}

	stream, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode wav: %w", err)
	}

	return &Music{stream: stream, format: format}, nil
}

// Play initializes the speaker and starts the track looping forever at
// volume (1 = unchanged, 0.5 = half amplitude, 0 = silent).
func (m *Music) Play(volume float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.playing {
		return nil
	}

	// Initialize speaker with sample rate and a 100ms buffer
	sr := m.format.SampleRate
	if err := speaker.Init(sr, sr.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	m.ctrl = &beep.Ctrl{Streamer: beep.Loop(-1, m.stream)}
	m.volume = &effects.Volume{Streamer: m.ctrl, Base: 2}
	applyVolume(m.volume, volume)

	speaker.Play(m.volume)
	m.playing = true
	return nil
}

// SetVolume changes the playback volume of a playing track.
func (m *Music) SetVolume(volume float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.playing {
		return
	}
	speaker.Lock()
	applyVolume(m.volume, volume)
	speaker.Unlock()
}

// TogglePause pauses or resumes the track and reports whether it is now paused.
func (m *Music) TogglePause() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.playing {
		return true
	}
	speaker.Lock()
	m.ctrl.Paused = !m.ctrl.Paused
	paused := m.ctrl.Paused
	speaker.Unlock()
	return paused
}

// Close stops playback and releases the file.
func (m *Music) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.playing {
		speaker.Clear()
		speaker.Close()
		m.playing = false
	}
	return m.stream.Close()
}

func applyVolume(v *effects.Volume, volume float64) {
	level, silent := VolumeLevel(volume)
	v.Volume = level
	v.Silent = silent
}

// VolumeLevel converts a linear amplitude factor into the base-2 exponent
// used by effects.Volume. Zero or negative factors are silent.
func VolumeLevel(volume float64) (level float64, silent bool) {
	if !(volume > 0) {
		return 0, true
	}
	return math.Log2(volume), false
}
