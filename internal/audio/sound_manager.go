package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/crypto-flap/internal/config"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager plays synthesized tracks through the system speaker.
// All streamers run inside one mixer; the mixer and the controls are only
// touched with the speaker locked.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	music       *beep.Ctrl
	cues        map[Track]*beep.Ctrl // Latest instance of each one-shot
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager. Initialize must succeed before
// anything is heard; until then every call is a no-op.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		cues:  make(map[Track]*beep.Ctrl),
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// PlayLoop starts the background track.
func (sm *SoundManager) PlayLoop(t Track) {
	if t != TrackBackground {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.music != nil {
		return
	}
	sm.music = &beep.Ctrl{
		Streamer: volume(newPulseGenerator(sampleRate), sm.cfg.MusicVolume),
		Paused:   sm.muted,
	}
	speaker.Lock()
	sm.mixer.Add(sm.music)
	speaker.Unlock()
}

// PlayOnce plays a cue. A cue that is still sounding is cut off and
// started over.
func (sm *SoundManager) PlayOnce(t Track) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := newCue(sampleRate, t)
	if s == nil {
		return
	}
	ctrl := &beep.Ctrl{Streamer: volume(s, sm.cfg.CueVolume)}

	speaker.Lock()
	if prev := sm.cues[t]; prev != nil {
		prev.Streamer = nil // Mixer drops it on the next buffer
	}
	sm.mixer.Add(ctrl)
	speaker.Unlock()
	sm.cues[t] = ctrl
}

// SetMuted pauses the music and suppresses cues.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if !sm.initialized || sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = muted
	speaker.Unlock()
}

// Muted reports whether output is muted.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Close stops every sound and closes the speaker.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.music = nil
	clear(sm.cues)
	sm.initialized = false
}

// volume scales s linearly by vol in [0, 1].
func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
