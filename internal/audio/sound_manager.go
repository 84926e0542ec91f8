// internal/audio/sound_manager.go
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"

	"go-reef-defense/internal/config"
	"go-reef-defense/internal/event"
)

// Sound names one effect.
type Sound int

const (
	SoundShot Sound = iota
	SoundHit
	SoundCoin
	SoundHurt
	SoundBoss
	SoundWave
	SoundGameOver
	SoundPurchase
)

// SoundManager plays effects in reaction to game events. Every method is safe
// to call when the speaker could not be initialised; it then does nothing.
type SoundManager struct {
	mu          sync.Mutex
	settings    config.AudioSettings
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager(settings config.AudioSettings) *SoundManager {
	rate := settings.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	return &SoundManager{
		settings: settings,
		rate:     beep.SampleRate(rate),
		mixer:    &beep.Mixer{},
	}
}

// Initialize opens the speaker. Disabled audio is not an error.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.settings.Enabled {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Info().Int("sampleRate", int(sm.rate)).Float64("volume", sm.settings.Volume).Msg("Audio initialized")
	return nil
}

// Cleanup silences everything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Stream builds the streamer for s at the configured volume.
func (sm *SoundManager) Stream(s Sound) beep.Streamer {
	vol := sm.settings.Volume
	switch s {
	case SoundShot:
		return CreateShotSound(sm.rate, vol)
	case SoundHit:
		return CreateHitSound(sm.rate, vol)
	case SoundCoin:
		return CreateCoinSound(sm.rate, vol)
	case SoundHurt:
		return CreateHurtSound(sm.rate, vol)
	case SoundBoss:
		return CreateBossSound(sm.rate, vol)
	case SoundWave:
		return CreateWaveSound(sm.rate, vol)
	case SoundGameOver:
		return CreateGameOverSound(sm.rate, vol)
	case SoundPurchase:
		return CreatePurchaseSound(sm.rate, vol)
	}
	return nil
}

func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	st := sm.Stream(s)
	if st == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(st)
	speaker.Unlock()
}

// SoundFor maps a game event to its effect.
func SoundFor(t event.EventType) (Sound, bool) {
	switch t {
	case event.ActorFired:
		return SoundShot, true
	case event.EnemyDamaged:
		return SoundHit, true
	case event.EnemyKilled:
		return SoundCoin, true
	case event.ActorHit:
		return SoundHurt, true
	case event.BossSpawned:
		return SoundBoss, true
	case event.WaveStarted:
		return SoundWave, true
	case event.GameOver:
		return SoundGameOver, true
	case event.ItemPurchased:
		return SoundPurchase, true
	}
	return 0, false
}

// OnEvent plays the effect for e, if it has one.
func (sm *SoundManager) OnEvent(e event.Event) {
	if s, ok := SoundFor(e.Type); ok {
		sm.Play(s)
	}
}

// Subscribe hooks the manager into every event that has a sound.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	for _, t := range event.AllTypes {
		if _, ok := SoundFor(t); ok {
			d.Subscribe(t, sm)
		}
	}
}
