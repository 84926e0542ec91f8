// internal/system/state.go
package system

import (
	"github.com/rs/zerolog/log"

	"go-reef-defense/internal/component"
	"go-reef-defense/internal/entity"
	"go-reef-defense/internal/event"
	"go-reef-defense/internal/interfaces"
)

// StateSystem owns the phase machine: Menu → Playing → Intermission → Playing
// … → GameOver → Menu, with Pause as an overlay on Playing.
type StateSystem struct {
	ecs             *entity.ECS
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.WaveEnded, ss)
	eventDispatcher.Subscribe(event.GameOver, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveEnded:
		s.SwitchToIntermission()
	case event.GameOver:
		s.switchTo(component.PhaseGameOver)
	}
}

// StartRun resets the session and begins wave 1.
func (s *StateSystem) StartRun() {
	s.gameContext.ResetRun()
	s.switchTo(component.PhasePlaying)
	s.gameContext.StartWave()
}

func (s *StateSystem) SwitchToIntermission() {
	s.switchTo(component.PhaseIntermission)
	s.gameContext.ClearProjectiles()
}

// ContinueToNextWave leaves the intermission and starts the pending wave.
func (s *StateSystem) ContinueToNextWave() bool {
	if s.Current() != component.PhaseIntermission {
		return false
	}
	s.switchTo(component.PhasePlaying)
	s.gameContext.StartWave()
	return true
}

// TogglePause pauses or resumes a running wave.
func (s *StateSystem) TogglePause() bool {
	if s.Current() != component.PhasePlaying {
		return false
	}
	s.ecs.GameState.Paused = !s.ecs.GameState.Paused
	return s.ecs.GameState.Paused
}

func (s *StateSystem) ReturnToMenu() {
	s.switchTo(component.PhaseMenu)
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.GameState.Phase
}

func (s *StateSystem) switchTo(p component.Phase) {
	prev := s.ecs.GameState.Phase
	s.ecs.GameState.Phase = p
	s.ecs.GameState.Paused = false
	if prev != p {
		log.Debug().Stringer("from", prev).Stringer("to", p).Msg("Phase changed")
	}
}
