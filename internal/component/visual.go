// internal/component/visual.go
package component

import "time"

// HitFlash tints an actor after it took contact damage.
type HitFlash struct {
	StartedAt time.Duration
	Duration  time.Duration
}

// Active reports whether the flash is still showing at now.
func (f HitFlash) Active(now time.Duration) bool {
	return now-f.StartedAt < f.Duration
}
