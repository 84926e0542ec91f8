// internal/event/types.go
package event

import (
	"go-reef-defense/internal/defs"
	"go-reef-defense/internal/types"
)

const (
	WaveStarted    EventType = "WaveStarted"
	WaveEnded      EventType = "WaveEnded" // Волна закончилась
	EnemySpawned   EventType = "EnemySpawned"
	BossSpawned    EventType = "BossSpawned"
	MinionsSpawned EventType = "MinionsSpawned"
	EnemyDamaged   EventType = "EnemyDamaged"
	EnemyKilled    EventType = "EnemyKilled" // Враг уничтожен, награда начислена
	EnemyEscaped   EventType = "EnemyEscaped"
	ActorHit       EventType = "ActorHit"
	ActorFired     EventType = "ActorFired"
	GameOver       EventType = "GameOver"
	ItemPurchased  EventType = "ItemPurchased"
)

// AllTypes lists every event type, for listeners that want all of them.
var AllTypes = []EventType{
	WaveStarted, WaveEnded, EnemySpawned, BossSpawned, MinionsSpawned,
	EnemyDamaged, EnemyKilled, EnemyEscaped, ActorHit, ActorFired,
	GameOver, ItemPurchased,
}

// KillCause says how an enemy died.
type KillCause string

const (
	CauseProjectile KillCause = "projectile"
	CauseContact    KillCause = "contact"
)

type WaveData struct {
	Number int
	Target int
	Boss   bool
}

type EnemySpawnedData struct {
	EnemyID types.EntityID
	Kind    defs.EnemyKind
	Target  types.EntityID
	Health  int
}

type MinionsSpawnedData struct {
	BossID types.EntityID
	Count  int
}

type EnemyDamagedData struct {
	EnemyID types.EntityID
	Amount  int
	Health  int
}

type EnemyKilledData struct {
	EnemyID types.EntityID
	Kind    defs.EnemyKind
	Reward  int
	Cause   KillCause
	By      types.EntityID // actor credited with the kill
}

type EnemyEscapedData struct {
	EnemyID types.EntityID
	Kind    defs.EnemyKind
}

type ActorData struct {
	ActorID types.EntityID
	Kind    defs.ActorKind
	Health  int
}

type ItemPurchasedData struct {
	ItemID string
	Price  int
	Coins  int
}
