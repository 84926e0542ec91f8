// internal/defs/items.go
package defs

// EffectType names what a shop item does when bought.
type EffectType string

const (
	EffectMaxHealth EffectType = "MAX_HEALTH"
	EffectDamage    EffectType = "DAMAGE_MULTIPLIER"
	EffectFireRate  EffectType = "COOLDOWN_MULTIPLIER"
	EffectHeal      EffectType = "HEAL"
)

// ItemDefinition is one entry of the shop catalogue.
type ItemDefinition struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Price   int         `json:"price"`
	Effect  EffectType  `json:"effect"`
	Amount  float64     `json:"amount"`
	Targets []ActorKind `json:"targets"`
	OneTime bool        `json:"one_time"`
}

// ItemLibrary is the shop catalogue in display order.
var ItemLibrary = []ItemDefinition{
	{ID: "turtle_shell", Name: "Turtle Shell", Price: 5, Effect: EffectMaxHealth, Amount: 1, Targets: []ActorKind{ActorTurtle}},
	{ID: "crab_shell", Name: "Crab Shell", Price: 5, Effect: EffectMaxHealth, Amount: 1, Targets: []ActorKind{ActorCrab}},
	{ID: "turtle_venom", Name: "Turtle Venom", Price: 15, Effect: EffectDamage, Amount: 2, Targets: []ActorKind{ActorTurtle}, OneTime: true},
	{ID: "crab_pincers", Name: "Crab Pincers", Price: 15, Effect: EffectDamage, Amount: 2, Targets: []ActorKind{ActorCrab}, OneTime: true},
	{ID: "quick_flippers", Name: "Quick Flippers", Price: 10, Effect: EffectFireRate, Amount: 0.75, Targets: []ActorKind{ActorTurtle}, OneTime: true},
	{ID: "kelp_wrap", Name: "Kelp Wrap", Price: 3, Effect: EffectHeal, Targets: []ActorKind{ActorTurtle, ActorCrab}},
}

// FindItem looks an item up by ID.
func FindItem(id string) (ItemDefinition, bool) {
	for _, it := range ItemLibrary {
		if it.ID == id {
			return it, true
		}
	}
	return ItemDefinition{}, false
}
