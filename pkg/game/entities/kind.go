// Package entities describes what the level generator places: pure spawn
// descriptors with no behavior. The game loop turns them into live
// entities through a Factory.
package entities

import (
	"github.com/leonelquinteros/gotext"
)

// dynamicGet wraps gotext.Get for keys that come from the KindInfo table.
var dynamicGet = gotext.Get

// Kind is the type of a placed enemy or object
type Kind int

const (
	Grunt        Kind = iota // Standard foot soldier
	ShieldBearer             // Frontal shield, flanks captains at higher difficulty
	HeavyGunner              // Slow, high damage; arena turrets
	Kamikaze                 // Runs at the player and explodes
	Sniper                   // Elevated long-range threat
	Flyer                    // Airborne patrol
	Captain                  // Mandatory high-value target, exactly one per level
	GroundBoss               // Boss, walking variant
	AirBoss                  // Boss, flying variant
	RescueCage               // Prisoner to free
	PropaneTank              // Explosive ambient hazard
	BridgeBlock              // Traversable platform over a pit
	MechPickup               // Mech suit pickup near checkpoints
)

// kindCount is the number of defined kinds (for iteration).
const kindCount = 13

// AllKinds returns every kind in declaration order
func AllKinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Info contains display and classification data for each kind
type Info struct {
	Name     string // Stable identifier used in dumps
	LabelKey string // gettext message key
	Glyph    rune   // Single-cell map symbol
	Enemy    bool
	Boss     bool
}

// KindInfo maps kinds to their display information
var KindInfo = map[Kind]Info{
	Grunt:        {Name: "grunt", LabelKey: "KIND_GRUNT", Glyph: 'g', Enemy: true},
	ShieldBearer: {Name: "shield-bearer", LabelKey: "KIND_SHIELD_BEARER", Glyph: 's', Enemy: true},
	HeavyGunner:  {Name: "heavy-gunner", LabelKey: "KIND_HEAVY_GUNNER", Glyph: 'h', Enemy: true},
	Kamikaze:     {Name: "kamikaze", LabelKey: "KIND_KAMIKAZE", Glyph: 'k', Enemy: true},
	Sniper:       {Name: "sniper", LabelKey: "KIND_SNIPER", Glyph: 'n', Enemy: true},
	Flyer:        {Name: "flyer", LabelKey: "KIND_FLYER", Glyph: 'f', Enemy: true},
	Captain:      {Name: "captain", LabelKey: "KIND_CAPTAIN", Glyph: 'C', Enemy: true},
	GroundBoss:   {Name: "ground-boss", LabelKey: "KIND_GROUND_BOSS", Glyph: 'B', Enemy: true, Boss: true},
	AirBoss:      {Name: "air-boss", LabelKey: "KIND_AIR_BOSS", Glyph: 'A', Enemy: true, Boss: true},
	RescueCage:   {Name: "rescue-cage", LabelKey: "KIND_RESCUE_CAGE", Glyph: '&'},
	PropaneTank:  {Name: "propane-tank", LabelKey: "KIND_PROPANE_TANK", Glyph: 'o'},
	BridgeBlock:  {Name: "bridge-block", LabelKey: "KIND_BRIDGE_BLOCK", Glyph: '='},
	MechPickup:   {Name: "mech-pickup", LabelKey: "KIND_MECH_PICKUP", Glyph: 'M'},
}

// IsValid returns true if k is a defined kind
func (k Kind) IsValid() bool {
	_, ok := KindInfo[k]
	return ok
}

// String returns the stable identifier of the kind
func (k Kind) String() string {
	if info, ok := KindInfo[k]; ok {
		return info.Name
	}
	return "unknown"
}

// Label returns the translated display name
func (k Kind) Label() string {
	info, ok := KindInfo[k]
	if !ok {
		return k.String()
	}
	return dynamicGet(info.LabelKey)
}

// Glyph returns the map symbol for the kind, '?' if undefined
func (k Kind) Glyph() rune {
	if info, ok := KindInfo[k]; ok {
		return info.Glyph
	}
	return '?'
}

// IsEnemy is true for hostile units
func (k Kind) IsEnemy() bool {
	return KindInfo[k].Enemy
}

// IsBoss is true for both boss variants
func (k Kind) IsBoss() bool {
	return KindInfo[k].Boss
}
