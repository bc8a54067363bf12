// Package hazard holds the level collaborators that report contacts to the
// player: crystals, mushrooms, monkey bars, death planes, falling obstacles
// and the punch hitbox.
package hazard

import "github.com/milk9111/momentum/component"

// Target receives collaborator events. system.Player implements it.
type Target interface {
	OnHazardImpact()
	OnMonkeyBarEnter()
	OnMushroomEnter()
	OnDeathPlaneEnter()
	OnGroundPunched()
	OnCrystalConsumed(kind component.ResourceKind, wasAirborne bool)
	OnCrystalTouched(kind component.ResourceKind)
}

// Crystal grants one charge of its kind and is gone after the first use.
type Crystal struct {
	Name     string
	Kind     component.ResourceKind
	Airborne bool

	target Target
	gone   bool
}

func NewCrystal(name string, kind component.ResourceKind, airborne bool, target Target) *Crystal {
	return &Crystal{Name: name, Kind: kind, Airborne: airborne, target: target}
}

func (c *Crystal) Gone() bool {
	return c == nil || c.gone
}

// Punch consumes the crystal through the parry hitbox.
func (c *Crystal) Punch() bool {
	if c.Gone() {
		return false
	}
	c.gone = true
	if c.target != nil {
		c.target.OnCrystalConsumed(c.Kind, c.Airborne)
	}
	return true
}

// Touch consumes the crystal when the player walks into it.
func (c *Crystal) Touch() bool {
	if c.Gone() {
		return false
	}
	c.gone = true
	if c.target != nil {
		c.target.OnCrystalTouched(c.Kind)
	}
	return true
}

type Mushroom struct {
	Name   string
	target Target
}

func NewMushroom(name string, target Target) *Mushroom {
	return &Mushroom{Name: name, target: target}
}

func (m *Mushroom) Enter() {
	if m != nil && m.target != nil {
		m.target.OnMushroomEnter()
	}
}

type MonkeyBar struct {
	Name   string
	target Target
}

func NewMonkeyBar(name string, target Target) *MonkeyBar {
	return &MonkeyBar{Name: name, target: target}
}

func (b *MonkeyBar) Enter() {
	if b != nil && b.target != nil {
		b.target.OnMonkeyBarEnter()
	}
}

type DeathPlane struct {
	Name   string
	target Target
}

func NewDeathPlane(name string, target Target) *DeathPlane {
	return &DeathPlane{Name: name, target: target}
}

func (d *DeathPlane) Enter() {
	if d != nil && d.target != nil {
		d.target.OnDeathPlaneEnter()
	}
}
