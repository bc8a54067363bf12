package hazard

// ParryHitbox routes what the punch touches while it is open.
type ParryHitbox struct {
	target Target
	active bool
}

func NewParryHitbox(target Target) *ParryHitbox {
	return &ParryHitbox{target: target}
}

func (h *ParryHitbox) SetActive(active bool) {
	h.active = active
}

func (h *ParryHitbox) Active() bool {
	return h != nil && h.active
}

// HitCrystal consumes c when the hitbox is open.
func (h *ParryHitbox) HitCrystal(c *Crystal) bool {
	if !h.Active() {
		return false
	}
	return c.Punch()
}

// HitGround reports a ground punch, which the player resolves as a gravity
// parry.
func (h *ParryHitbox) HitGround() bool {
	if !h.Active() || h.target == nil {
		return false
	}
	h.target.OnGroundPunched()
	return true
}
