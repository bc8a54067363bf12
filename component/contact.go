package component

// Locomotion is the mutually exclusive ground state of an entity.
type Locomotion int

const (
	Grounded Locomotion = iota
	Airborne
)

func (l Locomotion) String() string {
	if l == Grounded {
		return "grounded"
	}
	return "airborne"
}

// ContactTracker derives grounded and wall-running state from contact events.
// Events are edge-level and not debounced: a single ground exit makes the
// entity airborne even if another ground contact is still touching. Callers
// that need overlap counting aggregate before forwarding.
type ContactTracker struct {
	grounded    bool
	wallRunning bool
}

// NewContactTracker returns a tracker in the spawn state (grounded).
func NewContactTracker() *ContactTracker {
	return &ContactTracker{grounded: true}
}

// GroundBegin marks the entity grounded and ends any wall run. Returns true
// when the entity was airborne before the call.
func (c *ContactTracker) GroundBegin() bool {
	if c == nil {
		return false
	}
	landed := !c.grounded
	c.grounded = true
	c.wallRunning = false
	return landed
}

// GroundEnd marks the entity airborne. Returns true on the grounded->airborne edge.
func (c *ContactTracker) GroundEnd() bool {
	if c == nil {
		return false
	}
	left := c.grounded
	c.grounded = false
	return left
}

// WallStay starts a wall run if the entity is airborne at call time.
// Returns true when the wall run started on this call.
func (c *ContactTracker) WallStay() bool {
	if c == nil || c.grounded || c.wallRunning {
		return false
	}
	c.wallRunning = true
	return true
}

// WallEnd stops a wall run. Returns true if one was active.
func (c *ContactTracker) WallEnd() bool {
	if c == nil {
		return false
	}
	was := c.wallRunning
	c.wallRunning = false
	return was
}

func (c *ContactTracker) Grounded() bool {
	return c != nil && c.grounded
}

func (c *ContactTracker) WallRunning() bool {
	return c != nil && c.wallRunning
}

func (c *ContactTracker) Locomotion() Locomotion {
	if c.Grounded() {
		return Grounded
	}
	return Airborne
}
