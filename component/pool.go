package component

// ResourceKind names a consumable ability charge.
type ResourceKind int

const (
	ResourceJump ResourceKind = iota
	ResourceDash

	resourceKindCount
)

// DefaultCapacity is the per-kind charge limit when none is configured.
const DefaultCapacity = 3

func (k ResourceKind) String() string {
	switch k {
	case ResourceJump:
		return "jump"
	case ResourceDash:
		return "dash"
	default:
		return "unknown"
	}
}

// ResourcePool tracks double-jump and dash charges. Counts stay within
// [0, Capacity]; surplus pickups and empty consumes are silent no-ops.
type ResourcePool struct {
	Capacity int
	counts   [resourceKindCount]int
}

// NewResourcePool creates an empty pool. Non-positive capacity falls back to
// DefaultCapacity.
func NewResourcePool(capacity int) *ResourcePool {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &ResourcePool{Capacity: capacity}
}

// Add grants one charge of kind. Returns false when the pool is already full.
func (p *ResourcePool) Add(kind ResourceKind) bool {
	if p == nil || !kind.valid() {
		return false
	}
	if p.counts[kind] >= p.Capacity {
		return false
	}
	p.counts[kind]++
	return true
}

// Consume spends one charge of kind. Returns false and leaves the pool
// unchanged when no charge is available.
func (p *ResourcePool) Consume(kind ResourceKind) bool {
	if p == nil || !kind.valid() {
		return false
	}
	if p.counts[kind] <= 0 {
		return false
	}
	p.counts[kind]--
	return true
}

// Count reports the charges available for kind.
func (p *ResourcePool) Count(kind ResourceKind) int {
	if p == nil || !kind.valid() {
		return 0
	}
	return p.counts[kind]
}

// ResetAll zeroes every counter.
func (p *ResourcePool) ResetAll() {
	if p == nil {
		return
	}
	p.counts = [resourceKindCount]int{}
}

// SetCapacity changes the limit, clamping existing counts down to it.
func (p *ResourcePool) SetCapacity(capacity int) {
	if p == nil || capacity <= 0 {
		return
	}
	p.Capacity = capacity
	for i := range p.counts {
		if p.counts[i] > capacity {
			p.counts[i] = capacity
		}
	}
}

func (k ResourceKind) valid() bool {
	return k >= 0 && k < resourceKindCount
}
