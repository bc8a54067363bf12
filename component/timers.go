package component

import "time"

// TimerKind identifies one independent countdown. At most one timer of each
// kind runs per entity; scheduling a running kind replaces it.
type TimerKind int

const (
	TimerDash TimerKind = iota
	TimerPunch
	TimerBoost
	TimerSpeedDecay
	TimerDashResetLock
	TimerSwing

	timerKindCount
)

func (k TimerKind) String() string {
	switch k {
	case TimerDash:
		return "dash"
	case TimerPunch:
		return "punch"
	case TimerBoost:
		return "boost"
	case TimerSpeedDecay:
		return "speed_decay"
	case TimerDashResetLock:
		return "dash_reset_lock"
	case TimerSwing:
		return "swing"
	default:
		return "unknown"
	}
}

type timer struct {
	active    bool
	gen       uint64
	remaining time.Duration
	period    time.Duration
	onExpire  func()
	onTick    func() bool
}

// Timers is a cooperative scheduler advanced once per fixed tick by its owner.
// Callbacks run synchronously inside Advance, in TimerKind order.
type Timers struct {
	slots [timerKindCount]timer
	gen   uint64
}

// Schedule starts a one-shot countdown of d that calls onExpire when it
// elapses. A running timer of the same kind is discarded without firing.
func (t *Timers) Schedule(kind TimerKind, d time.Duration, onExpire func()) {
	if t == nil || !kind.valid() {
		return
	}
	t.gen++
	t.slots[kind] = timer{active: true, gen: t.gen, remaining: d, onExpire: onExpire}
}

// SchedulePeriodic calls onTick every period until it returns false. The
// first call happens one period after scheduling.
func (t *Timers) SchedulePeriodic(kind TimerKind, period time.Duration, onTick func() bool) {
	if t == nil || !kind.valid() || period <= 0 {
		return
	}
	t.gen++
	t.slots[kind] = timer{active: true, gen: t.gen, remaining: period, period: period, onTick: onTick}
}

// Extend adds d to a running timer. Returns false when kind is not running.
func (t *Timers) Extend(kind TimerKind, d time.Duration) bool {
	if t == nil || !kind.valid() || !t.slots[kind].active {
		return false
	}
	t.slots[kind].remaining += d
	return true
}

// Cancel stops kind without firing its callback.
func (t *Timers) Cancel(kind TimerKind) {
	if t == nil || !kind.valid() {
		return
	}
	t.slots[kind] = timer{}
}

// CancelAll stops every timer without firing callbacks.
func (t *Timers) CancelAll() {
	if t == nil {
		return
	}
	t.slots = [timerKindCount]timer{}
}

func (t *Timers) Active(kind TimerKind) bool {
	return t != nil && kind.valid() && t.slots[kind].active
}

// Remaining reports the time left on kind, or zero when it is not running.
func (t *Timers) Remaining(kind TimerKind) time.Duration {
	if !t.Active(kind) {
		return 0
	}
	if r := t.slots[kind].remaining; r > 0 {
		return r
	}
	return 0
}

// Advance steps every running timer by dt and fires the ones that elapse.
// A callback may schedule, extend or cancel any kind, its own included. A
// timer scheduled by a callback starts counting on the next Advance.
func (t *Timers) Advance(dt time.Duration) {
	if t == nil || dt <= 0 {
		return
	}
	start := t.gen
	for kind := TimerKind(0); kind < timerKindCount; kind++ {
		slot := &t.slots[kind]
		if !slot.active || slot.gen > start {
			continue
		}
		slot.remaining -= dt
		if slot.remaining > 0 {
			continue
		}

		gen := slot.gen
		if slot.onTick != nil {
			keep := slot.onTick()
			if slot.gen != gen || !slot.active {
				continue
			}
			if !keep {
				*slot = timer{}
				continue
			}
			slot.remaining += slot.period
			if slot.remaining <= 0 {
				slot.remaining = slot.period
			}
			continue
		}

		onExpire := slot.onExpire
		*slot = timer{}
		if onExpire != nil {
			onExpire()
		}
	}
}

func (k TimerKind) valid() bool {
	return k >= 0 && k < timerKindCount
}
