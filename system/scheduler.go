package system

import "github.com/milk9111/momentum/ecs"

// Phase is one ordered step of a player tick, run as an ecs.System over the
// player entities of a world.
type Phase interface {
	ecs.System
	Name() string
}

// Scheduler runs phases in insertion order. It is itself an ecs.System.
type Scheduler struct {
	phases []Phase
}

func NewScheduler(phases ...Phase) *Scheduler {
	copied := append([]Phase(nil), phases...)
	return &Scheduler{phases: copied}
}

func (s *Scheduler) Add(phase Phase) {
	if phase == nil {
		return
	}
	s.phases = append(s.phases, phase)
}

func (s *Scheduler) Update(w *ecs.World) {
	for _, phase := range s.phases {
		phase.Update(w)
	}
}

func (s *Scheduler) Phases() []Phase {
	phases := make([]Phase, 0, len(s.phases))
	return append(phases, s.phases...)
}
