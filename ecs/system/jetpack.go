package system

import (
	"github.com/milk9111/jetsquare/ecs"
	"github.com/milk9111/jetsquare/ecs/component"
)

// JetpackSystem refills boost meters and releases the overheat lockout once a
// meter is full again. It runs after physics as the last simulation phase.
type JetpackSystem struct{}

func NewJetpackSystem() *JetpackSystem {
	return &JetpackSystem{}
}

func (s *JetpackSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()

	ecs.ForEach2(w,
		component.JetpackComponent.Kind(),
		component.PhysicsProfileComponent.Kind(),
		func(e ecs.Entity, jp *component.Jetpack, profile *component.PhysicsProfile) {
			if jp.Regenerate(dt, profile.RegenRate, profile.OverheatRegenRate) {
				w.Events().Push(ecs.Event{Type: ecs.EventCooled, Entity: e})
			}
		},
	)
}
