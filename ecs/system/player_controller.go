package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/jetsquare/ecs"
	"github.com/milk9111/jetsquare/ecs/component"
)

// SquareControllerSystem applies the held-key snapshot to velocity, size and
// the jetpack. It is the input phase of a frame and must run before physics.
type SquareControllerSystem struct{}

func NewSquareControllerSystem() *SquareControllerSystem {
	return &SquareControllerSystem{}
}

func (s *SquareControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()

	ecs.ForEach3(w,
		component.InputComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.PhysicsProfileComponent.Kind(),
		func(e ecs.Entity, input *component.Input, vel *component.Velocity, profile *component.PhysicsProfile) {
			held := input.Held

			if held.Has(component.KeyLeft) {
				vel.X -= profile.HorizontalStep
			}
			if held.Has(component.KeyRight) {
				vel.X += profile.HorizontalStep
			}
			if held.Has(component.KeyDown) {
				vel.Y += profile.VerticalStep
			}

			if profile.Resizable {
				resize(w, e, held, profile)
			}

			if held.Has(component.KeyUp) {
				thrust(w, e, vel, profile, dt)
			}
		},
	)
}

// resize grows or shrinks the square inside the profile bounds, moving it so
// the bottom edge stays where it was.
func resize(w *ecs.World, e ecs.Entity, held component.HeldKeys, profile *component.PhysicsProfile) {
	sq, ok := ecs.Get(w, e, component.SquareComponent.Kind())
	if !ok {
		return
	}

	next := sq.Size
	if held.Has(component.KeyGrow) {
		next += profile.SizeStep
	}
	if held.Has(component.KeyShrink) {
		next -= profile.SizeStep
	}
	next = cp.Clamp(next, profile.MinSize, profile.MaxSize)
	if next == sq.Size {
		return
	}

	if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		tr.Position.Y -= next - sq.Size
	}
	sq.Size = next
}

func thrust(w *ecs.World, e ecs.Entity, vel *component.Velocity, profile *component.PhysicsProfile, dt float64) {
	jp, ok := ecs.Get(w, e, component.JetpackComponent.Kind())
	if !ok {
		return
	}

	fired, tripped := jp.Thrust(dt * profile.ThrustCost)
	if tripped {
		w.Events().Push(ecs.Event{Type: ecs.EventOverheated, Entity: e})
	}
	if !fired {
		return
	}
	vel.Y -= profile.ThrustImpulse * profile.WeightFactor(sizeOf(w, e, profile))
}
