package system

import (
	"math"

	"github.com/milk9111/jetsquare/ecs"
	"github.com/milk9111/jetsquare/ecs/component"
	"github.com/milk9111/jetsquare/ecs/entity"
)

// PhysicsSystem integrates gravity and velocity, reflects velocity off the
// viewport edges and applies contact friction.
//
// Bounces are decided on the predicted position and only change velocity;
// the position itself is never clamped, so a square may overshoot an edge for
// one frame before the reversed velocity carries it back.
type PhysicsSystem struct{}

// bounceEventSpeed is the slowest reversal, in px per reference frame, that
// raises EventBounce. Slower reversals are a square settling on a surface.
const bounceEventSpeed = 0.5

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()
	viewport := entity.ViewportOf(w)

	ecs.ForEach3(w,
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.PhysicsProfileComponent.Kind(),
		func(e ecs.Entity, tr *component.Transform, vel *component.Velocity, profile *component.PhysicsProfile) {
			frames := profile.Frames(dt)
			if frames == 0 {
				return
			}
			limit := viewport.Limit(sizeOf(w, e, profile))

			vel.Y += profile.Gravity * dt

			next := tr.Position.Add(vel.Mult(frames))
			if next.X < 0 || next.X > limit.X {
				bounce(w, e, &vel.X, profile.BounceFactor, ecs.AxisX)
			}
			if next.Y > limit.Y || (profile.Ceiling && next.Y < 0) {
				bounce(w, e, &vel.Y, profile.BounceFactor, ecs.AxisY)
			}

			tr.Position = tr.Position.Add(vel.Mult(frames))

			if profile.Friction == 0 {
				return
			}
			damp := math.Max(0, 1-profile.Friction*frames)
			margin := profile.ContactMargin
			pos := tr.Position
			// friction acts on the component parallel to the surface in contact
			if pos.X <= margin || pos.X >= limit.X-margin {
				vel.Y *= damp
			}
			if pos.Y >= limit.Y-margin || (profile.Ceiling && pos.Y <= margin) {
				vel.X *= damp
			}
		},
	)
}

func bounce(w *ecs.World, e ecs.Entity, v *float64, factor float64, axis ecs.Axis) {
	if math.Abs(*v) >= bounceEventSpeed {
		w.Events().Push(ecs.Event{Type: ecs.EventBounce, Entity: e, Axis: axis})
	}
	*v *= -factor
}

func sizeOf(w *ecs.World, e ecs.Entity, profile *component.PhysicsProfile) float64 {
	if sq, ok := ecs.Get(w, e, component.SquareComponent.Kind()); ok {
		return sq.Size
	}
	return profile.BaselineSize
}
