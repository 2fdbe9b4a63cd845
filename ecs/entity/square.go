package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jetsquare/ecs"
	"github.com/milk9111/jetsquare/ecs/component"
	"github.com/milk9111/jetsquare/prefabs"
)

// NewSquare spawns the player square centred in the viewport.
func NewSquare(w *ecs.World, spec *prefabs.SquareSpec, profile component.PhysicsProfile) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("square: nil spec")
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SquareTagComponent.Kind(), &component.SquareTag{}); err != nil {
		return 0, fmt.Errorf("square: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("square: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsProfileComponent.Kind(), &profile); err != nil {
		return 0, fmt.Errorf("square: add profile: %w", err)
	}
	bar := spec.MeterBar.Component()
	if err := ecs.Add(w, e, component.MeterBarComponent.Kind(), &bar); err != nil {
		return 0, fmt.Errorf("square: add meter bar: %w", err)
	}
	if err := ResetSquare(w, e, spec); err != nil {
		return 0, err
	}
	return e, nil
}

// ResetSquare puts the square back to its spawn state: centred, starting
// velocity, spawn size clamped to the active profile, meter per spec and not
// overheated.
func ResetSquare(w *ecs.World, e ecs.Entity, spec *prefabs.SquareSpec) error {
	profile, ok := ecs.Get(w, e, component.PhysicsProfileComponent.Kind())
	if !ok {
		return fmt.Errorf("square: reset %v: no physics profile", e)
	}

	size := cp.Clamp(spec.Size, profile.MinSize, profile.MaxSize)
	vp := ViewportOf(w)
	pos := cp.Vector{X: (vp.Width - size) / 2, Y: (vp.Height - size) / 2}

	if err := ecs.Add(w, e, component.SquareComponent.Kind(), &component.Square{Size: size}); err != nil {
		return fmt.Errorf("square: add size: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return fmt.Errorf("square: add transform: %w", err)
	}
	vel := &component.Velocity{Vector: cp.Vector{X: spec.Velocity.X, Y: spec.Velocity.Y}}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), vel); err != nil {
		return fmt.Errorf("square: add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.JetpackComponent.Kind(), &component.Jetpack{Meter: spec.Meter}); err != nil {
		return fmt.Errorf("square: add jetpack: %w", err)
	}
	return nil
}

// ApplyProfile swaps the physics profile of a live square. The size is pulled
// into the new bounds with the bottom edge kept in place.
func ApplyProfile(w *ecs.World, e ecs.Entity, profile component.PhysicsProfile) error {
	if err := ecs.Add(w, e, component.PhysicsProfileComponent.Kind(), &profile); err != nil {
		return fmt.Errorf("square: apply profile %q: %w", profile.Name, err)
	}
	sq, ok := ecs.Get(w, e, component.SquareComponent.Kind())
	if !ok {
		return nil
	}
	next := cp.Clamp(sq.Size, profile.MinSize, profile.MaxSize)
	if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		tr.Position.Y -= next - sq.Size
	}
	sq.Size = next
	return nil
}
