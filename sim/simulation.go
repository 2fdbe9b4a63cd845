// Package sim drives one bouncing square through the frame pipeline:
// key snapshot, input phase, physics, meter regeneration and render params.
package sim

import (
	"fmt"

	"github.com/milk9111/jetsquare/common"
	"github.com/milk9111/jetsquare/ecs"
	"github.com/milk9111/jetsquare/ecs/component"
	"github.com/milk9111/jetsquare/ecs/entity"
	"github.com/milk9111/jetsquare/ecs/system"
	"github.com/milk9111/jetsquare/prefabs"
)

// Simulation owns the world and the single square entity. It is not safe for
// concurrent use; the frame loop that drives it owns it exclusively.
type Simulation struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	meterBar  *system.MeterBarSystem
	square    ecs.Entity
	spec      prefabs.SquareSpec
	events    []ecs.Event
}

// New builds a simulation on a common.ScreenWidth × common.ScreenHeight viewport.
func New(spec *prefabs.SquareSpec, profile component.PhysicsProfile) (*Simulation, error) {
	return NewWithViewport(spec, profile, common.ScreenWidth, common.ScreenHeight)
}

func NewWithViewport(spec *prefabs.SquareSpec, profile component.PhysicsProfile, width, height float64) (*Simulation, error) {
	if spec == nil {
		return nil, fmt.Errorf("sim: nil square spec")
	}

	w := ecs.NewWorld()
	if _, err := entity.NewViewport(w, width, height); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	square, err := entity.NewSquare(w, spec, profile)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	meterBar := system.NewMeterBarSystem()
	s := &Simulation{
		world: w,
		scheduler: ecs.NewScheduler(
			system.NewSquareControllerSystem(),
			system.NewPhysicsSystem(),
			system.NewJetpackSystem(),
			meterBar,
		),
		meterBar: meterBar,
		square:   square,
		spec:     *spec,
	}
	meterBar.Update(w)
	return s, nil
}

// Update advances one frame with the given held keys and elapsed seconds.
// Negative dt is treated as zero.
func (s *Simulation) Update(keys component.HeldKeys, dt float64) {
	if in, ok := ecs.Get(s.world, s.square, component.InputComponent.Kind()); ok {
		in.Held = keys
	}
	s.world.SetDeltaTime(dt)
	s.scheduler.Update(s.world)
	s.events = append(s.events, s.world.Events().Drain()...)
}

// RenderParams returns the drawable state stored by the last update.
func (s *Simulation) RenderParams() component.RenderParams {
	if params, ok := ecs.Get(s.world, s.square, component.RenderParamsComponent.Kind()); ok {
		return *params
	}
	params, _ := system.DeriveRenderParams(s.world, s.square)
	return params
}

// Events returns and clears the events raised since the last call.
func (s *Simulation) Events() []ecs.Event {
	out := s.events
	s.events = nil
	return out
}

// Reset respawns the square with the active profile.
func (s *Simulation) Reset() error {
	if err := entity.ResetSquare(s.world, s.square, &s.spec); err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	s.events = nil
	s.meterBar.Update(s.world)
	return nil
}

// SetProfile switches physics constants without resetting the square.
func (s *Simulation) SetProfile(profile component.PhysicsProfile) error {
	if err := entity.ApplyProfile(s.world, s.square, profile); err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	s.meterBar.Update(s.world)
	return nil
}

// Profile returns the active physics profile.
func (s *Simulation) Profile() component.PhysicsProfile {
	if p, ok := ecs.Get(s.world, s.square, component.PhysicsProfileComponent.Kind()); ok {
		return *p
	}
	return component.PhysicsProfile{}
}

// Restore overwrites the square's state, e.g. to replay a copied snapshot.
// snap.Profile is not applied: the active profile stays in effect, so callers
// replaying a snapshot from another profile resolve it and call SetProfile
// first.
func (s *Simulation) Restore(snap Snapshot) {
	if tr, ok := ecs.Get(s.world, s.square, component.TransformComponent.Kind()); ok {
		tr.Position.X, tr.Position.Y = snap.X, snap.Y
	}
	if vel, ok := ecs.Get(s.world, s.square, component.VelocityComponent.Kind()); ok {
		vel.X, vel.Y = snap.VX, snap.VY
	}
	if sq, ok := ecs.Get(s.world, s.square, component.SquareComponent.Kind()); ok && snap.Size > 0 {
		sq.Size = snap.Size
	}
	if jp, ok := ecs.Get(s.world, s.square, component.JetpackComponent.Kind()); ok {
		*jp = component.Jetpack{Meter: snap.Meter}
		if snap.Overheated {
			jp.State = component.HeatOverheated
		}
	}
	s.meterBar.Update(s.world)
}
