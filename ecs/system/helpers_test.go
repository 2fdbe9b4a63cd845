package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jetsquare/ecs"
	"github.com/milk9111/jetsquare/ecs/component"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func testProfile() component.PhysicsProfile {
	return component.PhysicsProfile{
		Name:              "test",
		ReferenceFPS:      60,
		Gravity:           0,
		BounceFactor:      0.5,
		Friction:          0,
		HorizontalStep:    0.1,
		VerticalStep:      0.1,
		ThrustImpulse:     0.15,
		ThrustCost:        1.5,
		RegenRate:         0.4,
		OverheatRegenRate: 0.2,
		MinSize:           20,
		MaxSize:           100,
		BaselineSize:      50,
		SizeStep:          1,
		WeightCoefficient: 0.01,
	}
}

type squareSetup struct {
	pos     cp.Vector
	vel     cp.Vector
	size    float64
	meter   float64
	state   component.HeatState
	profile component.PhysicsProfile
}

func newSquareWorld(t *testing.T, s squareSetup) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()

	vp := ecs.CreateEntity(w)
	if err := ecs.Add(w, vp, component.ViewportComponent.Kind(), &component.Viewport{Width: 800, Height: 600}); err != nil {
		t.Fatal(err)
	}

	if s.size == 0 {
		s.size = 50
	}
	e := ecs.CreateEntity(w)
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(ecs.Add(w, e, component.SquareTagComponent.Kind(), &component.SquareTag{}))
	must(ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))
	must(ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: s.pos}))
	must(ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{Vector: s.vel}))
	must(ecs.Add(w, e, component.SquareComponent.Kind(), &component.Square{Size: s.size}))
	must(ecs.Add(w, e, component.JetpackComponent.Kind(), &component.Jetpack{Meter: s.meter, State: s.state}))
	must(ecs.Add(w, e, component.PhysicsProfileComponent.Kind(), &s.profile))
	must(ecs.Add(w, e, component.MeterBarComponent.Kind(), &component.MeterBar{X: 10, Y: 60, Width: 30, Height: 50, LowThreshold: 0.5}))
	return w, e
}

func setHeld(t *testing.T, w *ecs.World, e ecs.Entity, keys ...component.Key) {
	t.Helper()
	in, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no input", e)
	}
	in.Held = component.Keys(keys...)
}

func state(t *testing.T, w *ecs.World, e ecs.Entity) (*component.Transform, *component.Velocity, *component.Square, *component.Jetpack) {
	t.Helper()
	tr, ok1 := ecs.Get(w, e, component.TransformComponent.Kind())
	vel, ok2 := ecs.Get(w, e, component.VelocityComponent.Kind())
	sq, ok3 := ecs.Get(w, e, component.SquareComponent.Kind())
	jp, ok4 := ecs.Get(w, e, component.JetpackComponent.Kind())
	if !ok1 || !ok2 || !ok3 || !ok4 {
		t.Fatalf("entity %v is missing components", e)
	}
	return tr, vel, sq, jp
}

func eventsOf(w *ecs.World, typ ecs.EventType) []ecs.Event {
	var out []ecs.Event
	for _, evt := range w.Events().Drain() {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
}
