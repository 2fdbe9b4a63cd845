package sim

import (
	"math"
	"testing"

	"github.com/milk9111/jetsquare/ecs"
	"github.com/milk9111/jetsquare/ecs/component"
	"github.com/milk9111/jetsquare/prefabs"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func loadProfile(t *testing.T, name string) component.PhysicsProfile {
	t.Helper()
	spec, err := prefabs.LoadProfilesSpec()
	if err != nil {
		t.Fatalf("load profiles: %v", err)
	}
	p, err := spec.Profile(name)
	if err != nil {
		t.Fatalf("profile %q: %v", name, err)
	}
	return p
}

func newSim(t *testing.T, profile component.PhysicsProfile) *Simulation {
	t.Helper()
	spec, err := prefabs.LoadSquareSpec()
	if err != nil {
		t.Fatalf("load square: %v", err)
	}
	s, err := New(spec, profile)
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}
	return s
}

func TestNewSpawnsCentredSquare(t *testing.T) {
	s := newSim(t, loadProfile(t, ""))
	snap := s.Snapshot()
	want := Snapshot{Profile: "jetpack", X: 375, Y: 275, VX: 3, VY: 3, Size: 50, Meter: 1}
	if snap != want {
		t.Fatalf("spawn snapshot = %+v, want %+v", snap, want)
	}

	params := s.RenderParams()
	if params.Square != (component.SquareParams{X: 375, Y: 275, Size: 50}) {
		t.Fatalf("square params = %+v", params.Square)
	}
	if params.Bar.FillHeight != 0 || params.Bar.Category != component.BarHealthy {
		t.Fatalf("bar params = %+v", params.Bar)
	}
}

func TestZeroDeltaWithoutKeysIsIdempotent(t *testing.T) {
	states := []struct {
		name string
		snap Snapshot
	}{
		{"draining_overheat", Snapshot{X: 0, Y: 550, VX: -2, VY: 4, Size: 50, Meter: 0.3, Overheated: true}},
		{"full_meter_overheat", Snapshot{X: 100, Y: 100, VX: 1, VY: -1, Size: 50, Meter: 1, Overheated: true}},
		{"normal", Snapshot{X: 375, Y: 275, VX: 3, VY: 3, Size: 50, Meter: 0.6}},
	}

	for _, name := range []string{"jetpack", "classic", "arcade", "frictionless"} {
		for _, st := range states {
			t.Run(name+"/"+st.name, func(t *testing.T) {
				s := newSim(t, loadProfile(t, name))
				s.Restore(st.snap)
				before := s.Snapshot()
				params := s.RenderParams()

				for i := 0; i < 5; i++ {
					s.Update(component.Keys(), 0)
				}

				if after := s.Snapshot(); after != before {
					t.Fatalf("zero dt changed state:\nbefore %+v\nafter  %+v", before, after)
				}
				if got := s.RenderParams(); got != params {
					t.Fatalf("zero dt changed render params: %+v -> %+v", params, got)
				}
				if events := s.Events(); len(events) != 0 {
					t.Fatalf("zero dt raised events %v", events)
				}
			})
		}
	}
}

func TestZeroDeltaAfterTripKeepsLockout(t *testing.T) {
	p := loadProfile(t, "jetpack")
	p.Gravity = 0
	s := newSim(t, p)
	s.Restore(Snapshot{X: 100, Y: 100, Size: 50, Meter: 1})

	s.Update(component.Keys(component.KeyUp), 1)
	if !s.Snapshot().Overheated {
		t.Fatalf("expected the thrust to trip overheat")
	}

	for i := 0; i < 3; i++ {
		s.Update(component.Keys(), 0)
		if !s.Snapshot().Overheated {
			t.Fatalf("zero dt update %d released the lockout", i)
		}
	}

	s.Update(component.Keys(), 1.0/60)
	if s.Snapshot().Overheated {
		t.Fatalf("a regeneration tick on a full meter should release the lockout")
	}
}

func TestRenderParamsFollowStateChanges(t *testing.T) {
	s := newSim(t, loadProfile(t, "jetpack"))

	s.Restore(Snapshot{X: 40, Y: 80, Size: 30, Meter: 0.2, Overheated: true})
	params := s.RenderParams()
	if params.Square != (component.SquareParams{X: 40, Y: 80, Size: 30}) {
		t.Fatalf("square params after restore = %+v", params.Square)
	}
	if !near(params.Bar.FillHeight, 40) || params.Bar.Category != component.BarOverheated {
		t.Fatalf("bar params after restore = %+v", params.Bar)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	params = s.RenderParams()
	if params.Square != (component.SquareParams{X: 375, Y: 275, Size: 50}) || params.Bar.Category != component.BarHealthy {
		t.Fatalf("params after reset = %+v", params)
	}
}

func TestRestoreKeepsActiveProfile(t *testing.T) {
	s := newSim(t, loadProfile(t, "classic"))
	s.Restore(Snapshot{Profile: "arcade", X: 10, Y: 10, Size: 50, Meter: 1})
	if got := s.Profile().Name; got != "classic" {
		t.Fatalf("profile = %q, restore must not switch profiles", got)
	}
}

func TestOverheatOnExhaustingThrust(t *testing.T) {
	p := loadProfile(t, "jetpack")
	p.Gravity = 0
	s := newSim(t, p)
	s.Restore(Snapshot{X: 100, Y: 100, Size: 50, Meter: 1})

	// cost = 1.0 * 1.5 exceeds the full meter
	s.Update(component.Keys(component.KeyUp), 1)

	snap := s.Snapshot()
	if !snap.Overheated {
		t.Fatalf("expected overheat")
	}
	if snap.VY != 0 {
		t.Fatalf("thrust applied despite overheat: vy=%v", snap.VY)
	}
	if snap.Meter != 1 {
		t.Fatalf("meter = %v, want 1", snap.Meter)
	}
	if s.RenderParams().Bar.Category != component.BarOverheated {
		t.Fatalf("bar should show overheat")
	}

	events := s.Events()
	if len(events) != 1 || events[0].Type != ecs.EventOverheated {
		t.Fatalf("events = %v", events)
	}
}

func TestOverheatLatchesUntilMeterRefills(t *testing.T) {
	p := loadProfile(t, "jetpack")
	p.Gravity = 0
	s := newSim(t, p)
	s.Restore(Snapshot{X: 100, Y: 100, Size: 50, Meter: 0.5})

	dt := 1.0 / 60
	up := component.Keys(component.KeyUp)

	// drain until the lockout trips
	frames := 0
	for !s.Snapshot().Overheated {
		s.Update(up, dt)
		frames++
		if frames > 1000 {
			t.Fatalf("never overheated")
		}
	}

	for {
		before := s.Snapshot()
		s.Update(up, dt)
		after := s.Snapshot()
		if before.Overheated && after.VY < before.VY {
			t.Fatalf("thrust fired while overheated")
		}
		if !after.Overheated {
			if after.Meter != 1 {
				t.Fatalf("lockout cleared at meter %v", after.Meter)
			}
			break
		}
		if after.Meter < before.Meter {
			t.Fatalf("meter drained while overheated: %v -> %v", before.Meter, after.Meter)
		}
		frames++
		if frames > 100000 {
			t.Fatalf("never cooled")
		}
	}

	var sawOverheat, sawCooled bool
	for _, evt := range s.Events() {
		switch evt.Type {
		case ecs.EventOverheated:
			sawOverheat = true
		case ecs.EventCooled:
			sawCooled = true
		}
	}
	if !sawOverheat || !sawCooled {
		t.Fatalf("expected both transitions, overheat=%v cooled=%v", sawOverheat, sawCooled)
	}
}

func TestFloorBounceScenario(t *testing.T) {
	p := loadProfile(t, "frictionless")
	if p.Gravity != 0 || p.BounceFactor != 0.9 {
		t.Fatalf("frictionless profile changed: %+v", p)
	}
	s := newSim(t, p)

	// 2s is 120 reference frames, enough for 275 + 3*120 to pass the floor at 550
	s.Update(component.Keys(), 2)

	snap := s.Snapshot()
	if !near(snap.VY, -2.7) {
		t.Fatalf("vy = %v, want -2.7", snap.VY)
	}
	if !near(snap.Y, 275-2.7*120) {
		t.Fatalf("y = %v, position should use the reversed velocity", snap.Y)
	}
}

func TestSizeStaysInBounds(t *testing.T) {
	p := loadProfile(t, "jetpack")
	s := newSim(t, p)
	for _, key := range []component.Key{component.KeyGrow, component.KeyShrink, component.KeyGrow} {
		for i := 0; i < 300; i++ {
			s.Update(component.Keys(key), 1.0/60)
			if size := s.Snapshot().Size; size < p.MinSize || size > p.MaxSize {
				t.Fatalf("size %v left [%v, %v]", size, p.MinSize, p.MaxSize)
			}
		}
	}
}

func TestSetProfileClampsSizeAndReset(t *testing.T) {
	s := newSim(t, loadProfile(t, "jetpack"))
	for i := 0; i < 30; i++ {
		s.Update(component.Keys(component.KeyGrow), 0)
	}
	grown := s.Snapshot()
	if grown.Size != 80 {
		t.Fatalf("size = %v, want 80", grown.Size)
	}

	if err := s.SetProfile(loadProfile(t, "classic")); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	switched := s.Snapshot()
	if switched.Profile != "classic" || switched.Size != 50 {
		t.Fatalf("after switch: %+v", switched)
	}
	if !near(switched.Y+switched.Size, grown.Y+grown.Size) {
		t.Fatalf("switch moved the bottom edge")
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if snap := s.Snapshot(); snap.X != 375 || snap.Y != 275 || snap.Meter != 1 || snap.Profile != "classic" {
		t.Fatalf("after reset: %+v", snap)
	}
}

func TestSnapshotYAMLRoundTrip(t *testing.T) {
	s := newSim(t, loadProfile(t, "arcade"))
	s.Update(component.Keys(component.KeyRight), 1.0/60)
	snap := s.Snapshot()

	data, err := snap.YAML()
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	parsed, err := ParseSnapshot(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed != snap {
		t.Fatalf("round trip mismatch: %+v vs %+v", parsed, snap)
	}
}
