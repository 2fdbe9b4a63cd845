package entity

import (
	"testing"

	"github.com/milk9111/jetsquare/ecs"
	"github.com/milk9111/jetsquare/ecs/component"
	"github.com/milk9111/jetsquare/prefabs"
)

func squareSpec() *prefabs.SquareSpec {
	return &prefabs.SquareSpec{
		Size:     50,
		Velocity: prefabs.VectorSpec{X: 3, Y: 3},
		Meter:    1,
		MeterBar: prefabs.MeterBarSpec{X: 10, Y: 60, Width: 30, Height: 50, LowThreshold: 0.5},
	}
}

func testProfile(lo, hi float64) component.PhysicsProfile {
	return component.PhysicsProfile{Name: "test", ReferenceFPS: 60, MinSize: lo, MaxSize: hi, BaselineSize: lo}
}

func TestViewportOfDefaultsToScreen(t *testing.T) {
	w := ecs.NewWorld()
	if vp := ViewportOf(w); vp.Width != 800 || vp.Height != 600 {
		t.Fatalf("default viewport = %+v", vp)
	}

	if _, err := NewViewport(w, 320, 240); err != nil {
		t.Fatalf("new viewport: %v", err)
	}
	if vp := ViewportOf(w); vp.Width != 320 || vp.Height != 240 {
		t.Fatalf("viewport = %+v", vp)
	}

	if _, err := NewViewport(w, 0, 240); err == nil {
		t.Fatalf("expected error for zero width")
	}
}

func TestNewSquareSpawnsCentred(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewSquare(w, squareSpec(), testProfile(20, 100))
	if err != nil {
		t.Fatalf("new square: %v", err)
	}

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.Position.X != 375 || tr.Position.Y != 275 {
		t.Fatalf("position = %v", tr.Position)
	}
	vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	if vel.X != 3 || vel.Y != 3 {
		t.Fatalf("velocity = %v", vel.Vector)
	}
	jp, _ := ecs.Get(w, e, component.JetpackComponent.Kind())
	if jp.Meter != 1 || jp.Overheated() {
		t.Fatalf("jetpack = %+v", jp)
	}
	for name, ok := range map[string]bool{
		"tag":   ecs.Has(w, e, component.SquareTagComponent.Kind()),
		"input": ecs.Has(w, e, component.InputComponent.Kind()),
		"bar":   ecs.Has(w, e, component.MeterBarComponent.Kind()),
	} {
		if !ok {
			t.Fatalf("missing %s component", name)
		}
	}

	if _, err := NewSquare(w, nil, testProfile(20, 100)); err == nil {
		t.Fatalf("expected error for nil spec")
	}
}

func TestResetSquareClampsSpawnSize(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewSquare(w, squareSpec(), testProfile(60, 80))
	if err != nil {
		t.Fatalf("new square: %v", err)
	}
	sq, _ := ecs.Get(w, e, component.SquareComponent.Kind())
	if sq.Size != 60 {
		t.Fatalf("size = %v, want 60", sq.Size)
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.Position.X != 370 || tr.Position.Y != 270 {
		t.Fatalf("position = %v", tr.Position)
	}
}

func TestApplyProfileKeepsBottomEdge(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewSquare(w, squareSpec(), testProfile(20, 100))
	if err != nil {
		t.Fatalf("new square: %v", err)
	}

	if err := ApplyProfile(w, e, testProfile(70, 90)); err != nil {
		t.Fatalf("apply profile: %v", err)
	}
	sq, _ := ecs.Get(w, e, component.SquareComponent.Kind())
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if sq.Size != 70 {
		t.Fatalf("size = %v, want 70", sq.Size)
	}
	if tr.Position.Y+sq.Size != 325 {
		t.Fatalf("bottom edge moved to %v", tr.Position.Y+sq.Size)
	}
	p, _ := ecs.Get(w, e, component.PhysicsProfileComponent.Kind())
	if p.MinSize != 70 {
		t.Fatalf("profile not replaced: %+v", p)
	}
}
