package component

import "testing"

func TestMeterBarCategory(t *testing.T) {
	bar := MeterBar{Height: 50, LowThreshold: 0.5}
	cases := []struct {
		name string
		j    Jetpack
		want BarCategory
	}{
		{"full", Jetpack{Meter: 1}, BarHealthy},
		{"at_threshold", Jetpack{Meter: 0.5}, BarHealthy},
		{"low", Jetpack{Meter: 0.49}, BarLow},
		{"overheated_full", Jetpack{Meter: 1, State: HeatOverheated}, BarOverheated},
		{"overheated_low", Jetpack{Meter: 0.1, State: HeatOverheated}, BarOverheated},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := bar.Category(c.j); got != c.want {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestMeterBarFillHeight(t *testing.T) {
	bar := MeterBar{Height: 50}
	cases := []struct {
		meter float64
		want  float64
	}{
		{1, 0},
		{0.5, 25},
		{0, 50},
		{-0.2, 50},
	}
	for _, c := range cases {
		if got := bar.FillHeight(Jetpack{Meter: c.meter}); got != c.want {
			t.Fatalf("meter %v: got %v, want %v", c.meter, got, c.want)
		}
	}
}

func TestPhysicsProfileWeightFactor(t *testing.T) {
	p := PhysicsProfile{BaselineSize: 50, WeightCoefficient: 0.01, ReferenceFPS: 60}
	if got := p.WeightFactor(50); got != 1 {
		t.Fatalf("baseline should weigh 1, got %v", got)
	}
	if got := p.WeightFactor(30); got <= 1 {
		t.Fatalf("smaller square should be lighter, got %v", got)
	}
	if got := p.WeightFactor(500); got != 0 {
		t.Fatalf("factor should floor at 0, got %v", got)
	}
	if got := p.Frames(0.5); got != 30 {
		t.Fatalf("expected 30 frames, got %v", got)
	}
	if got := p.Frames(-1); got != 0 {
		t.Fatalf("negative dt should be 0 frames, got %v", got)
	}
}
