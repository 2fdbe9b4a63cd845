package sim

import (
	"fmt"

	"github.com/milk9111/jetsquare/ecs"
	"github.com/milk9111/jetsquare/ecs/component"
	"gopkg.in/yaml.v3"
)

// Snapshot is a flat copy of the square's physical state.
type Snapshot struct {
	Profile    string  `yaml:"profile"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	VX         float64 `yaml:"vx"`
	VY         float64 `yaml:"vy"`
	Size       float64 `yaml:"size"`
	Meter      float64 `yaml:"meter"`
	Overheated bool    `yaml:"overheated"`
}

func (s *Simulation) Snapshot() Snapshot {
	var snap Snapshot
	snap.Profile = s.Profile().Name
	if tr, ok := ecs.Get(s.world, s.square, component.TransformComponent.Kind()); ok {
		snap.X, snap.Y = tr.Position.X, tr.Position.Y
	}
	if vel, ok := ecs.Get(s.world, s.square, component.VelocityComponent.Kind()); ok {
		snap.VX, snap.VY = vel.X, vel.Y
	}
	if sq, ok := ecs.Get(s.world, s.square, component.SquareComponent.Kind()); ok {
		snap.Size = sq.Size
	}
	if jp, ok := ecs.Get(s.world, s.square, component.JetpackComponent.Kind()); ok {
		snap.Meter = jp.Meter
		snap.Overheated = jp.Overheated()
	}
	return snap
}

// YAML renders the snapshot for the clipboard.
func (s Snapshot) YAML() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("sim: marshal snapshot: %w", err)
	}
	return data, nil
}

func ParseSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("sim: parse snapshot: %w", err)
	}
	return snap, nil
}
