package system

import (
	"github.com/milk9111/jetsquare/ecs"
	"github.com/milk9111/jetsquare/ecs/component"
)

// MeterBarSystem stores the frame's RenderParams on every square that has a
// meter bar. It runs last so the params reflect the finished update.
type MeterBarSystem struct{}

func NewMeterBarSystem() *MeterBarSystem { return &MeterBarSystem{} }

func (s *MeterBarSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.MeterBarComponent.Kind(), func(e ecs.Entity, _ *component.MeterBar) {
		params, ok := DeriveRenderParams(w, e)
		if !ok {
			return
		}
		if current, ok := ecs.Get(w, e, component.RenderParamsComponent.Kind()); ok {
			*current = params
			return
		}
		if err := ecs.Add(w, e, component.RenderParamsComponent.Kind(), &params); err != nil {
			panic("meter bar system: add render params: " + err.Error())
		}
	})
}

// DeriveRenderParams builds the drawable state of a square entity from its
// transform, size, jetpack and meter bar.
func DeriveRenderParams(w *ecs.World, e ecs.Entity) (component.RenderParams, bool) {
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return component.RenderParams{}, false
	}
	sq, ok := ecs.Get(w, e, component.SquareComponent.Kind())
	if !ok {
		return component.RenderParams{}, false
	}
	jp, ok := ecs.Get(w, e, component.JetpackComponent.Kind())
	if !ok {
		return component.RenderParams{}, false
	}
	bar, ok := ecs.Get(w, e, component.MeterBarComponent.Kind())
	if !ok {
		return component.RenderParams{}, false
	}

	return component.RenderParams{
		Square: component.SquareParams{X: tr.Position.X, Y: tr.Position.Y, Size: sq.Size},
		Bar: component.BarParams{
			X:          bar.X,
			Y:          bar.Y,
			Width:      bar.Width,
			Height:     bar.Height,
			FillHeight: bar.FillHeight(*jp),
			Category:   bar.Category(*jp),
		},
	}, true
}
