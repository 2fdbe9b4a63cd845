package entity

import (
	"fmt"

	"github.com/milk9111/jetsquare/common"
	"github.com/milk9111/jetsquare/ecs"
	"github.com/milk9111/jetsquare/ecs/component"
)

func NewViewport(w *ecs.World, width, height float64) (ecs.Entity, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("viewport: invalid size %vx%v", width, height)
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ViewportComponent.Kind(), &component.Viewport{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("viewport: add component: %w", err)
	}
	return e, nil
}

// ViewportOf returns the world viewport, or the default screen when none was spawned.
func ViewportOf(w *ecs.World) component.Viewport {
	if e, ok := ecs.First(w, component.ViewportComponent.Kind()); ok {
		if vp, ok := ecs.Get(w, e, component.ViewportComponent.Kind()); ok {
			return *vp
		}
	}
	return component.Viewport{Width: common.ScreenWidth, Height: common.ScreenHeight}
}
