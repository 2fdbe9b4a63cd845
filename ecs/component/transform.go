package component

import "github.com/jakecoffman/cp"

// Transform holds the top-left corner of an entity in screen pixels.
type Transform struct {
	Position cp.Vector
}

var TransformComponent = NewComponent[Transform]()
