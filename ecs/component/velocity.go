package component

import "github.com/jakecoffman/cp"

// Velocity is measured in pixels per reference frame (see PhysicsProfile.ReferenceFPS).
type Velocity struct {
	cp.Vector
}

var VelocityComponent = NewComponent[Velocity]()
