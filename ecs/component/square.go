package component

// Square is an axis-aligned square body of side Size.
type Square struct {
	Size float64
}

var SquareComponent = NewComponent[Square]()
