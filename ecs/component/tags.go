package component

type SquareTag struct{}

var SquareTagComponent = NewComponent[SquareTag]()
