package database

import "github.com/jaevor/go-nanoid"

// IDLength is the length of project and SVG identifiers.
const IDLength = 21

var generateID = mustGenerator(IDLength)

func mustGenerator(length int) func() string {
	gen, err := nanoid.Standard(length)
	if err != nil {
		panic(err)
	}
	return gen
}

// NewID returns a fresh URL-safe identifier for projects and SVGs.
func NewID() string {
	return generateID()
}
