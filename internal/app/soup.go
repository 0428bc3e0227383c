package app

import (
	"strconv"

	"lifeee/pkg/lexicon"
	"lifeee/pkg/life"
)

// SoupDensity is the chance of a soup cell starting alive.
const SoupDensity = 0.5

// SoupTerm wraps a random size by size soup as a catalog term so it can be
// applied like any other pattern.
func SoupTerm(seed int64, size int32) lexicon.Term {
	return lexicon.Term{
		Name:  "Soup #" + strconv.FormatInt(seed, 10),
		Tags:  []string{strconv.Itoa(int(size)) + "x" + strconv.Itoa(int(size))},
		Cells: life.Soup(seed, size, size, SoupDensity).Cells(),
	}
}
