package main

import (
	"github.com/katalvlaran/advent/dial"
	"github.com/katalvlaran/advent/joltage"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/repeats"
)

// solutions lists every solved day.
func solutions() []puzzle.Solution {
	return []puzzle.Solution{
		{Day: 1, Title: "Secret Entrance", PartOne: dial.PartOne, PartTwo: dial.PartTwo},
		{Day: 2, Title: "Gift Shop", PartOne: repeats.PartOne, PartTwo: repeats.PartTwo},
		{Day: 3, Title: "Lobby", PartOne: joltage.PartOne, PartTwo: joltage.PartTwo},
	}
}
