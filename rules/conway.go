package rules

// BirthNeighbors is the exact neighbor count that brings a dead cell to life.
const BirthNeighbors = 3

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == BirthNeighbors
}

// IsBirth reports whether a dead cell with the given neighbor count is born
func IsBirth(neighbors int, alive bool) bool {
	return !alive && ApplyConwayRules(neighbors, alive)
}
