package world

// defaultLevel is the 24x24 demo dungeon.
var defaultLevel = [][]Cell{
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 3, 1, 1, 0, 1, 1, 4, 4, 4, 4, 1, 1, 0, 1, 1, 3, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 9, 0, 0, 1, 4, 0, 0, 4, 1, 0, 0, 9, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 1, 0, 0, 1, 4, 0, 0, 4, 1, 0, 0, 1, 0, 0, 0, 0, 0, 1},
	{1, 3, 0, 0, 0, 0, 1, 0, 0, 9, 0, 0, 0, 0, 9, 0, 0, 1, 0, 0, 0, 0, 3, 1},
	{1, 1, 1, 1, 0, 1, 1, 0, 0, 1, 4, 0, 0, 4, 1, 0, 0, 1, 1, 0, 1, 1, 1, 1},
	{1, 2, 0, 9, 0, 0, 0, 0, 0, 1, 4, 4, 4, 4, 1, 0, 0, 0, 0, 0, 9, 0, 2, 1},
	{1, 0, 0, 1, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 1, 0, 0, 1},
	{1, 0, 0, 1, 1, 1, 3, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 3, 1, 1, 1, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 1, 0, 1, 1, 1, 1, 1, 1, 0, 1, 0, 0, 0, 0, 0, 0, 1},
	{1, 3, 0, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 3, 1},
	{1, 1, 9, 1, 1, 0, 0, 9, 0, 9, 0, 0, 0, 0, 9, 0, 9, 0, 0, 1, 1, 9, 1, 1},
	{1, 1, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1, 0, 1, 0, 0, 1, 1, 0, 1, 1},
	{1, 0, 0, 0, 0, 0, 0, 1, 0, 1, 1, 1, 1, 1, 1, 0, 1, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 1, 1, 1, 3, 1, 0, 1, 1, 1, 1, 1, 1, 0, 1, 3, 1, 1, 1, 0, 0, 1},
	{1, 0, 0, 1, 0, 0, 0, 0, 0, 1, 5, 5, 5, 5, 1, 0, 0, 0, 0, 0, 1, 0, 0, 1},
	{1, 2, 0, 9, 0, 0, 0, 0, 0, 1, 5, 0, 0, 5, 1, 0, 0, 0, 0, 0, 9, 0, 2, 1},
	{1, 1, 1, 1, 0, 1, 1, 0, 0, 9, 0, 0, 0, 0, 9, 0, 0, 1, 1, 0, 1, 1, 1, 1},
	{1, 3, 0, 0, 0, 0, 1, 0, 0, 1, 5, 0, 0, 5, 1, 0, 0, 1, 0, 0, 0, 0, 3, 1},
	{1, 0, 0, 0, 0, 0, 1, 0, 0, 1, 5, 5, 5, 5, 1, 0, 0, 1, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 0, 0, 9, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 9, 0, 0, 0, 0, 0, 1},
	{1, 0, 0, 0, 3, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 3, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// DefaultLevel returns a fresh grid of the built-in demo dungeon.
func DefaultLevel() *Grid {
	return MustNewGrid(defaultLevel)
}
