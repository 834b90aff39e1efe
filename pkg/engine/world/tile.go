package world

// TileKind identifies what occupies a single grid tile.
type TileKind uint8

// Tile kinds
const (
	TileEmpty TileKind = iota
	TileFloor
	TileCorridor
	TileWall
)

// String returns the string representation of a tile kind
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "Empty"
	case TileFloor:
		return "Floor"
	case TileCorridor:
		return "Corridor"
	case TileWall:
		return "Wall"
	default:
		return "Unknown"
	}
}

// Passable returns true for tiles an entity can stand on (room floor or corridor)
func (k TileKind) Passable() bool {
	return k == TileFloor || k == TileCorridor
}
